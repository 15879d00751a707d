package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/config"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/scraper"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
	"github.com/pfrederiksen/hockey-stats/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagOutDir   string
	flagURL      string
	flagMaxPages int
	flagFormat   string
	flagSort     string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hockey-stats",
		Short: "Crawl hockey team statistics into a zip archive and Excel workbook",
		Long: `A CLI tool that crawls the paginated hockey team statistics table, archives every
raw page to hockey_stats.zip, and exports the parsed rows plus a per-season
winner/loser summary to hockey_stats.xlsx.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCrawl,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory for hockey_stats.zip and hockey_stats.xlsx")
	cmd.Flags().StringVar(&flagURL, "url", scraper.DefaultURL, "First page of the statistics table")
	cmd.Flags().IntVar(&flagMaxPages, "max-pages", 0, "Stop after this many pages (0 for no limit)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "crawl", "Season order in the summary output: crawl or year")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCrawl is the main command logic
func runCrawl(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByCrawl && order != SortByYear {
		return fmt.Errorf("invalid sort: %s (must be 'crawl' or 'year')", flagSort)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.LogLevel()
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, cmd.ErrOrStderr())
	logger.SetDefault(log)
	defer log.Sync() // nolint:errcheck

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := Run(ctx, cfg, log)
	if err != nil {
		return err
	}

	sortSummaries(result.Summaries, order)

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// applyFlags copies explicitly set flags over the loaded config
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("out-dir") {
		cfg.Output.Dir = flagOutDir
	}
	if flags.Changed("url") {
		cfg.Crawl.SeedURL = flagURL
	}
	if flags.Changed("max-pages") {
		cfg.Crawl.MaxPages = flagMaxPages
	}
}

// Run crawls every page, then writes the archive and workbook.
// Both outputs are rendered before anything is written, and the output directory is
// only created once the crawl has succeeded.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) (*OutputResult, error) {
	sc := scraper.New(
		scraper.WithURL(cfg.Crawl.SeedURL),
		scraper.WithUserAgent(cfg.Crawl.UserAgent),
		scraper.WithTimeout(cfg.Timeout()),
		scraper.WithMaxPages(cfg.Crawl.MaxPages),
		scraper.WithLogger(log),
	)

	log.Info("Starting crawl", logger.Fields{"url": cfg.Crawl.SeedURL})
	crawled, err := sc.Crawl(ctx)
	if err != nil {
		return nil, fmt.Errorf("crawling: %w", err)
	}

	bundle, err := storage.BuildBundle(crawled.Pages, crawled.Records)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(cfg.Output.Dir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	archivePath, workbookPath, err := store.Save(bundle)
	if err != nil {
		return nil, fmt.Errorf("saving outputs: %w", err)
	}
	log.Debug("Saved outputs", logger.Fields{
		"archive":  archivePath,
		"workbook": workbookPath,
		"pages":    len(crawled.Pages),
		"records":  len(crawled.Records),
	})

	snapshot, err := sc.Metrics().Snapshot()
	if err != nil {
		log.Warn("Metrics unavailable", logger.Fields{"error": err.Error()})
	}

	summaries := stats.Summarize(crawled.Records)
	return &OutputResult{
		CrawledAt:    time.Now().UTC(),
		SeedURL:      cfg.Crawl.SeedURL,
		PageCount:    len(crawled.Pages),
		RecordCount:  len(crawled.Records),
		YearCount:    len(summaries),
		ArchivePath:  archivePath,
		WorkbookPath: workbookPath,
		Summaries:    summaries,
		Metrics:      snapshot,
	}, nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, NewRootCmd())
	stop()
	os.Exit(code)
}

// execute runs cmd and maps its outcome to an exit code
func execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error("Run failed", nil, err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
