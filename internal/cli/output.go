package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult summarizes one crawl run
type OutputResult struct {
	CrawledAt    time.Time           `json:"crawled_at"`
	SeedURL      string              `json:"seed_url"`
	PageCount    int                 `json:"page_count"`
	RecordCount  int                 `json:"record_count"`
	YearCount    int                 `json:"year_count"`
	ArchivePath  string              `json:"archive_path"`
	WorkbookPath string              `json:"workbook_path"`
	Summaries    []stats.YearSummary `json:"summaries"`
	Metrics      map[string]float64  `json:"metrics,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result, verbose)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON. Metrics are only included when verbose.
func writeJSON(w io.Writer, result *OutputResult, verbose bool) error {
	out := *result
	if !verbose {
		out.Metrics = nil
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.PageCount == 0 {
		fmt.Fprintf(w, "No pages fetched from %s.\n", result.SeedURL)
	} else {
		fmt.Fprintf(w, "Crawled %d %s (%d records, %d seasons) from %s\n",
			result.PageCount, plural(result.PageCount, "page", "pages"),
			result.RecordCount, result.YearCount, result.SeedURL)
	}
	fmt.Fprintf(w, "Archive:  %s\n", result.ArchivePath)
	fmt.Fprintf(w, "Workbook: %s\n", result.WorkbookPath)

	if len(result.Summaries) > 0 {
		fmt.Fprintln(w, "\nWinner and loser per season:")
		for _, s := range result.Summaries {
			fmt.Fprintf(w, "  %d  %s (%d) / %s (%d)\n", s.Year, s.Winner, s.WinnerWins, s.Loser, s.LoserWins)
		}
	}

	if verbose && len(result.Metrics) > 0 {
		names := make([]string, 0, len(result.Metrics))
		for name := range result.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "\nMetrics:")
		for _, name := range names {
			fmt.Fprintf(w, "  %s = %g\n", name, result.Metrics[name])
		}
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
