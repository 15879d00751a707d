package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

const (
	DefaultURL = "https://www.scrapethissite.com/pages/forms/?page_num=1"
	UserAgent  = "hockey-stats/1.0 (github.com/pfrederiksen/hockey-stats)"
)

// Scraper fetches and parses the statistics table, one page at a time
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
	maxPages  int
	log       *logger.Logger
	metrics   *logger.Metrics
}

// Option configures a Scraper
type Option func(*Scraper)

// WithURL sets the first page to fetch
func WithURL(u string) Option {
	return func(s *Scraper) { s.url = u }
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(s *Scraper) { s.userAgent = ua }
}

// WithTimeout sets a per-request timeout. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) { s.client.Timeout = d }
}

// WithMaxPages stops the crawl after n pages. Zero means no limit.
func WithMaxPages(n int) Option {
	return func(s *Scraper) { s.maxPages = n }
}

// WithLogger sets the logger used for crawl progress
func WithLogger(l *logger.Logger) Option {
	return func(s *Scraper) { s.log = l }
}

// WithMetrics sets the metrics tracker
func WithMetrics(m *logger.Metrics) Option {
	return func(s *Scraper) { s.metrics = m }
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client:    &http.Client{},
		url:       DefaultURL,
		userAgent: UserAgent,
		log:       logger.Default(),
		metrics:   logger.NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Metrics returns the scraper's metrics tracker
func (s *Scraper) Metrics() *logger.Metrics {
	return s.metrics
}

// Result accumulates everything a crawl gathered.
// Pages[i] produced a contiguous run of Records, in row order.
type Result struct {
	Pages   []string
	Records []stats.Record
}

// FetchPage returns the body of pageURL, or "" if the request fails or the status is not 200
func (s *Scraper) FetchPage(ctx context.Context, pageURL string) string {
	start := time.Now()
	body, err := s.fetch(ctx, pageURL)
	s.metrics.ObserveFetch(time.Since(start), err == nil && body != "")

	if err != nil {
		s.log.Warn("Fetch failed", logger.Fields{
			"url":   pageURL,
			"error": err.Error(),
		})
		return ""
	}
	return body
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}

// Crawl follows the pagination chain from the seed URL until a page has no "Next" link,
// a fetch comes back empty, or the page limit is hit.
//
// Parse and pagination errors abort the crawl and discard everything gathered so far.
func (s *Scraper) Crawl(ctx context.Context) (*Result, error) {
	var acc Result
	current := s.url

	for {
		if s.maxPages > 0 && len(acc.Pages) >= s.maxPages {
			s.log.Info("Page limit reached", logger.Fields{"max_pages": s.maxPages})
			break
		}

		page := s.FetchPage(ctx, current)
		if page == "" {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("crawl cancelled: %w", err)
			}
			s.log.Info("Empty page, stopping crawl", logger.Fields{"url": current})
			break
		}

		var (
			next string
			more bool
			err  error
		)
		acc, next, more, err = s.step(acc, page, current)
		if err != nil {
			return nil, err
		}
		if !more {
			s.log.Info("No next page link, stopping crawl", logger.Fields{"url": current})
			break
		}
		current = next
	}

	s.log.Info("Crawl finished", logger.Fields{
		"pages":   len(acc.Pages),
		"records": len(acc.Records),
	})
	return &acc, nil
}

// step parses one fetched page into acc and resolves the next URL
func (s *Scraper) step(acc Result, page, pageURL string) (Result, string, bool, error) {
	n := len(acc.Pages) + 1

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return acc, "", false, fmt.Errorf("parsing page %d: %w", n, err)
	}

	records, err := parseRecords(doc)
	if err != nil {
		return acc, "", false, fmt.Errorf("parsing page %d (%s): %w", n, pageURL, err)
	}

	next, more, err := nextPageURL(doc, pageURL)
	if err != nil {
		return acc, "", false, fmt.Errorf("resolving next page from page %d: %w", n, err)
	}

	acc.Pages = append(acc.Pages, page)
	acc.Records = append(acc.Records, records...)
	s.metrics.AddRecords(len(records))

	s.log.Debug("Parsed page", logger.Fields{
		"page":    n,
		"url":     pageURL,
		"records": len(records),
	})
	return acc, next, more, nil
}
