package scraper

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

const (
	rowSelector  = "tr.team"
	nextSelector = `a[aria-label="Next"]`

	classSuccess = "text-success"
	classDanger  = "text-danger"
)

var (
	// ErrMissingField is returned when a row lacks one of the expected cells
	ErrMissingField = errors.New("cell not found")
	// ErrAmbiguousMarker is returned when a signed cell carries both sign classes, or repeats
	ErrAmbiguousMarker = errors.New("expected exactly one text-success or text-danger cell")
)

// ParseError describes a row that could not be turned into a record
type ParseError struct {
	Row   int // 1-based position among the page's team rows
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: field %q: %v", e.Row, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRecords extracts one record per team row, in document order.
// Any malformed row fails the whole page.
func ParseRecords(html string) ([]stats.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return parseRecords(doc)
}

func parseRecords(doc *goquery.Document) ([]stats.Record, error) {
	records := make([]stats.Record, 0)
	var parseErr error

	doc.Find(rowSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		r := &rowReader{sel: sel, row: i + 1}
		record := stats.NewRecord(
			r.integer("year"),
			r.text("name"),
			r.integer("wins"),
			r.integer("losses"),
			r.text("ot-losses"),
			r.float(r.marker("pct")),
			r.integer("gf"),
			r.integer("ga"),
			r.markedInteger("diff"),
		)
		if r.err != nil {
			parseErr = r.err
			return false
		}
		records = append(records, record)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return records, nil
}

// rowReader reads cells from one row, keeping the first error it hits
type rowReader struct {
	sel *goquery.Selection
	row int
	err error
}

func (r *rowReader) fail(field string, err error) {
	if r.err == nil {
		r.err = &ParseError{Row: r.row, Field: field, Err: err}
	}
}

func (r *rowReader) text(class string) string {
	if r.err != nil {
		return ""
	}
	cell := r.sel.Find("." + class).First()
	if cell.Length() == 0 {
		r.fail(class, ErrMissingField)
		return ""
	}
	return strings.TrimSpace(cell.Text())
}

func (r *rowReader) integer(class string) int {
	return r.atoi(class, r.text(class))
}

func (r *rowReader) atoi(field, s string) int {
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.fail(field, err)
	}
	return n
}

// marker returns the text of the cell with the given class that is also marked
// text-success or text-danger. The two are mutually exclusive.
func (r *rowReader) marker(class string) markedCell {
	if r.err != nil {
		return markedCell{field: class}
	}
	success := r.sel.Find("." + class + "." + classSuccess)
	danger := r.sel.Find("." + class + "." + classDanger)

	switch n := success.Length() + danger.Length(); {
	case n == 0:
		r.fail(class, ErrMissingField)
		return markedCell{field: class}
	case n > 1:
		r.fail(class, ErrAmbiguousMarker)
		return markedCell{field: class}
	case success.Length() == 1:
		return markedCell{field: class, text: strings.TrimSpace(success.Text())}
	default:
		return markedCell{field: class, text: strings.TrimSpace(danger.Text())}
	}
}

func (r *rowReader) markedInteger(class string) int {
	cell := r.marker(class)
	return r.atoi(cell.field, cell.text)
}

func (r *rowReader) float(cell markedCell) float64 {
	if r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(cell.text, 64)
	if err != nil {
		r.fail(cell.field, err)
	}
	return f
}

type markedCell struct {
	field string
	text  string
}

// NextPageURL finds the "Next" pagination link and resolves it against current.
// ok is false when the page has no such link.
func NextPageURL(html, current string) (next string, ok bool, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false, fmt.Errorf("parsing HTML: %w", err)
	}
	return nextPageURL(doc, current)
}

func nextPageURL(doc *goquery.Document, current string) (string, bool, error) {
	link := doc.Find(nextSelector).First()
	if link.Length() == 0 {
		return "", false, nil
	}

	href, exists := link.Attr("href")
	if !exists {
		return "", false, errors.New("next link has no href")
	}

	base, err := url.Parse(current)
	if err != nil {
		return "", false, fmt.Errorf("parsing page URL: %w", err)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false, fmt.Errorf("parsing next link: %w", err)
	}

	return base.ResolveReference(ref).String(), true, nil
}
