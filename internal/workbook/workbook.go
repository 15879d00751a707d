// Package workbook exports crawled records to an Excel workbook.
//
// The workbook has two sheets: every record in crawl order, and one row per season naming
// the teams with the most and fewest wins. Cells hold literal values only.
package workbook

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
	"github.com/xuri/excelize/v2"
)

const (
	RawSheet     = "NHL Stats 1990-2011"
	SummarySheet = "Winner and Loser per Year"
)

var (
	RawHeader     = []string{"Year", "Team", "Wins", "Losses", "OT Losses", "Win %", "Goal For (GF)", "Goal Against (GA)", "+/-"}
	SummaryHeader = []string{"Year", "Winner", "Winner Num. of Wins", "Loser", "Loser Num. of Wins"}
)

// Write renders records and their per-year summary to w as an .xlsx workbook
func Write(w io.Writer, records []stats.Record) error {
	f := excelize.NewFile()
	defer f.Close() // nolint:errcheck

	// NewFile starts with a single default sheet, which becomes the raw data sheet
	if err := f.SetSheetName(f.GetSheetName(0), RawSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeRows(f, RawSheet, RawHeader, rawRows(records)); err != nil {
		return err
	}
	if err := writeRows(f, SummarySheet, SummaryHeader, summaryRows(stats.Summarize(records))); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Build returns the workbook for records as a byte slice
func Build(records []stats.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rawRows(records []stats.Record) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.Year, r.Team, r.Wins, r.Losses, r.OTLosses,
			r.WinPercentage, r.GoalsFor, r.GoalsAgainst, r.GoalDifferential,
		})
	}
	return rows
}

func summaryRows(summaries []stats.YearSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []interface{}{s.Year, s.Winner, s.WinnerWins, s.Loser, s.LoserWins})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing %s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
