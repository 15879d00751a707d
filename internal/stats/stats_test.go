package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord(1990, "Boston Bruins", 44, 24, "", 0.55, 299, 264, 35)

	assert.Equal(t, Record{
		Year:             1990,
		Team:             "Boston Bruins",
		Wins:             44,
		Losses:           24,
		OTLosses:         "",
		WinPercentage:    0.55,
		GoalsFor:         299,
		GoalsAgainst:     264,
		GoalDifferential: 35,
	}, r)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    []YearSummary
	}{
		{
			name:    "no records",
			records: nil,
			want:    []YearSummary{},
		},
		{
			name: "single record is both winner and loser",
			records: []Record{
				{Year: 1995, Team: "Team A", Wins: 10},
			},
			want: []YearSummary{
				{Year: 1995, Winner: "Team A", WinnerWins: 10, Loser: "Team A", LoserWins: 10},
			},
		},
		{
			name: "two years across pages",
			records: []Record{
				{Year: 1995, Team: "Team A", Wins: 10},
				{Year: 1995, Team: "Team B", Wins: 15},
				{Year: 1996, Team: "Team C", Wins: 5},
				{Year: 1996, Team: "Team D", Wins: 8},
			},
			want: []YearSummary{
				{Year: 1995, Winner: "Team B", WinnerWins: 15, Loser: "Team A", LoserWins: 10},
				{Year: 1996, Winner: "Team D", WinnerWins: 8, Loser: "Team C", LoserWins: 5},
			},
		},
		{
			name: "first seen order is kept",
			records: []Record{
				{Year: 2001, Team: "Late", Wins: 30},
				{Year: 1990, Team: "Early", Wins: 40},
				{Year: 2001, Team: "Later", Wins: 31},
			},
			want: []YearSummary{
				{Year: 2001, Winner: "Later", WinnerWins: 31, Loser: "Late", LoserWins: 30},
				{Year: 1990, Winner: "Early", WinnerWins: 40, Loser: "Early", LoserWins: 40},
			},
		},
		{
			name: "ties go to first record",
			records: []Record{
				{Year: 2000, Team: "First", Wins: 20},
				{Year: 2000, Team: "Second", Wins: 20},
				{Year: 2000, Team: "Third", Wins: 20},
			},
			want: []YearSummary{
				{Year: 2000, Winner: "First", WinnerWins: 20, Loser: "First", LoserWins: 20},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.records))
		})
	}
}

func TestSummarize_Bounds(t *testing.T) {
	records := []Record{
		{Year: 1991, Team: "A", Wins: 33},
		{Year: 1992, Team: "B", Wins: 12},
		{Year: 1991, Team: "C", Wins: 51},
		{Year: 1991, Team: "D", Wins: 7},
		{Year: 1992, Team: "E", Wins: 12},
		{Year: 1993, Team: "F", Wins: 0},
		{Year: 1991, Team: "G", Wins: 29},
	}

	years := make(map[int]struct{})
	for _, r := range records {
		years[r.Year] = struct{}{}
	}

	summaries := Summarize(records)
	require.Len(t, summaries, len(years))

	seen := make(map[int]bool)
	for _, s := range summaries {
		require.False(t, seen[s.Year], "year %d emitted twice", s.Year)
		seen[s.Year] = true

		for _, r := range records {
			if r.Year != s.Year {
				continue
			}
			assert.GreaterOrEqual(t, s.WinnerWins, r.Wins, "winner of %d", s.Year)
			assert.LessOrEqual(t, s.LoserWins, r.Wins, "loser of %d", s.Year)
		}
	}
}
