package stats

// Record represents one team's season statistics as read from a table row
type Record struct {
	Year             int     `json:"year"`
	Team             string  `json:"team"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	OTLosses         string  `json:"ot_losses"` // Often blank for seasons before overtime losses were tracked
	WinPercentage    float64 `json:"win_percentage"`
	GoalsFor         int     `json:"goals_for"`
	GoalsAgainst     int     `json:"goals_against"`
	GoalDifferential int     `json:"goal_differential"`
}

// NewRecord creates a Record from the nine table columns in display order
func NewRecord(year int, team string, wins, losses int, otLosses string, winPct float64, goalsFor, goalsAgainst, diff int) Record {
	return Record{
		Year:             year,
		Team:             team,
		Wins:             wins,
		Losses:           losses,
		OTLosses:         otLosses,
		WinPercentage:    winPct,
		GoalsFor:         goalsFor,
		GoalsAgainst:     goalsAgainst,
		GoalDifferential: diff,
	}
}

// YearSummary names the teams with the most and fewest wins in a single season
type YearSummary struct {
	Year       int    `json:"year"`
	Winner     string `json:"winner"`
	WinnerWins int    `json:"winner_wins"`
	Loser      string `json:"loser"`
	LoserWins  int    `json:"loser_wins"`
}

// Summarize groups records by year and picks the winner and loser of each group.
//
// Years are returned in the order they first appear in records, not sorted by value.
// Ties go to the record seen first.
func Summarize(records []Record) []YearSummary {
	index := make(map[int]int)
	summaries := make([]YearSummary, 0)

	for _, r := range records {
		i, seen := index[r.Year]
		if !seen {
			index[r.Year] = len(summaries)
			summaries = append(summaries, YearSummary{
				Year:       r.Year,
				Winner:     r.Team,
				WinnerWins: r.Wins,
				Loser:      r.Team,
				LoserWins:  r.Wins,
			})
			continue
		}

		s := &summaries[i]
		if r.Wins > s.WinnerWins {
			s.Winner = r.Team
			s.WinnerWins = r.Wins
		}
		if r.Wins < s.LoserWins {
			s.Loser = r.Team
			s.LoserWins = r.Wins
		}
	}

	return summaries
}
