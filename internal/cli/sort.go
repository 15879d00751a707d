package cli

import (
	"sort"

	"github.com/pfrederiksen/hockey-stats/internal/stats"
)

// SortOrder represents the available orderings of the printed season summary
type SortOrder string

const (
	SortByCrawl SortOrder = "crawl"
	SortByYear  SortOrder = "year"
)

// sortSummaries orders summaries in place. SortByCrawl keeps first-seen order,
// which is also the order used in the workbook.
func sortSummaries(summaries []stats.YearSummary, order SortOrder) {
	if order == SortByYear {
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Year < summaries[j].Year
		})
	}
}
