// Package stats provides types and functions for hockey team season statistics.
//
// The stats package holds the Record parsed from each row of the statistics table and
// derives per-year summaries naming the team with the most and the fewest wins. Summaries
// are computed on demand from the full record sequence and never stored.
package stats
