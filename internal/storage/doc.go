// Package storage writes crawl outputs to the local filesystem.
//
// Each run produces two files in the output directory: hockey_stats.zip, holding every raw
// page fetched, and hockey_stats.xlsx, holding the parsed records and per-year summary.
// Existing files are overwritten. The default location is the working directory.
package storage
