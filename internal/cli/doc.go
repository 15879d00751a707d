// Package cli implements the command-line interface for hockey-stats.
//
// The cli package provides the Cobra-based root command that loads configuration, crawls the
// statistics table, writes the page archive and workbook, and prints a run summary as text or
// JSON. It coordinates the config, scraper, and storage packages.
package cli
