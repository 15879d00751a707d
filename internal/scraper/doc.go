// Package scraper provides HTTP fetching and HTML parsing for the hockey team statistics table.
//
// The scraper package walks the paginated statistics table one page at a time, extracting a
// record from every team row and following the "Next" pagination link until it runs out of
// pages or a fetch comes back empty. Win percentage and goal differential cells carry their
// sign in a text-success or text-danger class; exactly one of the two must be present.
package scraper
