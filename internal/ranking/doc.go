// Package ranking selects the most frequent words from a word-count table and
// orders them for display.
//
// Orderings are plain comparison functions (Order) so callers can swap or
// compose them; Sort applies any of them. Select implements the two-phase
// selection used by the tag cloud: rank by count, keep the top N, then order
// the survivors alphabetically.
package ranking
