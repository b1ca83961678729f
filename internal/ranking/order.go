package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/vk/tagcloud/internal/wordcount"
)

// Entry is a word together with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Order compares two entries, returning a negative number when a sorts before
// b, a positive number when it sorts after, and zero when they are equivalent.
type Order func(a, b Entry) int

// ByCountDesc orders entries from the highest count to the lowest.
func ByCountDesc(a, b Entry) int {
	return cmp.Compare(b.Count, a.Count)
}

// Alphabetical orders entries by word ignoring case, then by the exact word
// so that a capitalized variant sorts before its lowercase form. Case is
// folded with wordcount.Fold, the folding used to key the word-count table.
func Alphabetical(a, b Entry) int {
	if c := strings.Compare(wordcount.Fold(a.Word), wordcount.Fold(b.Word)); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
}

// Then returns an Order that applies each order in turn until one of them
// distinguishes the entries.
func Then(orders ...Order) Order {
	return func(a, b Entry) int {
		for _, order := range orders {
			if c := order(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Sort sorts entries in place using order. Equivalent entries keep their
// relative positions.
func Sort(entries []Entry, order Order) {
	slices.SortStableFunc(entries, order)
}
