package ranking

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/tagcloud/internal/wordcount"
)

var (
	// ErrInvalidWordCount is returned when the requested number of words is not positive.
	ErrInvalidWordCount = errors.New("number of words must be positive")
	// ErrNotEnoughWords is returned when the table has fewer distinct words than requested.
	ErrNotEnoughWords = errors.New("not enough words in input file")
)

// Selection is the set of words chosen for display.
type Selection struct {
	// Entries are ordered alphabetically.
	Entries []Entry
	// MaxCount is the highest count in the selection.
	MaxCount int
	// MinCount is the count of the last word admitted by the count ranking.
	MinCount int
}

// Len returns the number of selected words.
func (s *Selection) Len() int {
	return len(s.Entries)
}

// rankOrder ranks by count and breaks ties alphabetically, which decides
// which words survive when counts tie at the n-th position.
var rankOrder = Then(ByCountDesc, Alphabetical)

// Select picks the n most frequent words from table and returns them in
// alphabetical order.
func Select(table wordcount.Table, n int) (*Selection, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordCount, n)
	}
	if table.Len() < n {
		return nil, fmt.Errorf("%w: requested %d, found %d distinct", ErrNotEnoughWords, n, table.Len())
	}

	ranked := make([]Entry, 0, table.Len())
	for word, count := range table {
		ranked = append(ranked, Entry{Word: word, Count: count})
	}
	Sort(ranked, rankOrder)

	selected := slices.Clone(ranked[:n])
	sel := &Selection{
		Entries:  selected,
		MaxCount: selected[0].Count,
		MinCount: selected[n-1].Count,
	}
	Sort(sel.Entries, Alphabetical)
	return sel, nil
}
