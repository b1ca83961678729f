// Package wordcount aggregates word frequencies from line-oriented text.
package wordcount

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/vk/tagcloud/internal/ctxlog"
	"github.com/vk/tagcloud/internal/tokenizer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table maps a lowercased word to the number of times it occurred.
type Table map[string]int

// Add increments the count of word, inserting it with count 1 if absent.
func (t Table) Add(word string) {
	t[word]++
}

// Len returns the number of distinct words.
func (t Table) Len() int {
	return len(t)
}

// Fold returns s lowercased the way Count keys the table. Strings without
// any rune that changes under lowercasing are returned as is.
func Fold(s string) string {
	if !needsFolding(s) {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

func needsFolding(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) || unicode.ToLower(r) != r {
			return true
		}
	}
	return false
}

// Count reads r line by line and counts every word token, lowercased with
// Fold. Separator runs are discarded. Lines may be of any length.
func Count(ctx context.Context, r io.Reader, seps *tokenizer.Separators) (Table, error) {
	logger := ctxlog.FromContext(ctx)

	table := make(Table)
	reader := bufio.NewReader(r)

	lines, words := 0, 0
	for {
		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input after %d lines: %w", lines, err)
		}

		lines++
		for position := 0; position < len(line); {
			token := tokenizer.NextWordOrSeparator(line, position, seps)
			position += len(token)
			if !tokenizer.IsWord(token, seps) {
				continue
			}
			table.Add(Fold(token))
			words++
		}
	}

	logger.Debug("Input aggregated.", "lines", lines, "words", words, "distinct_words", table.Len())
	return table, nil
}

// readLine returns the next line without its "\n" or "\r\n" terminator. A
// final line without a terminator is returned with a nil error; io.EOF is
// returned only once no data is left.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
