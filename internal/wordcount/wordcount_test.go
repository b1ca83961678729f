package wordcount

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/tagcloud/internal/tokenizer"
)

func TestCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Table
	}{
		{
			name:     "empty input",
			input:    "",
			expected: Table{},
		},
		{
			name:     "sentence with repeated words",
			input:    "The cat sat. The dog sat.",
			expected: Table{"the": 2, "cat": 1, "sat": 2, "dog": 1},
		},
		{
			name:     "case merged across lines",
			input:    "Hello hello\nHELLO, world!\r\n",
			expected: Table{"hello": 3, "world": 1},
		},
		{
			name:     "punctuation splits words",
			input:    "state-of-the-art can't (stop)",
			expected: Table{"state": 1, "of": 1, "the": 1, "art": 1, "can": 1, "t": 1, "stop": 1},
		},
		{
			name:     "unicode words lowercased",
			input:    "Naïve CAFÉ naïve",
			expected: Table{"naïve": 2, "café": 1},
		},
		{
			name:     "only separators",
			input:    " ... \t -- \n\n",
			expected: Table{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			table, err := Count(context.Background(), strings.NewReader(tc.input), tokenizer.Default())

			// --- Assert ---
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, table); diff != "" {
				t.Errorf("word counts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCount_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("disk on fire")

	table, err := Count(context.Background(), iotest.ErrReader(readErr), tokenizer.Default())

	require.Error(t, err)
	require.ErrorIs(t, err, readErr)
	require.Nil(t, table)
}

func TestCount_MatchesOccurrences(t *testing.T) {
	t.Parallel()

	// Every word appears exactly as many times as its index says, in mixed case.
	words := []string{"alpha", "Beta", "gamma", "DELTA"}
	var b strings.Builder
	for i, w := range words {
		for j := 0; j <= i; j++ {
			if j%2 == 0 {
				b.WriteString(strings.ToUpper(w))
			} else {
				b.WriteString(strings.ToLower(w))
			}
			b.WriteString("; ")
		}
		b.WriteString("\n")
	}

	table, err := Count(context.Background(), strings.NewReader(b.String()), tokenizer.Default())
	require.NoError(t, err)

	for i, w := range words {
		require.Equal(t, i+1, table[strings.ToLower(w)], "count for %q", w)
	}
	require.Equal(t, len(words), table.Len())
}

func TestCount_LongLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		length int
	}{
		{name: "longer than the default scanner buffer", length: bufio.MaxScanTokenSize + 1},
		{name: "longer than 16 MiB", length: 17 << 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			long := strings.Repeat("a", tc.length)
			input := "start " + long + " end\r\n" + long + "\nend"

			// --- Act ---
			table, err := Count(context.Background(), strings.NewReader(input), tokenizer.Default())

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, 3, table.Len())
			require.Equal(t, 2, table[long])
			require.Equal(t, 1, table["start"])
			require.Equal(t, 2, table["end"])
		})
	}
}

func TestCount_LineTerminators(t *testing.T) {
	t.Parallel()

	seps := tokenizer.NewSeparators(" ")

	// With only a space as separator, a leftover "\r" would become part of a word.
	table, err := Count(context.Background(), strings.NewReader("one\r\ntwo\nthree\r\n\r\nfour"), seps)

	require.NoError(t, err)
	if diff := cmp.Diff(Table{"one": 1, "two": 1, "three": 1, "four": 1}, table); diff != "" {
		t.Errorf("word counts mismatch (-want +got):\n%s", diff)
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "already", expected: "already"},
		{input: "MiXeD", expected: "mixed"},
		{input: "CAFÉ", expected: "café"},
		{input: "Ⅻ", expected: "ⅻ"},
		{input: "", expected: ""},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, Fold(tc.input), "Fold(%q)", tc.input)
	}

	// Count keys the table with the same folding.
	table, err := Count(context.Background(), strings.NewReader("CAFÉ MiXeD Ⅻ"), tokenizer.Default())
	require.NoError(t, err)
	for _, tc := range testCases[1:4] {
		require.Equal(t, 1, table[Fold(tc.input)], "table key for %q", tc.input)
	}
}

func TestFold_NoAllocationForLowercase(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Fold("lowercase")
	})
	require.Zero(t, allocs)
}
