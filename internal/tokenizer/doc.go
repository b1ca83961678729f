// Package tokenizer splits text into alternating runs of word and separator
// characters. A word is a maximal run of runes outside the separator set; a
// separator string is a maximal run of runes inside it.
package tokenizer
