// Package wordcount tallies words in normalized text.
//
// Two modes are supported: counting every whitespace-delimited token, or
// counting the non-overlapping occurrences of a single query. Both expect
// content that already went through textnorm.Normalize.
package wordcount

import (
	"errors"
	"sort"
	"strings"

	"wordtally/internal/input"
	"wordtally/internal/textnorm"
)

// ErrEmptyQuery is returned for a zero-length query.
var ErrEmptyQuery = errors.New("query is empty")

// WordCounts maps a normalized word to the number of times it was seen.
type WordCounts map[string]int

// Entry is one word and its count.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Count tallies every token of the normalized content.
func Count(content string) (WordCounts, error) {
	if content == "" {
		return nil, input.ErrEmptyInput
	}

	counts := make(WordCounts)
	for _, word := range textnorm.Tokens(content) {
		counts[word]++
	}
	return counts, nil
}

// CountQuery counts the non-overlapping occurrences of query in the
// normalized content. The query is matched literally and used unchanged as
// the key: an upper case or punctuated query never matches.
func CountQuery(content, query string) (WordCounts, error) {
	if content == "" {
		return nil, input.ErrEmptyInput
	}
	if query == "" {
		return nil, ErrEmptyQuery
	}

	return WordCounts{query: strings.Count(content, query)}, nil
}

// Total returns the sum of all counts.
func (wc WordCounts) Total() int {
	total := 0
	for _, n := range wc {
		total += n
	}
	return total
}

// ByCount returns the entries ordered by descending count, ties broken by
// ascending word.
func (wc WordCounts) ByCount() []Entry {
	entries := wc.entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// ByWord returns the entries ordered by ascending word.
func (wc WordCounts) ByWord() []Entry {
	entries := wc.entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

func (wc WordCounts) entries() []Entry {
	entries := make([]Entry, 0, len(wc))
	for word, n := range wc {
		entries = append(entries, Entry{Word: word, Count: n})
	}
	return entries
}

// Top returns at most n entries. n <= 0 keeps everything.
func Top(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
