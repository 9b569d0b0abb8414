package wordchart

import (
	"slices"
	"strings"
)

// WordCount is a single token and the number of times it occurs.
type WordCount struct {
	Word  string
	Count int
}

// FrequencyMap maps tokens to positive occurrence counts. It remembers the
// order in which tokens were first seen so that ranking ties resolve the
// same way on every run. A FrequencyMap is not modified after construction.
type FrequencyMap struct {
	counts map[string]int
	order  []string
}

// CountWords splits text on whitespace and counts each token.
// The text is expected to have been passed through Clean.
func CountWords(text string) *FrequencyMap {
	m := &FrequencyMap{counts: make(map[string]int)}
	for _, word := range strings.Fields(text) {
		m.add(word, 1)
	}
	return m
}

// NewFrequencyMap builds a map from explicit entries, in order.
// Repeated words are summed and entries with a non-positive count are skipped.
func NewFrequencyMap(entries ...WordCount) *FrequencyMap {
	m := &FrequencyMap{counts: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}
		m.add(e.Word, e.Count)
	}
	return m
}

func (m *FrequencyMap) add(word string, n int) {
	if _, ok := m.counts[word]; !ok {
		m.order = append(m.order, word)
	}
	m.counts[word] += n
}

// Count returns the number of occurrences of word, or zero.
func (m *FrequencyMap) Count(word string) int {
	if m == nil {
		return 0
	}
	return m.counts[word]
}

// Contains reports whether word has an entry.
func (m *FrequencyMap) Contains(word string) bool {
	if m == nil {
		return false
	}
	_, ok := m.counts[word]
	return ok
}

// Len returns the number of distinct words.
func (m *FrequencyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Total returns the sum of all counts.
func (m *FrequencyMap) Total() int {
	if m == nil {
		return 0
	}
	var total int
	for _, n := range m.counts {
		total += n
	}
	return total
}

// Words returns the distinct words in first-occurrence order.
func (m *FrequencyMap) Words() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.order)
}

// Entries returns every entry in first-occurrence order.
func (m *FrequencyMap) Entries() []WordCount {
	if m == nil {
		return nil
	}
	entries := make([]WordCount, 0, len(m.order))
	for _, word := range m.order {
		entries = append(entries, WordCount{Word: word, Count: m.counts[word]})
	}
	return entries
}

// Top returns up to n entries with the highest counts, highest first.
// Words with equal counts keep their first-occurrence order.
func (m *FrequencyMap) Top(n int) []WordCount {
	if n <= 0 || m.Len() == 0 {
		return nil
	}
	entries := m.Entries()
	slices.SortStableFunc(entries, func(a, b WordCount) int {
		return b.Count - a.Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// filter returns a new map holding only the entries for which keep is true.
func (m *FrequencyMap) filter(keep func(word string) bool) *FrequencyMap {
	out := &FrequencyMap{counts: make(map[string]int)}
	if m == nil {
		return out
	}
	for _, word := range m.order {
		if keep(word) {
			out.add(word, m.counts[word])
		}
	}
	return out
}
