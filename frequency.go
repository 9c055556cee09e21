package prosegeek

import (
	"slices"
)

// ═══════════════════════════════════════════════════════════════════════════════
// FREQUENCY DISTRIBUTIONS
// ═══════════════════════════════════════════════════════════════════════════════
// A FrequencyTable counts occurrences and remembers the order in which keys
// were first seen. That order is the tie-break for ranking:
//
//	Input: ["cat", "sat", "mat", "cat", "mat"]
//	Table: cat=2, sat=1, mat=2   (first seen: cat, sat, mat)
//	Top 2: [cat 2, mat 2]        (cat was seen before mat)
//
// Ranking uses a stable sort on count alone, so equal counts keep their
// first-seen order without a secondary key.
// ═══════════════════════════════════════════════════════════════════════════════

// Entry is one ranked row of a FrequencyTable.
type Entry[K comparable] struct {
	Key   K
	Count int
}

// FrequencyTable maps keys to counts in first-seen order.
type FrequencyTable[K comparable] struct {
	counts map[K]int
	order  []K
	total  int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable[K comparable]() *FrequencyTable[K] {
	return &FrequencyTable[K]{counts: make(map[K]int)}
}

// Frequencies counts every token.
func Frequencies(tokens []string) *FrequencyTable[string] {
	t := NewFrequencyTable[string]()
	for _, tok := range tokens {
		t.Add(tok)
	}
	return t
}

// Add records one occurrence of key.
func (t *FrequencyTable[K]) Add(key K) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
	t.total++
}

// Count returns the occurrences of key, 0 when unseen.
func (t *FrequencyTable[K]) Count(key K) int {
	return t.counts[key]
}

// Len is the number of distinct keys.
func (t *FrequencyTable[K]) Len() int {
	return len(t.order)
}

// Total is the number of recorded occurrences.
func (t *FrequencyTable[K]) Total() int {
	return t.total
}

// Filter returns a new table holding only the keys with at least minCount
// occurrences. First-seen order is preserved.
func (t *FrequencyTable[K]) Filter(minCount int) *FrequencyTable[K] {
	r := NewFrequencyTable[K]()
	for _, k := range t.order {
		if c := t.counts[k]; c >= minCount {
			r.order = append(r.order, k)
			r.counts[k] = c
			r.total += c
		}
	}
	return r
}

// MostCommon ranks every key by count, descending, ties in first-seen order.
func (t *FrequencyTable[K]) MostCommon() []Entry[K] {
	entries := make([]Entry[K], len(t.order))
	for i, k := range t.order {
		entries[i] = Entry[K]{Key: k, Count: t.counts[k]}
	}
	slices.SortStableFunc(entries, func(a, b Entry[K]) int {
		return b.Count - a.Count
	})
	return entries
}

// TopN returns at most n of the most common entries. n <= 0 yields an empty,
// non-nil slice.
func TopN[K comparable](t *FrequencyTable[K], n int) []Entry[K] {
	if n <= 0 {
		return []Entry[K]{}
	}
	ranked := t.MostCommon()
	return ranked[:min(n, len(ranked))]
}
