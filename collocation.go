package prosegeek

import (
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// COLLOCATIONS: Recurring Word Sequences
// ═══════════════════════════════════════════════════════════════════════════════
// A collocation is a run of adjacent words that keeps coming back: "of the",
// "in order to", "at the end". Bigrams are runs of two, trigrams runs of three.
//
// ALGORITHM:
// ----------
//  1. Slide a window of size n over the lowercase words (stride 1)
//     "the cat sat" → (the cat), (cat sat)
//  2. Count every window
//  3. Drop windows seen fewer than minFreq times
//  4. Rank the rest by count, descending, ties in first-seen order
//  5. Walk the ranking and accept windows until topN are accepted,
//     skipping windows made only of stopwords
//
// Skipped windows do not use up a slot, so the walk may look past topN
// candidates. Fewer than topN results come back only when the pool left after
// steps 3 and 5 is smaller than topN.
//
// EXAMPLE (minFreq 2, topN 2, stopwords {of, the}):
// -------------------------------------------------
//
//	ranked:   (of the) 5, (the cat) 3, (cat sat) 2
//	walk:     (of the)  all stopwords → skip
//	          (the cat) accept
//	          (cat sat) accept, cap reached
//	result:   [(the cat) 3, (cat sat) 2]
//
// Windows cross sentence boundaries: the word stream is read as one sequence.
// ═══════════════════════════════════════════════════════════════════════════════

// ngramSeparator joins n-gram members into a map key. It cannot occur inside
// a word token.
const ngramSeparator = "\x00"

// Collocation is one accepted n-gram.
type Collocation struct {
	Words []string `json:"words"`
	Count int      `json:"count"`

	// Sentences is the number of sentences in which the n-gram starts.
	// Filled by the Analyzer from the concordance; zero otherwise.
	Sentences int `json:"sentences"`
}

// String joins the members with single spaces.
func (c Collocation) String() string {
	return strings.Join(c.Words, " ")
}

// Bigrams ranks two-word collocations.
func Bigrams(words []string, minFreq, topN int, stop StopwordSet) []Collocation {
	return Collocations(words, 2, minFreq, topN, stop)
}

// Trigrams ranks three-word collocations.
func Trigrams(words []string, minFreq, topN int, stop StopwordSet) []Collocation {
	return Collocations(words, 3, minFreq, topN, stop)
}

// NGramFrequencies counts every window of size n over words.
func NGramFrequencies(words []string, n int) *FrequencyTable[string] {
	t := NewFrequencyTable[string]()
	for i := 0; i+n <= len(words); i++ {
		t.Add(strings.Join(words[i:i+n], ngramSeparator))
	}
	return t
}

// Collocations ranks windows of size n. words should already be lowercase;
// stopword membership is case-insensitive either way.
func Collocations(words []string, n, minFreq, topN int, stop StopwordSet) []Collocation {
	r := []Collocation{}
	if n <= 0 || topN <= 0 {
		return r
	}

	ranked := NGramFrequencies(words, n).Filter(minFreq).MostCommon()
	for _, e := range ranked {
		if len(r) >= topN {
			break
		}
		members := strings.Split(e.Key, ngramSeparator)
		if stop.ContainsAll(members) {
			continue
		}
		r = append(r, Collocation{Words: members, Count: e.Count})
	}
	return r
}
