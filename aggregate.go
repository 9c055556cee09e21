package prosegeek

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════
// AGGREGATE STATISTICS
// ═══════════════════════════════════════════════════════════════════════════════
// Every scalar in the report is derived here from the token views:
//
//	CountChars              runes in the RAW text (markup included)
//	CountWords              word-only tokens, stopwords included
//	CountSentences          sentences
//	AverageCharsPerWord     CountChars / CountWords
//	AverageWordsPerSentence CountWords / CountSentences
//	CountUniqueWords        distinct lowercase filtered words
//	CountStemmedVocab       distinct stems of filtered words
//	LexicalDiversity        CountWords / CountStemmedVocab
//
// LexicalDiversity divides ALL words by the FILTERED stemmed vocabulary. The
// numerator keeps stopwords and the denominator does not, so the figure reads
// as "average uses per content stem" and runs high on stopword-heavy prose.
//
// OUTLIERS:
// ---------
// Longest/shortest sentence and longest word are picked by a stable sort on
// rune length; among equal lengths the earliest in the text wins, for both
// the descending and the ascending order. Line breaks inside the chosen
// sentence are replaced by single spaces.
// ═══════════════════════════════════════════════════════════════════════════════

// Document pairs the input with its cleaned form. RawText is never modified.
type Document struct {
	RawText   string
	CleanText string
}

// NewDocument strips raw according to cfg.
func NewDocument(raw string, cfg AnalysisConfig) *Document {
	return &Document{RawText: raw, CleanText: Strip(raw, cfg)}
}

// Vocabulary is a set of distinct words or stems.
type Vocabulary map[string]struct{}

// NewVocabulary collects the distinct entries of words.
func NewVocabulary(words []string) Vocabulary {
	v := make(Vocabulary, len(words))
	for _, w := range words {
		v[w] = struct{}{}
	}
	return v
}

// Len is the number of distinct entries.
func (v Vocabulary) Len() int {
	return len(v)
}

// Has reports membership.
func (v Vocabulary) Has(word string) bool {
	_, ok := v[word]
	return ok
}

// Sorted returns the entries in lexical order.
func (v Vocabulary) Sorted() []string {
	r := make([]string, 0, len(v))
	for w := range v {
		r = append(r, w)
	}
	slices.Sort(r)
	return r
}

// WordCount is one row of the top-words table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`

	// Sentences is the number of sentences containing the word.
	Sentences int `json:"sentences"`
}

// Result is the outcome of one analysis run. It is built once and not
// modified afterwards.
type Result struct {
	CountChars              int     `json:"count_chars"`
	CountWords              int     `json:"count_words"`
	CountTokens             int     `json:"count_tokens"`
	CountSentences          int     `json:"count_sentences"`
	AverageCharsPerWord     float64 `json:"average_chars_per_word"`
	AverageWordsPerSentence float64 `json:"average_words_per_sentence"`
	CountUniqueWords        int     `json:"count_unique_words"`
	CountStemmedVocab       int     `json:"count_stemmed_vocab"`
	LexicalDiversity        float64 `json:"lexical_diversity"`

	LongestSentence  string `json:"longest_sentence"`
	ShortestSentence string `json:"shortest_sentence"`
	LongestWord      string `json:"longest_word"`

	TopWords []WordCount   `json:"top_words"`
	Bigrams  []Collocation `json:"bigrams"`
	Trigrams []Collocation `json:"trigrams"`

	// Readability is nil when no pronunciation dictionary is configured or
	// the dictionary knows none of the words.
	Readability *Readability `json:"readability,omitempty"`
}

// Aggregate computes the scalar statistics and outliers. Tables are left for
// the caller to attach.
//
// It returns ErrEmptyDocument when there are no words, no sentences, or no
// stems (every word was a stopword), since each is a divisor below.
func Aggregate(doc *Document, ts *TokenSet, vocab, stemmed Vocabulary) (*Result, error) {
	countWords := len(ts.Words)
	countSentences := len(ts.Sentences)

	switch {
	case countWords == 0:
		return nil, errors.Wrap(ErrEmptyDocument, "no words")
	case countSentences == 0:
		return nil, errors.Wrap(ErrEmptyDocument, "no sentences")
	case stemmed.Len() == 0:
		return nil, errors.Wrap(ErrEmptyDocument, "no words left after stopword filtering")
	}

	r := &Result{
		CountChars:        utf8.RuneCountInString(doc.RawText),
		CountWords:        countWords,
		CountTokens:       len(ts.AllTokens),
		CountSentences:    countSentences,
		CountUniqueWords:  vocab.Len(),
		CountStemmedVocab: stemmed.Len(),
	}
	r.AverageCharsPerWord = float64(r.CountChars) / float64(countWords)
	r.AverageWordsPerSentence = float64(countWords) / float64(countSentences)
	r.LexicalDiversity = float64(countWords) / float64(r.CountStemmedVocab)

	r.LongestSentence = joinLines(longest(ts.Sentences))
	r.ShortestSentence = joinLines(shortest(ts.Sentences))
	r.LongestWord = longest(ts.Words)
	return r, nil
}

// longest returns the first of the longest strings. items must be non-empty.
func longest(items []string) string {
	return byLength(items, true)[0]
}

// shortest returns the first of the shortest strings. items must be non-empty.
func shortest(items []string) string {
	return byLength(items, false)[0]
}

// byLength stable-sorts a copy of items by rune length.
func byLength(items []string, descending bool) []string {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b string) int {
		la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
		if descending {
			return lb - la
		}
		return la - lb
	})
	return sorted
}

// joinLines replaces each run of line breaks with a single space.
//
//	"The cat\nsat." → "The cat sat."
func joinLines(s string) string {
	return strings.Join(strings.FieldsFunc(s, isLineBreak), " ")
}
