package prosegeek

import (
	porterstemmer "github.com/blevesearch/go-porterstemmer"
	snowballeng "github.com/kljensen/snowball/english"
	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════
// STEMMING
// ═══════════════════════════════════════════════════════════════════════════════
// Stemming strips suffixes so inflections of one word collapse into one stem:
//
//	"running", "runs"        → "run"
//	"connected", "connection" → "connect"
//	"ponies"                 → "poni"
//
// The stemmed vocabulary is the denominator of lexical diversity, so the
// choice of stemmer changes that figure. Two are available:
//
//   - porter:  the classic five-step Porter (1980) cascade. Default.
//   - porter2: the Snowball English revision, slightly less aggressive.
//
// Both are deterministic and stateless; stems are always lowercase.
// ═══════════════════════════════════════════════════════════════════════════════

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Stemmer names accepted by the "stemmer" setting.
const (
	StemmerPorter  = "porter"
	StemmerPorter2 = "porter2"
)

// PorterStemmer implements the classic Porter algorithm.
type PorterStemmer struct{}

// Stem lowercases word and runs the Porter cascade over it.
func (PorterStemmer) Stem(word string) string {
	return porterstemmer.StemString(word)
}

// Porter2Stemmer implements the Snowball English stemmer.
type Porter2Stemmer struct{}

// Stem lowercases word and runs the Snowball English rules. Stopwords are
// stemmed too; whether they reach this point is the filter's call.
func (Porter2Stemmer) Stem(word string) string {
	return snowballeng.Stem(word, true)
}

// NewStemmer resolves a stemmer by name.
func NewStemmer(name string) (Stemmer, error) {
	switch name {
	case "", StemmerPorter:
		return PorterStemmer{}, nil
	case StemmerPorter2:
		return Porter2Stemmer{}, nil
	default:
		return nil, configError("stemmer", errors.Errorf("unknown stemmer %q", name))
	}
}

// StemAll stems every word, keeping order.
func StemAll(s Stemmer, words []string) []string {
	r := make([]string, len(words))
	for i, w := range words {
		r[i] = s.Stem(w)
	}
	return r
}
