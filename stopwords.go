package prosegeek

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════
// STOPWORDS
// ═══════════════════════════════════════════════════════════════════════════════
// Words like "the", "and", "of" dominate any frequency table while saying
// nothing about the prose itself. They are removed before the vocabulary,
// stemming and word-frequency stages, and n-grams made only of them are
// skipped by the collocation stage.
//
// A list is plain UTF-8 text, one word per line, no comments:
//
//	a
//	about
//	above
//
// Membership is case-insensitive: the set stores lowercase words and every
// lookup lowercases its argument.
// ═══════════════════════════════════════════════════════════════════════════════

//go:embed default_stopwords.txt
var defaultStopwordList string

// StopwordSet is a read-only set of lowercase words.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from words, lowercasing each one.
func NewStopwordSet(words ...string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// DefaultStopwords returns the bundled English list.
func DefaultStopwords() StopwordSet {
	s, _ := ParseStopwords(strings.NewReader(defaultStopwordList))
	return s
}

// ParseStopwords reads a newline-delimited list. Surrounding whitespace is
// trimmed and blank lines are ignored.
func ParseStopwords(r io.Reader) (StopwordSet, error) {
	s := make(StopwordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		s[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read stopword list")
	}
	return s, nil
}

// LoadStopwords reads the list at path in one go. An empty path selects the
// bundled list. A missing or unreadable file is a ConfigurationError.
func LoadStopwords(path string) (StopwordSet, error) {
	if path == "" {
		return DefaultStopwords(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, configError("stopwords_filepath", errors.Wrapf(err, "open %s", path))
	}
	defer f.Close()

	s, err := ParseStopwords(f)
	if err != nil {
		return nil, configError("stopwords_filepath", errors.Wrapf(err, "parse %s", path))
	}
	return s, nil
}

// Len returns the number of distinct stopwords.
func (s StopwordSet) Len() int {
	return len(s)
}

// Contains reports whether word is a stopword, ignoring case.
// A nil set contains nothing.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// ContainsAll reports whether every word is a stopword. It is false for an
// empty slice so that an empty n-gram is never treated as noise.
func (s StopwordSet) ContainsAll(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !s.Contains(w) {
			return false
		}
	}
	return true
}

// Filter drops stopwords and keeps the order and casing of the rest.
//
//	["The", "Cat", "sat", "ON", "the", "mat"] → ["Cat", "sat", "mat"]
func (s StopwordSet) Filter(words []string) []string {
	r := make([]string, 0, len(words))
	for _, w := range words {
		if !s.Contains(w) {
			r = append(r, w)
		}
	}
	return r
}
