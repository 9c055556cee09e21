package prosegeek

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════
// PRONUNCIATIONS & SYLLABLES
// ═══════════════════════════════════════════════════════════════════════════════
// Syllable counts come from a pronouncing dictionary in CMU format:
//
//	;;; comment
//	HELLO  HH AH0 L OW1
//	READ  R EH1 D
//	READ(1)  R IY1 D
//
// Vowel phonemes carry a stress digit, so the syllable count of a word is the
// number of phonemes ending in a digit in its first pronunciation
// ("HH AH0 L OW1" → 2). Later variants such as READ(1) are kept but unused.
//
// A word missing from the dictionary has no data: Syllables reports 0 and
// false, never an error, so callers need no per-word error handling.
//
// The full CMU dictionary has about 130k entries. It is loaded once, on first
// use, through a PronunciationSource and read-only afterwards; tests hand the
// Analyzer a source built from a few lines instead.
// ═══════════════════════════════════════════════════════════════════════════════

// Pronunciations maps lowercase words to their phoneme sequences.
type Pronunciations struct {
	entries map[string][][]string
}

// ParsePronunciations reads a CMU-format dictionary.
func ParsePronunciations(r io.Reader) (*Pronunciations, error) {
	p := &Pronunciations{entries: make(map[string][][]string)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		word := strings.ToLower(stripVariant(fields[0]))
		p.entries[word] = append(p.entries[word], fields[1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read pronunciation dictionary")
	}
	return p, nil
}

// stripVariant turns "READ(1)" into "READ".
func stripVariant(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}

// Len is the number of distinct words.
func (p *Pronunciations) Len() int {
	return len(p.entries)
}

// Syllables counts the syllables of word's first pronunciation. ok is false
// when the word is unknown.
func (p *Pronunciations) Syllables(word string) (count int, ok bool) {
	variants, ok := p.entries[strings.ToLower(word)]
	if !ok || len(variants) == 0 {
		return 0, false
	}
	for _, phoneme := range variants[0] {
		if r := []rune(phoneme); len(r) > 0 && unicode.IsDigit(r[len(r)-1]) {
			count++
		}
	}
	return count, true
}

// PronunciationSource is a lazily loaded, read-only handle on a dictionary.
// It is safe for concurrent use; the file is read at most once.
type PronunciationSource struct {
	load func() (*Pronunciations, error)

	once sync.Once
	dict *Pronunciations
	err  error
}

// NewPronunciationSource defers reading path until first use.
func NewPronunciationSource(path string) *PronunciationSource {
	return &PronunciationSource{load: func() (*Pronunciations, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, configError("pronunciation_filepath", errors.Wrapf(err, "open %s", path))
		}
		defer f.Close()

		p, err := ParsePronunciations(f)
		if err != nil {
			return nil, configError("pronunciation_filepath", errors.Wrapf(err, "parse %s", path))
		}
		return p, nil
	}}
}

// StaticPronunciationSource wraps an already parsed dictionary.
func StaticPronunciationSource(p *Pronunciations) *PronunciationSource {
	return &PronunciationSource{load: func() (*Pronunciations, error) { return p, nil }}
}

// Dictionary loads the dictionary on the first call and returns the same
// result, error included, on every later call.
func (s *PronunciationSource) Dictionary() (*Pronunciations, error) {
	s.once.Do(func() {
		s.dict, s.err = s.load()
	})
	return s.dict, s.err
}

// ═══════════════════════════════════════════════════════════════════════════════
// READABILITY SCORES
// ═══════════════════════════════════════════════════════════════════════════════
//
//	Flesch reading ease:  206.835 - 1.015·(words/sentences) - 84.6·(syllables/word)
//	Flesch-Kincaid grade: 0.39·(words/sentences) + 11.8·(syllables/word) - 15.59
//
// words/sentences uses every word. syllables/word uses only words the
// dictionary knows, so unknown words neither add syllables nor dilute the
// average.
// ═══════════════════════════════════════════════════════════════════════════════

// Readability holds dictionary-based scores.
type Readability struct {
	Syllables          int     `json:"syllables"`
	KnownWords         int     `json:"known_words"`
	SyllablesPerWord   float64 `json:"syllables_per_word"`
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
}

// ComputeReadability scores words against dict. It returns nil when there is
// nothing to score: no sentences, or no word the dictionary knows.
func ComputeReadability(dict *Pronunciations, words []string, sentences int) *Readability {
	if dict == nil || sentences == 0 || len(words) == 0 {
		return nil
	}

	r := &Readability{}
	for _, w := range words {
		if n, ok := dict.Syllables(w); ok {
			r.Syllables += n
			r.KnownWords++
		}
	}
	if r.KnownWords == 0 {
		return nil
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	r.SyllablesPerWord = float64(r.Syllables) / float64(r.KnownWords)
	r.FleschReadingEase = 206.835 - 1.015*wordsPerSentence - 84.6*r.SyllablesPerWord
	r.FleschKincaidGrade = 0.39*wordsPerSentence + 11.8*r.SyllablesPerWord - 15.59
	return r
}
