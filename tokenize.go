package prosegeek

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jdkato/prose/tokenize"
)

// ═══════════════════════════════════════════════════════════════════════════════
// TOKENIZATION
// ═══════════════════════════════════════════════════════════════════════════════
// Clean text is cut three ways. Words come straight from the clean text;
// AllTokens are cut within each sentence, the way Treebank tokenizers expect:
//
//	Sentences  Punkt boundary detection: knows abbreviations ("Dr."),
//	           decimals ("3.5") and closing quotes, so it is not fooled by
//	           every period.
//	AllTokens  Treebank word tokenizer: words, punctuation and split
//	           contractions ("They'll" → "They", "'ll").
//	Words      maximal runs of letters, digits, underscore and apostrophe.
//	           Punctuation never forms a word; "don't" stays one word.
//
// EXAMPLE:
// --------
// Input:     "The cat sat. The cat ran fast."
// Sentences: ["The cat sat.", "The cat ran fast."]
// AllTokens: ["The", "cat", "sat", ".", "The", "cat", "ran", "fast", "."]
// Words:     ["The", "cat", "sat", "The", "cat", "ran", "fast"]
// ═══════════════════════════════════════════════════════════════════════════════

// wordPattern is the word-only token. \w in Go regexp is ASCII only, so the
// Unicode classes are spelled out to keep "café" in one piece.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_']+`)

// TokenSet holds every view of the clean text used downstream. The lowercase
// slices are parallel to their source slices.
type TokenSet struct {
	Sentences          []string
	AllTokens          []string
	Words              []string
	WordsLower         []string
	FilteredWords      []string
	FilteredWordsLower []string

	// WordSentence[i] is the index into Sentences of the sentence holding
	// Words[i].
	WordSentence []int
}

// Tokenizer owns the Punkt and Treebank models. Building them parses the
// bundled training data, so a Tokenizer is built once and reused; both models
// are read-only after construction.
type Tokenizer struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
}

// NewTokenizer loads the English sentence and word models.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		sentences: tokenize.NewPunktSentenceTokenizer(),
		words:     tokenize.NewTreebankWordTokenizer(),
	}
}

var defaultTokenizer = sync.OnceValue(NewTokenizer)

// Tokenize splits clean text with a lazily built shared Tokenizer.
func Tokenize(clean string) *TokenSet {
	return defaultTokenizer().Tokenize(clean)
}

// Tokenize splits clean into sentences, tokens and words. FilteredWords is
// left empty until Filter runs.
func (t *Tokenizer) Tokenize(clean string) *TokenSet {
	ts := &TokenSet{Sentences: t.splitSentences(clean)}

	// The Treebank rules only split a period at the very end of their input,
	// so tokens are taken sentence by sentence.
	for _, s := range ts.Sentences {
		ts.AllTokens = append(ts.AllTokens, t.words.Tokenize(s)...)
	}

	spans := wordPattern.FindAllStringIndex(clean, -1)
	starts := sentenceStarts(clean, ts.Sentences)

	ts.Words = make([]string, len(spans))
	ts.WordsLower = make([]string, len(spans))
	ts.WordSentence = make([]int, len(spans))
	for i, span := range spans {
		w := clean[span[0]:span[1]]
		ts.Words[i] = w
		ts.WordsLower[i] = strings.ToLower(w)
		ts.WordSentence[i] = sentenceAt(starts, span[0])
	}
	return ts
}

// Filter fills the filtered views. A nil set keeps every word.
func (ts *TokenSet) Filter(stop StopwordSet) {
	if stop == nil {
		ts.FilteredWords = append([]string(nil), ts.Words...)
	} else {
		ts.FilteredWords = stop.Filter(ts.Words)
	}
	ts.FilteredWordsLower = lowercaseAll(ts.FilteredWords)
}

func (t *Tokenizer) splitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var r []string
	for _, s := range t.sentences.Tokenize(text) {
		if s = strings.TrimSpace(s); s != "" {
			r = append(r, s)
		}
	}
	return r
}

// sentenceStarts finds the byte offset of each sentence in text, scanning
// forward so repeated sentences map to successive occurrences. A sentence the
// splitter rewrote (and so cannot be found verbatim) starts at the cursor.
func sentenceStarts(text string, sentences []string) []int {
	starts := make([]int, len(sentences))
	cursor := 0
	for i, s := range sentences {
		if j := strings.Index(text[cursor:], s); j >= 0 {
			starts[i] = cursor + j
			cursor = starts[i] + len(s)
		} else {
			starts[i] = cursor
		}
	}
	return starts
}

// sentenceAt returns the last sentence starting at or before offset.
func sentenceAt(starts []int, offset int) int {
	i := sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
	if i < 0 {
		return 0
	}
	return i
}

func lowercaseAll(words []string) []string {
	r := make([]string, len(words))
	for i, w := range words {
		r[i] = strings.ToLower(w)
	}
	return r
}
