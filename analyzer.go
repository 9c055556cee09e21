// ═══════════════════════════════════════════════════════════════════════════════
// PROSE ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Package prosegeek computes readability-style statistics for a block of
// prose: counts, averages, outlier sentences and words, and frequency tables
// of words and recurring phrases.
//
// ANALYSIS PIPELINE:
// ------------------
//  1. Markup stripping → drop HTML and Markdown syntax
//  2. Tokenization     → sentences, word+punctuation tokens, words
//  3. Stopword filter  → remove "the", "and", ... (case-insensitive)
//  4. Stemming         → collapse inflections for the stemmed vocabulary
//  5. Frequencies      → top words, top bigrams and trigrams
//  6. Concordance      → in how many sentences each entry occurs
//  7. Aggregation      → averages, lexical diversity, outliers
//
// EXAMPLE TRANSFORMATION:
// -----------------------
// Input:  "The cat sat. The cat ran fast."   (stopwords: {the})
// Step 2: sentences ["The cat sat.", "The cat ran fast."]
//
//	words ["The", "cat", "sat", "The", "cat", "ran", "fast"]
//
// Step 3: ["cat", "sat", "cat", "ran", "fast"]
// Step 4: stems {cat, sat, ran, fast}
// Step 7: 7 words, 2 sentences, 3.5 words/sentence, diversity 7/4 = 1.75
//
// Every run is synchronous and isolated: it reads the immutable config and
// owns all data it derives.
// ═══════════════════════════════════════════════════════════════════════════════

package prosegeek

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Analyzer runs the pipeline with a fixed configuration. It holds no per-run
// state, so one Analyzer may serve concurrent Run calls.
type Analyzer struct {
	cfg       AnalysisConfig
	tokenizer *Tokenizer
	logger    *zap.Logger
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTokenizer shares an already built Tokenizer.
func WithTokenizer(t *Tokenizer) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.tokenizer = t
		}
	}
}

// NewAnalyzer validates cfg and prepares the tokenizer models.
func NewAnalyzer(cfg AnalysisConfig, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	if a.tokenizer == nil {
		a.tokenizer = defaultTokenizer()
	}
	return a, nil
}

// Config returns the configuration the Analyzer was built with.
func (a *Analyzer) Config() AnalysisConfig {
	return a.cfg
}

// Analyze runs the pipeline once with cfg.
//
//	res, err := Analyze("The cat sat. The cat ran fast.", DefaultConfig())
func Analyze(raw string, cfg AnalysisConfig) (*Result, error) {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return a.Run(raw)
}

// Run analyzes raw. It returns ErrEmptyDocument (wrapped) when nothing
// countable is left after stripping, and a ConfigurationError when a lazily
// loaded resource cannot be read.
func (a *Analyzer) Run(raw string) (*Result, error) {
	cfg := a.cfg
	stop := cfg.activeStopwords()

	// STEP 1: strip markup
	doc := NewDocument(raw, cfg)
	a.logger.Debug("stripped markup",
		zap.Int("raw_bytes", len(doc.RawText)),
		zap.Int("clean_bytes", len(doc.CleanText)),
		zap.Bool("html", cfg.StripHTML),
		zap.Bool("markdown", cfg.StripMarkdown))

	// STEP 2: tokenize
	ts := a.tokenizer.Tokenize(doc.CleanText)

	// STEP 3: filter stopwords
	ts.Filter(stop)
	a.logger.Debug("tokenized",
		zap.Int("sentences", len(ts.Sentences)),
		zap.Int("tokens", len(ts.AllTokens)),
		zap.Int("words", len(ts.Words)),
		zap.Int("filtered_words", len(ts.FilteredWords)))

	// STEP 4: vocabulary and stems
	vocab := NewVocabulary(ts.FilteredWordsLower)
	stemmed := NewVocabulary(StemAll(cfg.stemmer(), ts.FilteredWords))

	// STEP 7 before the tables: it owns the empty-document guard.
	res, err := Aggregate(doc, ts, vocab, stemmed)
	if err != nil {
		a.logger.Debug("nothing to analyze", zap.Error(err))
		return nil, err
	}

	// STEP 5 + 6: tables, with sentence spread from the concordance
	conc := BuildConcordance(ts)
	res.TopWords = topWords(ts.FilteredWords, cfg.TopWordCount, conc)
	res.Bigrams = withSpread(Bigrams(ts.WordsLower, cfg.CollocationMinFreq, cfg.TopBigramCount, stop), conc)
	res.Trigrams = withSpread(Trigrams(ts.WordsLower, cfg.CollocationMinFreq, cfg.TopTrigramCount, stop), conc)
	a.logger.Debug("ranked tables",
		zap.Int("terms", conc.Terms()),
		zap.Int("top_words", len(res.TopWords)),
		zap.Int("bigrams", len(res.Bigrams)),
		zap.Int("trigrams", len(res.Trigrams)))

	if cfg.Pronunciations != nil {
		dict, err := cfg.Pronunciations.Dictionary()
		if err != nil {
			return nil, errors.Wrap(err, "load pronunciations")
		}
		res.Readability = ComputeReadability(dict, ts.Words, len(ts.Sentences))
	}

	a.logger.Info("analyzed document",
		zap.Int("words", res.CountWords),
		zap.Int("sentences", res.CountSentences),
		zap.Int("stemmed_vocab", res.CountStemmedVocab))
	return res, nil
}

// topWords ranks filtered words in their original casing, so "The" and "the"
// are separate rows. The sentence spread is looked up by lowercase form.
func topWords(filtered []string, n int, conc *Concordance) []WordCount {
	entries := TopN(Frequencies(filtered), n)
	r := make([]WordCount, len(entries))
	for i, e := range entries {
		r[i] = WordCount{
			Word:      e.Key,
			Count:     e.Count,
			Sentences: conc.SentenceCount(strings.ToLower(e.Key)),
		}
	}
	return r
}

func withSpread(grams []Collocation, conc *Concordance) []Collocation {
	for i := range grams {
		grams[i].Sentences = conc.PhraseSentenceCount(grams[i].Words)
	}
	return grams
}
