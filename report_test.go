package prosegeek

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ═══════════════════════════════════════════════════════════════════════════════
// REPORT RENDERING TESTS
// ═══════════════════════════════════════════════════════════════════════════════

func sampleResult() *Result {
	return &Result{
		CountChars:              30,
		CountWords:              7,
		CountSentences:          2,
		CountStemmedVocab:       4,
		AverageCharsPerWord:     30.0 / 7.0,
		AverageWordsPerSentence: 3.5,
		LexicalDiversity:        1.75,
		LongestWord:             "fast",
		LongestSentence:         "The cat ran fast.",
		ShortestSentence:        "The cat sat.",
		TopWords: []WordCount{
			{Word: "cat", Count: 2, Sentences: 2},
			{Word: "sat", Count: 1, Sentences: 1},
		},
		Bigrams:  []Collocation{{Words: []string{"the", "cat"}, Count: 2, Sentences: 2}},
		Trigrams: []Collocation{},
	}
}

func TestRender(t *testing.T) {
	out, err := Render(sampleResult(), DefaultConfig(), "cats.md")
	require.NoError(t, err)

	for _, want := range []string{
		"# Prose Geek Report: cats.md\n",
		"* **Total Characters:** 30\n",
		"* **Total Words:** 7\n",
		"* **Unique Words:** 4\n",
		"* **Total Sentences:** 2\n",
		"* **Characters per word:** 4.3\n",
		"* **Words per sentence:** 3.5\n",
		"* **Lexical diversity (average usage of each word):** 1.8\n",
		"* **Longest Word:** fast\n",
		"* **Shortest Sentence:**\n>*The cat sat.*\n",
		"* **Longest Sentence:**\n>*The cat ran fast.*\n",
		"### Top 20 frequently used words\n",
		"|1.|cat|2|2|\n|2.|sat|1|1|\n",
		"### Top 10 frequently used 2-word phrases (bi-grams)\n",
		"|1.|the cat|2|2|\n",
		"|Rank|Tri-gram|Count|Sentences|\n|---|---|---|---|\n|||||\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Readability")
	assert.NotContains(t, out, "Sentece")
}

func TestRender_Readability(t *testing.T) {
	r := sampleResult()
	r.Readability = &Readability{KnownWords: 7, Syllables: 7, SyllablesPerWord: 1, FleschReadingEase: 118.6825, FleschKincaidGrade: -2.425}

	out, err := Render(r, DefaultConfig(), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Prose Geek Report: unsaved_file\n"))
	assert.Contains(t, out, "* **Syllables per word:** 1.00 (7 words with known pronunciation)\n")
	assert.Contains(t, out, "* **Flesch reading ease:** 118.7\n")
	assert.Contains(t, out, "* **Flesch-Kincaid grade level:** -2.4\n")
}

func TestRender_FromAnalysis(t *testing.T) {
	cfg := DefaultConfig()
	res, err := Analyze(catText, cfg)
	require.NoError(t, err)

	out, err := Render(res, cfg, "cats.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "|1.|cat|2|2|")
	assert.Contains(t, out, "|Rank|Bi-gram|Count|Sentences|\n|---|---|---|---|\n|||||\n")
}

func TestRender_OutlierSentencesRenderAsEmphasis(t *testing.T) {
	cfg := DefaultConfig()
	res, err := Analyze("The cat sat. A dog ran.", cfg)
	require.NoError(t, err)

	out, err := Render(res, cfg, "dogs.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "* **Shortest Sentence:**\n>*A dog ran.*\n")
	assert.Contains(t, out, "* **Longest Sentence:**\n>*The cat sat.*\n")
}

func TestRender_NilResult(t *testing.T) {
	_, err := Render(nil, DefaultConfig(), "x")
	assert.Error(t, err)
}
