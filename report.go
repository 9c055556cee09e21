package prosegeek

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════
// MARKDOWN REPORT
// ═══════════════════════════════════════════════════════════════════════════════
// Render lays a Result out as a markdown page:
//
//	# Prose Geek Report: chapter1.md
//	## Counts        characters, words, unique (stemmed) words, sentences
//	## Averages      chars/word, words/sentence, lexical diversity (1 decimal)
//	## Outliers      longest word, shortest and longest sentence
//	## Readability   only when a pronunciation dictionary produced scores
//	## Frequencies   top words, bigrams and trigrams as tables
//
// An empty table keeps its header and gets one blank row, so the page renders
// the same shape whatever the input.
// ═══════════════════════════════════════════════════════════════════════════════

// UnsavedSourceName names text that did not come from a file.
const UnsavedSourceName = "unsaved_file"

const reportTemplate = `# Prose Geek Report: {{ .Source }}

## Counts
* **Total Characters:** {{ .R.CountChars }}
* **Total Words:** {{ .R.CountWords }}
* **Unique Words:** {{ .R.CountStemmedVocab }}
* **Total Sentences:** {{ .R.CountSentences }}

## Averages:
* **Characters per word:** {{ printf "%0.1f" .R.AverageCharsPerWord }}
* **Words per sentence:** {{ printf "%0.1f" .R.AverageWordsPerSentence }}
* **Lexical diversity (average usage of each word):** {{ printf "%0.1f" .R.LexicalDiversity }}

## Outliers:
* **Longest Word:** {{ .R.LongestWord }}
* **Shortest Sentence:**
>*{{ .R.ShortestSentence }}*

* **Longest Sentence:**
>*{{ .R.LongestSentence }}*
{{ with .R.Readability }}
## Readability:
* **Syllables per word:** {{ printf "%0.2f" .SyllablesPerWord }} ({{ .KnownWords }} words with known pronunciation)
* **Flesch reading ease:** {{ printf "%0.1f" .FleschReadingEase }}
* **Flesch-Kincaid grade level:** {{ printf "%0.1f" .FleschKincaidGrade }}
{{ end }}

## Frequencies
### Top {{ .TopWords }} frequently used words
|Rank|Word|Count|Sentences|
|---|---|---|---|
{{ range $i, $w := .R.TopWords }}|{{ rank $i }}.|{{ $w.Word }}|{{ $w.Count }}|{{ $w.Sentences }}|
{{ else }}|||||
{{ end }}
---

### Top {{ .TopBigrams }} frequently used 2-word phrases (bi-grams)
|Rank|Bi-gram|Count|Sentences|
|---|---|---|---|
{{ range $i, $g := .R.Bigrams }}|{{ rank $i }}.|{{ $g }}|{{ $g.Count }}|{{ $g.Sentences }}|
{{ else }}|||||
{{ end }}
---

### Top {{ .TopTrigrams }} frequently used 3-word phrases (tri-grams)
|Rank|Tri-gram|Count|Sentences|
|---|---|---|---|
{{ range $i, $g := .R.Trigrams }}|{{ rank $i }}.|{{ $g }}|{{ $g.Count }}|{{ $g.Sentences }}|
{{ else }}|||||
{{ end }}
---
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"rank": func(i int) int { return i + 1 },
}).Parse(reportTemplate))

type reportData struct {
	Source      string
	R           *Result
	TopWords    int
	TopBigrams  int
	TopTrigrams int
}

// Render formats result as markdown. The table headings quote the configured
// sizes, which may be larger than the tables themselves. An empty sourceName
// is reported as UnsavedSourceName.
func Render(result *Result, cfg AnalysisConfig, sourceName string) (string, error) {
	if result == nil {
		return "", errors.New("render: nil result")
	}
	if sourceName == "" {
		sourceName = UnsavedSourceName
	}

	var sb strings.Builder
	err := reportTmpl.Execute(&sb, reportData{
		Source:      sourceName,
		R:           result,
		TopWords:    cfg.TopWordCount,
		TopBigrams:  cfg.TopBigramCount,
		TopTrigrams: cfg.TopTrigramCount,
	})
	if err != nil {
		return "", errors.Wrap(err, "render report")
	}
	return sb.String(), nil
}
