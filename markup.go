package prosegeek

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ═══════════════════════════════════════════════════════════════════════════════
// MARKUP STRIPPING
// ═══════════════════════════════════════════════════════════════════════════════
// Prose often arrives wrapped in HTML or Markdown. Markup characters would
// otherwise show up as tokens, glue onto words and inflate character counts.
//
// PIPELINE:
// ---------
//  1. HTML (strip_html)
//     parse → drop <script>/<style> → render → parse again → collect text
//     → trim lines → split lines on double spaces → drop empty pieces
//  2. Markdown (strip_markdown)
//     one regex pass deleting emphasis, heading, quote, code, rule and link
//     markup plus bare URLs
//
// EXAMPLE:
// --------
// Input:  "<p>Hello  <b>world</b></p><script>x()</script>"
// Step 1: "Hello\nworld"
//
// Input:  "## Intro\nSee [docs](http://x.io) for **more**."
// Step 2: " Intro\nSee  for more."
//
// Neither step can fail. The HTML parser is error tolerant and the regex
// matches any input, so malformed markup degrades to best-effort text.
// ═══════════════════════════════════════════════════════════════════════════════

// markdownPattern matches, in order of alternation:
//
//	[*#`~_|>]+     emphasis, headings, code, tables, quotes
//	-[-]+          horizontal rules and em-dash runs
//	\[.+\]:*       link labels and reference definitions
//	\(http.+\)     inline link targets
//	http.+         bare URLs up to the end of the line
var markdownPattern = regexp.MustCompile("[*#`~_|>]+|-[-]+|\\[.+\\]:*|\\(http.+\\)|http.+")

// Strip applies the enabled stripping stages to raw and returns clean text.
// raw itself is never modified.
func Strip(raw string, cfg AnalysisConfig) string {
	clean := raw
	if cfg.StripHTML {
		clean = StripHTML(clean)
	}
	if cfg.StripMarkdown {
		clean = StripMarkdown(clean)
	}
	return clean
}

// StripMarkdown deletes markdown markers. Matches are replaced with nothing,
// not a space, so "foo**bar**" becomes "foobar".
func StripMarkdown(text string) string {
	return markdownPattern.ReplaceAllString(text, "")
}

// StripHTML extracts the visible text of an HTML fragment or document and
// normalizes its whitespace.
//
// Extraction runs twice: after removing script and style the tree is
// rendered back to markup and parsed again before the text is collected.
func StripHTML(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return collapseWhitespace(text)
	}
	removeElements(doc, atom.Script, atom.Style)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return collapseWhitespace(textContent(doc))
	}

	doc, err = html.Parse(&buf)
	if err != nil {
		return collapseWhitespace(text)
	}
	return collapseWhitespace(textContent(doc))
}

// removeElements detaches every element whose tag is one of tags, including
// its subtree.
func removeElements(n *html.Node, tags ...atom.Atom) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && isAtomIn(c.DataAtom, tags) {
			n.RemoveChild(c)
		} else {
			removeElements(c, tags...)
		}
		c = next
	}
}

func isAtomIn(a atom.Atom, tags []atom.Atom) bool {
	for _, t := range tags {
		if a == t {
			return true
		}
	}
	return false
}

// textContent concatenates text nodes in document order. Comments and
// doctypes carry no prose and are skipped.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// collapseWhitespace trims every line, splits lines on double-space runs,
// drops empty pieces and joins what is left with single newlines.
//
//	"  Title  \n\n  body   text  " → "Title\nbody\ntext"
func collapseWhitespace(text string) string {
	var pieces []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		for _, piece := range strings.Split(strings.TrimSpace(line), "  ") {
			if piece = strings.TrimSpace(piece); piece != "" {
				pieces = append(pieces, piece)
			}
		}
	}
	return strings.Join(pieces, "\n")
}

// isLineBreak matches the universal line boundaries: \n, \r, vertical tab,
// form feed, the file/group/record separators, NEL, LS and PS.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
