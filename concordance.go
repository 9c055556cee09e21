package prosegeek

import (
	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// CONCORDANCE: Where Words Occur
// ═══════════════════════════════════════════════════════════════════════════════
// Counting tells how often a word appears; the concordance tells where. For a
// document of sentences it keeps, per lowercase word:
//
//	SentenceBitmaps: word → roaring bitmap of sentence ids
//	Postings:        word → skip list of positions (sentence, word offset)
//
// EXAMPLE:
// --------
// "The cat sat. The cat ran fast."
//
//	Sentence 0: the(0) cat(1) sat(2)
//	Sentence 1: the(3) cat(4) ran(5) fast(6)
//
//	SentenceBitmaps["cat"] = {0, 1}
//	Postings["cat"]        = [s0:1, s1:4]
//
// The bitmaps answer "in how many sentences does X occur" with a cardinality
// call, and AND/OR across words without walking positions. The skip lists
// answer phrase questions: "the cat" occurs where "cat" sits exactly one
// offset after "the".
//
// A high count packed into one sentence reads very differently from the same
// count spread across the text; the report shows both.
// ═══════════════════════════════════════════════════════════════════════════════

// Concordance is a read-only positional index of one document.
type Concordance struct {
	SentenceBitmaps map[string]*roaring.Bitmap
	Postings        map[string]*SkipList

	sentences int
}

// NewConcordance returns an empty concordance.
func NewConcordance() *Concordance {
	return &Concordance{
		SentenceBitmaps: make(map[string]*roaring.Bitmap),
		Postings:        make(map[string]*SkipList),
	}
}

// BuildConcordance indexes the lowercase word stream of ts.
func BuildConcordance(ts *TokenSet) *Concordance {
	c := NewConcordance()
	c.sentences = len(ts.Sentences)
	for offset, word := range ts.WordsLower {
		c.indexWord(word, Position{Sentence: ts.WordSentence[offset], Offset: offset})
	}
	return c
}

// indexWord records one occurrence in both structures.
func (c *Concordance) indexWord(word string, pos Position) {
	bitmap, ok := c.SentenceBitmaps[word]
	if !ok {
		bitmap = roaring.NewBitmap()
		c.SentenceBitmaps[word] = bitmap
	}
	bitmap.Add(uint32(pos.Sentence))

	postings, ok := c.Postings[word]
	if !ok {
		postings = NewSkipList()
		c.Postings[word] = postings
	}
	postings.Insert(pos)
}

// Terms is the number of distinct indexed words.
func (c *Concordance) Terms() int {
	return len(c.Postings)
}

// Sentences is the number of sentences of the indexed document.
func (c *Concordance) Sentences() int {
	return c.sentences
}

// Occurrences returns how many times word occurs.
func (c *Concordance) Occurrences(word string) int {
	if postings, ok := c.Postings[word]; ok {
		return postings.Len
	}
	return 0
}

// SentenceCount returns the number of sentences containing word.
func (c *Concordance) SentenceCount(word string) int {
	if bitmap, ok := c.SentenceBitmaps[word]; ok {
		return int(bitmap.GetCardinality())
	}
	return 0
}

// SentencesWithAll intersects the sentence sets of words. An unknown word
// empties the result.
//
//	SentencesWithAll("cat", "ran") → {1}
func (c *Concordance) SentencesWithAll(words ...string) *roaring.Bitmap {
	if len(words) == 0 {
		return roaring.NewBitmap()
	}
	result := roaring.NewBitmap()
	for i, w := range words {
		bitmap, ok := c.SentenceBitmaps[w]
		if !ok {
			return roaring.NewBitmap()
		}
		if i == 0 {
			result.Or(bitmap)
		} else {
			result.And(bitmap)
		}
	}
	return result
}

// SentencesWithAny unions the sentence sets of words.
//
//	SentencesWithAny("sat", "ran") → {0, 1}
func (c *Concordance) SentencesWithAny(words ...string) *roaring.Bitmap {
	result := roaring.NewBitmap()
	for _, w := range words {
		if bitmap, ok := c.SentenceBitmaps[w]; ok {
			result.Or(bitmap)
		}
	}
	return result
}

// ═══════════════════════════════════════════════════════════════════════════════
// PHRASES
// ═══════════════════════════════════════════════════════════════════════════════
// A phrase [w0 w1 ... wk] starts at offset p when w0 sits at p, w1 at p+1,
// and so on. Walking the postings of w0 and probing the others' skip lists
// for p+i costs O(occurrences(w0) · k · log n).
//
// Phrases follow the word stream, so like n-grams they may run across a
// sentence boundary. A phrase is attributed to the sentence of its first word.
// ═══════════════════════════════════════════════════════════════════════════════

// PhraseStarts returns the position of the first word of every occurrence of
// the phrase, in document order.
func (c *Concordance) PhraseStarts(words []string) []Position {
	if len(words) == 0 {
		return nil
	}
	lists := make([]*SkipList, len(words))
	for i, w := range words {
		postings, ok := c.Postings[w]
		if !ok {
			return nil
		}
		lists[i] = postings
	}

	var starts []Position
	it := lists[0].Iterator()
	for it.HasNext() {
		start := it.Next()
		if c.phraseAt(lists, start.Offset) {
			starts = append(starts, start)
		}
	}
	return starts
}

func (c *Concordance) phraseAt(lists []*SkipList, offset int) bool {
	for i := 1; i < len(lists); i++ {
		if !lists[i].Contains(offset + i) {
			return false
		}
	}
	return true
}

// PhraseSentenceCount returns the number of distinct sentences in which the
// phrase starts.
func (c *Concordance) PhraseSentenceCount(words []string) int {
	starts := c.PhraseStarts(words)
	if len(starts) == 0 {
		return 0
	}
	seen := roaring.NewBitmap()
	for _, p := range starts {
		seen.Add(uint32(p.Sentence))
	}
	return int(seen.GetCardinality())
}

// NextOccurrence returns the first occurrence of word after pos, or EOF.
func (c *Concordance) NextOccurrence(word string, pos Position) Position {
	postings, ok := c.Postings[word]
	if !ok || pos.IsEnd() {
		return EOFPosition
	}
	if pos.IsBeginning() {
		return postings.First()
	}
	next, _ := postings.FindGreaterThan(pos)
	return next
}

// PreviousOccurrence returns the last occurrence of word before pos, or BOF.
func (c *Concordance) PreviousOccurrence(word string, pos Position) Position {
	postings, ok := c.Postings[word]
	if !ok || pos.IsBeginning() {
		return BOFPosition
	}
	if pos.IsEnd() {
		return postings.Last()
	}
	prev, _ := postings.FindLessThan(pos)
	return prev
}
