package prosegeek

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ═══════════════════════════════════════════════════════════════════════════════
// SKIP LIST: Ordered Word Positions
// ═══════════════════════════════════════════════════════════════════════════════
// Every term in the concordance keeps its occurrences in a skip list ordered by
// global word offset. A skip list is a linked list with "express lanes": each
// node owns a tower of forward pointers and higher levels skip further ahead.
//
//	Level 2: HEAD ----------------> [w7] ----------------> nil
//	Level 1: HEAD ------> [w3] ---> [w7] ------> [w12] --> nil
//	Level 0: HEAD -> [w1] [w3] ---> [w7] -> [w9] [w12] --> nil
//
// Lookups (Find, FindGreaterThan, FindLessThan) run in O(log n) expected time,
// which keeps phrase checks cheap on long documents.
// ═══════════════════════════════════════════════════════════════════════════════

// MaxHeight bounds the tower of a single node.
const MaxHeight = 24

// Sentinel offsets used by BOF/EOF. No real word can sit at either.
const (
	bofOffset = math.MinInt
	eofOffset = math.MaxInt
)

var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrNoElementFound = errors.New("no element found")
)

// Position identifies one word of the analyzed document.
//
// Offset is the index of the word in TokenSet.Words, so it is unique across the
// whole document and already implies sentence order. Sentence is carried along
// so callers can group hits without a second lookup.
//
//	"The cat sat. The cat ran fast."
//	Position{Sentence: 1, Offset: 4} → "cat" (second sentence)
type Position struct {
	Sentence int
	Offset   int
}

// Sentinel positions.
var (
	BOFPosition = Position{Sentence: bofOffset, Offset: bofOffset}
	EOFPosition = Position{Sentence: eofOffset, Offset: eofOffset}
)

// IsBeginning reports whether p is the BOF sentinel.
func (p Position) IsBeginning() bool {
	return p.Offset == bofOffset
}

// IsEnd reports whether p is the EOF sentinel.
func (p Position) IsEnd() bool {
	return p.Offset == eofOffset
}

// IsBefore orders positions by word offset.
func (p Position) IsBefore(other Position) bool {
	return p.Offset < other.Offset
}

// IsAfter orders positions by word offset.
func (p Position) IsAfter(other Position) bool {
	return p.Offset > other.Offset
}

// Equals compares word offsets only; the sentence is derived from the offset.
func (p Position) Equals(other Position) bool {
	return p.Offset == other.Offset
}

// Node is a skip list element with one forward pointer per level.
type Node struct {
	Key   Position
	Tower [MaxHeight]*Node
}

// SkipList holds positions in ascending offset order.
type SkipList struct {
	Head   *Node
	Height int
	Len    int

	rng *rand.Rand
}

// NewSkipList creates an empty skip list.
//
// Tower heights come from a PCG source with a fixed seed, so two runs over the
// same input build identical lists.
func NewSkipList() *SkipList {
	return &SkipList{
		Head:   &Node{},
		Height: 1,
		rng:    rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9)),
	}
}

// Search returns the node holding key (nil when absent) and the journey: the
// last node visited on each level, i.e. the predecessor of key on that level.
// Insert splices through the journey and FindLessThan reads journey[0].
func (sl *SkipList) Search(key Position) (*Node, [MaxHeight]*Node) {
	var journey [MaxHeight]*Node
	current := sl.Head

	for level := sl.Height - 1; level >= 0; level-- {
		for next := current.Tower[level]; next != nil && next.Key.IsBefore(key); next = current.Tower[level] {
			current = next
		}
		journey[level] = current
	}

	if next := current.Tower[0]; next != nil && next.Key.Equals(key) {
		return next, journey
	}
	return nil, journey
}

// Find returns the stored position with the same offset as key.
func (sl *SkipList) Find(key Position) (Position, error) {
	found, _ := sl.Search(key)
	if found == nil {
		return EOFPosition, ErrKeyNotFound
	}
	return found.Key, nil
}

// Contains reports whether a word sits at offset.
func (sl *SkipList) Contains(offset int) bool {
	found, _ := sl.Search(Position{Offset: offset})
	return found != nil
}

// FindLessThan returns the largest position strictly before key.
//
//	[1] -> [3] -> [7]
//	FindLessThan(7) → 3, FindLessThan(1) → BOF
func (sl *SkipList) FindLessThan(key Position) (Position, error) {
	_, journey := sl.Search(key)

	predecessor := journey[0]
	if predecessor == nil || predecessor == sl.Head {
		return BOFPosition, ErrNoElementFound
	}
	return predecessor.Key, nil
}

// FindGreaterThan returns the smallest position strictly after key.
//
//	[1] -> [3] -> [7]
//	FindGreaterThan(3) → 7, FindGreaterThan(4) → 7, FindGreaterThan(7) → EOF
func (sl *SkipList) FindGreaterThan(key Position) (Position, error) {
	found, journey := sl.Search(key)

	if found != nil {
		if found.Tower[0] != nil {
			return found.Tower[0].Key, nil
		}
		return EOFPosition, ErrNoElementFound
	}

	if predecessor := journey[0]; predecessor != nil && predecessor.Tower[0] != nil {
		return predecessor.Tower[0].Key, nil
	}
	return EOFPosition, ErrNoElementFound
}

// Insert adds key, replacing an existing entry at the same offset. The
// concordance inserts in increasing offset order, so most inserts land at the
// tail.
func (sl *SkipList) Insert(key Position) {
	found, journey := sl.Search(key)
	if found != nil {
		found.Key = key
		return
	}

	height := sl.randomHeight()
	node := &Node{Key: key}

	for level := 0; level < height; level++ {
		predecessor := journey[level]
		if predecessor == nil {
			// Levels above the current height have no journey entry yet.
			predecessor = sl.Head
		}
		node.Tower[level] = predecessor.Tower[level]
		predecessor.Tower[level] = node
	}

	if height > sl.Height {
		sl.Height = height
	}
	sl.Len++
}

// First returns the earliest position, or EOF for an empty list.
func (sl *SkipList) First() Position {
	if sl.Head.Tower[0] == nil {
		return EOFPosition
	}
	return sl.Head.Tower[0].Key
}

// Last returns the latest position, or BOF for an empty list.
func (sl *SkipList) Last() Position {
	current := sl.Head
	for level := sl.Height - 1; level >= 0; level-- {
		for current.Tower[level] != nil {
			current = current.Tower[level]
		}
	}
	if current == sl.Head {
		return BOFPosition
	}
	return current.Key
}

// randomHeight flips coins until tails: P(height = h) = 1/2^h.
func (sl *SkipList) randomHeight() int {
	height := 1
	for sl.rng.Float64() < 0.5 && height < MaxHeight {
		height++
	}
	return height
}

// Iterator walks level 0 in ascending order.
type Iterator struct {
	current *Node
}

// Iterator starts before the first element.
//
//	it := sl.Iterator()
//	for it.HasNext() {
//	    pos := it.Next()
//	}
func (sl *SkipList) Iterator() *Iterator {
	return &Iterator{current: sl.Head}
}

// HasNext reports whether Next will return a real position.
func (it *Iterator) HasNext() bool {
	return it.current != nil && it.current.Tower[0] != nil
}

// Next advances and returns the position, or EOF past the end.
func (it *Iterator) Next() Position {
	if it.current == nil {
		return EOFPosition
	}
	it.current = it.current.Tower[0]
	if it.current == nil {
		return EOFPosition
	}
	return it.current.Key
}
