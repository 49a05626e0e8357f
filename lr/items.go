package lr

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lrtab/grammar"
)

// === Items =================================================================

// Item is an LR item, i.e. a rule together with a dot position
//
//    A -> α • β
//
// LR(1) items additionally carry a lookahead set, LR(0) items have a
// nil lookahead. Items are values.
type Item struct {
	rule *grammar.Rule
	dot  int
	la   *Lookahead
}

// StartItem returns the LR(0) item for rule r with the dot at position 0.
func StartItem(r *grammar.Rule) Item {
	return Item{rule: r}
}

// NewLR1Item creates an LR(1) item. la must not be modified afterwards.
func NewLR1Item(r *grammar.Rule, dot int, la *Lookahead) Item {
	if dot < 0 || dot > r.Len() {
		panic(fmt.Sprintf("dot position %d out of range for rule %v", dot, r))
	}
	if la == nil {
		la = NewLookahead()
	}
	return Item{rule: r, dot: dot, la: la}
}

// Rule returns the rule of an item.
func (i Item) Rule() *grammar.Rule {
	return i.rule
}

// Dot returns the dot position.
func (i Item) Dot() int {
	return i.dot
}

// Lookahead returns the lookahead set of an LR(1) item, or nil.
func (i Item) Lookahead() *Lookahead {
	return i.la
}

// PeekSymbol returns the symbol after the dot, if any.
func (i Item) PeekSymbol() (grammar.Symbol, bool) {
	if i.dot < i.rule.Len() {
		return i.rule.RHS()[i.dot], true
	}
	return grammar.Symbol{}, false
}

// IsFinal is true if the dot is behind the last symbol of the rule.
func (i Item) IsFinal() bool {
	return i.dot == i.rule.Len()
}

// Rest returns the symbols following the symbol after the dot.
//
//    A -> α • B β    ⇒   β
//
func (i Item) Rest() []grammar.Symbol {
	if i.dot+1 >= i.rule.Len() {
		return nil
	}
	return i.rule.RHS()[i.dot+1:]
}

// Advance returns an item with the dot moved one symbol to the right.
// The lookahead is shared.
func (i Item) Advance() Item {
	if i.IsFinal() {
		panic(fmt.Sprintf("cannot advance final item %v", i))
	}
	return Item{rule: i.rule, dot: i.dot + 1, la: i.la}
}

// Core returns the LR(0) core of an item.
func (i Item) Core() Item {
	return Item{rule: i.rule, dot: i.dot}
}

func (i Item) coreKey() string {
	return fmt.Sprintf("%d.%d", i.rule.Serial, i.dot)
}

// key identifies an item by value.
func (i Item) key() string {
	if i.la == nil {
		return i.coreKey()
	}
	return i.coreKey() + "/" + i.la.key()
}

// Equals compares items by value.
func (i Item) Equals(other Item) bool {
	return i.key() == other.key()
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s ➞", i.rule.LHS.Name))
	for n, A := range i.rule.RHS() {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(A.String())
	}
	if i.IsFinal() {
		b.WriteString(" •")
	}
	if i.la != nil {
		b.WriteString(" , ")
		b.WriteString(i.la.String())
	}
	b.WriteString("]")
	return b.String()
}

// === Item Sets =============================================================

// ItemSet is a set of items with value semantics. Items are kept in order
// of insertion, but order is irrelevant for equality.
type ItemSet struct {
	items []Item
	index map[string]int
}

// NewItemSet creates an item set containing the given items.
func NewItemSet(items ...Item) *ItemSet {
	S := &ItemSet{index: make(map[string]int)}
	for _, i := range items {
		S.Add(i)
	}
	return S
}

// Add inserts an item. It returns false if an equal item is already present.
func (S *ItemSet) Add(i Item) bool {
	k := i.key()
	if _, ok := S.index[k]; ok {
		return false
	}
	S.index[k] = len(S.items)
	S.items = append(S.items, i)
	return true
}

// Contains checks if an item equal to i is in S.
func (S *ItemSet) Contains(i Item) bool {
	_, ok := S.index[i.key()]
	return ok
}

// Union adds all items of other to S. It returns true if S has changed.
func (S *ItemSet) Union(other *ItemSet) bool {
	changed := false
	for _, i := range other.items {
		if S.Add(i) {
			changed = true
		}
	}
	return changed
}

// Copy returns a clone of S. Items are values, lookahead sets are shared.
func (S *ItemSet) Copy() *ItemSet {
	C := &ItemSet{
		items: make([]Item, len(S.items), cap(S.items)),
		index: make(map[string]int, len(S.index)),
	}
	copy(C.items, S.items)
	for k, v := range S.index {
		C.index[k] = v
	}
	return C
}

// Size returns the number of items.
func (S *ItemSet) Size() int {
	return len(S.items)
}

// Empty is true for an empty item set.
func (S *ItemSet) Empty() bool {
	return len(S.items) == 0
}

// Items returns the items of S in insertion order. Clients must not modify
// the returned slice.
func (S *ItemSet) Items() []Item {
	return S.items
}

// Equals compares two item sets by value, disregarding order.
func (S *ItemSet) Equals(other *ItemSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for k := range S.index {
		if _, ok := other.index[k]; !ok {
			return false
		}
	}
	return true
}

// Hash returns a content hash of S. Equal item sets have equal hashes.
func (S *ItemSet) Hash() string {
	keys := make([]string, 0, len(S.index))
	for k := range S.index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h, err := structhash.Hash(keys, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return strings.Join(keys, "|")
	}
	return h
}

func (S *ItemSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, i := range S.items {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper.
func (S *ItemSet) Dump() {
	for n, i := range S.items {
		tracer().Debugf("[%2d] %s", n+1, i)
	}
}

// Shrink merges items of S with the same core into a single item, carrying
// the union of their lookahead sets. The result holds exactly one item per
// core, in order of the first occurence of each core in S.
// S itself is not modified.
func Shrink(S *ItemSet) *ItemSet {
	merged := make([]Item, 0, S.Size())
	cores := make(map[string]int, S.Size())
	for _, i := range S.items {
		ck := i.coreKey()
		at, ok := cores[ck]
		if !ok {
			cores[ck] = len(merged)
			merged = append(merged, i)
			continue
		}
		if i.la == nil || merged[at].la.Equals(i.la) {
			continue
		}
		la := NewLookahead()
		la.Union(merged[at].la)
		la.Union(i.la)
		merged[at].la = la
	}
	return NewItemSet(merged...)
}
