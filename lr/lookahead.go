package lr

import (
	"bytes"
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/lrtab/grammar"
)

// Lookahead is a set of terminals. Values are kept in symbol order, making
// the string representation of a lookahead set canonical.
//
// Lookahead sets attached to items are never modified after the item has
// been created; operations combining lookaheads of items work on copies.
type Lookahead struct {
	set *treeset.Set
}

// NewLookahead creates a lookahead set containing the given terminals.
func NewLookahead(terminals ...grammar.Symbol) *Lookahead {
	la := &Lookahead{set: treeset.NewWith(grammar.SymbolComparator)}
	for _, a := range terminals {
		la.set.Add(a)
	}
	return la
}

// Add adds a terminal and returns true if it has not been present before.
func (la *Lookahead) Add(a grammar.Symbol) bool {
	if la.set.Contains(a) {
		return false
	}
	la.set.Add(a)
	return true
}

// Contains checks if terminal a is in the set. A nil lookahead is empty.
func (la *Lookahead) Contains(a grammar.Symbol) bool {
	if la == nil {
		return false
	}
	return la.set.Contains(a)
}

// Union adds all terminals of other to la. It returns true if la has changed.
func (la *Lookahead) Union(other *Lookahead) bool {
	if other == nil {
		return false
	}
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		if la.Add(it.Value().(grammar.Symbol)) {
			changed = true
		}
	}
	return changed
}

// Copy returns a shallow copy of la.
func (la *Lookahead) Copy() *Lookahead {
	c := NewLookahead()
	c.Union(la)
	return c
}

// Size returns the number of terminals in the set.
func (la *Lookahead) Size() int {
	if la == nil {
		return 0
	}
	return la.set.Size()
}

// Equals compares two lookahead sets by value.
func (la *Lookahead) Equals(other *Lookahead) bool {
	if la.Size() != other.Size() {
		return false
	}
	if la.Size() == 0 {
		return true
	}
	it := la.set.Iterator()
	for it.Next() {
		if !other.set.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// Values returns the terminals in symbol order.
func (la *Lookahead) Values() []grammar.Symbol {
	if la == nil {
		return nil
	}
	r := make([]grammar.Symbol, 0, la.set.Size())
	for _, x := range la.set.Values() {
		r = append(r, x.(grammar.Symbol))
	}
	return r
}

// key is a canonical, unambiguous representation of the set.
func (la *Lookahead) key() string {
	var b bytes.Buffer
	for i, a := range la.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(a.Name))
	}
	return b.String()
}

func (la *Lookahead) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, a := range la.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(a.String())
	}
	b.WriteString("}")
	return b.String()
}
