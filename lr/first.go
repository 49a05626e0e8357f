package lr

import (
	"github.com/npillmayer/lrtab/grammar"
)

// FirstSets holds FIRST(A) for every non-terminal A of a grammar.
// FIRST(A) contains grammar.Empty if and only if A derives the empty word.
//
// The sets are computed once, by iterating over all rules until no set
// changes any more. This handles left recursion, direct or indirect, as well
// as chains of nullable non-terminals.
type FirstSets struct {
	first map[grammar.Symbol]*Lookahead
}

// NewFirstSets computes the FIRST sets for all non-terminals of g.
func NewFirstSets(g *grammar.Grammar) *FirstSets {
	fs := &FirstSets{first: make(map[grammar.Symbol]*Lookahead)}
	for _, r := range g.Rules() {
		if _, ok := fs.first[r.LHS]; !ok {
			fs.first[r.LHS] = NewLookahead()
		}
	}
	rounds := 0
	for changed := true; changed; rounds++ {
		changed = false
		for _, r := range g.Rules() {
			if fs.addRHS(fs.first[r.LHS], r.RHS()) {
				changed = true
			}
		}
	}
	tracer().Debugf("FIRST sets for %s computed in %d rounds", g.Name, rounds)
	return fs
}

// addRHS adds FIRST(rhs) to acc, including Empty if all of rhs is nullable.
func (fs *FirstSets) addRHS(acc *Lookahead, rhs []grammar.Symbol) bool {
	changed := false
	for _, A := range rhs {
		if A.IsTerminal() {
			return acc.Add(A) || changed
		}
		if fs.mergeExceptEmpty(acc, A) {
			changed = true
		}
		if !fs.Nullable(A) {
			return changed
		}
	}
	return acc.Add(grammar.Empty) || changed
}

func (fs *FirstSets) mergeExceptEmpty(acc *Lookahead, A grammar.Symbol) bool {
	changed := false
	for _, a := range fs.first[A].Values() {
		if a != grammar.Empty && acc.Add(a) {
			changed = true
		}
	}
	return changed
}

// First returns FIRST(A) for a non-terminal A. For a terminal a, FIRST(a) = { a }.
// A non-terminal without rules has an empty FIRST set.
// Clients must not modify the returned set.
func (fs *FirstSets) First(A grammar.Symbol) *Lookahead {
	if A.IsTerminal() {
		return NewLookahead(A)
	}
	if la, ok := fs.first[A]; ok {
		return la
	}
	return NewLookahead()
}

// Nullable is true if A derives the empty word.
func (fs *FirstSets) Nullable(A grammar.Symbol) bool {
	if A.IsTerminal() {
		return A == grammar.Empty
	}
	return fs.first[A].Contains(grammar.Empty)
}

// FirstOf returns the terminals which may start a derivation of seq, followed
// by any of fallback:
//
//    FIRST(seq) \ {ε}                  if seq is not nullable
//    FIRST(seq) \ {ε}  ∪  fallback     otherwise (including seq = ε)
//
// For an LR(1) item [A -> α • B β, L] this is the lookahead for items B -> • γ.
func (fs *FirstSets) FirstOf(seq []grammar.Symbol, fallback *Lookahead) *Lookahead {
	la := NewLookahead()
	for _, A := range seq {
		if A.IsTerminal() {
			la.Add(A)
			return la
		}
		fs.mergeExceptEmpty(la, A)
		if !fs.Nullable(A) {
			return la
		}
	}
	la.Union(fallback)
	return la
}
