package lr

import (
	"testing"

	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.lr")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> A a",
		"A -> B D",
		"B -> b",
		"B -> ε",
		"D -> d",
		"D -> ε",
	)
	fs := NewFirstSets(g)
	b, d, a := grammar.T("b"), grammar.T("d"), grammar.T("a")
	expect := map[string]*Lookahead{
		"S": NewLookahead(a, b, d),
		"A": NewLookahead(b, d, grammar.Empty),
		"B": NewLookahead(b, grammar.Empty),
		"D": NewLookahead(d, grammar.Empty),
	}
	for name, la := range expect {
		if f := fs.First(grammar.N(name)); !f.Equals(la) {
			t.Errorf("expected FIRST(%s) = %v, is %v", name, la, f)
		}
	}
	if fs.Nullable(grammar.N("S")) || !fs.Nullable(grammar.N("A")) {
		t.Errorf("wrong nullability for S or A")
	}
}

func TestFirstOfNullablePrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.lr")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> B C",
		"B -> ε",
		"C -> c",
		"C -> ε",
		"X -> B E",
		"E -> e",
	)
	fs := NewFirstSets(g)
	L := NewLookahead(grammar.T("l"))
	// C is nullable: FIRST(B C, L) = FIRST(C) \ ε ∪ L
	f := fs.FirstOf([]grammar.Symbol{grammar.N("B"), grammar.N("C")}, L)
	if !f.Equals(NewLookahead(grammar.T("c"), grammar.T("l"))) {
		t.Errorf("expected FIRST(B C, L) = { c l }, is %v", f)
	}
	// E is not nullable: FIRST(B E, L) = FIRST(E)
	f = fs.FirstOf([]grammar.Symbol{grammar.N("B"), grammar.N("E")}, L)
	if !f.Equals(NewLookahead(grammar.T("e"))) {
		t.Errorf("expected FIRST(B E, L) = { e }, is %v", f)
	}
	if f = fs.FirstOf(nil, L); !f.Equals(L) {
		t.Errorf("expected FIRST(ε, L) = L, is %v", f)
	}
	if f.Contains(grammar.Empty) {
		t.Errorf("FirstOf must not contain ε")
	}
}

func TestFirstLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.lr")
	defer teardown()
	//
	g := makeGrammar(t,
		"E -> E + T",
		"E -> T",
		"T -> T * F",
		"T -> F",
		"F -> ( E )",
		"F -> id",
		"A -> B x",
		"B -> A y",
		"B -> z",
	)
	fs := NewFirstSets(g)
	for _, name := range []string{"E", "T", "F"} {
		f := fs.First(grammar.N(name))
		if !f.Equals(NewLookahead(grammar.T("("), grammar.T("id"))) {
			t.Errorf("expected FIRST(%s) = { ( id }, is %v", name, f)
		}
	}
	if f := fs.First(grammar.N("A")); !f.Equals(NewLookahead(grammar.T("z"))) {
		t.Errorf("expected FIRST(A) = { z }, is %v", f)
	}
}
