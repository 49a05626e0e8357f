package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeSBB(t *testing.T) *Grammar {
	b := NewBuilder("SBB")
	b.LHS("S").N("B").N("B").End()
	b.LHS("B").T("a").N("B").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	g := makeSBB(t)
	g.Dump()
	if g.Size() != 3 {
		t.Errorf("expected grammar to have 3 rules, has %d", g.Size())
	}
	if g.Start() != N("S") {
		t.Errorf("expected start symbol to be S, is %v", g.Start())
	}
	for i, r := range g.Rules() {
		if r.Serial != i {
			t.Errorf("expected rule #%d to have serial %d, has %d", i, i, r.Serial)
		}
	}
	if len(g.RulesFor(N("B"))) != 2 {
		t.Errorf("expected 2 rules for B, have %d", len(g.RulesFor(N("B"))))
	}
}

func TestBuilderEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("Eps")
	b.LHS("sentence").T("token").N("sentence").End()
	b.LHS("sentence").Epsilon()
	b.Rule(N("other"), Empty)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if !g.Rule(1).IsEpsilon() || !g.Rule(2).IsEpsilon() {
		t.Errorf("expected rules 1 and 2 to be epsilon-productions")
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	if _, err := NewBuilder("empty").Grammar(); !errors.Is(err, ErrNoRules) {
		t.Errorf("expected ErrNoRules, got %v", err)
	}
	b := NewBuilder("no-start")
	b.Start("X")
	b.LHS("S").T("a").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrStartNoRules) {
		t.Errorf("expected ErrStartNoRules, got %v", err)
	}
	b = NewBuilder("eof")
	b.Rule(N("S"), T("a"), End)
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for end-of-input within a rule")
	}
}

func TestAugmentIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	g := makeSBB(t)
	r1, err := g.Augment()
	if err != nil {
		t.Fatal(err)
	}
	start := g.Start()
	r2, err := g.Augment()
	if err != nil {
		t.Fatal(err)
	}
	if r1 != r2 || g.Start() != start {
		t.Errorf("second augmentation changed grammar: %v / %v", r1, r2)
	}
	if start != N("S'") || r1.RHS()[0] != N("S") {
		t.Errorf("expected augmented rule S' -> S, is %v", r1)
	}
	if g.Size() != 4 || r1.Serial != 3 {
		t.Errorf("expected augmented rule to be appended as rule 3, is %v", r1)
	}
}

func TestAugmentUniqueName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	b := NewBuilder("primes")
	b.LHS("S").N("S'").End()
	b.LHS("S'").T("x").End()
	g, _ := b.Grammar()
	r, _ := g.Augment()
	if r.LHS != N("S''") {
		t.Errorf("expected start symbol S'', is %v", r.LHS)
	}
}

func TestFreeze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	g := makeSBB(t)
	g.Augment()
	syms, err := g.Freeze()
	if err != nil {
		t.Fatal(err)
	}
	again, _ := g.Freeze()
	if again != syms {
		t.Errorf("expected Freeze to compute symbols once")
	}
	terms := syms.Terminals()
	if len(terms) != 3 || terms[0] != T("a") || terms[1] != T("b") || terms[2] != End {
		t.Errorf("unexpected terminals %v", terms)
	}
	nonterms := syms.NonTerminals()
	if len(nonterms) != 3 || nonterms[0] != N("S") || nonterms[1] != N("B") || nonterms[2] != N("S'") {
		t.Errorf("unexpected non-terminals %v", nonterms)
	}
	rt := syms.RuleTable()
	expected := [][]int{{0, 1, 1}, {1, 0, 1}, {1, 1}, {2, 0}}
	for i, row := range expected {
		if len(rt[i]) != len(row) {
			t.Fatalf("rule table row %d: expected %v, is %v", i, row, rt[i])
		}
		for j := range row {
			if rt[i][j] != row[j] {
				t.Errorf("rule table row %d: expected %v, is %v", i, row, rt[i])
			}
		}
	}
	if _, err := makeSBB(t).Augment(); err != nil {
		t.Error(err)
	}
	g2 := makeSBB(t)
	g2.Freeze()
	if _, err := g2.Augment(); !errors.Is(err, ErrFrozen) {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
	if syms.TerminalID(N("B")) != -1 || syms.NonTerminalID(T("a")) != -1 {
		t.Errorf("expected kind mismatch to yield -1")
	}
}

func TestRuleEquals(t *testing.T) {
	b := NewBuilder("dup")
	b.LHS("S").T("a").End()
	b.LHS("S").T("a").Action("$$ = $1").End()
	b.LHS("S").T("b").End()
	g, _ := b.Grammar()
	if !g.Rule(0).Equals(g.Rule(1)) {
		t.Errorf("expected rules 0 and 1 to be structurally equal")
	}
	if g.Rule(0).Equals(g.Rule(2)) {
		t.Errorf("expected rules 0 and 2 to differ")
	}
}
