package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by grammars and grammar builders.
var (
	ErrNoRules      = errors.New("grammar has no rules")
	ErrFrozen       = errors.New("grammar is frozen")
	ErrStartNoRules = errors.New("start symbol has no rules")
)

// === Rules =================================================================

// Rule is a production rule
//
//    LHS -> RHS
//
// with RHS being a possibly empty sequence of symbols. Serial is the rule's
// index within its grammar. Action is an optional semantic action text, which
// is carried along for code generators.
type Rule struct {
	Serial int
	LHS    Symbol
	rhs    []Symbol
	Action string
}

// RHS returns the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return r.rhs
}

// Len returns the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for an epsilon-production.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Equals compares two rules structurally, i.e. ignoring serials and actions.
func (r *Rule) Equals(other *Rule) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil || r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != other.rhs[i] {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d: [%s] ::= [", r.Serial, r.LHS.Name))
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// === Grammars ==============================================================

// Grammar is a context-free grammar. Grammars are created by a Builder.
// The rule list is fixed upon construction; augmentation appends exactly one
// rule.
type Grammar struct {
	Name      string
	rules     []*Rule
	start     Symbol
	augmented *Rule
	symbols   *Symbols // set by Freeze
	byLHS     map[Symbol][]*Rule
}

func newGrammar(name string, start Symbol, rules []*Rule) *Grammar {
	g := &Grammar{
		Name:  name,
		rules: rules,
		start: start,
		byLHS: make(map[Symbol][]*Rule),
	}
	for _, r := range rules {
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}
	return g
}

// Start returns the start symbol. After augmentation, this is the
// synthetic start symbol S'.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Rules returns all the rules of a grammar, in order of their serials.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. serial.
func (g *Grammar) Rule(serial int) *Rule {
	if serial < 0 || serial >= len(g.rules) {
		return nil
	}
	return g.rules[serial]
}

// RulesFor returns all rules with left hand side A, in order of their serials.
func (g *Grammar) RulesFor(A Symbol) []*Rule {
	return g.byLHS[A]
}

// IsAugmented is true if Augment has been called.
func (g *Grammar) IsAugmented() bool {
	return g.augmented != nil
}

// AugmentedRule returns the rule S' -> S, or nil if the grammar has not been
// augmented.
func (g *Grammar) AugmentedRule() *Rule {
	return g.augmented
}

// Augment adds a rule S' -> S to a grammar, with S being the current start
// symbol, and makes S' the start symbol. Augment is idempotent: subsequent
// calls return the augmented rule of the first call.
//
// Augmenting a frozen grammar is an error, as it would invalidate the symbol
// numbering.
func (g *Grammar) Augment() (*Rule, error) {
	if g.augmented != nil {
		return g.augmented, nil
	}
	if g.symbols != nil {
		return nil, ErrFrozen
	}
	name := g.start.Name + "'"
	for g.hasNonTerminal(N(name)) {
		name += "'"
	}
	S := N(name)
	rule := &Rule{
		Serial: len(g.rules),
		LHS:    S,
		rhs:    []Symbol{g.start},
	}
	g.rules = append(g.rules, rule)
	g.byLHS[S] = []*Rule{rule}
	g.augmented = rule
	g.start = S
	tracer().Debugf("augmented grammar %s with %v", g.Name, rule)
	return rule, nil
}

func (g *Grammar) hasNonTerminal(A Symbol) bool {
	for _, r := range g.rules {
		if r.LHS == A {
			return true
		}
		for _, B := range r.rhs {
			if B == A {
				return true
			}
		}
	}
	return false
}

// IsFrozen is true if Freeze has been called.
func (g *Grammar) IsFrozen() bool {
	return g.symbols != nil
}

// Freeze computes the symbol numbering and the rule table of a grammar.
// It is computed once; subsequent calls return the same Symbols.
// After Freeze, the grammar must not be altered.
func (g *Grammar) Freeze() (*Symbols, error) {
	if g.symbols != nil {
		return g.symbols, nil
	}
	if len(g.rules) == 0 {
		return nil, ErrNoRules
	}
	if len(g.byLHS[g.start]) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrStartNoRules, g.start)
	}
	g.symbols = newSymbols(g.rules)
	tracer().Debugf("froze grammar %s: %d terminals, %d non-terminals, %d rules", g.Name,
		len(g.symbols.terminals), len(g.symbols.nonterminals), len(g.rules))
	return g.symbols, nil
}

// Symbols returns the symbol numbering of a frozen grammar, or nil.
func (g *Grammar) Symbols() *Symbols {
	return g.symbols
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%v", r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// === Symbol numbering ======================================================

// Symbols is the frozen numbering of the symbols of a grammar. Ids are
// dense and 0-based, terminals and non-terminals are numbered separately in
// order of first occurence within the rule list. The end-of-input terminal
// is always present.
//
// Ids are array indices for parser tables and carry no further meaning.
type Symbols struct {
	terminals    []Symbol
	nonterminals []Symbol
	ids          map[Symbol]int
	ruletable    [][]int
}

func newSymbols(rules []*Rule) *Symbols {
	syms := &Symbols{ids: make(map[Symbol]int)}
	define := func(A Symbol) {
		if _, ok := syms.ids[A]; ok {
			return
		}
		if A.IsTerminal() {
			syms.ids[A] = len(syms.terminals)
			syms.terminals = append(syms.terminals, A)
		} else {
			syms.ids[A] = len(syms.nonterminals)
			syms.nonterminals = append(syms.nonterminals, A)
		}
	}
	for _, r := range rules {
		define(r.LHS)
		for _, A := range r.rhs {
			define(A)
		}
	}
	define(End)
	syms.ruletable = make([][]int, len(rules))
	for i, r := range rules {
		row := make([]int, r.Len()+1)
		row[0] = syms.ids[r.LHS]
		for j, A := range r.rhs {
			row[j+1] = syms.ids[A]
		}
		syms.ruletable[i] = row
	}
	return syms
}

// Terminals returns all terminals, indexed by id.
func (syms *Symbols) Terminals() []Symbol {
	return syms.terminals
}

// NonTerminals returns all non-terminals, indexed by id.
func (syms *Symbols) NonTerminals() []Symbol {
	return syms.nonterminals
}

// ID returns the id of a symbol, or -1 if A is not a symbol of the grammar.
// Terminal ids and non-terminal ids overlap.
func (syms *Symbols) ID(A Symbol) int {
	if id, ok := syms.ids[A]; ok {
		return id
	}
	return -1
}

// TerminalID returns the id of a terminal, or -1.
func (syms *Symbols) TerminalID(A Symbol) int {
	if !A.IsTerminal() {
		return -1
	}
	return syms.ID(A)
}

// NonTerminalID returns the id of a non-terminal, or -1.
func (syms *Symbols) NonTerminalID(A Symbol) int {
	if A.IsTerminal() {
		return -1
	}
	return syms.ID(A)
}

// RuleTable returns a table of the form
//
//    RuleTable[serial] = [ lhsID, rhsID_1, …, rhsID_n ]
//
// For a reduce by rule r a parser pops n = len(RuleTable[r])-1 symbols off the
// stack and pushes the non-terminal with id lhsID.
func (syms *Symbols) RuleTable() [][]int {
	return syms.ruletable
}
