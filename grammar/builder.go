package grammar

import "fmt"

// Builder is a helper type to construct grammars. Create one with NewBuilder
// and add rules with LHS(…):
//
//    b := grammar.NewBuilder("Signed Variables")
//    b.LHS("Var").N("Sign").T("a").End()     // Var  --> Sign a
//    b.LHS("Sign").T("+").End()              // Sign --> +
//    b.LHS("Sign").T("-").End()              // Sign --> -
//    b.LHS("Sign").Epsilon()                 // Sign -->
//    g, err := b.Grammar()
//
// The start symbol is the left hand side of the first rule, unless it is set
// explicitly with Start(…).
type Builder struct {
	name  string
	start Symbol
	rules []*Rule
	err   error
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Start sets the start symbol.
func (b *Builder) Start(name string) *Builder {
	b.start = N(name)
	return b
}

// LHS starts a new rule with left hand side name.
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{
		b:   b,
		lhs: N(name),
	}
}

// Rule appends a rule given as a left hand side and a sequence of symbols.
// Empty symbols within rhs are dropped.
func (b *Builder) Rule(lhs Symbol, rhs ...Symbol) *Builder {
	rb := &RuleBuilder{b: b, lhs: lhs}
	for _, A := range rhs {
		rb.add(A)
	}
	rb.End()
	return b
}

// Grammar returns the grammar constructed so far.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.rules) == 0 {
		return nil, ErrNoRules
	}
	start := b.start
	if start.IsNull() {
		start = b.rules[0].LHS
	}
	rules := make([]*Rule, len(b.rules))
	copy(rules, b.rules)
	g := newGrammar(b.name, start, rules)
	if len(g.RulesFor(start)) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrStartNoRules, start)
	}
	return g, nil
}

// RuleBuilder collects the right hand side of a single rule.
type RuleBuilder struct {
	b      *Builder
	lhs    Symbol
	rhs    []Symbol
	action string
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.add(N(name))
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(value string) *RuleBuilder {
	return rb.add(T(value))
}

// Action attaches a semantic action text to the rule.
func (rb *RuleBuilder) Action(text string) *RuleBuilder {
	rb.action = text
	return rb
}

func (rb *RuleBuilder) add(A Symbol) *RuleBuilder {
	switch {
	case A == Empty:
		// epsilon is the absence of symbols
	case A == End:
		rb.b.err = fmt.Errorf("rule for %v: end of input must not be used within a rule", rb.lhs)
	case A.IsNull():
		rb.b.err = fmt.Errorf("rule for %v: null symbol", rb.lhs)
	default:
		rb.rhs = append(rb.rhs, A)
	}
	return rb
}

// End closes the rule and appends it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	if rb.lhs.IsTerminal() && rb.b.err == nil {
		rb.b.err = fmt.Errorf("terminal %v used as left hand side of a rule", rb.lhs)
	}
	r := &Rule{
		Serial: len(rb.b.rules),
		LHS:    rb.lhs,
		rhs:    rb.rhs,
		Action: rb.action,
	}
	rb.b.rules = append(rb.b.rules, r)
	return r
}

// Epsilon closes the rule as an epsilon-production.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}
