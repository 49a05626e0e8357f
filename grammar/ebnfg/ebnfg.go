/*
Package ebnfg loads grammars from EBNF, as understood by golang.org/x/exp/ebnf:

	Expr   = Expr "+" Term | Term .
	Term   = Term "*" Factor | Factor .
	Factor = "(" Expr ")" | int .

Every production is turned into one rule per alternative. Quoted tokens
are terminals, as are names without a production of their own (`int` in the
example above). Optional parts, repetitions and groups are replaced by
synthesized non-terminals:

	[ x ]    H → x | ε
	{ x }    H → H x | ε
	( x )    H → x

The left hand side of the first production in source order is the start
symbol of the grammar. Character ranges ("a" … "z") are not supported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ebnfg

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/ebnf"
)

// tracer traces with key 'lrtab.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.grammar")
}

// ErrUnsupported is returned for EBNF constructs which cannot be translated.
var ErrUnsupported = errors.New("unsupported EBNF expression")

// Load reads an EBNF grammar from r and converts it to a grammar.
// name is used as grammar name and as file name in error messages.
func Load(name string, r io.Reader) (*grammar.Grammar, error) {
	productions, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, err
	}
	if len(productions) == 0 {
		return nil, grammar.ErrNoRules
	}
	l := &loader{
		b:       grammar.NewBuilder(name),
		defined: productions,
		helpers: make(map[string]bool),
	}
	ps := inSourceOrder(productions)
	l.b.Start(ps[0].Name.String)
	for _, p := range ps {
		if err := l.production(grammar.N(p.Name.String), p.Expr); err != nil {
			return nil, fmt.Errorf("%s: %w", p.Pos(), err)
		}
	}
	g, err := l.b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded grammar %s with %d rules", name, g.Size())
	return g, nil
}

func inSourceOrder(productions ebnf.Grammar) []*ebnf.Production {
	ps := make([]*ebnf.Production, 0, len(productions))
	for _, p := range productions {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		return ps[i].Pos().Offset < ps[j].Pos().Offset
	})
	return ps
}

type loader struct {
	b       *grammar.Builder
	defined ebnf.Grammar
	helpers map[string]bool
}

// production adds one rule for every alternative of expr.
func (l *loader) production(lhs grammar.Symbol, expr ebnf.Expression) error {
	for _, alt := range alternatives(expr) {
		rhs, err := l.sequence(lhs, alt)
		if err != nil {
			return err
		}
		l.b.Rule(lhs, rhs...)
	}
	return nil
}

func alternatives(expr ebnf.Expression) ebnf.Alternative {
	if alts, ok := expr.(ebnf.Alternative); ok {
		return alts
	}
	return ebnf.Alternative{expr}
}

// sequence converts an alternative to a right hand side.
func (l *loader) sequence(lhs grammar.Symbol, alt ebnf.Expression) ([]grammar.Symbol, error) {
	var seq ebnf.Sequence
	switch x := alt.(type) {
	case nil:
	case ebnf.Sequence:
		seq = x
	default:
		seq = ebnf.Sequence{x}
	}
	rhs := make([]grammar.Symbol, 0, len(seq))
	for _, e := range seq {
		A, err := l.symbol(lhs, e)
		if err != nil {
			return nil, err
		}
		rhs = append(rhs, A)
	}
	return rhs, nil
}

// symbol converts a single element of a sequence.
func (l *loader) symbol(lhs grammar.Symbol, e ebnf.Expression) (grammar.Symbol, error) {
	switch x := e.(type) {
	case *ebnf.Name:
		if _, ok := l.defined[x.String]; ok {
			return grammar.N(x.String), nil
		}
		return grammar.T(x.String), nil
	case *ebnf.Token:
		if x.String == "" {
			return grammar.Empty, nil
		}
		return grammar.T(x.String), nil
	case *ebnf.Group:
		H := l.helper(lhs)
		return H, l.production(H, x.Body)
	case *ebnf.Option:
		H := l.helper(lhs)
		l.b.Rule(H)
		return H, l.production(H, x.Body)
	case *ebnf.Repetition:
		H := l.helper(lhs)
		l.b.Rule(H)
		for _, alt := range alternatives(x.Body) { // H → H alt
			rhs, err := l.sequence(H, alt)
			if err != nil {
				return H, err
			}
			l.b.Rule(H, append([]grammar.Symbol{H}, rhs...)...)
		}
		return H, nil
	case *ebnf.Range:
		return grammar.Symbol{}, fmt.Errorf("%w: range %q … %q", ErrUnsupported, x.Begin.String, x.End.String)
	case *ebnf.Bad:
		return grammar.Symbol{}, fmt.Errorf("%s: %s", x.Pos(), x.Error)
	}
	return grammar.Symbol{}, fmt.Errorf("%w: %T", ErrUnsupported, e)
}

// helper creates a unique name for a synthesized non-terminal.
func (l *loader) helper(lhs grammar.Symbol) grammar.Symbol {
	for n := len(l.helpers) + 1; ; n++ {
		name := fmt.Sprintf("%s_%d", lhs.Name, n)
		if _, ok := l.defined[name]; !ok && !l.helpers[name] {
			l.helpers[name] = true
			tracer().Debugf("synthesized non-terminal %s", name)
			return grammar.N(name)
		}
	}
}
