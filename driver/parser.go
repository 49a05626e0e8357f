package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lrtab"
	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/lrtab/lr"
	"github.com/npillmayer/lrtab/scanner"
)

// ErrNotInitialized is returned for parsers without tables.
var ErrNotInitialized = errors.New("parser not initialized")

// SyntaxError is returned by Parse if the input is not a sentence of the grammar.
type SyntaxError struct {
	State    int              // parser state at the time of the error
	Token    lrtab.Token      // offending token
	Expected []grammar.Symbol // terminals acceptable in State
}

func (e *SyntaxError) Error() string {
	var exp []string
	for _, a := range e.Expected {
		exp = append(exp, a.String())
	}
	return fmt.Sprintf("syntax error at %q %v in state %d, expected one of [%s]", e.Token.Lexeme(),
		e.Token.Span(), e.State, strings.Join(exp, " "))
}

// Parser is a table-driven shift/reduce parser. Create and initialize one with
// driver.NewParser(...). A parser may be used for more than one parse, but not
// concurrently.
type Parser struct {
	T          *lr.Tables
	Semantics  func(r *grammar.Rule, children []*Node) interface{} // optional semantic action
	stack      []stackitem                                         // parser stack
	reductions []int                                               // serials of reduced rules
	tree       *Node
}

// We store pairs of states and sub-trees on the parse stack.
type stackitem struct {
	state int   // ID of a CFSM state
	node  *Node // terminal or non-terminal node
}

// NewParser creates a parser for LR tables.
func NewParser(T *lr.Tables) *Parser {
	return &Parser{
		T:     T,
		stack: make([]stackitem, 0, 512),
	}
}

// Parse starts a new parse, given a scanner tokenizing the input.
//
// The parser returns true if the input string has been accepted. For inputs
// which are not accepted, the error is a *SyntaxError.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.T == nil || p.T.StateCount() == 0 {
		tracer().Errorf("parser not initialized")
		return false, ErrNotInitialized
	}
	p.stack = append(p.stack[:0], stackitem{state: 0}) // start state is 0
	p.reductions = p.reductions[:0]
	p.tree = nil
	token := scan.NextToken()
	for {
		col := int(token.TokType())
		state := p.stack[len(p.stack)-1].state // TOS
		if col < 0 || col >= len(p.T.Terminals) {
			return false, p.syntaxError(state, token)
		}
		tracer().Debugf("got token %q/%v from scanner", token.Lexeme(), p.T.Terminals[col])
		action := p.T.Action[state][col]
		tracer().Debugf("action(%d,%v) = %v", state, p.T.Terminals[col], action)
		switch action.Kind {
		case lr.AcceptAction:
			p.tree = p.stack[len(p.stack)-1].node
			tracer().Infof("accepted input, %d reductions", len(p.reductions))
			return true, nil
		case lr.ShiftAction:
			tracer().Debugf("shifting, next state = %d", action.Target)
			p.stack = append(p.stack, stackitem{ // push a terminal onto stack
				state: action.Target,
				node: &Node{
					Symbol: p.T.Terminals[col],
					Rule:   -1,
					Token:  token,
					Span:   token.Span(),
				},
			})
			token = scan.NextToken()
		case lr.ReduceAction:
			if err := p.reduce(action.Target, token); err != nil {
				return false, err
			}
		default:
			return false, p.syntaxError(state, token)
		}
	}
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as states
//
//    [TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
func (p *Parser) reduce(serial int, lookahead lrtab.Token) error {
	row := p.T.RuleTable[serial]
	rule := p.T.G.Rule(serial)
	tracer().Infof("reduce %v", rule)
	n := len(row) - 1
	handle := make([]*Node, n)
	for i := range handle {
		handle[i] = p.stack[len(p.stack)-n+i].node
	}
	p.stack = p.stack[:len(p.stack)-n] // pop handle
	node := &Node{
		Symbol:   p.T.NonTerminals[row[0]],
		Rule:     serial,
		Children: handle,
	}
	for _, child := range handle {
		node.Span = node.Span.Extend(child.Span)
	}
	if n == 0 { // epsilon was just before lookahead
		pos := lookahead.Span().From()
		node.Span = lrtab.Span{pos, pos}
	}
	if p.Semantics != nil {
		node.Value = p.Semantics(rule, handle)
	}
	state := p.stack[len(p.stack)-1].state // TOS
	next := p.T.Goto[state][row[0]]
	if next == lr.NoState {
		return fmt.Errorf("no GOTO entry for state %d and %v", state, node.Symbol)
	}
	tracer().Debugf("reduced to next state = %d", next)
	p.stack = append(p.stack, stackitem{state: next, node: node}) // push a non-terminal
	p.reductions = append(p.reductions, serial)
	return nil
}

func (p *Parser) syntaxError(state int, token lrtab.Token) error {
	err := &SyntaxError{State: state, Token: token}
	for col, a := range p.T.Action[state] {
		if !a.IsError() {
			err.Expected = append(err.Expected, p.T.Terminals[col])
		}
	}
	tracer().Errorf("%v", err)
	return err
}

// Reductions returns the serials of the rules reduced during the last parse,
// in order of reduction. Reversed, this is a right-most derivation.
func (p *Parser) Reductions() []int {
	r := make([]int, len(p.reductions))
	copy(r, p.reductions)
	return r
}

// Tree returns the derivation tree of the last successful parse, or nil.
func (p *Parser) Tree() *Node {
	return p.tree
}
