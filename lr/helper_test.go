package lr

import (
	"strings"
	"testing"

	"github.com/npillmayer/lrtab/grammar"
)

// makeGrammar creates a grammar from rules of the form "A -> x B c".
// Symbols occuring as a left hand side are non-terminals, all others are
// terminals. An empty right hand side or "ε" denotes an epsilon-production.
// The left hand side of the first rule is the start symbol.
func makeGrammar(t *testing.T, rules ...string) *grammar.Grammar {
	t.Helper()
	lhs := make(map[string]bool)
	split := make([][]string, len(rules))
	for i, r := range rules {
		parts := strings.SplitN(r, "->", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed test rule %q", r)
		}
		split[i] = append([]string{strings.TrimSpace(parts[0])}, strings.Fields(parts[1])...)
		lhs[split[i][0]] = true
	}
	b := grammar.NewBuilder("G")
	for _, r := range split {
		rb := b.LHS(r[0])
		for _, name := range r[1:] {
			switch {
			case name == "ε":
			case lhs[name]:
				rb.N(name)
			default:
				rb.T(name)
			}
		}
		rb.End()
	}
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// parse simulates a table-driven parser on a sequence of terminals and
// returns the serials of the reduced rules, in order.
func parse(t *testing.T, T *Tables, input ...string) ([]int, bool) {
	t.Helper()
	syms := T.G.Symbols()
	tokens := make([]int, 0, len(input)+1)
	for _, a := range input {
		id := syms.TerminalID(grammar.T(a))
		if id < 0 {
			t.Fatalf("unknown terminal %q", a)
		}
		tokens = append(tokens, id)
	}
	tokens = append(tokens, syms.TerminalID(grammar.End))
	stack := []int{0}
	var reductions []int
	for pos := 0; ; {
		state := stack[len(stack)-1]
		action := T.Action[state][tokens[pos]]
		switch action.Kind {
		case ShiftAction:
			stack = append(stack, action.Target)
			pos++
		case ReduceAction:
			row := T.RuleTable[action.Target]
			stack = stack[:len(stack)-(len(row)-1)]
			next := T.Goto[stack[len(stack)-1]][row[0]]
			if next == NoState {
				t.Fatalf("no GOTO entry after reducing rule %d", action.Target)
			}
			stack = append(stack, next)
			reductions = append(reductions, action.Target)
		case AcceptAction:
			return reductions, true
		default:
			return reductions, false
		}
	}
}
