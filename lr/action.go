package lr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lrtab/grammar"
)

// ActionKind is the kind of a parser action.
type ActionKind uint8

// Kinds of parser actions. The zero value of Action is an error action.
const (
	ErrorAction ActionKind = iota
	ShiftAction
	ReduceAction
	AcceptAction
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	}
	return "error"
}

// MarshalText encodes an action kind by its name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is an entry of an ACTION table. For shift actions, Target is the
// state to shift to; for reduce actions, it is the serial of the rule to
// reduce. Actions are values and may be compared with ==.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Target int        `json:"target"`
}

// Shift creates a shift action to a state.
func Shift(state int) Action {
	return Action{Kind: ShiftAction, Target: state}
}

// Reduce creates a reduce action for a rule.
func Reduce(rule int) Action {
	return Action{Kind: ReduceAction, Target: rule}
}

// Accept returns the accept action.
func Accept() Action {
	return Action{Kind: AcceptAction}
}

// IsError is true for the error action.
func (a Action) IsError() bool {
	return a.Kind == ErrorAction
}

func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.Target)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.Target)
	case AcceptAction:
		return "acc"
	}
	return "err"
}

// ConflictError is returned by table construction if two different actions
// apply to the same state and terminal.
type ConflictError struct {
	State     int            // the conflicting state
	Symbol    grammar.Symbol // the lookahead terminal
	Existing  Action         // the action found first
	Attempted Action         // the action colliding with Existing
	Items     *ItemSet       // the items of the conflicting state
}

// Kind describes the kind of conflict, e.g. "shift/reduce".
func (c *ConflictError) Kind() string {
	kinds := []string{c.Existing.Kind.String(), c.Attempted.Kind.String()}
	if c.Attempted.Kind < c.Existing.Kind {
		kinds[0], kinds[1] = kinds[1], kinds[0]
	}
	return strings.Join(kinds, "/")
}

func (c *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict in state %d on %v: %v vs. %v", c.Kind(), c.State, c.Symbol,
		c.Existing, c.Attempted)
}
