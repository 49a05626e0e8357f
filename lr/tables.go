package lr

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/lrtab/grammar"
)

// NoState is the GOTO table entry for 'no transition'.
const NoState = -1

// Method is an LR table construction method.
type Method int

// Supported construction methods.
const (
	LR0 Method = iota
	LR1
)

func (m Method) String() string {
	if m == LR0 {
		return "LR(0)"
	}
	return "LR(1)"
}

// === Closure and Goto-Set Operations =======================================

// ClosureLR0 computes the closure of an item set, ignoring lookaheads: for
// every item A -> α • B β and every rule B -> γ, item B -> • γ is added,
// until no more items are added. S is not modified.
func ClosureLR0(g *grammar.Grammar, S *ItemSet) *ItemSet {
	C := S.Copy() // add start items to closure
	expanded := make(map[grammar.Symbol]bool)
	for n := 0; n < C.Size(); n++ { // C grows while we iterate
		B, ok := C.items[n].PeekSymbol()
		if !ok || B.IsTerminal() || expanded[B] {
			continue
		}
		expanded[B] = true
		for _, r := range g.RulesFor(B) {
			C.Add(StartItem(r))
		}
	}
	return C
}

// ClosureLR1 computes the closure of an item set of LR(1) items: for every
// item [A -> α • B β, L] and every rule B -> γ, item [B -> • γ, FIRST(β L)] is
// added, until no more items are added. Afterwards, items with identical
// cores are merged (see Shrink). S is not modified.
func ClosureLR1(g *grammar.Grammar, fs *FirstSets, S *ItemSet) *ItemSet {
	C := S.Copy()
	expanded := make(map[string]bool)
	for n := 0; n < C.Size(); n++ {
		item := C.items[n]
		B, ok := item.PeekSymbol()
		if !ok || B.IsTerminal() {
			continue
		}
		la := fs.FirstOf(item.Rest(), item.la)
		k := B.Name + "/" + la.key()
		if expanded[k] {
			continue
		}
		expanded[k] = true
		for _, r := range g.RulesFor(B) {
			C.Add(NewLR1Item(r, 0, la))
		}
	}
	return Shrink(C)
}

// gotoSet collects the items of a closure advanced over A:
// for every item N -> … • A … in closure, add N -> … A • … .
func gotoSet(closure *ItemSet, A grammar.Symbol) *ItemSet {
	gotoset := NewItemSet()
	for _, i := range closure.items {
		if B, ok := i.PeekSymbol(); ok && B == A {
			gotoset.Add(i.Advance())
		}
	}
	return gotoset
}

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int      // serial ID of this state
	items  *ItemSet // configuration items within this state
	Accept bool     // is this an accepting state?
}

// Items returns the (closed) item set of a state.
func (s *CFSMState) Items() *ItemSet {
	return s.items
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.items.Dump()
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule(g *grammar.Grammar) bool {
	for _, i := range s.items.items {
		if i.rule == g.AugmentedRule() && i.IsFinal() {
			return true
		}
	}
	return false
}

// CFSM edge between 2 states, directed and labeled with a symbol.
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label grammar.Symbol
}

// CFSM is the characteristic finite state machine for an LR grammar, i.e. the
// canonical collection of item sets together with their transitions.
// It will be constructed by BuildLR0 or BuildLR1.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes.
type CFSM struct {
	g      *grammar.Grammar
	states *arraylist.List         // all the states, indexed by ID
	edges  *arraylist.List         // all the edges between states
	index  map[string][]*CFSMState // states by content hash of their items
	hash   func(*ItemSet) string   // content hash, may collide
	next   map[int]map[grammar.Symbol]*CFSMState
	S0     *CFSMState // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *grammar.Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: arraylist.New(),
		edges:  arraylist.New(),
		index:  make(map[string][]*CFSMState),
		hash:   (*ItemSet).Hash,
		next:   make(map[int]map[grammar.Symbol]*CFSMState),
	}
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	x, ok := c.states.Get(id)
	if !ok {
		return nil
	}
	return x.(*CFSMState)
}

// addState adds a state for an item set, if no state with an equal item set
// is present. It returns the state for iset and true, if the state is new.
func (c *CFSM) addState(iset *ItemSet) (*CFSMState, bool) {
	h := c.hash(iset)
	for _, s := range c.index[h] {
		if s.items.Equals(iset) {
			return s, false
		}
	}
	s := &CFSMState{ID: c.states.Size(), items: iset}
	s.Accept = s.containsCompletedStartRule(c.g)
	c.states.Add(s)
	c.index[h] = append(c.index[h], s)
	return s, true
}

// addEdge adds a transition, unless s0 already has a transition for sym.
func (c *CFSM) addEdge(s0, s1 *CFSMState, sym grammar.Symbol) {
	if c.Transition(s0, sym) != nil {
		return
	}
	if c.next[s0.ID] == nil {
		c.next[s0.ID] = make(map[grammar.Symbol]*CFSMState)
	}
	c.next[s0.ID][sym] = s1
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
}

// Transition returns the target state of the edge from s labeled with A, or nil.
func (c *CFSM) Transition(s *CFSMState, A grammar.Symbol) *CFSMState {
	return c.next[s.ID][A]
}

// === Table Construction ====================================================

// Tables holds the artifacts of LR table construction. Together they are a
// complete description of a table-driven shift/reduce parser:
//
//   Terminals[t], NonTerminals[n]   column order of the tables
//   RuleTable[r] = [lhs, rhs…]      symbol ids of rule r
//   Action[state][t]                parser action for terminal t
//   Goto[state][n]                  state after reducing to non-terminal n, or NoState
//
// Tables are immutable and may be shared.
type Tables struct {
	G            *grammar.Grammar
	Method       Method
	Terminals    []grammar.Symbol
	NonTerminals []grammar.Symbol
	RuleTable    [][]int
	Action       [][]Action
	Goto         [][]int
	cfsm         *CFSM
}

// StateCount returns the number of parser states.
func (t *Tables) StateCount() int {
	return len(t.Action)
}

// CFSM returns the characteristic finite state machine the tables were built from.
func (t *Tables) CFSM() *CFSM {
	return t.cfsm
}

// ActionFor returns the action for a state and a terminal symbol.
func (t *Tables) ActionFor(state int, a grammar.Symbol) Action {
	id := t.G.Symbols().TerminalID(a)
	if state < 0 || state >= len(t.Action) || id < 0 {
		return Action{}
	}
	return t.Action[state][id]
}

// GotoFor returns the GOTO entry for a state and a non-terminal symbol.
func (t *Tables) GotoFor(state int, A grammar.Symbol) int {
	id := t.G.Symbols().NonTerminalID(A)
	if state < 0 || state >= len(t.Goto) || id < 0 {
		return NoState
	}
	return t.Goto[state][id]
}

// builder constructs the CFSM and tables breadth-first. The construction
// method is determined by the closure operation and by the predicate deciding
// whether a final item may be reduced for a given lookahead terminal.
type builder struct {
	g       *grammar.Grammar
	syms    *grammar.Symbols
	method  Method
	closure func(*ItemSet) *ItemSet
	reduces func(Item, grammar.Symbol) bool
	cfsm    *CFSM
}

// prepare augments and freezes a grammar.
func prepare(g *grammar.Grammar) (*grammar.Symbols, error) {
	if _, err := g.Augment(); err != nil {
		return nil, fmt.Errorf("cannot augment grammar %s: %w", g.Name, err)
	}
	return g.Freeze()
}

func newBuilder(g *grammar.Grammar, syms *grammar.Symbols, m Method) *builder {
	return &builder{
		g:      g,
		syms:   syms,
		method: m,
		cfsm:   emptyCFSM(g),
	}
}

// build explores the states reachable from initial. The list of states is
// the set of known states and the work queue at the same time.
func (b *builder) build(initial *ItemSet) (*Tables, error) {
	tracer().Debugf("=== build %v CFSM for %s ======================================", b.method, b.g.Name)
	terminals, nonterminals := b.syms.Terminals(), b.syms.NonTerminals()
	T := &Tables{
		G:            b.g,
		Method:       b.method,
		Terminals:    terminals,
		NonTerminals: nonterminals,
		RuleTable:    b.syms.RuleTable(),
		cfsm:         b.cfsm,
	}
	b.cfsm.S0, _ = b.cfsm.addState(b.closure(initial))
	for n := 0; n < b.cfsm.Size(); n++ {
		state := b.cfsm.State(n)
		state.Dump()
		actions := make([]Action, len(terminals))
		for t, a := range terminals {
			action, err := b.action(state, a)
			if err != nil {
				tracer().Errorf("%v", err)
				return nil, err
			}
			actions[t] = action
		}
		gotos := make([]int, len(nonterminals))
		for nt, A := range nonterminals {
			gotos[nt] = NoState
			if target := b.gotoState(state, A); target != nil {
				gotos[nt] = target.ID
			}
		}
		T.Action = append(T.Action, actions)
		T.Goto = append(T.Goto, gotos)
	}
	tracer().Infof("%v tables for %s: %d states, %d terminals, %d non-terminals", b.method, b.g.Name,
		T.StateCount(), len(terminals), len(nonterminals))
	return T, nil
}

// action computes the single action for a state and terminal a. Final items
// contribute reduce (or accept) actions, items with a before the dot contribute
// to the shift target. Two different actions are a conflict.
func (b *builder) action(state *CFSMState, a grammar.Symbol) (Action, error) {
	var action Action
	decide := func(candidate Action) error {
		if action.IsError() || action == candidate {
			action = candidate
			return nil
		}
		return &ConflictError{
			State:     state.ID,
			Symbol:    a,
			Existing:  action,
			Attempted: candidate,
			Items:     state.items,
		}
	}
	for _, i := range state.items.items {
		if !i.IsFinal() || !b.reduces(i, a) {
			continue
		}
		if i.rule == b.g.AugmentedRule() {
			if a == grammar.End {
				if err := decide(Accept()); err != nil {
					return action, err
				}
			}
			continue
		}
		if err := decide(Reduce(i.rule.Serial)); err != nil {
			return action, err
		}
	}
	if target := b.gotoState(state, a); target != nil {
		tracer().Debugf("state %d --%v--> state %d", state.ID, a, target.ID)
		if err := decide(Shift(target.ID)); err != nil {
			return action, err
		}
	}
	return action, nil
}

// gotoState computes the closed goto-set of a state for symbol A and returns
// the corresponding state, adding a new state if necessary. It returns nil if
// no item of state has A after the dot.
func (b *builder) gotoState(state *CFSMState, A grammar.Symbol) *CFSMState {
	gotoset := gotoSet(state.items, A)
	if gotoset.Empty() {
		return nil
	}
	target, _ := b.cfsm.addState(b.closure(gotoset))
	b.cfsm.addEdge(state, target, A)
	return target
}

// BuildLR0 constructs LR(0) tables for a grammar. The grammar is augmented
// and frozen, if this has not been done before.
//
// Every final item yields a reduce action for every terminal. If a grammar is
// not LR(0), a *ConflictError is returned and no tables are built.
func BuildLR0(g *grammar.Grammar) (*Tables, error) {
	syms, err := prepare(g)
	if err != nil {
		return nil, err
	}
	b := newBuilder(g, syms, LR0)
	b.closure = func(S *ItemSet) *ItemSet {
		return ClosureLR0(g, S)
	}
	b.reduces = func(Item, grammar.Symbol) bool {
		return true
	}
	return b.build(NewItemSet(StartItem(g.AugmentedRule())))
}

// BuildLR1 constructs canonical LR(1) tables for a grammar. The grammar is
// augmented and frozen, if this has not been done before.
//
// A final item yields a reduce action only for the terminals in its lookahead
// set. If a grammar is not LR(1), a *ConflictError is returned and no tables
// are built.
func BuildLR1(g *grammar.Grammar) (*Tables, error) {
	b, start, err := newLR1Builder(g)
	if err != nil {
		return nil, err
	}
	return b.build(start)
}

// newLR1Builder prepares g and returns a canonical LR(1) builder together
// with the unclosed start item set.
func newLR1Builder(g *grammar.Grammar) (*builder, *ItemSet, error) {
	syms, err := prepare(g)
	if err != nil {
		return nil, nil, err
	}
	fs := NewFirstSets(g)
	b := newBuilder(g, syms, LR1)
	b.closure = func(S *ItemSet) *ItemSet {
		return ClosureLR1(g, fs, S)
	}
	b.reduces = func(i Item, a grammar.Symbol) bool {
		return i.la.Contains(a)
	}
	start := NewLR1Item(g.AugmentedRule(), 0, NewLookahead(grammar.End))
	return b, NewItemSet(start), nil
}
