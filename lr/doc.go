/*
Package lr implements the construction of canonical LR(0) and LR(1) parser tables.

Items and Item Sets

An item is a grammar rule with a dot marking how much of its right hand side
has been matched. LR(1) items additionally carry a set of lookahead terminals.
Item sets have value semantics: two item sets denote the same parser state
if and only if they contain the same items, regardless of order.

FIRST Sets

For LR(1) construction, the lookahead of an item expanded during closure
depends on the terminals which may start the remainder of its parent item.
FirstSets computes these sets for every non-terminal of a grammar, and for
arbitrary symbol sequences.

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->
    g, _ := b.Grammar()
    fs := lr.NewFirstSets(g)
    fs.First(grammar.N("A"))        // => { 'b' 'd' #ε }

Parser Construction

From a grammar, a characteristic finite state machine (CFSM) is built,
starting from the closure of the augmented start item. Every state is then
transformed into a row of the ACTION table (one column per terminal) and a
row of the GOTO table (one column per non-terminal).

    tables, err := lr.BuildLR1(g)   // or lr.BuildLR0(g)
    if err != nil {
        var conflict *lr.ConflictError
        if errors.As(err, &conflict) { … }
    }

Conflicts are never resolved: a grammar which is not LR(0) (or LR(1),
respectively) is rejected and no tables are returned.
The CFSM is kept with the tables. This is intended
for debugging purposes. It can be exported to Graphviz's Dot-format.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.lr")
}
