/*
Package grammar implements context-free grammars as input for LR table construction.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
identified by their literal value. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("B").N("B").End()    // S  ->  B B
    b.LHS("B").T("a").N("B").End()    // B  ->  a B
    b.LHS("B").T("b").End()           // B  ->  b
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [B B]
   1: [B] ::= [a B]
   2: [B] ::= [b]

Augmentation and Freezing

Before tables can be built, a grammar is augmented with a synthetic rule
S' -> S, which gives the parser a clean accept condition. Augmentation is
idempotent.

Symbol ids are not part of symbols. They are assigned by an explicit Freeze
step, which numbers terminals and non-terminals densely in first-seen order
and computes the rule table used by table-driven parsers. After Freeze, a
grammar is read-only and may be shared between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.grammar")
}
