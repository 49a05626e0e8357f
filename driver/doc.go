/*
Package driver provides a table-driven shift/reduce parser. Clients use
package lr to construct parser tables for a grammar, either with the LR(0)
or the canonical LR(1) method. The parser utilizes these tables to create a
right derivation for a given input, provided through a scanner interface.

The parser relies on the table artifacts only: the ACTION table, the GOTO table
and the rule table, i.e. it consumes exactly what a code generator would emit.
Tokens are expected to carry the column of their terminal in the ACTION table
as token type, which is what the tokenizers of package scanner do.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := grammar.NewBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("ident").End()  // Var  --> Sign ident
	b.LHS("Sign").T("+").End()               // Sign --> +
	b.LHS("Sign").T("-").End()               // Sign --> -
	b.LHS("Sign").Epsilon()                  // Sign -->
	g, err := b.Grammar()

This grammar is subjected to table generation:

	T, err := lr.BuildLR1(g)
	if err != nil { ... }  // probably an *lr.ConflictError

Finally parse some input:

	p := driver.NewParser(T)
	accepted, err := p.Parse(scanner.ForTerminals(T, "input", strings.NewReader("+a")))

After a successful parse, the sequence of reduced rules is available from
Reductions, and the derivation tree from Tree. Clients may instrument the parser
with semantic operations by setting Parser.Semantics.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.driver'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.driver")
}
