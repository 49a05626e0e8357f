/*
Command lrtab constructs LR(0) or canonical LR(1) parser tables for a grammar
given in EBNF, and lets users try out the tables on input sentences.

	lrtab tables expr.ebnf --html expr.html   # print and export tables
	lrtab parse expr.ebnf "1 + 2 * 3"          # parse a sentence, print the tree
	lrtab repl expr.ebnf                       # parse sentences interactively

Conflicts are reported together with the items of the conflicting state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.cli'
func tracer() tracing.Trace {
	return tracing.Select("lrtab.cli")
}
