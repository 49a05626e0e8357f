/*
Package scanner defines an interface for scanners to be used with parsers
driven by the tables of package lr.

Tokens handed to a table-driven parser carry the column index of their terminal
in the ACTION table as token type. ForTerminals creates a tokenizer, backed by
the Go std lib 'text/scanner', which does this mapping for the terminals of a
set of parser tables. An adapter for lexmachine lives in sub-package `lexmach`.

	T, _ := lr.BuildLR1(g)
	tokenizer := scanner.ForTerminals(T, "input", strings.NewReader("a + b"))
	for {
		token := tokenizer.NextToken()
		…
		if token.TokType() == tokenizer.EndType() {
			break
		}
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrtab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.scanner")
}
