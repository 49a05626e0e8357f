/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of lrtab.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The easiest way to get a scanner is to let lexmach derive one from parser tables.
Every terminal of the grammar then is either

	- a class terminal ("ident", "int", "float", "number", "string"), matching a
	  whole class of lexemes,
	- a keyword, if it consists of letters, digits and underscores only,
	- or a literal, matched character by character.

White space is skipped. Token types are the column indices of the terminals in the
ACTION table, and at the end of input a token for the end-of-input terminal is produced.

	T, _ := lr.BuildLR1(g)
	LM, err := lexmach.FromTables(T)
	if err != nil {
		// do error handling
	}

Clients who need more control over lexmachine may set it up themselves,
by providing keywords and regular expressions:

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until EOF.

	for … { // feed token into parser
		token := scan.NextToken()
		if token.TokType() != LM.EndType {
			…
		}
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
