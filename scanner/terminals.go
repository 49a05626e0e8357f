package scanner

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/lrtab"
	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/lrtab/lr"
)

// DefaultClasses maps token categories of text/scanner to the names of
// terminals which stand for a whole class of lexemes.
var DefaultClasses = map[rune]string{
	Ident:     "ident",
	Int:       "int",
	Float:     "float",
	String:    "string",
	RawString: "string",
	Char:      "char",
}

// TerminalTokenizer is a tokenizer for the terminals of parser tables.
// Lexemes equal to the name of a terminal (keywords and operators) are
// mapped to this terminal; other identifiers, numbers and strings are mapped
// to the class terminals given by DefaultClasses, if the grammar has them.
// Token types are column indices of the ACTION table.
//
// Operators are matched longest first. Characters read beyond the longest
// matching operator are kept and scanned again by the next call.
type TerminalTokenizer struct {
	*DefaultTokenizer
	ids      map[string]int  // terminal name → column
	prefixes map[string]bool // proper prefixes of multi-character operators
	classes  map[rune]string // token category → terminal name
	pending  []pendingRune   // characters read ahead while matching operators
	end      lrtab.TokType
}

type pendingRune struct {
	r      rune
	offset uint64
}

var _ Tokenizer = (*TerminalTokenizer)(nil)

// ForTerminals creates a tokenizer for the terminals of t, reading from input.
// Option UnifyStrings is set by default, so chars and raw strings map to the
// string class.
func ForTerminals(t *lr.Tables, sourceID string, input io.Reader, opts ...Option) *TerminalTokenizer {
	opts = append([]Option{UnifyStrings(true)}, opts...)
	tt := &TerminalTokenizer{
		DefaultTokenizer: GoTokenizer(sourceID, input, opts...),
		ids:              make(map[string]int, len(t.Terminals)),
		prefixes:         make(map[string]bool),
		classes:          make(map[rune]string, len(DefaultClasses)),
	}
	for col, a := range t.Terminals {
		if a == grammar.End {
			tt.end = lrtab.TokType(col)
			continue
		}
		tt.ids[a.Name] = col
		r := []rune(a.Name)
		for n := 1; n < len(r); n++ {
			tt.prefixes[string(r[:n])] = true
		}
	}
	for cat, name := range DefaultClasses {
		tt.classes[cat] = name
	}
	return tt
}

// MapClass maps a token category of text/scanner (e.g., Ident) to a terminal.
func (tt *TerminalTokenizer) MapClass(category rune, terminal string) *TerminalTokenizer {
	tt.classes[category] = terminal
	return tt
}

// EndType returns the token type produced at the end of input.
func (tt *TerminalTokenizer) EndType() lrtab.TokType {
	return tt.end
}

// NextToken is part of the Tokenizer interface. Lexemes which do not
// correspond to any terminal are reported to the error handler and returned
// with token type Unknown.
func (tt *TerminalTokenizer) NextToken() lrtab.Token {
	var tok DefaultToken
	if len(tt.pending) > 0 {
		p := tt.pending[0]
		tt.pending = tt.pending[1:]
		tok = MakeDefaultToken(lrtab.TokType(p.r), string(p.r),
			lrtab.Span{p.offset, p.offset + uint64(utf8.RuneLen(p.r))})
	} else {
		tok = tt.DefaultTokenizer.NextToken().(DefaultToken)
		if tok.kind == EOF {
			tok.kind = tt.end
			return tok
		}
	}
	if tok.kind > 0 { // single character, may start an operator
		tok = tt.longestOperator(tok)
	}
	category := rune(tok.kind)
	if col, ok := tt.ids[tok.lexeme]; ok {
		tok.kind = lrtab.TokType(col)
	} else if col, ok := tt.ids[tt.classes[category]]; ok {
		tok.kind = lrtab.TokType(col)
		tok.Val = value(category, tok.lexeme)
	} else {
		tt.Error(fmt.Errorf("%s: no terminal for %q", tt.Position, tok.lexeme))
		tok.kind = Unknown
	}
	tracer().Debugf("token %v @ %v", tok, tok.span)
	return tok
}

// longestOperator extends a single-character token to the longest operator
// terminal starting with it. Characters read past that operator are put back
// into the pending queue.
func (tt *TerminalTokenizer) longestOperator(tok DefaultToken) DefaultToken {
	lexeme, end := tok.lexeme, tok.span[1]
	var readAhead []pendingRune
	for tt.prefixes[lexeme] {
		r, offset := tt.peekRune()
		if r == EOF {
			break
		}
		next := lexeme + string(r)
		if !tt.prefixes[next] && !tt.isTerminal(next) {
			break
		}
		tt.nextRune()
		readAhead = append(readAhead, pendingRune{r: r, offset: offset})
		lexeme = next
		if tt.isTerminal(lexeme) {
			tok.lexeme, end = lexeme, offset+uint64(utf8.RuneLen(r))
			readAhead = nil
		}
	}
	if len(readAhead) > 0 {
		tracer().Debugf("no operator for %q, re-scanning %d characters", lexeme, len(readAhead))
		tt.pending = append(readAhead, tt.pending...)
	}
	tok.span[1] = end
	return tok
}

func (tt *TerminalTokenizer) peekRune() (rune, uint64) {
	if len(tt.pending) > 0 {
		return tt.pending[0].r, tt.pending[0].offset
	}
	return tt.Peek(), uint64(tt.Pos().Offset)
}

func (tt *TerminalTokenizer) nextRune() {
	if len(tt.pending) > 0 {
		tt.pending = tt.pending[1:]
		return
	}
	tt.Next()
}

func (tt *TerminalTokenizer) isTerminal(name string) bool {
	_, ok := tt.ids[name]
	return ok
}

func value(category rune, lexeme string) interface{} {
	switch category {
	case Int:
		if n, err := strconv.ParseInt(lexeme, 0, 64); err == nil {
			return n
		}
	case Float:
		if f, err := strconv.ParseFloat(lexeme, 64); err == nil {
			return f
		}
	case String, RawString, Char:
		if s, err := strconv.Unquote(lexeme); err == nil {
			return s
		}
	}
	return lexeme
}
