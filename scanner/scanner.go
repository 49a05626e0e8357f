package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/lrtab"
)

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Unknown is the token type for lexemes which do not denote a terminal.
const Unknown lrtab.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lrtab.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface. Token types are the token
// categories of text/scanner, or the rune itself for single characters.
func (t *DefaultTokenizer) NextToken() lrtab.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   lrtab.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   lrtab.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   lrtab.TokType
	lexeme string
	Val    interface{}
	span   lrtab.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ lrtab.TokType, lexeme string, span lrtab.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface lrtab.Token.
func (t DefaultToken) TokType() lrtab.TokType {
	return t.kind
}

// Value is part of interface lrtab.Token.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of interface lrtab.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface lrtab.Token.
func (t DefaultToken) Span() lrtab.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q>", t.kind, t.lexeme)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}
