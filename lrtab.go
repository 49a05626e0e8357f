package lrtab

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. For tokens handed to a table-driven
// parser, the token type is the column index of a terminal in the ACTION table.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a keyword:
//
//    TokType = 3           // column of terminal 'if' in the ACTION table
//    Lexeme  = "if"        // lexeme how it appeared in the input stream
//    Span    = 67…69       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
// A null span is neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
