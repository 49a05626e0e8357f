package lexmach

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/lrtab"
	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/lrtab/lr"
	"github.com/npillmayer/lrtab/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lrtab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrtab.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer   *lexmachine.Lexer
	EndType lrtab.TokType // token type at end of input
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
// Literals and keywords take precedence over patterns added by init,
// if both match an input of the same length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{EndType: scanner.EOF}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(escape(lit)), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name, tokenIds[name]))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// classPatterns are the regular expressions for class terminals, in order of
// precedence.
var classPatterns = []struct {
	name, pattern string
}{
	{"ident", `([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`},
	{"int", `[0-9]+`},
	{"float", `[0-9]+\.[0-9]+`},
	{"number", `[0-9]+(\.[0-9]+)?`},
	{"string", `\"[^"]*\"`},
}

var isKeyword = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// FromTables creates a lexmachine adapter for the terminals of parser tables.
// Token types are column indices of the ACTION table.
func FromTables(t *lr.Tables) (*LMAdapter, error) {
	tokenIds := make(map[string]int, len(t.Terminals))
	var literals, keywords []string
	classes := make(map[string]bool)
	for _, p := range classPatterns {
		classes[p.name] = true
	}
	end := scanner.EOF
	for col, a := range t.Terminals {
		switch {
		case a == grammar.End:
			end = col
			continue
		case classes[a.Name]:
		case isKeyword.MatchString(a.Name):
			keywords = append(keywords, a.Name)
		default:
			literals = append(literals, a.Name)
		}
		tokenIds[a.Name] = col
	}
	init := func(lexer *lexmachine.Lexer) {
		for _, p := range classPatterns {
			if col, ok := tokenIds[p.name]; ok {
				lexer.Add([]byte(p.pattern), MakeToken(p.name, col))
			}
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	tracer().Debugf("lexer for %s: keywords %v, literals %v", t.G.Name, keywords, literals)
	adapter, err := NewLMAdapter(init, literals, keywords, tokenIds)
	if err != nil {
		return nil, fmt.Errorf("cannot create lexer for terminals of %s: %w", t.G.Name, err)
	}
	adapter.EndType = lrtab.TokType(end)
	return adapter, nil
}

// escape quotes every non-alphanumeric character of a literal.
func escape(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !isKeyword.MatchString(string(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, end: lm.EndType, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	end     lrtab.TokType
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unconsumed input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() lrtab.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is && ui.FailTC > lms.scanner.TC {
			lms.scanner.TC = ui.FailTC
		} else {
			lms.scanner.TC++
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		at := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(lms.end, "", lrtab.Span{at, at})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	t := scanner.MakeDefaultToken(
		lrtab.TokType(token.Type),
		string(token.Lexeme),
		lrtab.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
	t.Val = token.Value
	return t
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
