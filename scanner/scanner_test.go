package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/lrtab/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	scanner := GoTokenizer("comments", strings.NewReader(`x // comment`), SkipComments(false))
	scanner.NextToken()
	if token := scanner.NextToken(); token.TokType() != Comment {
		t.Errorf("expected comment token, is %v", token)
	}
}

func assignmentTables(t *testing.T) *lr.Tables {
	b := grammar.NewBuilder("Assignment")
	b.LHS("S").T("ident").T(":=").N("E").End()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("ident").End()
	b.LHS("F").T("int").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	T, err := lr.BuildLR1(g)
	if err != nil {
		t.Fatal(err)
	}
	return T
}

func TestForTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	T := assignmentTables(t)
	tokenizer := ForTerminals(T, "test", strings.NewReader("x := 3 * (y+42)"))
	expected := []string{"ident", ":=", "int", "*", "(", "ident", "+", "int", ")", "#eof"}
	for i, name := range expected {
		token := tokenizer.NextToken()
		if token.TokType() < 0 {
			t.Fatalf("token #%d %q is unknown", i, token.Lexeme())
		}
		if a := T.Terminals[token.TokType()]; a.Name != name {
			t.Errorf("expected token #%d to be %q, is %v (%q)", i, name, a, token.Lexeme())
		}
	}
	if tokenizer.NextToken().TokType() != tokenizer.EndType() {
		t.Errorf("expected tokenizer to stay at end of input")
	}
}

func TestTokenValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	T := assignmentTables(t)
	tokenizer := ForTerminals(T, "test", strings.NewReader("count := 42"))
	token := tokenizer.NextToken()
	if token.Value() != "count" || token.Span().From() != 0 || token.Span().To() != 5 {
		t.Errorf("unexpected identifier token %v %v", token, token.Span())
	}
	token = tokenizer.NextToken()
	if token.Lexeme() != ":=" || token.Span().Len() != 2 {
		t.Errorf("expected operator ':=' of length 2, is %v %v", token, token.Span())
	}
	token = tokenizer.NextToken()
	if token.Value() != int64(42) {
		t.Errorf("expected value 42, is %v", token.Value())
	}
}

func TestUnknownLexeme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	T := assignmentTables(t)
	tokenizer := ForTerminals(T, "test", strings.NewReader("x := 1.5 $"))
	var errs []error
	tokenizer.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	types := []int{}
	for token := tokenizer.NextToken(); token.TokType() != tokenizer.EndType(); token = tokenizer.NextToken() {
		types = append(types, int(token.TokType()))
	}
	if len(types) != 4 || types[2] != int(Unknown) || types[3] != int(Unknown) {
		t.Errorf("expected float and '$' to be unknown, types are %v", types)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, have %v", errs)
	}
	tokenizer = ForTerminals(T, "test", strings.NewReader("1.5")).MapClass(Float, "int")
	if token := tokenizer.NextToken(); token.TokType() < 0 || token.Value() != 1.5 {
		t.Errorf("expected float to be mapped to terminal 'int', is %v", token)
	}
}

func relationTables(t *testing.T) *lr.Tables {
	b := grammar.NewBuilder("Relations")
	b.LHS("S").T("ident").N("R").End()
	b.LHS("R").T("<").N("R").End()
	b.LHS("R").T("<=").N("V").End()
	b.LHS("R").T("<<=").N("V").End()
	b.LHS("R").N("V").End()
	b.LHS("V").T("ident").End()
	b.LHS("V").T("string").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	T, err := lr.BuildLR1(g)
	if err != nil {
		t.Fatal(err)
	}
	return T
}

func lexemes(t *testing.T, T *lr.Tables, input string) []string {
	t.Helper()
	tokenizer := ForTerminals(T, "test", strings.NewReader(input))
	var result []string
	for token := tokenizer.NextToken(); token.TokType() != tokenizer.EndType(); token = tokenizer.NextToken() {
		if token.TokType() == Unknown {
			t.Errorf("lexeme %q of %q is unknown", token.Lexeme(), input)
		}
		if len(result) > 10 {
			t.Fatalf("tokenizer does not terminate on %q", input)
		}
		result = append(result, token.Lexeme())
	}
	return result
}

func TestLongestOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	T := relationTables(t)
	for input, expected := range map[string]string{
		"a<=b":   "a <= b",
		"a<<=b":  "a <<= b",
		"a<<b":   "a < < b",
		"a<<<=b": "a < <<= b",
		"a < <b": "a < < b",
		"a<<":    "a < <",
	} {
		if lx := strings.Join(lexemes(t, T, input), " "); lx != expected {
			t.Errorf("expected %q to scan as %q, is %q", input, expected, lx)
		}
	}
	tokenizer := ForTerminals(T, "test", strings.NewReader("a<<b"))
	tokenizer.NextToken()
	for _, from := range []uint64{1, 2, 3} {
		token := tokenizer.NextToken()
		if token.Span().From() != from || token.Span().Len() != 1 {
			t.Errorf("expected token %q to span [%d,%d), is %v", token.Lexeme(), from, from+1, token.Span())
		}
	}
}

func TestUnifiedStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.scanner")
	defer teardown()
	//
	T := relationTables(t)
	tokenizer := ForTerminals(T, "test", strings.NewReader("x < 'c' `raw`"))
	tokenizer.NextToken()
	tokenizer.NextToken()
	for _, expected := range []string{"c", "raw"} {
		token := tokenizer.NextToken()
		if token.TokType() < 0 || T.Terminals[token.TokType()].Name != "string" {
			t.Errorf("expected %q to be a string, is %v", token.Lexeme(), token)
		}
		if token.Value() != expected {
			t.Errorf("expected value %q, is %v", expected, token.Value())
		}
	}
}
