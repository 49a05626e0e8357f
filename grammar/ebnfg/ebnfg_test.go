package ebnfg

import (
	"strings"
	"testing"

	"github.com/npillmayer/lrtab/driver"
	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/lrtab/lr"
	"github.com/npillmayer/lrtab/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprEBNF = `
Expr   = Expr "+" Term | Term .
Term   = Term "*" Factor | Factor .
Factor = "(" Expr ")" | int .
`

const listEBNF = `
List  = "[" [ Items ] "]" .
Items = Item { "," Item } .
Item  = ident .
`

func accepts(t *testing.T, T *lr.Tables, input string) bool {
	p := driver.NewParser(T)
	ok, _ := p.Parse(scanner.ForTerminals(T, input, strings.NewReader(input)))
	return ok
}

func TestLoadExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	g, err := Load("Expr", strings.NewReader(exprEBNF))
	require.NoError(t, err)
	assert.Equal(t, grammar.N("Expr"), g.Start())
	assert.Equal(t, 6, g.Size())
	r := g.Rule(0)
	assert.Equal(t, []grammar.Symbol{grammar.N("Expr"), grammar.T("+"), grammar.N("Term")}, r.RHS())
	assert.Equal(t, []grammar.Symbol{grammar.T("int")}, g.Rule(5).RHS(), "undefined name is a terminal")
	T, err := lr.BuildLR1(g)
	require.NoError(t, err)
	assert.True(t, accepts(t, T, "1 + 2 * (3 + 4)"))
	assert.False(t, accepts(t, T, "1 + + 2"))
}

func TestLoadOptionsAndRepetitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	g, err := Load("List", strings.NewReader(listEBNF))
	require.NoError(t, err)
	assert.Equal(t, grammar.N("List"), g.Start())
	assert.NotEmpty(t, g.RulesFor(grammar.N("List_1")), "option helper")
	assert.NotEmpty(t, g.RulesFor(grammar.N("Items_2")), "repetition helper")
	epsilons := 0
	for _, r := range g.Rules() {
		if r.IsEpsilon() {
			epsilons++
		}
	}
	assert.Equal(t, 2, epsilons)
	T, err := lr.BuildLR1(g)
	require.NoError(t, err)
	for _, input := range []string{"[]", "[a]", "[a, b, c]"} {
		assert.True(t, accepts(t, T, input), input)
	}
	assert.False(t, accepts(t, T, "[a,]"))
	assert.False(t, accepts(t, T, "[a b]"))
}

func TestLoadGroup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	g, err := Load("Group", strings.NewReader(`S = [ ( "a" | "b" ) "c" ] .`))
	require.NoError(t, err)
	assert.Equal(t, grammar.N("S"), g.Start())
	assert.Len(t, g.RulesFor(grammar.N("S_2")), 2)
	T, err := lr.BuildLR1(g)
	require.NoError(t, err)
	assert.True(t, accepts(t, T, "a c"))
	assert.True(t, accepts(t, T, "b c"))
	assert.True(t, accepts(t, T, ""))
	assert.False(t, accepts(t, T, "c"))
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrtab.grammar")
	defer teardown()
	//
	_, err := Load("Range", strings.NewReader(`S = "a" … "z" .`))
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Load("Syntax", strings.NewReader(`S = "a"`))
	assert.Error(t, err)
	_, err = Load("Empty", strings.NewReader(``))
	assert.Error(t, err)
}
