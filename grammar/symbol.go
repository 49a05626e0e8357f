package grammar

import (
	"fmt"
	"strings"
)

// SymbolKind discriminates terminals from non-terminals.
type SymbolKind int8

// Symbols are either terminals or non-terminals.
const (
	TerminalSymbol SymbolKind = iota
	NonTerminalSymbol
)

func (k SymbolKind) String() string {
	if k == TerminalSymbol {
		return "T"
	}
	return "N"
}

// Symbol is a grammar symbol. Symbols are values: two symbols are the same
// symbol if they are of the same kind and carry the same name. A terminal's
// name is its literal value.
//
// Symbols do not carry ids. Column indices for parser tables are assigned when
// a grammar is frozen, see Grammar.Freeze.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Special terminals.
var (
	End   = Symbol{Kind: TerminalSymbol, Name: "#eof"} // end of input
	Empty = Symbol{Kind: TerminalSymbol, Name: "#ε"}   // epsilon
)

// T creates a terminal symbol.
func T(value string) Symbol {
	return Symbol{Kind: TerminalSymbol, Name: value}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminalSymbol, Name: name}
}

// IsTerminal is true for terminals, including End and Empty.
func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalSymbol
}

// IsNull is true for the zero symbol, which is used as 'no symbol'.
func (s Symbol) IsNull() bool {
	return s == Symbol{}
}

func (s Symbol) String() string {
	if s.IsTerminal() && s != End && s != Empty {
		return fmt.Sprintf("'%s'", escape(s.Name))
	}
	return s.Name
}

func escape(value string) string {
	return strings.NewReplacer("\n", `\n`, "\t", `\t`, "\x00", `\0`).Replace(value)
}

// SymbolComparator orders symbols by kind, then by name. It is suitable for
// ordered containers of package gods.
func SymbolComparator(a, b interface{}) int {
	s1 := a.(Symbol)
	s2 := b.(Symbol)
	if s1.Kind != s2.Kind {
		if s1.Kind < s2.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(s1.Name, s2.Name)
}
