package lr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/lrtab/grammar"
)

// AcceptingStates returns the IDs of all states of the CFSM which contain
// the completed augmented start rule.
func (c *CFSM) AcceptingStates() []int {
	acc := make([]int, 0, 1)
	it := c.states.Iterator()
	for it.Next() {
		if s := it.Value().(*CFSMState); s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	it := c.states.Iterator()
	for it.Next() {
		s := it.Value().(*CFSMState)
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items)))
	}
	it = c.edges.Iterator()
	for it.Next() {
		edge := it.Value().(*cfsmEdge)
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", edge.from.ID, edge.to.ID,
			dotEscaper.Replace(edge.label.String())))
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

var dotEscaper = strings.NewReplacer(`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`)

func forGraphviz(S *ItemSet) string {
	var b bytes.Buffer
	for n, i := range S.items {
		if n > 0 {
			b.WriteString(`\l`)
		}
		b.WriteString(dotEscaper.Replace(i.String()))
	}
	b.WriteString(`\l`)
	return b.String()
}

// ===========================================================================

// GotoTableAsHTML exports a GOTO-table in HTML-format.
func GotoTableAsHTML(t *Tables, w io.Writer) error {
	cell := func(state, col int) string {
		if next := t.Goto[state][col]; next != NoState {
			return fmt.Sprintf("%d", next)
		}
		return "&nbsp;"
	}
	return parserTableAsHTML(t, "GOTO", t.NonTerminals, cell, w)
}

// ActionTableAsHTML exports an ACTION-table in HTML-format.
func ActionTableAsHTML(t *Tables, w io.Writer) error {
	cell := func(state, col int) string {
		if a := t.Action[state][col]; !a.IsError() {
			return a.String()
		}
		return "&nbsp;"
	}
	return parserTableAsHTML(t, "ACTION", t.Terminals, cell, w)
}

func parserTableAsHTML(t *Tables, tname string, cols []grammar.Symbol,
	cell func(int, int) string, w io.Writer) error {
	//
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("%s %s table of size = %d x %d<p>", t.Method, tname, t.StateCount(), len(cols)))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range cols {
		b.WriteString(fmt.Sprintf("<td>%s</td>", htmlEscaper.Replace(A.String())))
	}
	b.WriteString("</tr>\n")
	for state := 0; state < t.StateCount(); state++ {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", state))
		for col := range cols {
			b.WriteString("<td>")
			b.WriteString(cell(state, col))
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// ===========================================================================

// tablesJSON is the serialized form of parser tables, as consumed by
// code generators.
type tablesJSON struct {
	Grammar      string     `json:"grammar"`
	Method       string     `json:"method"`
	Terminals    []string   `json:"terminals"`
	NonTerminals []string   `json:"nonterminals"`
	RuleTable    [][]int    `json:"rules"`
	Actions      []string   `json:"reduce_actions"`
	ActionTable  [][]Action `json:"action"`
	GotoTable    [][]int    `json:"goto"`
}

// WriteJSON writes the tables in JSON format.
func (t *Tables) WriteJSON(w io.Writer) error {
	out := tablesJSON{
		Grammar:     t.G.Name,
		Method:      t.Method.String(),
		RuleTable:   t.RuleTable,
		ActionTable: t.Action,
		GotoTable:   t.Goto,
	}
	for _, a := range t.Terminals {
		out.Terminals = append(out.Terminals, a.Name)
	}
	for _, A := range t.NonTerminals {
		out.NonTerminals = append(out.NonTerminals, A.Name)
	}
	for _, r := range t.G.Rules() {
		out.Actions = append(out.Actions, r.Action)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("cannot encode %v tables for %s: %w", t.Method, t.G.Name, err)
	}
	return nil
}
