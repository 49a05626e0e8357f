package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lrtab/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tablesFlags = struct {
	json  *string
	html  *string
	dot   *string
	quiet *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tables FILE",
		Short:   "Construct parser tables for a grammar",
		Example: `  lrtab tables expr.ebnf --json expr.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTables,
	}
	tablesFlags.json = cmd.Flags().String("json", "", "write tables as JSON to file")
	tablesFlags.html = cmd.Flags().String("html", "", "write tables as HTML to file")
	tablesFlags.dot = cmd.Flags().String("dot", "", "write CFSM in Graphviz format to file")
	tablesFlags.quiet = cmd.Flags().BoolP("quiet", "q", false, "do not print tables")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	T, err := loadTables(args[0])
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%v tables for %s: %d states, %d terminals, %d non-terminals",
		T.Method, T.G.Name, T.StateCount(), len(T.Terminals), len(T.NonTerminals)))
	if !*tablesFlags.quiet {
		printTables(T)
	}
	exports := []struct {
		path  string
		write func(io.Writer) error
	}{
		{*tablesFlags.json, T.WriteJSON},
		{*tablesFlags.html, func(w io.Writer) error {
			if err := lr.ActionTableAsHTML(T, w); err != nil {
				return err
			}
			return lr.GotoTableAsHTML(T, w)
		}},
		{*tablesFlags.dot, T.CFSM().ToGraphViz},
	}
	for _, x := range exports {
		if x.path == "" {
			continue
		}
		if err := writeFile(x.path, x.write); err != nil {
			return err
		}
		pterm.Success.Println(fmt.Sprintf("wrote %s", x.path))
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printTables prints the rules and the ACTION/GOTO tables side by side.
func printTables(T *lr.Tables) {
	rules := pterm.TableData{{"#", "rule", "action"}}
	for _, r := range T.G.Rules() {
		rules = append(rules, []string{fmt.Sprintf("%d", r.Serial), r.String(), r.Action})
	}
	pterm.DefaultSection.Println("Rules")
	pterm.DefaultTable.WithHasHeader().WithData(rules).Render()
	header := []string{"state"}
	for _, a := range T.Terminals {
		header = append(header, a.String())
	}
	for _, A := range T.NonTerminals {
		header = append(header, A.Name)
	}
	data := pterm.TableData{header}
	for s := 0; s < T.StateCount(); s++ {
		row := []string{fmt.Sprintf("%d", s)}
		for _, a := range T.Action[s] {
			row = append(row, cell(!a.IsError(), a.String()))
		}
		for _, next := range T.Goto[s] {
			row = append(row, cell(next != lr.NoState, fmt.Sprintf("%d", next)))
		}
		data = append(data, row)
	}
	pterm.DefaultSection.Println("ACTION | GOTO")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func cell(ok bool, s string) string {
	if ok {
		return s
	}
	return ""
}
