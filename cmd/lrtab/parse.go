package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lrtab/driver"
	"github.com/npillmayer/lrtab/lr"
	"github.com/npillmayer/lrtab/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse FILE INPUT",
		Short:   "Parse a sentence with the tables for a grammar",
		Example: `  lrtab parse expr.ebnf "1 + 2 * 3"`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	T, err := loadTables(args[0])
	if err != nil {
		return err
	}
	return parse(T, strings.Join(args[1:], " "))
}

// parse parses input and prints the reductions and the derivation tree.
func parse(T *lr.Tables, input string) error {
	p := driver.NewParser(T)
	tokenizer := scanner.ForTerminals(T, "input", strings.NewReader(input))
	accepted, err := p.Parse(tokenizer)
	if err != nil {
		return err
	}
	if !accepted {
		return fmt.Errorf("input not accepted")
	}
	pterm.Success.Println("accepted")
	var reductions []string
	for _, r := range p.Reductions() {
		reductions = append(reductions, fmt.Sprintf("%d", r))
	}
	pterm.Info.Println(fmt.Sprintf("reductions: %s", strings.Join(reductions, " ")))
	printTree(p.Tree())
	return nil
}

func printTree(root *driver.Node) {
	var ll pterm.LeveledList
	root.Walk(func(n *driver.Node, depth int) {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  n.String(),
		})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}
