package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lrtab/grammar"
	"github.com/npillmayer/lrtab/grammar/ebnfg"
	"github.com/npillmayer/lrtab/lr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace *string
	lr0   *bool
}{}

// traceKeys are the tracers of the lrtab packages.
var traceKeys = []string{"lrtab.grammar", "lrtab.lr", "lrtab.scanner", "lrtab.driver", "lrtab.cli"}

var rootCmd = &cobra.Command{
	Use:   "lrtab",
	Short: "Construct LR(0)/LR(1) parser tables for a grammar",
	Long: `lrtab reads a grammar in EBNF and constructs parser tables for it:
- Prints the ACTION and GOTO tables or exports them as JSON, HTML or Graphviz.
- Parses sentences with the tables and prints derivation trees.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
	rootFlags.lr0 = rootCmd.PersistentFlags().Bool("lr0", false, "construct LR(0) tables instead of LR(1)")
}

// errorOutput receives the error of a failed command.
var errorOutput io.Writer = os.Stderr

// Execute runs the root command. An error is reported to errorOutput
// before it is returned.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(errorOutput, pterm.Error.Sprint(err.Error()))
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadTables reads an EBNF grammar file and constructs tables for it.
func loadTables(path string) (*lr.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar file %s: %w", path, err)
	}
	defer f.Close()
	g, err := ebnfg.Load(path, f)
	if err != nil {
		return nil, err
	}
	g.Dump() // only visible in debug mode
	return buildTables(g)
}

func buildTables(g *grammar.Grammar) (*lr.Tables, error) {
	build := lr.BuildLR1
	if *rootFlags.lr0 {
		build = lr.BuildLR0
	}
	T, err := build(g)
	var conflict *lr.ConflictError
	if errors.As(err, &conflict) {
		pterm.Error.Println(conflict.Error())
		pterm.Println(conflict.Items.String())
		return nil, fmt.Errorf("grammar %s is not %v", g.Name, method())
	}
	return T, err
}

func method() lr.Method {
	if *rootFlags.lr0 {
		return lr.LR0
	}
	return lr.LR1
}
