package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lrtab/lr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl FILE",
		Short: "Parse sentences interactively",
		Long: `repl reads sentences line by line and parses them with the tables
for a grammar. Enter ':tables' to print the tables, quit with ':quit' or <ctrl>D.`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	T, err := loadTables(args[0])
	if err != nil {
		return err
	}
	repl, err := readline.New("lrtab> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println(fmt.Sprintf("Welcome to lrtab, grammar is %s (%v)", T.G.Name, T.Method))
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if quit := eval(T, strings.TrimSpace(line)); quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// eval processes a line of input. It returns true if the user wants to quit.
func eval(T *lr.Tables, line string) bool {
	switch line {
	case "":
	case ":quit":
		return true
	case ":tables":
		printTables(T)
	default:
		if err := parse(T, line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	return false
}
