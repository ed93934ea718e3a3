package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/logging"
	"github.com/geange/fsa/internal/render"
)

var compileCmd = &cobra.Command{
	Use:   "compile <expression>",
	Short: "Compile an expression and print the minimal DFA",
	Long: `Compiles the expression into a minimal DFA and prints it as a Mermaid flowchart
(default) or as YAML. Use --nfa to print the automaton before determinization.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompile(cmd, args[0], cmd.OutOrStdout())
	},
}

func init() {
	compileCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid or yaml")
	compileCmd.Flags().String("alphabet", "", "Extra symbols for complement and the final DFA")
	compileCmd.Flags().Int("max-states", 0, "Fail when determinization creates more states (0 = unlimited)")
	compileCmd.Flags().Bool("nfa", false, "Print the NFA instead of the minimal DFA")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, expression string, out io.Writer) error {
	format, _ := cmd.Flags().GetString("format")
	alphabet, _ := cmd.Flags().GetString("alphabet")
	maxStates, _ := cmd.Flags().GetInt("max-states")
	nfaOnly, _ := cmd.Flags().GetBool("nfa")
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger := logging.NewNop()
	if verbose {
		logger = logging.NewWithWriter(cmd.ErrOrStderr(), slog.LevelDebug)
	}

	options := []fsa.Option{
		fsa.WithAlphabet(fsa.NewAlphabet([]rune(alphabet)...)),
		fsa.WithMaxStates(maxStates),
		fsa.WithLogger(logger),
	}

	var a *fsa.Automaton
	var err error
	if nfaOnly {
		a, err = fsa.ParseNFA(expression, options...)
	} else {
		a, err = fsa.Parse(expression, options...)
	}
	if err != nil {
		logger.Error("compile failed", "expression", expression, "error", err)
		return err
	}

	switch format {
	case "mermaid":
		_, err = io.WriteString(out, render.Mermaid(a))
	case "yaml":
		var data []byte
		data, err = render.YAML(a)
		if err == nil {
			_, err = out.Write(data)
		}
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	return err
}
