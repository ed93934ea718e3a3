package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "fsa compiles regular expressions into minimal DFAs",
	Long: `fsa builds a Thompson NFA from an expression, determinizes it by subset construction
and minimizes it by partition refinement, then prints the result.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log each compilation stage to stderr")
}
