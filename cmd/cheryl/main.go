package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cheryl",
	Short: "Solve and discover Cheryl's-birthday-style knowledge puzzles",
	Long: `cheryl filters candidate tuples through a sequence of public
declarations about who knows what, and searches random candidate pools for
configurations with a unique solution.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
