package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/game"
	"svw.info/cheryl/internal/generator"
	"svw.info/cheryl/internal/render"
)

var findTrace bool

var findCmd = &cobra.Command{
	Use:   "find [search.json]",
	Short: "Search random candidate pools for one with a unique solution",
	Long: `Reads a search document (from the given file or stdin) with per-coordinate
value domains, a pool size, a statement sequence, and a trial budget. Samples
pools until one collapses to a single candidate under the statements.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findTrace, "trace", false, "re-run the found game and print its trace")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	var search domain.Search
	if err := readDoc(args, &search); err != nil {
		return err
	}

	solver := game.NewSolver()
	finder := generator.NewUniqueFinder(solver)
	puzzle, stats, err := finder.Find(cmd.Context(), search)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found a game after %d trial(s) (seed %d):\n\n", stats.Trials, puzzle.Seed)
	fmt.Fprintln(out, render.PoolTable(puzzle.Space, puzzle.Space.Candidates))

	if findTrace {
		sol, _, err := solver.Solve(cmd.Context(), puzzle.Space, puzzle.Statements, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.TraceTable(puzzle.Space, sol.Trace))
	}

	fmt.Fprintf(out, "\nSolution: %s\n", puzzle.Solution)
	return nil
}
