package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/game"
	"svw.info/cheryl/internal/render"
)

var solveTrace bool

// puzzleDoc is the JSON document the solve subcommand reads.
type puzzleDoc struct {
	Players    []string           `json:"players"`
	Candidates []domain.Candidate `json:"candidates"`
	Statements []domain.Statement `json:"statements"`
}

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle.json]",
	Short: "Apply a statement sequence to a candidate pool",
	Long: `Reads a puzzle document (from the given file or stdin) and applies its
statements in order. Prints the unique solution, or reports a contradiction
or an underdetermined outcome.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "print the remaining set before filtering and after each statement")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var doc puzzleDoc
	if err := readDoc(args, &doc); err != nil {
		return err
	}
	space, err := domain.NewSpace(doc.Candidates, doc.Players)
	if err != nil {
		return err
	}

	g := game.New(space)
	cand, err := g.Solve(doc.Statements, solveTrace)
	if solveTrace && len(g.Trace()) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), render.TraceTable(space, g.Trace()))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Solution: %s\n", cand)
	return nil
}

// readDoc decodes JSON from the named file, or stdin when no file is given.
func readDoc(args []string, v any) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}
	return nil
}
