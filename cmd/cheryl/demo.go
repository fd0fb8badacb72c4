package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/cheryl/internal/domain"
	"svw.info/cheryl/internal/game"
	"svw.info/cheryl/internal/render"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the original Singapore birthday puzzle",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	candidates := []domain.Candidate{
		{"May", "15"}, {"May", "16"}, {"May", "19"},
		{"June", "17"}, {"June", "18"},
		{"July", "14"}, {"July", "16"},
		{"August", "14"}, {"August", "15"}, {"August", "17"},
	}
	space, err := domain.NewSpace(candidates, []string{"Albert", "Bernard"})
	if err != nil {
		return err
	}

	statements := []domain.Statement{
		{Author: "Albert", Facts: []domain.Fact{
			{Player: "Albert", State: domain.DoesNotKnow},
			{Player: "Bernard", State: domain.DoesNotKnow},
		}},
		{Author: "Bernard", Facts: []domain.Fact{
			{Player: "Bernard", State: domain.Knows},
		}},
		{Author: "Albert", Facts: []domain.Fact{
			{Player: "Albert", State: domain.Knows},
		}},
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Cheryl tells Albert the month and Bernard the day of her birthday.")
	fmt.Fprintln(out, `Albert:  "I don't know when it is, and neither does Bernard."`)
	fmt.Fprintln(out, `Bernard: "At first I didn't know, but now I do."`)
	fmt.Fprintln(out, `Albert:  "Then I know it too."`)
	fmt.Fprintln(out)

	g := game.New(space)
	solution, err := g.Solve(statements, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render.TraceTable(space, g.Trace()))
	fmt.Fprintf(out, "\nCheryl's birthday is %s.\n", solution)
	return nil
}
