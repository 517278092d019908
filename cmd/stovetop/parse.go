package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/catalog"
	"github.com/hammamikhairi/stovetop/internal/heat"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Show how a recipe is understood",
	Long:  "Reads a recipe from a file or stdin and prints its ingredients and steps with the detected action and timer.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := importRecipe(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s (%s)\n\n", r.Name, r.Category)
		fmt.Fprintf(out, "Ingredients (%d):\n", len(r.Ingredients))
		for _, ing := range r.Ingredients {
			fmt.Fprintf(out, "  - %s: %s\n", ing.Name, ing.Quantity)
		}

		fmt.Fprintf(out, "\nSteps (%d):\n", len(r.Steps))
		for _, s := range r.SortedSteps() {
			action := catalog.DetectAction(s.Instruction)
			timer := "no timer"
			if s.HasDuration() {
				timer = heat.FormatTime(s.DurationSeconds)
			}
			fmt.Fprintf(out, "  %d. %s %s [%s, %s]\n", s.Order+1, action.Icon(), s.Instruction, action, timer)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
