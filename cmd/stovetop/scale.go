package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/recipe"
)

var scaleBy string

var scaleCmd = &cobra.Command{
	Use:   "scale [file]",
	Short: "Scale ingredient quantities",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := parseMultiplier(scaleBy)
		if err != nil {
			return err
		}
		r, _, err := importRecipe(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		cat := recipe.ParseCategory(r.Category)
		fmt.Fprintf(out, "%s x%s (%s, scaled per %s)\n", r.Name, strconv.FormatFloat(m, 'f', -1, 64), cat, cat.UnitLabel())
		for _, ing := range recipe.Scale(r.Ingredients, m) {
			fmt.Fprintf(out, "  - %s: %s\n", ing.Name, ing.Quantity)
		}

		fmt.Fprint(out, "\nPresets:")
		for _, p := range cat.Presets() {
			fmt.Fprintf(out, " %s", p.Label)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	scaleCmd.Flags().StringVar(&scaleBy, "by", "2", "multiplier, e.g. 2, 1.5 or 1/2")
	rootCmd.AddCommand(scaleCmd)
}
