package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/catalog"
	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/heat"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file]",
	Short: "Estimate how much time a higher flame saves",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, _, err := importRecipe(cmd.Context(), cmd, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		steps := r.SortedSteps()

		total, optimized := heat.EstimateTotal(steps), heat.EstimateOptimized(steps)
		fmt.Fprintf(out, "%s\n", r.Name)
		fmt.Fprintf(out, "  Estimated time:    %s\n", heat.FormatTime(total))
		fmt.Fprintf(out, "  All on high heat:  %s (saves %s)\n", heat.FormatTime(optimized), heat.FormatTime(total-optimized))

		candidates := heat.OptimizableSteps(steps)
		if len(candidates) == 0 {
			fmt.Fprintln(out, "\nNo step is worth turning up.")
			return nil
		}
		fmt.Fprintln(out, "\nWorth turning up:")
		for _, c := range candidates {
			fmt.Fprintf(out, "  %d. %s: %s -> %s on high\n", c.Index+1, c.Step.Instruction, heat.FormatTime(c.Seconds), heat.FormatTime(c.Optimized))
		}

		fmt.Fprintln(out, "\nHeat options:")
		for _, s := range steps {
			d, action, ok := catalog.EffectiveDuration(s)
			if !ok || !heat.CanOptimize(action) {
				continue
			}
			fmt.Fprintf(out, "  %d. %s\n", s.Order+1, formatOptions(heat.Options(d, action, domain.HeatLow)))
		}
		return nil
	},
}

func formatOptions(opts []heat.Option) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		p := fmt.Sprintf("%s %s", o.Level, heat.FormatTime(o.Seconds))
		if !o.Safe {
			p += " (" + o.Warning + ")"
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " | ")
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
