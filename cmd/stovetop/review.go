package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/stovetop/internal/review"
)

var reviewNotes string

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Turn cooking notes into suggestions for next time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		tips := review.Suggestions(reviewNotes)
		if len(tips) == 0 {
			fmt.Fprintln(out, "No suggestions. Sounds like it went well.")
			return nil
		}
		fmt.Fprintln(out, "Next time:")
		for _, t := range tips {
			fmt.Fprintf(out, "  - %s\n", t)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewNotes, "notes", "", "how it turned out, e.g. \"a bit salty and overcooked\"")
	_ = reviewCmd.MarkFlagRequired("notes")
	rootCmd.AddCommand(reviewCmd)
}
