package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/t3commit/internal/convention"
)

// createTypesCommand creates the types command.
func (*commandFactory) createTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List commit types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range convention.Types {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", "["+t.String()+"]", t.Label())
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nBreaking changes add %s before the type, e.g. [%sFEATURE]\n",
				convention.BreakingMarker, convention.BreakingMarker)
			return nil
		},
	}
}
