package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/depth-chart-service/internal/seed"
)

func newSeedCmd(c *cli) *cobra.Command {
	var sampleCharts bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write reference data and optional sample charts",
		Long: `Write positions, teams and players when they are missing. With
--sample-charts, fill every team whose chart is empty from the dataset.
Existing data is never overwritten.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationManualSeed: "true"},
	}
	cmd.Flags().BoolVar(&sampleCharts, "sample-charts", false, "also seed sample depth charts")
	cmd.RunE = c.run(func(cmd *cobra.Command, _ []string) error {
		res, err := seed.Bootstrap(cmd.Context(), c.backend, c.store, c.cfg.Seed.File, seed.Options{SampleCharts: sampleCharts}, c.logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(res.Resources) == 0 && len(res.Charts) == 0 {
			warn.Fprintln(out, "nothing to seed")
			return nil
		}
		success.Fprintln(out, "✓ Seed complete")
		if len(res.Resources) > 0 {
			fmt.Fprintf(out, "  resources: %s\n", strings.Join(res.Resources, ", "))
		}
		if res.Players > 0 {
			fmt.Fprintf(out, "  players:   %d\n", res.Players)
		}
		if len(res.Charts) > 0 {
			fmt.Fprintf(out, "  charts:    %s\n", strings.Join(res.Charts, ", "))
		}
		return nil
	})
	return cmd
}
