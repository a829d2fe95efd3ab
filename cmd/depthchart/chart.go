package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newChartCmd(c *cli) *cobra.Command {
	var (
		league string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "chart <team>",
		Short: "Print a team's full depth chart",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringVar(&league, "league", "", "league taxonomy to group by (defaults to the team's league)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the chart as JSON")
	cmd.RunE = c.run(func(cmd *cobra.Command, args []string) error {
		chart, err := c.depth.FullChart(cmd.Context(), args[0], league)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(chart)
		}
		printChart(cmd.OutOrStdout(), chart)
		return nil
	})
	return cmd
}
