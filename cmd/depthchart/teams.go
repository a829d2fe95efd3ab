package main

import "github.com/spf13/cobra"

func newTeamsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List reference teams",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = c.run(func(cmd *cobra.Command, _ []string) error {
		printTeams(cmd.OutOrStdout(), c.teams.Teams())
		return nil
	})
	return cmd
}
