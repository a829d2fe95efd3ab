package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <team> <position> <number>",
		Aliases: []string{"rm"},
		Short:   "Unrank a player at a position",
		Args:    cobra.ExactArgs(3),
	}
	cmd.RunE = c.run(func(cmd *cobra.Command, args []string) error {
		number, err := parseNumber(args[2])
		if err != nil {
			return err
		}
		team, position := strings.ToUpper(args[0]), strings.ToUpper(args[1])

		removed, ok, err := c.depth.RemovePlayer(cmd.Context(), team, position, number)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("player #%d not found in depth chart at %s %s", number, team, position)
		}
		success.Fprintf(cmd.OutOrStdout(), "✓ Removed %s from %s %s\n", formatPlayer(removed), team, position)
		return nil
	})
	return cmd
}
