package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBackupsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups <team> <position> <number>",
		Short: "List players ranked behind a player",
		Args:  cobra.ExactArgs(3),
	}
	cmd.RunE = c.run(func(cmd *cobra.Command, args []string) error {
		number, err := parseNumber(args[2])
		if err != nil {
			return err
		}

		backups, err := c.depth.Backups(cmd.Context(), args[0], args[1], number)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		heading.Fprintf(out, "Backups for #%d at %s %s\n", number, strings.ToUpper(args[0]), strings.ToUpper(args[1]))
		printPlayers(out, backups)
		fmt.Fprintln(out)
		return nil
	})
	return cmd
}
