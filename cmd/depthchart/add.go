package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
)

func newAddCmd(c *cli) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:     "add <team> <position> <number> <name...>",
		Aliases: []string{"a"},
		Short:   "Rank a player at a position",
		Long: `Rank a player at a position, appending when --depth is omitted. Re-adding
a ranked player moves them. The player's roster name is created or updated.

Examples:
  depthchart add TB QB 12 Tom Brady
  depthchart add TB QB 11 Blaine Gabbert --depth 1`,
		Args: cobra.MinimumNArgs(4),
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "0-based depth (omit to append)")
	cmd.RunE = c.run(func(cmd *cobra.Command, args []string) error {
		number, err := parseNumber(args[2])
		if err != nil {
			return err
		}
		player := players.Player{Number: number, Name: strings.Join(args[3:], " ")}

		var requested *int
		if cmd.Flags().Changed("depth") {
			requested = &depth
		}
		if err := c.depth.AddPlayer(cmd.Context(), args[0], args[1], player, requested); err != nil {
			return err
		}

		success.Fprintf(cmd.OutOrStdout(), "✓ Added %s to %s %s\n",
			formatPlayer(player), strings.ToUpper(args[0]), strings.ToUpper(args[1]))
		return nil
	})
	return cmd
}

func parseNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid player number %q", raw)
	}
	return n, nil
}
