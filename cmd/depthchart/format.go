package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	domaindepthchart "github.com/preston-bernstein/depth-chart-service/internal/domain/depthchart"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/players"
	"github.com/preston-bernstein/depth-chart-service/internal/domain/teams"
)

var (
	success = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	heading = color.New(color.FgCyan, color.Bold)
	faint   = color.New(color.Faint)
)

func formatPlayer(p players.Player) string {
	return fmt.Sprintf("#%d %s", p.Number, p.Name)
}

func printPlayers(w io.Writer, list []players.Player) {
	if len(list) == 0 {
		fmt.Fprintln(w, faint.Sprint("  (none)"))
		return
	}
	for i, p := range list {
		fmt.Fprintf(w, "  %s %s\n", faint.Sprintf("%d.", i+1), formatPlayer(p))
	}
}

func printChart(w io.Writer, chart domaindepthchart.GroupedChart) {
	heading.Fprintf(w, "%s depth chart (%s)\n", chart.TeamID, chart.League)
	if len(chart.Groups) == 0 {
		fmt.Fprintln(w, faint.Sprint("  (empty)"))
		return
	}
	for _, grp := range chart.Groups {
		fmt.Fprintln(w)
		heading.Fprintln(w, grp.Group)
		for _, pos := range grp.Positions {
			names := make([]string, 0, len(pos.Players))
			for _, p := range pos.Players {
				names = append(names, formatPlayer(p))
			}
			fmt.Fprintf(w, "  %-5s %s %s\n", pos.Position, faint.Sprintf("%-24s", pos.Name), strings.Join(names, ", "))
		}
	}
}

func printTeams(w io.Writer, list []teams.Team) {
	if len(list) == 0 {
		warn.Fprintln(w, "no teams stored; run `depthchart seed`")
		return
	}
	for _, t := range list {
		fmt.Fprintf(w, "%-4s %s %s\n", t.ID, t.Name, faint.Sprintf("(%s)", t.League))
	}
}
