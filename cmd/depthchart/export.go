package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		output     string
		chartsOnly bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump every stored resource as YAML",
		Long: `Dump every stored resource as one YAML document keyed by resource name.

Examples:
  depthchart export
  depthchart export -o backup.yaml
  depthchart export --charts -o charts.yaml`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&chartsOnly, "charts", false, "export team depth charts only")
	cmd.RunE = c.run(func(cmd *cobra.Command, _ []string) error {
		data, count, err := exportYAML(cmd.Context(), c.backend, chartsOnly)
		if err != nil {
			return err
		}
		if output == "" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		success.Fprintf(cmd.OutOrStdout(), "✓ Exported %d resources to %s\n", count, output)
		return nil
	})
	return cmd
}

func exportYAML(ctx context.Context, backend snapshots.Backend, chartsOnly bool) ([]byte, int, error) {
	names, err := backend.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources: %w", err)
	}
	doc := make(map[string]any, len(names))
	for _, name := range names {
		if chartsOnly && !snapshots.IsTeamChartResource(name) {
			continue
		}
		var payload any
		if _, err := snapshots.LoadJSON(ctx, backend, name, &payload); err != nil {
			return nil, 0, fmt.Errorf("load %s: %w", name, err)
		}
		doc[name] = payload
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, 0, fmt.Errorf("encode export: %w", err)
	}
	return data, len(doc), nil
}
