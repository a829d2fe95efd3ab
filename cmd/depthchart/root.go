package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	appdepthchart "github.com/preston-bernstein/depth-chart-service/internal/app/depthchart"
	appteams "github.com/preston-bernstein/depth-chart-service/internal/app/teams"
	"github.com/preston-bernstein/depth-chart-service/internal/catalog"
	"github.com/preston-bernstein/depth-chart-service/internal/config"
	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/seed"
	"github.com/preston-bernstein/depth-chart-service/internal/snapshots"
	"github.com/preston-bernstein/depth-chart-service/internal/storage"
	"github.com/preston-bernstein/depth-chart-service/internal/store"
)

// annotationManualSeed marks commands that seed on their own terms.
const annotationManualSeed = "manual-seed"

// cli holds what PersistentPreRunE opens for the subcommands.
type cli struct {
	cfg config.Config

	logger  *slog.Logger
	backend snapshots.Backend
	store   *store.Store
	catalog *catalog.Catalog
	depth   *appdepthchart.Service
	teams   *appteams.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.Load()}
	c.cfg.Logging.Level = "warn"

	root := &cobra.Command{
		Use:   "depthchart",
		Short: "Manage team depth charts",
		Long: `Manage ranked depth charts against the same storage the service uses.

Examples:
  depthchart add TB QB 12 Tom Brady --depth 0
  depthchart backups TB QB 12
  depthchart chart TB
  depthchart --backend sqlite --data-dir ./data export -o charts.yaml`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfg.Storage.Backend, "backend", c.cfg.Storage.Backend, "storage backend (fs, memory, badger, sqlite)")
	flags.StringVar(&c.cfg.Storage.DataDir, "data-dir", c.cfg.Storage.DataDir, "directory holding stored resources")
	flags.StringVar(&c.cfg.Logging.Level, "log-level", c.cfg.Logging.Level, "log level written to stderr")
	flags.StringVar(&c.cfg.Seed.File, "seed-file", c.cfg.Seed.File, "YAML dataset used for seeding (embedded default when empty)")

	root.AddCommand(
		newAddCmd(c),
		newRemoveCmd(c),
		newBackupsCmd(c),
		newChartCmd(c),
		newTeamsCmd(c),
		newSeedCmd(c),
		newExportCmd(c),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	c.logger = logging.NewLogger(logging.Config{
		Level:   c.cfg.Logging.Level,
		Format:  c.cfg.Logging.Format,
		Service: "depthchart",
		Output:  cmd.ErrOrStderr(),
	})

	backend, err := storage.NewFactory(c.logger, nil).Build(c.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	c.backend = backend
	c.store = store.New(backend, c.logger)

	ctx := cmd.Context()
	if c.cfg.Seed.Enabled && cmd.Annotations[annotationManualSeed] == "" {
		if _, err := seed.Bootstrap(ctx, backend, c.store, c.cfg.Seed.File, seed.Options{}, c.logger); err != nil {
			_ = c.close()
			return err
		}
	}

	cat, err := catalog.Load(ctx, backend)
	if err != nil {
		_ = c.close()
		return err
	}
	c.catalog = cat
	c.depth = appdepthchart.NewService(c.store, cat, appdepthchart.Options{
		Logger:        c.logger,
		DefaultLeague: c.cfg.DefaultLeague,
	})
	c.teams = appteams.NewService(cat)
	return nil
}

// run adapts fn to cobra's RunE and closes storage however fn returns.
func (c *cli) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := c.close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args)
	}
}

func (c *cli) close() error {
	if c.backend == nil {
		return nil
	}
	err := c.backend.Close()
	c.backend = nil
	return err
}
