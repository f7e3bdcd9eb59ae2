package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/riskibarqy/afcon-dashboard/internal/app"
	"github.com/riskibarqy/afcon-dashboard/internal/config"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	store    string
	cacheDir string
}

func newRootCmd(cfg config.Config, logger *logging.Logger) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "datagen",
		Short:         "Generate and manage the AFCON mock datasets",
		Long:          `datagen builds the deterministic AFCON datasets into the configured dataset store, lists what the store holds, and purges it.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.store, "store", cfg.DatasetStore, "dataset store (file, postgres, memory)")
	root.PersistentFlags().StringVar(&opts.cacheDir, "dir", cfg.DatasetCacheDir, "cache directory for the file store")

	resolve := func() (config.Config, error) {
		out := cfg
		switch opts.store {
		case config.StoreFile, config.StorePostgres, config.StoreMemory:
			out.DatasetStore = opts.store
		default:
			return config.Config{}, fmt.Errorf("invalid --store %q", opts.store)
		}
		out.DatasetCacheDir = opts.cacheDir
		if out.DatasetStore == config.StorePostgres && out.DBURL == "" {
			return config.Config{}, fmt.Errorf("DB_URL is required for the postgres store")
		}
		return out, nil
	}

	root.AddCommand(
		newGenerateCmd(resolve, logger),
		newPurgeCmd(resolve, logger),
		newSummaryCmd(resolve, logger),
	)
	return root
}

func newGenerateCmd(resolve func() (config.Config, error), logger *logging.Logger) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate every dataset into the store",
		Long:  `Generate resolves teams, squads, player statistics, matches and team statistics. Datasets already stored are reused unless --force is set.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve()
			if err != nil {
				return err
			}
			services, err := app.NewServices(cfg, logger)
			if err != nil {
				return fmt.Errorf("build services: %w", err)
			}
			defer func() { _ = services.Close() }()

			ctx := cmd.Context()
			if force {
				removed, err := services.Tournament.PurgeCache(ctx)
				if err != nil {
					return fmt.Errorf("purge before generate: %w", err)
				}
				logger.InfoContext(ctx, "forced regeneration", "removed", removed)
			}

			started := time.Now()
			snapshot, err := services.Preload(ctx)
			if err != nil {
				return fmt.Errorf("generate datasets: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "teams:        %d\n", len(snapshot.Teams))
			fmt.Fprintf(out, "player stats: %d\n", len(snapshot.PlayerStats))
			fmt.Fprintf(out, "matches:      %d\n", len(snapshot.Matches))
			fmt.Fprintf(out, "team stats:   %d\n", len(snapshot.TeamStats))
			fmt.Fprintf(out, "took:         %s\n", time.Since(started).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "purge stored datasets before generating")
	return cmd
}

func newPurgeCmd(resolve func() (config.Config, error), logger *logging.Logger) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove every stored dataset, or only the one named by --dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve()
			if err != nil {
				return err
			}
			services, err := app.NewServices(cfg, logger)
			if err != nil {
				return fmt.Errorf("build services: %w", err)
			}
			defer func() { _ = services.Close() }()

			var removed int
			if name != "" {
				removed, err = services.Tournament.DropDataset(cmd.Context(), name)
			} else {
				removed, err = services.Tournament.PurgeCache(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d dataset(s)\n", removed)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "dataset", "", "dataset to remove (teams, player_stats, matches, team_stats, squads or one squad_<team>)")
	return cmd
}

func newSummaryCmd(resolve func() (config.Config, error), logger *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Aliases: []string{"ls"},
		Short:   "List the datasets held by the store",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolve()
			if err != nil {
				return err
			}
			services, err := app.NewServices(cfg, logger)
			if err != nil {
				return fmt.Errorf("build services: %w", err)
			}
			defer func() { _ = services.Close() }()

			items, err := services.Tournament.Datasets(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no datasets stored")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATASET\tSCHEMA\tSEED\tROWS\tBYTES\tGENERATED")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
					item.Key.Name,
					item.Key.SchemaVersion,
					item.Key.SeedVersion,
					item.Rows,
					item.SizeBytes,
					item.GeneratedAt.UTC().Format(time.RFC3339),
				)
			}
			return w.Flush()
		},
	}
}
