package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdrosa/steam-sales-api/infrastructure/database/postgres"
	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam"
	"github.com/pdrosa/steam-sales-api/infrastructure/integrator/steam/steamclient"
	"github.com/pdrosa/steam-sales-api/infrastructure/keystore"
	"github.com/pdrosa/steam-sales-api/infrastructure/repository"
	"github.com/pdrosa/steam-sales-api/internal/config"
	"github.com/pdrosa/steam-sales-api/internal/domain"
	"github.com/pdrosa/steam-sales-api/internal/scheduler"
	"github.com/pdrosa/steam-sales-api/internal/usecases/keymanaging"
	"github.com/pdrosa/steam-sales-api/internal/usecases/reporting"
	"github.com/pdrosa/steam-sales-api/internal/usecases/syncing"
	"github.com/pdrosa/steam-sales-api/pkg/utils"
)

// app bundles the wired services the commands share.
type app struct {
	cfg        *config.Config
	conn       *postgres.Connection
	keyManager keymanaging.KeyManager
	reporter   reporting.Reporter
	syncer     syncing.Syncer
	cleanup    *scheduler.CleanupService
}

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	root := &cobra.Command{
		Use:           "steam-sales",
		Short:         "Manage Steam sales data from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(keysCommand())
	root.AddCommand(syncCommand())
	root.AddCommand(statsCommand())
	root.AddCommand(exportCommand())
	root.AddCommand(cleanupCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	salesRepo := repository.NewSalesRepository(conn)
	apiKeyRepo := repository.NewAPIKeyRepository(conn)
	syncTaskRepo := repository.NewSyncTaskRepository(conn)
	syncMetaRepo := repository.NewSyncMetaRepository(conn)

	keys, err := keystore.New(cfg.Keystore.DataDir)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open keystore: %w", err)
	}

	steamIntegrator := steam.New(cfg, steamclient.NewClient(cfg))

	return &app{
		cfg:        cfg,
		conn:       conn,
		keyManager: keymanaging.NewService(keys, apiKeyRepo, salesRepo, syncTaskRepo, syncMetaRepo),
		reporter:   reporting.NewService(salesRepo),
		syncer:     syncing.NewService(cfg, steamIntegrator, keys, apiKeyRepo, salesRepo, syncTaskRepo, syncMetaRepo),
		cleanup:    scheduler.NewCleanupService(salesRepo, syncTaskRepo, cfg),
	}, nil
}

func (a *app) close() {
	a.conn.Close()
}

func keysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage Steam partner API keys",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			keys, err := a.keyManager.List()
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(keys))
			return nil
		},
	})

	var displayName string
	addCmd := &cobra.Command{
		Use:   "add <api-key>",
		Short: "Register a new API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			var name *string
			if displayName != "" {
				name = &displayName
			}

			info, err := a.keyManager.Add(args[0], name)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(info))
			return nil
		},
	}
	addCmd.Flags().StringVar(&displayName, "name", "", "display name for the key")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an API key and all of its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.keyManager.Delete(args[0]); err != nil {
				return err
			}

			fmt.Println("deleted", args[0])
			return nil
		},
	})

	return cmd
}

func syncCommand() *cobra.Command {
	var keyID string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch the latest sales from Steam",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if keyID != "" {
				result, err := a.syncer.SyncKey(cmd.Context(), keyID)
				if err != nil {
					return err
				}
				fmt.Println(utils.PrettyJson(result))
				return nil
			}

			results, err := a.syncer.SyncAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyID, "key", "", "sync only this API key id")
	return cmd
}

func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headline sales stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			stats, err := a.reporter.Stats(&domain.SalesFilters{})
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(stats))
			return nil
		},
	}
}

func exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sales to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			workbook, err := a.reporter.ExportXLSX(&domain.SalesFilters{})
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, workbook, 0o644); err != nil {
				return err
			}

			fmt.Println("wrote", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "steam-sales.xlsx", "output file")
	return cmd
}

func cleanupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Run one housekeeping pass now",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.cleanup.RunOnce()
			return nil
		},
	}
}
