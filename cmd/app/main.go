package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orders/cmd"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/seed"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("orders: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "orders",
		Short:         "Order lifecycle and aggregation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(newServeCmd(&envFile))
	root.AddCommand(newMigrateCmd(&envFile))
	root.AddCommand(newSeedCmd(&envFile))
	return root
}

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, logger, err := bootstrap(*envFile)
			if err != nil {
				return err
			}

			var gormDB *gorm.DB
			if configs.StorageBackend == cmd.BackendPostgres {
				if gormDB, err = openDB(configs); err != nil {
					return err
				}
			}

			app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := app.Close(); closeErr != nil {
					logger.Error("Failed to close event publisher", "error", closeErr)
				}
			}()

			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return startWebServer(ctx, app, configs.HTTPPort, logger)
		},
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateEcho(ctx)
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newMigrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, logger, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			gormDB, err := openDB(configs)
			if err != nil {
				return err
			}

			if err = postgres.Migrate(c.Context(), gormDB); err != nil {
				return err
			}
			logger.Info("Schema migrated")
			return nil
		},
	}
}

func newSeedCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data (statuses, services, products) skipping existing rows",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, logger, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			gormDB, err := openDB(configs)
			if err != nil {
				return err
			}

			data, err := seed.Load(configs.SeedFile)
			if err != nil {
				return err
			}
			result, err := postgres.Seed(c.Context(), gormDB, data)
			if err != nil {
				return err
			}
			logger.Info("Reference data seeded",
				"statuses", result.Statuses,
				"services", result.Services,
				"products", result.Products,
			)
			return nil
		},
	}
}

func bootstrap(envFile string) (cmd.Config, *slog.Logger, error) {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)
	return configs, logger, nil
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	dsn, err := configs.DSN()
	if err != nil {
		return nil, err
	}
	gormDB, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return gormDB, nil
}
