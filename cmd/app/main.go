// @title			Cargo API
// @version		1.0
// @description	Back-office API for clients, parcels and shipments.
// @BasePath		/api/v1
// @securityDefinitions.apikey	bearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cargo/cmd"
	cargohttp "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("cargo: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "cargo",
		Short:         "Cargo back-office service",
		Long:          "Registers clients, receives parcels into the warehouse and moves them in shipments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate, seed operator accounts and start the HTTP API",
			RunE: func(c *cobra.Command, _ []string) error {
				return runServe(c.Context(), envFile)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(c *cobra.Command, _ []string) error {
				_, slogger, db, err := bootstrap(envFile)
				if err != nil {
					return err
				}
				if err = postgres.Migrate(db); err != nil {
					return err
				}
				slogger.InfoContext(c.Context(), "Schema migrated")
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create the admin and manager accounts when no user exists",
			RunE: func(c *cobra.Command, _ []string) error {
				configs, slogger, db, err := bootstrap(envFile)
				if err != nil {
					return err
				}
				return seedUsers(c.Context(), configs, slogger, db)
			},
		},
	)

	return root
}

func runServe(ctx context.Context, envFile string) error {
	configs, slogger, db, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	if err = configs.Validate(); err != nil {
		return err
	}

	if err = postgres.Migrate(db); err != nil {
		return err
	}
	if err = seedUsers(ctx, configs, slogger, db); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, db, slogger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			slogger.Error("Failed to close adapters", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, app, configs.HTTPPort, slogger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, slogger *slog.Logger) error {
	e, err := cargohttp.NewRouter(
		cargohttp.NewServer(app.HTTPHandlers(), slogger),
		cargohttp.RouterConfig{
			Verifier:   app.TokenVerifier(),
			Registerer: app.Registry(),
			Gatherer:   app.Registry(),
			Logger:     slogger,
		},
	)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slogger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slogger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// seedUsers creates the default accounts on an empty users table. It is a
// no-op when either seed password is missing.
func seedUsers(ctx context.Context, configs cmd.Config, slogger *slog.Logger, db *gorm.DB) error {
	if configs.SeedAdminPassword == "" || configs.SeedManagerPassword == "" {
		slogger.WarnContext(ctx, "Seed passwords not configured, skipping user seed")
		return nil
	}

	seedCmd, err := commands.NewSeedUsersCommand(configs.SeedAdminPassword, configs.SeedManagerPassword)
	if err != nil {
		return err
	}

	handler := cmd.NewSeedUsersCommandHandler(db)
	created, err := handler.Handle(ctx, seedCmd)
	if err != nil {
		return err
	}

	slogger.InfoContext(ctx, "User seed finished", "created", created)
	return nil
}

func bootstrap(envFile string) (cmd.Config, *slog.Logger, *gorm.DB, error) {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	slogger := newLogger(configs)
	slog.SetDefault(slogger)

	db, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return cmd.Config{}, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return configs, slogger, db, nil
}

func newLogger(configs cmd.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(configs.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if configs.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
