package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/seed"
	"github.com/spf13/cobra"
)

var (
	envFile string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "news-api",
	Short: "News API - topics, articles, comments and users over HTTP",
	Long: `News API serves a read/write JSON API over a PostgreSQL news database.

Commands:
  serve     Start the HTTP server (default)
  migrate   Run schema migrations
  seed      Reset the schema and load fixture data`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "]",
	Short: "Run schema migrations",
	Long: `Run a goose command over the embedded schema migrations.

Examples:
  news-api migrate up       # Apply all pending migrations
  news-api migrate status   # Show applied and pending migrations
  news-api migrate reset    # Roll back every migration`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: postgres.MigrationCommands,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context(), args[0])
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop, migrate and load fixture data",
	Long: `Drop every table, re-apply the migrations and insert a fixture dataset.

The embedded test dataset is used unless --data names a directory holding
topics.json, users.json, articles.json and comments.json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context(), dataDir)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before configuration")
	seedCmd.Flags().StringVar(&dataDir, "data", "", "Directory of fixture JSON files (default: embedded test data)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// loadEnvFile loads path into the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// bootstrap loads configuration and sets up logging for every command.
func bootstrap() (*config.Config, *slog.Logger, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	return cfg, log, nil
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app := newApplication(cfg, log, db)
	return app.Run(ctx)
}

func runMigrate(ctx context.Context, command string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDatabase(db, log)

	return postgres.Migrate(ctx, db, command, log)
}

func runSeed(ctx context.Context, dir string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	data, err := loadSeedData(dir)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDatabase(db, log)

	if err := seed.Seed(logger.WithContext(ctx, log), db, data); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

func loadSeedData(dir string) (seed.Data, error) {
	if dir == "" {
		return seed.TestData()
	}
	return seed.LoadDir(dir)
}
