package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"finance-analytics/internal/config"
	"finance-analytics/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the finance analytics database schema",
	Long: `Applies, rolls back and inspects the SQL migrations under db/migrations,
and loads the optional seed files under db/seeds.

Connection settings come from the same DB_* environment variables as the server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("migrations", "", "migrations directory (default: MIGRATIONS_PATH or db/migrations)")
	rootCmd.PersistentFlags().String("seeds", "", "seeds directory (default: SEEDS_PATH or db/seeds)")

	rootCmd.AddCommand(upCmd())
	rootCmd.AddCommand(downCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(seedCmd())
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(cmd, false, func(runner *database.MigrationRunner) error {
				return runner.RunMigrations()
			})
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default 1 step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps %q: %w", args[0], err)
				}
				steps = n
			}

			return withRunner(cmd, false, func(runner *database.MigrationRunner) error {
				return runner.Rollback(steps)
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(cmd, false, func(runner *database.MigrationRunner) error {
				version, dirty, err := runner.GetMigrationStatus()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", version, dirty)
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Execute every *.sql file in the seeds directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(cmd, true, func(runner *database.MigrationRunner) error {
				return runner.LoadSeeds()
			})
		},
	}
}

// withRunner opens the database, waits for it and hands a runner to fn
func withRunner(cmd *cobra.Command, seed bool, fn func(*database.MigrationRunner) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbCfg := cfg.Database
	if path, _ := cmd.Flags().GetString("migrations"); path != "" {
		dbCfg.MigrationsPath = path
	}
	if path, _ := cmd.Flags().GetString("seeds"); path != "" {
		dbCfg.SeedsPath = path
	}
	dbCfg.SeedDatabase = seed

	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, &dbCfg)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	slog.Info("running migration command", "command", cmd.Name(), "database", dbCfg.Name)
	return fn(runner)
}
