package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/db"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/logging"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/migrations"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "authorctl",
	Short:         "Maintenance commands for the authors database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.GinMode, cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply, roll back or inspect schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(database *gorm.DB) error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			applied, err := migrations.Up(cmd.Context(), sqlDB, cfg.DBDriver)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %05d\n", v)
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(database *gorm.DB) error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			rolled, err := migrations.Down(cmd.Context(), sqlDB, cfg.DBDriver)
			if err != nil {
				return err
			}
			for _, v := range rolled {
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %05d\n", v)
			}
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(database *gorm.DB) error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			statuses, err := migrations.CurrentStatus(cmd.Context(), sqlDB, cfg.DBDriver)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%05d  %-8s %s\n", s.Version, state, s.Path)
			}
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo stores, books and authors into an empty database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(database *gorm.DB) error {
			sum, err := seed.Run(cmd.Context(), database)
			if err != nil {
				return err
			}
			if sum.Skipped {
				logger.Info("seed skipped, database is not empty")
				fmt.Fprintln(cmd.OutOrStdout(), "database already seeded")
				return nil
			}
			logger.Info("seed finished",
				zap.Int("stores", sum.Stores),
				zap.Int("books", sum.Books),
				zap.Int("authors", sum.Authors),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d stores, %d books, %d authors\n",
				sum.Stores, sum.Books, sum.Authors)
			return nil
		})
	},
}

func withDB(cmd *cobra.Command, fn func(*gorm.DB) error) error {
	database, err := db.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sqlDB, err := database.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	return fn(database)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
