package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"sitebuilder/internal/app"
	"sitebuilder/internal/database/migration"
	dbpostgres "sitebuilder/internal/database/postgres"
	"sitebuilder/internal/infrastructure/cache"
	"sitebuilder/internal/infrastructure/llm"
	"sitebuilder/internal/usecase"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill missing demo content in the configured store",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending postgres migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var cacheFlushCmd = &cobra.Command{
	Use:   "cache-flush",
	Short: "Drop cached model completions from redis",
	Args:  cobra.NoArgs,
	RunE:  runCacheFlush,
}

func init() {
	rootCmd.AddCommand(seedCmd, migrateCmd, cacheFlushCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, lg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	store, db, err := app.OpenStore(ctx, cfg.Database, lg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	if !cfg.Database.UsesPostgres() {
		lg.Warn().Msg("memory driver selected, seeded data is discarded on exit")
	}

	redis := cache.NewRedis(cfg.Redis, lg)
	defer redis.Close()

	summary, err := usecase.NewSeedUsecase(store, redis, lg).EnsureSeed(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, lg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.UsesPostgres() {
		return errors.New("migrate needs DB_DRIVER=postgres")
	}

	db, err := dbpostgres.Connect(cmd.Context(), cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	report, err := migration.NewRunner(lg).Apply(cmd.Context(), db.SQLDB())
	if err != nil {
		return err
	}
	for _, m := range report.Applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied V%d %s\n", m.Version, m.Name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d already applied, %d new\n", report.Current, len(report.Applied))
	return nil
}

func runCacheFlush(cmd *cobra.Command, _ []string) error {
	cfg, lg, err := loadConfig()
	if err != nil {
		return err
	}

	redis := cache.NewRedis(cfg.Redis, lg)
	defer redis.Close()
	if !redis.Available() {
		return errors.New("redis not reachable")
	}

	n, err := redis.DeleteByPattern(cmd.Context(), llm.CacheKeyPrefix+"*")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %d cached completions\n", n)
	return nil
}
