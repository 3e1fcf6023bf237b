// Command sitectl runs maintenance tasks for the site backend: resume
// parsing from the shell, seeding and migrations.
package main

import (
	"fmt"
	"os"

	"sitebuilder/internal/config"
	"sitebuilder/internal/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sitectl",
	Short:         "Site builder maintenance tool",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the server configuration. sitectl never listens, so a
// missing HTTP_PORT is tolerated.
func loadConfig() (config.Config, zerolog.Logger, error) {
	if os.Getenv("HTTP_PORT") == "" {
		_ = os.Setenv("HTTP_PORT", "0")
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	lg := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr})
	return cfg, lg, nil
}
