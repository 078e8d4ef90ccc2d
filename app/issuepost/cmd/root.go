package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/croneill/issuepost/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "issuepost",
	Short: "Create GitHub issues from the command line",
	Long: `Issuepost submits new issues to a GitHub repository through the REST API.
Credentials and repository coordinates come from flags, environment variables,
or an optional YAML config file.`,
	PersistentPreRunE: loadRootConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func loadRootConfig(_ *cobra.Command, _ []string) error {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = config.Load()
	if configFile != "" {
		if err := cfg.MergeFile(configFile); err != nil {
			return err
		}
	}
	if telemetryEnabled {
		cfg.TelemetryEnabled = true
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&telemetryEnabled, "telemetry", false, "Export traces over OTLP")
}
