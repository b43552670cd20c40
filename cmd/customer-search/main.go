// Command customer-search serves the customer directory search page and its
// filter API, and queries a running server from the terminal.
//
// Running the server:
//
//	go run ./cmd/customer-search serve --config=config/local.yaml
//
// or, with the environment variable:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/customer-search serve
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/customer-search/internal/config"
	"github.com/aanand-mishra/customer-search/internal/fields"
)

const (
	appName = "customer-search"
	// Version is printed by the version command and logged at start-up.
	Version = "1.0.0"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Configuration-driven customer directory search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration YAML file (or CONFIG_PATH)")

	cmd.AddCommand(
		serveCmd(&configPath),
		searchCmd(&configPath),
		fieldsCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// setupLogger picks the handler by environment: text for local
// development, JSON for staging and production.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// loadRegistry returns the override registry when one is configured, the
// embedded one otherwise.
func loadRegistry(cfg *config.Config) (*fields.Registry, error) {
	if cfg.FieldsPath != "" {
		return fields.LoadFile(cfg.FieldsPath)
	}
	return fields.Default()
}
