package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Dosada05/tennis-cup/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tennis-cup",
	Short: "Group stage and playoff engine for single-set tennis tournaments",
	Long: `tennis-cup runs a two-group round-robin stage followed by semifinals,
a third-place match and a final, and serves the tournament state over HTTP
and websockets.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tennis-cup: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process logger: the slog API on a charmbracelet/log
// handler.
func newLogger(cfg *config.Config) *slog.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "tennis-cup",
	}
	if strings.EqualFold(cfg.LogFormat, "json") {
		opts.Formatter = log.JSONFormatter
	}
	logger := slog.New(log.NewWithOptions(os.Stdout, opts))
	slog.SetDefault(logger)
	return logger
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, newLogger(cfg), nil
}
