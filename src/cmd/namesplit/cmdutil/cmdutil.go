// Package cmdutil holds helpers shared by the namesplit subcommands.
package cmdutil

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"namesplit/src/internal/config"
	"namesplit/src/internal/logging"
)

// Persistent flag names defined on the root command.
const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
)

// LoadConfig loads the configuration named by --config and applies
// --log-level. Without --config, $NAMESPLIT_CONFIG is read if that file exists.
// Commands run without the root flags get defaults.
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	load := config.Load
	path, _ := cmd.Flags().GetString(FlagConfig)
	if strings.TrimSpace(path) == "" {
		load = config.LoadOptional
	}
	cfg, err := load(path)
	if err != nil {
		return cfg, err
	}
	if lvl, _ := cmd.Flags().GetString(FlagLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// Logger returns a JSON logger on the command's stderr scoped to component.
func Logger(cmd *cobra.Command, cfg config.Config, component string) *slog.Logger {
	return logging.Component(logging.New(cmd.ErrOrStderr(), "namesplit", cfg.LogLevel), component)
}
