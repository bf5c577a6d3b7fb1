package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mapcolor/internal/config"
	"github.com/katalvlaran/mapcolor/internal/logging"
)

// app carries the settings shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mapcolor",
		Short: "Color maps so that no two bordering regions share a color",
		Long: `mapcolor solves map coloring by depth-first search with chronological
backtracking and records every trial and undo, so the search can be replayed
step by step.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newSolveCmd(a),
		newReplayCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads the configuration, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	log, err := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log

	return nil
}
