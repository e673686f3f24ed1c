package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/t3commit/internal/config"
	"github.com/wizzomafizzo/t3commit/internal/constants"
	"github.com/wizzomafizzo/t3commit/internal/logging"
	"github.com/wizzomafizzo/t3commit/internal/project"
	"github.com/wizzomafizzo/t3commit/internal/prompt"
)

// commandFactory holds the dependencies shared by all subcommands.
type commandFactory struct {
	fs afero.Fs
	// logWriter replaces the rotating log file when set
	logWriter   io.Writer
	newPrompter func() prompt.Prompter
}

func defaultFactory() *commandFactory {
	return &commandFactory{
		fs:          afero.NewOsFs(),
		newPrompter: prompt.NewLinerPrompter,
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultFactory())
}

func newRootCommand(f *commandFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Compose and validate commit messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to config file")

	rootCmd.AddCommand(
		f.createCreateCommand(),
		f.createValidateCommand(),
		f.createTypesCommand(),
		f.createInitCommand(),
	)

	return rootCmd
}

// environment is the per-invocation state built from flags and config.
type environment struct {
	ctx  context.Context
	cfg  *config.Config
	root string
}

func (f *commandFactory) configPath(cmd *cobra.Command, root string) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	return configPath, nil
}

func (f *commandFactory) newEnvironment(cmd *cobra.Command) (*environment, error) {
	root, err := project.FindRoot(f.fs)
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}

	configPath, err := f.configPath(cmd, root)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(f.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	ctx, err := logging.New(cmd.Context(), f.fs, logging.Config{
		Writer:    f.logWriter,
		ProjectID: project.ID(root),
		Level:     level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logging.Get(ctx).Debug().
		Str("command", cmd.Name()).
		Str("config_path", configPath).
		Msg("command started")

	return &environment{ctx: ctx, cfg: cfg, root: root}, nil
}
