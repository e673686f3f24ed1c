package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/t3commit/internal/config"
	"github.com/wizzomafizzo/t3commit/internal/project"
)

// createInitCommand creates the init command.
func (f *commandFactory) createInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := project.FindRoot(f.fs)
			if err != nil {
				return fmt.Errorf("failed to find project root: %w", err)
			}

			path, err := f.configPath(cmd, root)
			if err != nil {
				return err
			}

			exists, err := afero.Exists(f.fs, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			if exists && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			data, err := config.DefaultConfigYAML()
			if err != nil {
				return err
			}
			if err := afero.WriteFile(f.fs, path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config to %s: %w", path, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
