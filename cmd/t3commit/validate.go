package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/t3commit/internal/constants"
	"github.com/wizzomafizzo/t3commit/internal/gitlog"
	"github.com/wizzomafizzo/t3commit/internal/logging"
	"github.com/wizzomafizzo/t3commit/internal/report"
	"github.com/wizzomafizzo/t3commit/internal/validator"
)

type validateOptions struct {
	message string
	file    string
	repo    string
	strict  bool
}

// createValidateCommand creates the validate command.
func (f *commandFactory) createValidateCommand() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a commit message",
		Long: `Validate a commit message against the commit convention.

Without --message or --file the message of the last commit is checked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "Commit message string")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "File containing commit message")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "Repository to read the last commit from (default: project root)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Treat warnings as errors")
	cmd.MarkFlagsMutuallyExclusive("message", "file")

	return cmd
}

func (f *commandFactory) runValidate(cmd *cobra.Command, opts *validateOptions) error {
	env, err := f.newEnvironment(cmd)
	if err != nil {
		return err
	}
	log := logging.Get(env.ctx)

	message, source, err := f.readMessage(cmd, opts, env.root)
	if err != nil {
		return err
	}

	strict := opts.strict
	if !cmd.Flags().Changed("strict") {
		strict = env.cfg.Strict
	}

	result := validator.New().Validate(message)
	report.Validation(cmd.OutOrStdout(), result, strict)

	log.Info().
		Str("source", source).
		Bool("valid", result.Valid).
		Bool("strict", strict).
		Int("errors", len(result.Errors)).
		Int("warnings", len(result.Warnings)).
		Msg("commit message validated")

	if result.Failed(strict) {
		return &ExitError{Message: "commit message validation failed", Code: constants.ExitFailure}
	}
	return nil
}

func (f *commandFactory) readMessage(cmd *cobra.Command, opts *validateOptions, root string) (string, string, error) {
	switch {
	case opts.file != "":
		data, err := afero.ReadFile(f.fs, opts.file)
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("file not found: %s", opts.file)
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		return string(data), "file", nil
	case cmd.Flags().Changed("message"):
		return opts.message, "flag", nil
	}

	repo := opts.repo
	if repo == "" {
		repo = root
	}
	message, err := gitlog.LastMessage(repo)
	if err != nil {
		return "", "", fmt.Errorf("could not read last commit message (provide --file or --message): %w", err)
	}
	return message, "git", nil
}
