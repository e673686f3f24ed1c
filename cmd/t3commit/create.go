package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/t3commit/internal/composer"
	"github.com/wizzomafizzo/t3commit/internal/convention"
	"github.com/wizzomafizzo/t3commit/internal/logging"
	"github.com/wizzomafizzo/t3commit/internal/prompt"
	"github.com/wizzomafizzo/t3commit/internal/report"
)

type createOptions struct {
	commitType  string
	subject     string
	description string
	related     string
	releases    string
	output      string
	issue       int
	breaking    bool
}

// createCreateCommand creates the create command.
func (f *commandFactory) createCreateCommand() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a commit message",
		Long: `Generate a commit message from structured fields.

The subject and description are prompted for when --subject is not given.`,
		Example: `  t3commit create --issue 105737 --type BUGFIX
  t3commit create --issue 105737 --type FEATURE --breaking
  t3commit create --type TASK --related 12345,12346 --subject "Clean up scanner"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.runCreate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.commitType, "type", "t", "", "Commit type: "+convention.TypeTags())
	cmd.Flags().IntVar(&opts.issue, "issue", 0, "Forge issue number resolved by this change")
	cmd.Flags().StringVar(&opts.related, "related", "", "Related issue numbers (comma-separated)")
	cmd.Flags().BoolVar(&opts.breaking, "breaking", false,
		"Mark as breaking change (adds "+convention.BreakingMarker+" prefix)")
	cmd.Flags().StringVar(&opts.releases, "releases", "",
		`Target releases (comma-separated, e.g. "main, 13.4, 12.4"); defaults to config`)
	cmd.Flags().StringVarP(&opts.subject, "subject", "s", "", "Subject line (prompted when empty)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Description explaining how and why")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: print to stdout)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (f *commandFactory) runCreate(cmd *cobra.Command, opts *createOptions) error {
	env, err := f.newEnvironment(cmd)
	if err != nil {
		return err
	}
	log := logging.Get(env.ctx)
	out := cmd.OutOrStdout()

	commitType, err := convention.ParseType(opts.commitType)
	if err != nil {
		return err
	}

	related, err := composer.ParseRefs(opts.related)
	if err != nil {
		return fmt.Errorf("invalid --related value: %w", err)
	}

	releases := composer.ParseReleases(opts.releases)
	if !cmd.Flags().Changed("releases") {
		releases = env.cfg.Releases
		log.Debug().Str("releases", env.cfg.ReleasesFlag()).Msg("using configured releases")
	}

	subject, description := opts.subject, opts.description
	if subject == "" {
		conv := convention.Default()
		_, _ = fmt.Fprintf(out, "Commit Type: %s\n", conv.Prefix(commitType, false))
		if opts.breaking {
			_, _ = fmt.Fprintf(out, "Breaking Change: Yes (will add %s prefix)\n", conv.BreakingMarker)
		}

		subject, description, err = f.promptMessage(conv.SubjectLimit(opts.breaking), description)
		if err != nil {
			return err
		}
	}

	c := composer.New()
	msg, err := c.Compose(composer.Input{
		Type:        commitType,
		Subject:     subject,
		Description: description,
		Issue:       opts.issue,
		Related:     related,
		Releases:    releases,
		Breaking:    opts.breaking,
	})
	if err != nil {
		var subjErr *composer.InvalidSubjectError
		if errors.As(err, &subjErr) {
			log.Warn().Str("reason", subjErr.Reason.String()).Msg("subject rejected")
		}
		return fmt.Errorf("cannot compose commit message: %w", err)
	}

	for _, warning := range msg.Warnings {
		log.Warn().Str("warning", warning).Msg("input dropped from message")
	}

	report.Composed(out, msg)

	if opts.output == "" {
		report.CopyGuidance(out)
		return nil
	}

	if err := afero.WriteFile(f.fs, opts.output, []byte(msg.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write commit message to %s: %w", opts.output, err)
	}
	log.Info().Str("output", opts.output).Msg("commit message saved")
	report.SavedGuidance(out, opts.output)

	return nil
}

// promptMessage asks for the subject, and for the description unless one was given.
func (f *commandFactory) promptMessage(limit int, description string) (string, string, error) {
	prompter := f.newPrompter()
	defer func() { _ = prompter.Close() }()

	subject, err := prompt.TextInput(prompter,
		fmt.Sprintf("Enter subject line (max %d chars, imperative mood):", limit))
	if err != nil {
		return "", "", fmt.Errorf("failed to read subject: %w", err)
	}

	if description == "" {
		description, err = prompt.MultiLineInput(prompter, "Enter description (explain how and why, not what).")
		if err != nil {
			return "", "", fmt.Errorf("failed to read description: %w", err)
		}
	}

	return subject, description, nil
}
