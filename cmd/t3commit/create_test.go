package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/t3commit/internal/composer"
	"github.com/wizzomafizzo/t3commit/internal/validator"
)

func TestCreateCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := newTestHarness(t).factory.createCreateCommand()

	assert.Equal(t, "create", cmd.Use)
	for _, name := range []string{"type", "issue", "related", "breaking", "releases", "subject", "description", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestCreateCommandFromFlags(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	out, err := h.execute("create",
		"--type", "bugfix",
		"--issue", "105737",
		"--related", "12345, 12346",
		"--releases", "main, 13.4",
		"--subject", "Respect page access in menus",
		"--description", "Hidden pages were rendered for anonymous users.",
	)
	require.NoError(t, err)

	want := "[BUGFIX] Respect page access in menus\n\n" +
		"Hidden pages were rendered for anonymous users.\n\n" +
		"Resolves: #105737\nRelated: #12345\nRelated: #12346\nReleases: main, 13.4\n"
	assert.Contains(t, out, want)
	assert.Contains(t, out, "To use this message:")
}

func TestCreateCommandBreaking(t *testing.T) {
	t.Parallel()

	out, err := newTestHarness(t).execute("create", "-t", "FEATURE", "--breaking", "-s", "Drop legacy hook registration")
	require.NoError(t, err)
	assert.Contains(t, out, "[[!!!]FEATURE] Drop legacy hook registration\n")
}

func TestCreateCommandReleasesFromConfig(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/project/.t3commit.yml", []byte("releases: [main, \"12.4\"]\n"), 0o600))

	out, err := h.execute("create", "-c", "/project/.t3commit.yml", "-t", "TASK", "-s", "Clean up scanner")
	require.NoError(t, err)
	assert.Contains(t, out, "Releases: main, 12.4\n")
}

func TestCreateCommandDropsInvalidReleases(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	out, err := h.execute("create", "-t", "TASK", "-s", "Clean up scanner", "--releases", "main, 13")
	require.NoError(t, err)

	assert.Contains(t, out, "Warning: Invalid release format '13', skipping")
	assert.Contains(t, out, "Releases: main\n")
	entries := h.logs.Entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "input dropped from message", entries[0]["message"])
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Contains(t, entries[0]["warning"], "'13'")
}

func TestCreateCommandOutputFile(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	out, err := h.execute("create", "-t", "DOCS", "-s", "Document the scanner", "--issue", "7", "-o", "/tmp/msg.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "git commit -F /tmp/msg.txt")

	data, err := afero.ReadFile(h.fs, "/tmp/msg.txt")
	require.NoError(t, err)
	assert.Equal(t, "[DOCS] Document the scanner\n\nResolves: #7\nReleases: main\n", string(data))
	assert.Equal(t, []string{"commit message saved"}, h.logs.Messages(t))

	result := validator.New().Validate(string(data))
	assert.True(t, result.Valid, "saved message should validate: %v", result.Errors)
}

func TestCreateCommandInvalidSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subject string
		reason  composer.Reason
	}{
		{name: "lower case", subject: "fix the thing", reason: composer.ReasonNotCapitalized},
		{name: "trailing period", subject: "Fix the thing.", reason: composer.ReasonTrailingPeriod},
		{name: "past tense", subject: "Fixed the thing", reason: composer.ReasonNotImperative},
		{name: "too long", subject: "A" + strings.Repeat("x", 60), reason: composer.ReasonTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHarness(t)
			out, err := h.execute("create", "-t", "TASK", "-s", tt.subject, "-o", "/tmp/msg.txt")

			require.ErrorIs(t, err, composer.ErrInvalidSubject)
			var subjErr *composer.InvalidSubjectError
			require.ErrorAs(t, err, &subjErr)
			assert.Equal(t, tt.reason, subjErr.Reason)
			assert.NotContains(t, out, "Generated Commit Message")

			exists, err := afero.Exists(h.fs, "/tmp/msg.txt")
			require.NoError(t, err)
			assert.False(t, exists, "no partial message may be written")
		})
	}
}

func TestCreateCommandInteractive(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t, "Add scheduler task for cleanup", "First paragraph.", "", "Second paragraph.")
	out, err := h.execute("create", "-t", "FEATURE", "--breaking", "--issue", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Commit Type: [FEATURE]")
	assert.Contains(t, out, "Breaking Change: Yes (will add [!!!] prefix)")
	assert.Contains(t, out, "[[!!!]FEATURE] Add scheduler task for cleanup\n\n"+
		"First paragraph.\n\nSecond paragraph.\n\nResolves: #42\nReleases: main\n")
}

func TestCreateCommandInteractiveCancelled(t *testing.T) {
	t.Parallel()

	_, err := newTestHarness(t).execute("create", "-t", "TASK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read subject")
}

func TestCreateCommandRequiresType(t *testing.T) {
	t.Parallel()

	_, err := newTestHarness(t).execute("create", "-s", "Clean up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"type" not set`)
}

func TestCreateCommandUnknownType(t *testing.T) {
	t.Parallel()

	_, err := newTestHarness(t).execute("create", "-t", "CHORE", "-s", "Clean up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown commit type")
}

func TestCreateCommandInvalidRelated(t *testing.T) {
	t.Parallel()

	_, err := newTestHarness(t).execute("create", "-t", "TASK", "-s", "Clean up", "--related", "12,abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --related value")
}
