package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/t3commit/internal/composer"
	"github.com/wizzomafizzo/t3commit/internal/convention"
	"github.com/wizzomafizzo/t3commit/internal/validator"
)

func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  *validator.Result
		strict  bool
		want    []string
		notWant []string
	}{
		{
			name:    "clean",
			result:  &validator.Result{Valid: true},
			want:    []string{"Commit message is valid!"},
			notWant: []string{"ERRORS:", "WARNINGS:"},
		},
		{
			name: "warnings only",
			result: &validator.Result{
				Valid:    true,
				Warnings: []validator.Diagnostic{{Message: "No Change-Id found.", Severity: validator.SeverityWarning}},
			},
			want:    []string{"WARNINGS:", "  • No Change-Id found.", "warnings can be ignored"},
			notWant: []string{"ERRORS:"},
		},
		{
			name: "warnings in strict mode",
			result: &validator.Result{
				Valid:    true,
				Warnings: []validator.Diagnostic{{Message: "No Change-Id found.", Severity: validator.SeverityWarning}},
			},
			strict: true,
			want:   []string{"strict mode"},
		},
		{
			name: "errors with line numbers",
			result: &validator.Result{
				Errors: []validator.Diagnostic{{Message: "Invalid release format '13'", Line: 5}},
			},
			want: []string{"ERRORS:", "  • Line 5: Invalid release format '13'", "Validation failed."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			Validation(&out, tt.result, tt.strict)

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out.String(), notWant)
			}
		})
	}
}

func TestComposed(t *testing.T) {
	t.Parallel()

	msg, err := composer.New().Compose(composer.Input{
		Type:     convention.Task,
		Subject:  "Clean up",
		Releases: []string{"main", "13"},
	})
	require.NoError(t, err)

	var out strings.Builder
	Composed(&out, msg)

	assert.Contains(t, out.String(), "Warning: Invalid release format '13', skipping")
	assert.Contains(t, out.String(), "[TASK] Clean up\n\nReleases: main\n")
	assert.Contains(t, out.String(), "Change-Id will be added automatically")
}

func TestGuidance(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	SavedGuidance(&out, "/tmp/msg.txt")
	CopyGuidance(&out)

	assert.Contains(t, out.String(), "git commit -F /tmp/msg.txt")
	assert.Contains(t, out.String(), "Paste into your editor")
}
