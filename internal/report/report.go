// Package report renders validation results and composed messages for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/t3commit/internal/composer"
	"github.com/wizzomafizzo/t3commit/internal/validator"
)

var rule = strings.Repeat("=", 60)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
)

// Validation writes errors and warnings grouped by severity, followed by a verdict.
func Validation(w io.Writer, result *validator.Result, strict bool) {
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, "Commit Message Validation")
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w)

	writeGroup(w, errorStyle, "ERRORS:", result.Errors)
	writeGroup(w, warningStyle, "WARNINGS:", result.Warnings)

	switch {
	case len(result.Errors) == 0 && len(result.Warnings) == 0:
		_, _ = okStyle.Fprintln(w, "Commit message is valid!")
	case result.Failed(strict):
		if result.Valid {
			_, _ = errorStyle.Fprintln(w, "Validation failed in strict mode. Please fix warnings above.")
		} else {
			_, _ = errorStyle.Fprintln(w, "Validation failed. Please fix errors above.")
		}
	default:
		_, _ = okStyle.Fprintln(w, "No errors found (warnings can be ignored)")
	}

	_, _ = fmt.Fprintln(w, rule)
}

func writeGroup(w io.Writer, style *color.Color, title string, diags []validator.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	_, _ = style.Fprintln(w, title)
	for _, d := range diags {
		_, _ = fmt.Fprintf(w, "  • %s\n", d)
	}
	_, _ = fmt.Fprintln(w)
}

// Composed writes a generated message framed for copying.
func Composed(w io.Writer, msg *composer.Message) {
	for _, warning := range msg.Warnings {
		_, _ = warningStyle.Fprintf(w, "Warning: %s\n", warning)
	}
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, "Generated Commit Message:")
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprint(w, msg.String())
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, "Note: Change-Id will be added automatically by git hook")
	_, _ = fmt.Fprintln(w, rule)
}

// SavedGuidance tells the user how to commit with a message saved to path.
func SavedGuidance(w io.Writer, path string) {
	_, _ = okStyle.Fprintf(w, "Commit message saved to: %s\n", path)
	_, _ = fmt.Fprintf(w, "  Use: git commit -F %s\n", path)
}

// CopyGuidance tells the user how to commit with a message printed to the terminal.
func CopyGuidance(w io.Writer) {
	_, _ = fmt.Fprintln(w, "To use this message:")
	_, _ = fmt.Fprintln(w, "  1. Copy the message above")
	_, _ = fmt.Fprintln(w, "  2. Run: git commit")
	_, _ = fmt.Fprintln(w, "  3. Paste into your editor")
}
