package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInput reads a single line after a coloured prompt.
func TextInput(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(color.CyanString(prompt + " "))
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("text input failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// MultiLineInput accepts multi-line text. Input ends on EOF (Ctrl+D) or after
// two consecutive empty lines; single empty lines separate paragraphs.
func MultiLineInput(prompter Prompter, prompt string) (string, error) {
	color.Cyan("%s (Ctrl+D or Enter twice when done)\n", prompt)

	lines := make([]string, 0, 10)
	emptyLineCount := 0

	for {
		input, err := prompter.Prompt(color.YellowString("  "))
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return "", ErrCancelled
			}
			return "", fmt.Errorf("multi-line input failed: %w", err)
		}

		if input == "" {
			emptyLineCount++
			if emptyLineCount >= 2 {
				break
			}
		} else {
			emptyLineCount = 0
		}

		lines = append(lines, input)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
