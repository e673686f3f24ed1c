package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wizzomafizzo/t3commit/internal/constants"
)

func main() {
	if err := run(); err != nil {
		// Validation failures are already reported; only the code matters
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(constants.ExitFailure)
	}
}

func run() error {
	if err := createNewRootCommand().Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}

// ExitError carries a non-zero exit code for an outcome that was already reported
type ExitError struct {
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	return e.Message
}
