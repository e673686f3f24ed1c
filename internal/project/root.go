// Package project provides utilities for detecting project root directories.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// EnvProjectDir overrides root detection when set to an existing directory.
const EnvProjectDir = "T3COMMIT_PROJECT_DIR"

var markers = []string{".git", "composer.json", "go.mod", "package.json"}

// FindRoot finds the project root directory.
func FindRoot(fs afero.Fs) (string, error) {
	if root, found := checkProjectDirEnv(fs); found {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindRootFrom(fs, cwd); found {
		return root, nil
	}

	// Fall back to current working directory
	return cwd, nil
}

// ID returns the identifier logged for a project root.
func ID(root string) string {
	return filepath.Base(root)
}

// FindRootFrom walks up from startDir looking for a project marker.
func FindRootFrom(fs afero.Fs, startDir string) (string, bool) {
	currentDir := startDir

	for {
		if hasProjectMarker(fs, currentDir) {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}

func checkProjectDirEnv(fs afero.Fs) (string, bool) {
	dir := os.Getenv(EnvProjectDir)
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	if ok, err := afero.DirExists(fs, abs); err != nil || !ok {
		return "", false
	}

	return abs, true
}

func hasProjectMarker(fs afero.Fs, dir string) bool {
	for _, marker := range markers {
		if _, err := fs.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
