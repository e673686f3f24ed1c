package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadTestdataString loads a file from the testdata directory at the module root
func LoadTestdataString(t *testing.T, relativePath string) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	projectRoot := wd
	for {
		if _, statErr := os.Stat(filepath.Join(projectRoot, "go.mod")); statErr == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			t.Fatal("Could not find project root (go.mod)")
		}
		projectRoot = parent
	}

	content, err := os.ReadFile(filepath.Join(projectRoot, "testdata", relativePath))
	if err != nil {
		t.Fatalf("Failed to load testdata file %s: %v", relativePath, err)
	}

	return string(content)
}
