package logging

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/t3commit/internal/constants"
)

// Test helpers
func createTestConfig(writer *strings.Builder) Config {
	return Config{
		Writer:    writer,
		ProjectID: "test-project",
		Level:     InfoLevel,
	}
}

func TestGet_WithoutLogger(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())

	require.NotNil(t, logger)
	// When no logger is attached, zerolog.Ctx returns a disabled logger
	require.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_WithCustomWriter(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))

	require.NoError(t, err)
	require.NotNil(t, ctx)

	logger := Get(ctx)
	require.NotNil(t, logger)
	assert.Equal(t, InfoLevel, logger.GetLevel())
}

func TestNew_WritesStructuredFields(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, createTestConfig(&buf))
	require.NoError(t, err)

	Get(ctx).Info().Str("command", "validate").Msg("command started")
	Get(ctx).Debug().Msg("filtered out")

	output := buf.String()
	assert.Contains(t, output, `"project_id":"test-project"`)
	assert.Contains(t, output, `"command":"validate"`)
	assert.Contains(t, output, `"message":"command started"`)
	assert.NotContains(t, output, "filtered out")
}

func TestNew_NoWriterNoFilesystem_ReturnsError(t *testing.T) {
	t.Parallel()

	ctx, err := New(context.Background(), nil, Config{ProjectID: "test-project", Level: InfoLevel})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "filesystem required when no writer provided")
	assert.Nil(t, ctx)
}

func TestNew_WithFilesystemCreatesDataDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ctx, err := New(context.Background(), fs, Config{ProjectID: "test-project", Level: WarnLevel})
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, Get(ctx).GetLevel())

	exists, err := afero.DirExists(fs, filepath.Join(xdg.DataHome, constants.AppName))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: InfoLevel},
		{name: "debug", input: "debug", want: DebugLevel},
		{name: "warn", input: "warn", want: WarnLevel},
		{name: "unknown", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
