package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadTestdataString(t *testing.T) {
	t.Parallel()

	content := LoadTestdataString(t, "messages/valid.txt")
	assert.True(t, strings.HasPrefix(content, "[BUGFIX] "))
}
