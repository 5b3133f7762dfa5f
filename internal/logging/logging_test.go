package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "stt.log")

	logger, err := New(path, "info")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("session saved", zap.String("subject", "Math"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"session saved"`)
	assert.Contains(t, out, `"subject":"Math"`)
	assert.Contains(t, out, `"timestamp":`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "stt.log"), "loud")
	assert.Error(t, err)
}
