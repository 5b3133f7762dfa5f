package open

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	cmd, err := command("vim", "/tmp/config.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "/tmp/config.toml"}, cmd.Args)

	cmd, err = command("nano -l", "/tmp/config.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"nano", "-l", "/tmp/config.toml"}, cmd.Args)

	cmd, err = command("code", "/tmp/config.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "/tmp/config.toml"}, cmd.Args)

	cmd, err = command("code -w", "/tmp/config.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "-w", "/tmp/config.toml"}, cmd.Args)

	_, err = command("  ", "/tmp/config.toml")
	assert.Error(t, err)
}

func TestEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", editor())

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", editor())

	t.Setenv("VISUAL", "hx")
	assert.Equal(t, "hx", editor())
}

func TestFile_Missing(t *testing.T) {
	err := File(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "file not found")
}
