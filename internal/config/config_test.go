package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STT_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	dir := filepath.Join(home, ".config", "stt")
	assert.Equal(t, filepath.Join(dir, "study_data.json"), cfg.DataPath)
	assert.Equal(t, filepath.Join(dir, "stt.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "stt.log"), cfg.LogPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 25, cfg.PomodoroMinutes)
	assert.Equal(t, []string{"Physics", "Chemistry", "Biology", "Math"}, cfg.Subjects)
	assert.True(t, cfg.RecordOnComplete)
	assert.Empty(t, cfg.Path)
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_path = "~/study/log.json"
pomodoro_minutes = 50
subjects = ["Latin", "Greek"]
record_on_complete = false
log_level = "debug"
`), 0o644))

	cfg, err := load(path, home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "study", "log.json"), cfg.DataPath)
	assert.Equal(t, filepath.Join(home, ".config", "stt", "stt.db"), cfg.DBPath, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.PomodoroMinutes)
	assert.Equal(t, []string{"Latin", "Greek"}, cfg.Subjects)
	assert.False(t, cfg.RecordOnComplete)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "elsewhere.toml")
	require.NoError(t, os.WriteFile(path, []byte("pomodoro_minutes = 15\n"), 0o644))
	t.Setenv("STT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.PomodoroMinutes)
}

func TestLoad_BadToml(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("pomodoro_minutes = ="), 0o644))

	_, err := load(path, home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{DataPath: "x", LogLevel: "info", PomodoroMinutes: 25, Subjects: []string{"Math"}}
	}
	require.NoError(t, valid().Validate())

	tests := map[string]func(c *Config){
		"pomodoro too small": func(c *Config) { c.PomodoroMinutes = 0 },
		"pomodoro too large": func(c *Config) { c.PomodoroMinutes = 61 },
		"empty subject":      func(c *Config) { c.Subjects = []string{"Math", " "} },
		"duplicate subject":  func(c *Config) { c.Subjects = []string{"Math", "Math"} },
		"log level":          func(c *Config) { c.LogLevel = "loud" },
		"data path":          func(c *Config) { c.DataPath = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, filepath.Join("/h", "a", "b"), expandHome("~/a/b", "/h"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path", "/h"))
	assert.Equal(t, "~", expandHome("~", "/h"))
}

func TestWrite_RoundTrips(t *testing.T) {
	home := t.TempDir()
	cfg, err := load(filepath.Join(home, "missing.toml"), home)
	require.NoError(t, err)
	cfg.PomodoroMinutes = 45
	cfg.Subjects = []string{"Latin"}

	path := filepath.Join(home, "nested", "config.toml")
	require.NoError(t, cfg.Write(path))

	got, err := load(path, home)
	require.NoError(t, err)
	assert.Equal(t, 45, got.PomodoroMinutes)
	assert.Equal(t, []string{"Latin"}, got.Subjects)
	assert.Equal(t, cfg.DataPath, got.DataPath)
	assert.Equal(t, path, got.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Path", "the source path is not written back")
}

func TestFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Setenv("STT_CONFIG", "")
	p, err := FilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "stt", "config.toml"), p)

	t.Setenv("STT_CONFIG", "~/my.toml")
	p, err = FilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "my.toml"), p)
}
