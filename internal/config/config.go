package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DataPath         string   `toml:"data_path"`
	DBPath           string   `toml:"db_path"`
	LogPath          string   `toml:"log_path"`
	LogLevel         string   `toml:"log_level"`
	PomodoroMinutes  int      `toml:"pomodoro_minutes"`
	Subjects         []string `toml:"subjects"`
	RecordOnComplete bool     `toml:"record_on_complete"`

	// Path is the config file that was read, empty if none existed.
	Path string `toml:"-"`
}

// Load reads the config file named by $STT_CONFIG, or
// ~/.config/stt/config.toml, over the defaults. A missing file is not an
// error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return load(filePath(home), home)
}

// FilePath is where Load looks for the config file.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return expandHome(filePath(home), home), nil
}

func filePath(home string) string {
	if p := os.Getenv("STT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(home, ".config", "stt", "config.toml")
}

// Write encodes c as TOML to path, creating parent directories.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func load(cfgPath, home string) (*Config, error) {
	dir := filepath.Join(home, ".config", "stt")
	cfg := &Config{
		DataPath:         filepath.Join(dir, "study_data.json"),
		DBPath:           filepath.Join(dir, "stt.db"),
		LogPath:          filepath.Join(dir, "stt.log"),
		LogLevel:         "info",
		PomodoroMinutes:  25,
		Subjects:         []string{"Physics", "Chemistry", "Biology", "Math"},
		RecordOnComplete: true,
	}

	cfgPath = expandHome(cfgPath, home)
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
		cfg.Path = cfgPath
	}

	// expand ~ in paths
	cfg.DataPath = expandHome(cfg.DataPath, home)
	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.LogPath = expandHome(cfg.LogPath, home)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgPath, err)
	}
	return cfg, nil
}

// Validate checks the values the rest of the program relies on.
func (c *Config) Validate() error {
	if c.PomodoroMinutes < 1 || c.PomodoroMinutes > 60 {
		return fmt.Errorf("pomodoro_minutes must be between 1 and 60, got %d", c.PomodoroMinutes)
	}
	seen := make(map[string]bool)
	for _, s := range c.Subjects {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("subjects must not contain empty names")
		}
		if seen[s] {
			return fmt.Errorf("duplicate subject %q", s)
		}
		seen[s] = true
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path is empty")
	}
	return nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
