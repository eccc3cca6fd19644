package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/postprocess"
	"github.com/Zuo-Peng/logdye/internal/render"
)

type Config struct {
	DBPath            string `toml:"db_path"`
	Palette           string `toml:"palette"`
	Scheme            string `toml:"scheme"`
	RemoveParenthesis bool   `toml:"remove_parenthesis"`
	RemoveDot         bool   `toml:"remove_dot"`
	RemoveLenticular  bool   `toml:"remove_lenticular"`
	RegularizeQuotes  bool   `toml:"regularize_quotes"`
	LogLevel          string `toml:"log_level"`
	LogFile           string `toml:"log_file"`
}

// Dir is where the config file and the settings database live by default.
func Dir(home string) string {
	return filepath.Join(home, ".config", "logdye")
}

// Path returns the config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(Dir(home), "config.toml"), nil
}

func defaults(home string) *Config {
	return &Config{
		DBPath:   filepath.Join(Dir(home), "logdye.db"),
		Palette:  palette.V2,
		Scheme:   render.StandardText,
		LogLevel: "warn",
	}
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := defaults(home)

	cfgPath := filepath.Join(Dir(home), "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.LogFile = expandHome(cfg.LogFile, home)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", cfgPath, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := palette.Lookup(c.Palette); !ok {
		return fmt.Errorf("unknown palette %q (want one of %v)", c.Palette, palette.IDs())
	}
	if _, err := render.LookupScheme(c.Scheme); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is empty")
	}
	return nil
}

// Postprocess returns the content filters enabled in the config.
func (c *Config) Postprocess() postprocess.Options {
	return postprocess.Options{
		RemoveParenthesis: c.RemoveParenthesis,
		RemoveDot:         c.RemoveDot,
		RemoveLenticular:  c.RemoveLenticular,
		RegularizeQuotes:  c.RegularizeQuotes,
	}
}

const defaultFile = `# logdye configuration

# settings database (speaker names, colors, enabled flags)
# db_path = "~/.config/logdye/logdye.db"

# color palette for new speakers: "v2" or "bbs"
palette = "v2"

# default output scheme: standard-text, bold-text, standard-bbs, bold-bbs,
# standard-html, bold-html, tab-text, renpy
scheme = "standard-text"

# drop content lines starting with ( or （
remove_parenthesis = false
# drop content lines starting with . or 。
remove_dot = false
# drop content lines starting with 【
remove_lenticular = false
# rewrite quotes as alternating “ and ”
regularize_quotes = false

log_level = "warn"
# log_file = "~/.config/logdye/logdye.log"
`

// WriteDefault creates a commented config file at path unless one exists.
// It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
