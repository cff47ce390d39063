package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/render"
)

// configFile is the config file name inside the config directory.
const configFile = "config.toml"

// Config is the TOML config file. Every field is optional; command-line
// arguments take precedence.
//
//	line_to_wrap = 20
//	max_width    = [4, 10, 8]
//	delimiter    = ";"
//
//	[rules]
//	light = "-"
//	heavy = "="
type Config struct {
	LineToWrap int         `toml:"line_to_wrap"`
	MaxWidth   []int       `toml:"max_width"`
	Delimiter  string      `toml:"delimiter"`
	Rules      RulesConfig `toml:"rules"`
}

// RulesConfig sets the rule characters. Each must be a single character.
type RulesConfig struct {
	Light string `toml:"light"`
	Heavy string `toml:"heavy"`
}

// style converts the configured characters, falling back to the defaults
// for unset ones.
func (r RulesConfig) style() (render.Style, error) {
	s := render.DefaultStyle
	for _, f := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"light", r.Light, &s.Light},
		{"heavy", r.Heavy, &s.Heavy},
	} {
		if f.value == "" {
			continue
		}
		if utf8.RuneCountInString(f.value) != 1 {
			return s, errors.New(errors.ErrCodeInvalidParameter, "rules.%s must be a single character, got %q", f.name, f.value)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.value)
	}
	return s, s.Validate()
}

// loadConfig reads the config file at path. With an empty path it looks in
// the default location and treats a missing file as an empty config.
// It returns the path actually loaded, or "" if none was.
func loadConfig(path string) (Config, string, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, "", nil
		}
		path = filepath.Join(dir, configFile)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, "", nil
		}
		return Config{}, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, "", errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, path, nil
}

// configDir returns the config directory using XDG standard (~/.config/tablewrap/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
