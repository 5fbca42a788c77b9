package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sdhtool/internal/sdh"
)

//go:embed sample_config.toml
var sampleConfig string

// Cleaning selects the SDH rule set: a named preset plus optional per-flag
// overrides keyed by flag name (remove_between_square, remove_between_paren,
// between_only_if_separate_line, remove_text_before_colon,
// colon_only_if_uppercase, remove_if_only_music_symbols).
type Cleaning struct {
	Preset    string          `toml:"preset"`
	Overrides map[string]bool `toml:"overrides"`
}

// Output controls entry serialization.
type Output struct {
	Renumber bool `toml:"renumber"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Config encapsulates all configuration values for sdhtool.
type Config struct {
	Cleaning Cleaning `toml:"cleaning"`
	Output   Output   `toml:"output"`
	Logging  Logging  `toml:"logging"`
	Paths    Paths    `toml:"paths"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sdhtool/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has path fields expanded and normalized. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("sdhtool.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Cleaning.Preset = strings.ToLower(strings.TrimSpace(c.Cleaning.Preset))
	if c.Cleaning.Preset == "" {
		c.Cleaning.Preset = sdh.DefaultPreset
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if strings.TrimSpace(c.Paths.LogDir) != "" {
		expanded, err := expandPath(c.Paths.LogDir)
		if err != nil {
			return err
		}
		c.Paths.LogDir = expanded
	}
	return nil
}

// CleaningConfig resolves the configured preset plus file overrides into a
// rule set. The preset template itself is never mutated.
func (c *Config) CleaningConfig() (sdh.Config, error) {
	rules, ok := sdh.Preset(c.Cleaning.Preset)
	if !ok {
		return sdh.Config{}, fmt.Errorf("unknown cleaning preset %q", c.Cleaning.Preset)
	}
	for key, value := range c.Cleaning.Overrides {
		if err := applyOverride(&rules, key, value); err != nil {
			return sdh.Config{}, err
		}
	}
	return rules, nil
}

func applyOverride(rules *sdh.Config, key string, value bool) error {
	switch key {
	case "remove_between_square":
		rules.RemoveBetweenSquare = value
	case "remove_between_paren":
		rules.RemoveBetweenParen = value
	case "between_only_if_separate_line":
		rules.BetweenOnlyIfSeparateLine = value
	case "remove_text_before_colon":
		rules.RemoveTextBeforeColon = value
	case "colon_only_if_uppercase":
		rules.ColonOnlyIfUppercase = value
	case "remove_if_only_music_symbols":
		rules.RemoveIfOnlyMusicSymbols = value
	default:
		return fmt.Errorf("unknown cleaning override %q", key)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
