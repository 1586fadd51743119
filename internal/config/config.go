// Copyright (c) 2026 Keymaster Team
// Keylight - SSH key file highlighter
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the persisted keylight configuration.
type Config struct {
	Language   string           `mapstructure:"language" yaml:"language"`
	Color      string           `mapstructure:"color" yaml:"color"`
	Abbreviate bool             `mapstructure:"abbreviate" yaml:"abbreviate"`
	Ellipsis   string           `mapstructure:"ellipsis" yaml:"ellipsis"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary" yaml:"vocabulary"`
	// Theme maps a category name (see highlight.Category) to a lipgloss
	// color, e.g. "key-type: 81" or "comment: '#888888'".
	Theme map[string]string `mapstructure:"theme" yaml:"theme,omitempty"`
}

// VocabularyConfig selects a preset and adds entries on top of it.
type VocabularyConfig struct {
	Preset   string   `mapstructure:"preset" yaml:"preset"`
	KeyTypes []string `mapstructure:"key_types" yaml:"key_types,omitempty"`
	Options  []string `mapstructure:"options" yaml:"options,omitempty"`
}

// Defaults are the values used when neither file, environment nor flags
// set a key.
func Defaults() map[string]any {
	return map[string]any{
		"language":          "en",
		"color":             "auto",
		"abbreviate":        true,
		"ellipsis":          "…",
		"vocabulary.preset": "default",
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keylight")
		default: // Linux, macOS, etc.
			configDir = "/etc/keylight"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keylight")
	}

	return filepath.Join(configDir, "keylight.yaml"), nil
}

// UserConfigPath is where WriteConfigFile puts the per-user file.
func UserConfigPath() (string, error) { return getConfigPath(false) }

// LoadConfig merges defaults, the first keylight.yaml found (explicit path,
// user dir, system dir, current dir), KEYLIGHT_* environment variables and
// the command's flags, in increasing precedence. A missing config file is
// not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("keylight")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("could not read config: %w", err)
		}
	}

	v.SetEnvPrefix("keylight")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := getConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0644)
}

// Default returns a Config populated from Defaults.
func Default() Config {
	d := Defaults()
	return Config{
		Language:   d["language"].(string),
		Color:      d["color"].(string),
		Abbreviate: d["abbreviate"].(bool),
		Ellipsis:   d["ellipsis"].(string),
		Vocabulary: VocabularyConfig{Preset: d["vocabulary.preset"].(string)},
	}
}
