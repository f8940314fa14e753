// Package config loads installation settings from wordwheel.yaml and
// WORDWHEEL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WORDWHEEL_DEFAULT_SPIN.
const EnvPrefix = "WORDWHEEL"

type Config struct {
	Seed           int64           `mapstructure:"seed"`
	PuzzlesFile    string          `mapstructure:"puzzles_file"`
	DefaultSpin    int             `mapstructure:"default_spin"`
	MaxPlayers     int             `mapstructure:"max_players"`
	HostSolveToken string          `mapstructure:"host_solve_token"`
	LogFile        string          `mapstructure:"log_file"`
	LogLevel       string          `mapstructure:"log_level"`
	MetricsAddr    string          `mapstructure:"metrics_addr"`
	Telemetry      TelemetryConfig `mapstructure:"telemetry"`
	Theme          ThemeConfig     `mapstructure:"theme"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ThemeConfig holds board colors as hex strings like "#1b4f9c".
type ThemeConfig struct {
	Tile     string `mapstructure:"tile"`
	Revealed string `mapstructure:"revealed"`
	Active   string `mapstructure:"active"`
	Dim      string `mapstructure:"dim"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("puzzles_file", "")
	v.SetDefault("default_spin", 200)
	v.SetDefault("max_players", 10)
	v.SetDefault("host_solve_token", "")
	v.SetDefault("log_file", "wordwheel.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("theme.tile", "#1b4f9c")
	v.SetDefault("theme.revealed", "#f5f1e3")
	v.SetDefault("theme.active", "#f2c14e")
	v.SetDefault("theme.dim", "#5c5c5c")
}

// LoadConfig reads wordwheel.yaml from path if present, then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("wordwheel")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.DefaultSpin <= 0 {
		return fmt.Errorf("default_spin must be positive, got %d", c.DefaultSpin)
	}
	if c.MaxPlayers < 2 {
		return fmt.Errorf("max_players must be at least 2, got %d", c.MaxPlayers)
	}
	return nil
}
