// Package config loads engine configuration from a YAML file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full engine configuration.
type Config struct {
	Env       string  `mapstructure:"env"`       // local, dev, production
	DBPath    string  `mapstructure:"db_path"`   // SQLite database path; empty means the default data dir
	Threshold float64 `mapstructure:"threshold"` // default passing threshold for attempts
	Scorer    Scorer  `mapstructure:"scorer"`    // external speech-scoring vendor
	Refresh   Refresh `mapstructure:"refresh"`   // scheduled confidence recomputation
}

// Scorer contains the speech-scoring vendor settings.
type Scorer struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"-"` // loaded from environment only
	Vendor  string        `mapstructure:"vendor"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Refresh contains the confidence refresh schedule settings.
type Refresh struct {
	Interval time.Duration `mapstructure:"interval"`
}

// ErrMissingScorerKey reports that a scorer API key is required but absent.
var ErrMissingScorerKey = errors.New("SAYRIGHT_SCORER_API_KEY not set")

// Load reads configuration from ./config/config.yaml (when present) and
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("env", "local")
	v.SetDefault("db_path", "")
	v.SetDefault("threshold", 70.0)
	v.SetDefault("scorer.vendor", "speechscore")
	v.SetDefault("scorer.timeout", "30s")
	v.SetDefault("refresh.interval", "1h")

	v.SetEnvPrefix("sayright")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("scorer.base_url", "SAYRIGHT_SCORER_BASE_URL")
	_ = v.BindEnv("db_path", "SAYRIGHT_DB")
	_ = v.BindEnv("env", "SAYRIGHT_ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Sensitive values come from the environment only.
	cfg.Scorer.APIKey = v.GetString("scorer_api_key")

	if cfg.Threshold < 0 || cfg.Threshold > 100 {
		return nil, fmt.Errorf("threshold %v outside [0,100]", cfg.Threshold)
	}

	return &cfg, nil
}
