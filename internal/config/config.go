// Package config loads and validates hockey-stats configuration via Viper.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pfrederiksen/hockey-stats/internal/logger"
	"github.com/pfrederiksen/hockey-stats/internal/scraper"
)

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Crawl   CrawlConfig   `mapstructure:"crawl"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CrawlConfig governs the page fetch loop.
type CrawlConfig struct {
	SeedURL        string `mapstructure:"seed_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxPages       int    `mapstructure:"max_pages"`
}

// OutputConfig sets where the archive and workbook are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig sets the minimum log level.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load builds a Config from defaults, an optional file at path, and HOCKEY_STATS_* env vars.
// The result is not validated, so callers can layer flag overrides on top before calling Validate.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HOCKEY_STATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("crawl.seed_url", scraper.DefaultURL)
	v.SetDefault("crawl.user_agent", scraper.UserAgent)
	v.SetDefault("crawl.timeout_seconds", 0)
	v.SetDefault("crawl.max_pages", 0)
	v.SetDefault("output.dir", ".")
	v.SetDefault("logging.level", "info")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	u, err := url.Parse(c.Crawl.SeedURL)
	if err != nil {
		return fmt.Errorf("crawl.seed_url is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("crawl.seed_url must be an absolute http(s) URL")
	}
	if u.Host == "" {
		return fmt.Errorf("crawl.seed_url must include a host")
	}
	if c.Crawl.TimeoutSeconds < 0 {
		return fmt.Errorf("crawl.timeout_seconds must be >= 0")
	}
	if c.Crawl.MaxPages < 0 {
		return fmt.Errorf("crawl.max_pages must be >= 0")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir must be set")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Timeout converts the per-request timeout into a duration. Zero means none.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Crawl.TimeoutSeconds) * time.Second
}

// LogLevel returns the parsed logging level, defaulting to info.
func (c Config) LogLevel() logger.Level {
	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}
