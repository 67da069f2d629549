package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log LogConfig
	UI  UIConfig
	Sim SimConfig
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

// SimConfig holds demo run settings. Epochs and LearnRate override the
// model defaults when set above zero.
type SimConfig struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
	Epochs       int
	LearnRate    float64 `mapstructure:"learn_rate"`
}

// Load reads configuration from file and env. Env var overrides use prefix FORMVIEW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "formview", "formview.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "formview demo")
	v.SetDefault("sim.tick_interval", "500ms")
	v.SetDefault("sim.epochs", 0)
	v.SetDefault("sim.learn_rate", 0.0)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FORMVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "formview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FORMVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// SlogLevel maps the configured level name onto a slog level, defaulting
// to info for anything unrecognized.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
