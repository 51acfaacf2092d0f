package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory and in
// $HOME/.config/rhnis.
const FileName = "rhnis.yaml"

// EnvPrefix prefixes environment overrides: RHNIS_TICKER_TRADING_INTERVAL.
const EnvPrefix = "RHNIS"

// Config represents the rhnis.yaml schema.
type Config struct {
	Name      string          `yaml:"name" mapstructure:"name"`
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Ticker    TickerConfig    `yaml:"ticker" mapstructure:"ticker"`
	Chat      ChatConfig      `yaml:"chat" mapstructure:"chat"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DataConfig points at the fixture directory. An empty Dir serves the
// built-in seed data.
type DataConfig struct {
	Dir   string `yaml:"dir" mapstructure:"dir"`
	Watch bool   `yaml:"watch" mapstructure:"watch"`
}

// DashboardConfig holds TUI startup settings.
type DashboardConfig struct {
	Section string        `yaml:"section" mapstructure:"section"`
	Refresh time.Duration `yaml:"refresh" mapstructure:"refresh"`
}

// TickerConfig sets the cosmetic simulation schedule.
type TickerConfig struct {
	Trading IntervalConfig `yaml:"trading" mapstructure:"trading"`
	LeadBot IntervalConfig `yaml:"leadbot" mapstructure:"leadbot"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

type IntervalConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

type ChatConfig struct {
	ReplyDelay time.Duration `yaml:"reply_delay" mapstructure:"reply_delay"`
}

type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"`
	Level string `yaml:"level" mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Name:      "RHNIS Control Center",
		Dashboard: DashboardConfig{Section: "dashboard", Refresh: time.Second},
		Ticker: TickerConfig{
			Trading: IntervalConfig{Interval: 3 * time.Second},
			LeadBot: IntervalConfig{Interval: 5 * time.Second},
		},
		Chat: ChatConfig{ReplyDelay: 1500 * time.Millisecond},
		Log:  LogConfig{File: "rhnis.log", Level: "info"},
	}
}

// SetDefaults registers every key with viper so env overrides resolve even
// when no config file exists.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("name", d.Name)
	v.SetDefault("data.dir", d.Data.Dir)
	v.SetDefault("data.watch", d.Data.Watch)
	v.SetDefault("dashboard.section", d.Dashboard.Section)
	v.SetDefault("dashboard.refresh", d.Dashboard.Refresh)
	v.SetDefault("ticker.trading.interval", d.Ticker.Trading.Interval)
	v.SetDefault("ticker.leadbot.interval", d.Ticker.LeadBot.Interval)
	v.SetDefault("ticker.seed", d.Ticker.Seed)
	v.SetDefault("chat.reply_delay", d.Chat.ReplyDelay)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// NewViper builds a viper instance for cfgFile, or searches for rhnis.yaml
// when cfgFile is empty. A missing searched-for file is not an error; a
// missing explicit file is.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rhnis"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// globalRoot is the directory the last loaded config came from.
var (
	globalRoot string
	mu         sync.RWMutex
)

// Load decodes v into a Config and records its directory for Root. Relative paths in the
// config resolve against the config file's directory, or the working
// directory when no file was read.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	root := "."
	if f := v.ConfigFileUsed(); f != "" {
		root = filepath.Dir(f)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving config root: %w", err)
	}

	mu.Lock()
	globalRoot = abs
	mu.Unlock()

	return cfg, nil
}

// Root returns the directory set during Load.
func Root() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalRoot
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
