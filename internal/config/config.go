package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Widgets []WidgetConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent    string
	EventLog  int `mapstructure:"event_log"` // number of recent events shown
	PaneWidth int `mapstructure:"pane_width"`
}

// WidgetConfig declares one widget for the config-driven factory.
// Type is one of banner, counter, timer. IntervalMS applies to timers only.
type WidgetConfig struct {
	Type       string
	ID         string
	Title      string
	Text       string
	IntervalMS int `mapstructure:"interval_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix WIDGETKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.event_log", 5)
	v.SetDefault("ui.pane_width", 48)
	v.SetDefault("widgets", []map[string]any{
		{"type": "banner", "id": "welcome", "title": "Welcome", "text": "widgetkit demo"},
		{"type": "counter", "id": "clicks", "title": "Clicks"},
		{"type": "timer", "id": "reminder", "title": "Reminder", "interval_ms": 5000},
	})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WIDGETKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "widgetkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WIDGETKIT")
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

// Save writes the provided config to disk, creating the config directory if
// needed. Used by hosts that let users tweak presentation settings in-app.
func Save(cfg Config) error {
	path := os.Getenv("WIDGETKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "widgetkit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.event_log", cfg.UI.EventLog)
	v.Set("ui.pane_width", cfg.UI.PaneWidth)
	widgets := make([]map[string]any, 0, len(cfg.Widgets))
	for _, w := range cfg.Widgets {
		widgets = append(widgets, map[string]any{
			"type":        w.Type,
			"id":          w.ID,
			"title":       w.Title,
			"text":        w.Text,
			"interval_ms": w.IntervalMS,
		})
	}
	v.Set("widgets", widgets)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
