package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI          UIConfig            `mapstructure:"ui"`
	Demo        DemoConfig          `mapstructure:"demo"`
	Log         LogConfig           `mapstructure:"log"`
	Keybindings map[string][]string `mapstructure:"keybindings"`
}

// UIConfig holds widget presentation settings.
type UIConfig struct {
	TabBarWidth int    `mapstructure:"tab_bar_width"`
	Animate     bool   `mapstructure:"animate"`
	WheelStep   int    `mapstructure:"wheel_step"`
	Theme       string `mapstructure:"theme"`
	Mouse       bool   `mapstructure:"mouse"`
}

// DemoConfig controls the generated demo data.
type DemoConfig struct {
	Seed     int64 `mapstructure:"seed"`
	Sections int   `mapstructure:"sections"`
}

// LogConfig holds debug log settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

const envConfig = "VTABS_CONFIG"

// DefaultPath is where Load looks when neither a path nor VTABS_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "vtabs", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.tab_bar_width", 14)
	v.SetDefault("ui.animate", true)
	v.SetDefault("ui.wheel_step", 3)
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("demo.seed", 0)
	v.SetDefault("demo.sections", 7)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "vtabs", "debug.log"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. Env var overrides use prefix VTABS_.
// A missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VTABS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the demo cannot render with.
func (c Config) Validate() error {
	var errs []error
	if c.UI.TabBarWidth < 4 || c.UI.TabBarWidth > 60 {
		errs = append(errs, fmt.Errorf("ui.tab_bar_width must be between 4 and 60, got %d", c.UI.TabBarWidth))
	}
	if c.UI.WheelStep < 1 {
		errs = append(errs, fmt.Errorf("ui.wheel_step must be positive, got %d", c.UI.WheelStep))
	}
	if c.Demo.Sections < 1 || c.Demo.Sections > 64 {
		errs = append(errs, fmt.Errorf("demo.sections must be between 1 and 64, got %d", c.Demo.Sections))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	for action, keys := range c.Keybindings {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("keybindings.%s has no keys", action))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Default returns the configuration Load produces with no file and no env.
func Default() (Config, error) {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal defaults: %w", err)
	}
	return c, nil
}

// Save writes cfg as TOML to path, creating the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.tab_bar_width", cfg.UI.TabBarWidth)
	v.Set("ui.animate", cfg.UI.Animate)
	v.Set("ui.wheel_step", cfg.UI.WheelStep)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("demo.seed", cfg.Demo.Seed)
	v.Set("demo.sections", cfg.Demo.Sections)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keybindings {
		v.Set("keybindings."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
