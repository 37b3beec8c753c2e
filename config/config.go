// Package config loads the demo configuration from flags, environment
// variables and an optional interop.yaml file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/germtb/interop/errors"
	"github.com/germtb/interop/logger"
)

// Sources a timer can resolve its component from.
const (
	SourceGlobal = "global"
	SourceModule = "module"
)

// Timer describes one periodically rendered component.
type Timer struct {
	Title  string `mapstructure:"title"`
	Mount  string `mapstructure:"mount"`
	Source string `mapstructure:"source"`
	// Name is the global name, or the export name for module sources.
	Name   string `mapstructure:"name"`
	Module string `mapstructure:"module"`
}

// Config is the full demo configuration.
type Config struct {
	LogLevel      string        `mapstructure:"log_level"`
	Interval      time.Duration `mapstructure:"interval"`
	PageTitle     string        `mapstructure:"page_title"`
	Page          string        `mapstructure:"page"`
	GreetingMount string        `mapstructure:"greeting_mount"`
	Timers        []Timer       `mapstructure:"timers"`
}

// Default returns the configuration of the stock demo: one timer resolved
// from the global scope, one required from a module, the Go-side composite
// showing both counters, and the greeting.
func Default() Config {
	return Config{
		LogLevel:      string(logger.LogLevelInfo),
		Interval:      50 * time.Millisecond,
		PageTitle:     "Interop",
		GreetingMount: "hello",
		Timers: []Timer{
			{
				Title:  "Interop from Global Scope",
				Mount:  "reverse-global",
				Source: SourceGlobal,
				Name:   "ElapserGlobal",
			},
			{
				Title:  "Interop from Module Require",
				Mount:  "reverse-require",
				Source: SourceModule,
				Name:   "Elapser",
				Module: "./interop",
			},
			{
				Title:  "Interop from Go",
				Mount:  "interop",
				Source: SourceGlobal,
				Name:   "Interop",
			},
		},
	}
}

// New returns a viper instance with defaults, environment binding and the
// config file search path set up.
func New() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("page_title", d.PageTitle)
	v.SetDefault("page", d.Page)
	v.SetDefault("greeting_mount", d.GreetingMount)
	v.SetDefault("timers", lo.Map(d.Timers, func(t Timer, _ int) map[string]any {
		return map[string]any{
			"title":  t.Title,
			"mount":  t.Mount,
			"source": t.Source,
			"name":   t.Name,
			"module": t.Module,
		}
	}))

	v.SetConfigName("interop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("INTEROP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the command-line flags that override config keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"log_level": "log-level",
		"interval":  "interval",
		"page":      "page",
	} {
		if f := fs.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind flag %s", flag)
			}
		}
	}
	return nil
}

// Load reads the config file named by path (or the default search path when
// empty) and decodes the result.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for problems that would only surface
// once the demo is running.
func (c Config) Validate() error {
	if _, err := logger.ParseLogLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errUtils.ErrInvalidConfig, "%v", err)
	}
	if c.Interval <= 0 {
		return errors.Wrapf(errUtils.ErrInvalidConfig, "interval must be positive, got %s", c.Interval)
	}

	mounts := make(map[string]string)
	claim := func(mount, owner string) error {
		if mount == "" {
			return errors.Wrapf(errUtils.ErrInvalidConfig, "%s has no mount", owner)
		}
		if prev, ok := mounts[mount]; ok {
			return errors.Wrapf(errUtils.ErrInvalidConfig, "%s and %s share mount %q", prev, owner, mount)
		}
		mounts[mount] = owner
		return nil
	}

	if c.GreetingMount != "" {
		if err := claim(c.GreetingMount, "greeting"); err != nil {
			return err
		}
	}
	for i, t := range c.Timers {
		owner := fmt.Sprintf("timer %d (%q)", i, t.Title)
		if err := claim(t.Mount, owner); err != nil {
			return err
		}
		if t.Name == "" {
			return errors.Wrapf(errUtils.ErrInvalidConfig, "%s has no component name", owner)
		}
		switch t.Source {
		case SourceGlobal:
		case SourceModule:
			if t.Module == "" {
				return errors.Wrapf(errUtils.ErrInvalidConfig, "%s requires a module path", owner)
			}
		default:
			err := errors.Wrapf(errUtils.ErrInvalidConfig, "%s has unknown source %q", owner, t.Source)
			return errors.WithHintf(err, "use %q or %q", SourceGlobal, SourceModule)
		}
	}
	return nil
}

// MountIDs returns every mount the configuration renders into.
func (c Config) MountIDs() []string {
	ids := lo.Map(c.Timers, func(t Timer, _ int) string { return t.Mount })
	if c.GreetingMount != "" {
		ids = append([]string{c.GreetingMount}, ids...)
	}
	return ids
}
