// Package config binds the cmd/dpqac CLI's flags (and an optional config
// file) into a single accessor the driver and the compiler's solve-time
// knobs read from: a viper instance layered over pflag definitions,
// environment variables, and per-key defaults.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper.Viper bound to the CLI's flag set. The zero value
// is not usable; build one with New.
type Config struct {
	v *viper.Viper
}

// defaults holds every bound key's fallback value, applied before flags
// or a config file can override it.
var defaults = map[string]interface{}{
	"rows":         2,
	"cols":         2,
	"aod-rows":     0, // 0 means "inherit rows" (see cmd/dpqac)
	"aod-cols":     0,
	"extra-stages": 0,
	"objective":    "none",
	"debug":        false,
	"circuit":      "",
}

// New builds a Config from flags, environment variables (DPQAC_ prefix),
// and optionally a config file at path (ignored if path is empty or the
// file does not exist). flags is typically pflag.CommandLine after the
// caller has defined and parsed its flags.
func New(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix("dpqac")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	return &Config{v: v}, nil
}

// GetInt returns the bound integer value for key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetBool returns the bound boolean value for key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetString returns the bound string value for key.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// BindFlags registers the CLI flags cmd/dpqac exposes on flags, with the
// defaults table above as their fallback values. Callers still need to
// call flags.Parse and pass flags to New.
func BindFlags(flags *pflag.FlagSet) {
	flags.Int("rows", defaults["rows"].(int), "SLM grid row count")
	flags.Int("cols", defaults["cols"].(int), "SLM grid column count")
	flags.Int("aod-rows", defaults["aod-rows"].(int), "AOD logical row count (0: inherit rows)")
	flags.Int("aod-cols", defaults["aod-cols"].(int), "AOD logical column count (0: inherit cols)")
	flags.Int("extra-stages", defaults["extra-stages"].(int), "relaxation slack added to the circuit's stage count")
	flags.String("objective", defaults["objective"].(string), `optimization goal: "none" or "transfers"`)
	flags.Bool("debug", defaults["debug"].(bool), "enable debug-level logging")
	flags.String("circuit", defaults["circuit"].(string), "path to a gate-list file")
}
