package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/atomicstack/squirrel-docs/internal/app"
	"github.com/atomicstack/squirrel-docs/internal/nav"
)

const (
	envPrefix         = "SQUIRREL_DOCS_"
	defaultConfigFile = "squirrel-docs.yaml"
	defaultLogFile    = "squirrel-docs.log"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string `json:"file"`
	Trace    bool   `json:"trace"`
}

// values is the flat key space shared by defaults, the config file,
// environment variables and flags.
type values struct {
	Width     int      `koanf:"width"`
	Height    int      `koanf:"height"`
	Footer    bool     `koanf:"footer"`
	Verbose   bool     `koanf:"verbose"`
	Path      string   `koanf:"path"`
	OpenDepth int      `koanf:"open_depth"`
	Open      []string `koanf:"open"`
	Closed    []string `koanf:"closed"`
	NavFile   string   `koanf:"nav_file"`
	Watch     bool     `koanf:"watch"`
	LogFile   string   `koanf:"log_file"`
	Trace     bool     `koanf:"trace"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"width":      0,
		"height":     0,
		"footer":     false,
		"verbose":    false,
		"path":       "/docs",
		"open_depth": 0,
		"nav_file":   "",
		"watch":      false,
		"log_file":   defaultLogFile,
		"trace":      false,
	}
}

// BindFlags registers the persistent flags every command shares.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file (default ./"+defaultConfigFile+" when present)")
	fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("footer", false, "enable footer hint row")
	fs.Bool("verbose", false, "show a status message after each navigation")
	fs.String("path", "/docs", "current location used to highlight the active page")
	fs.Int("open-depth", 0, "open groups up to this depth on start (0 opens all)")
	fs.StringSlice("open", nil, "group paths to start open, e.g. \"API Reference/Core Types\"")
	fs.StringSlice("closed", nil, "group paths to start closed")
	fs.String("nav-file", "", "YAML navigation file (default: built-in site navigation)")
	fs.Bool("watch", false, "reload the navigation file when it changes")
	fs.String("log-file", defaultLogFile, "path to the log file")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
}

// Load builds the configuration. Precedence (highest to lowest): flags that
// were set explicitly, SQUIRREL_DOCS_* environment variables, the config
// file, defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var v values
	if err := k.Unmarshal("", &v); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := Config{
		App: app.Config{
			Width:       v.Width,
			Height:      v.Height,
			ShowFooter:  v.Footer,
			Verbose:     v.Verbose,
			CurrentPath: v.Path,
			OpenDepth:   v.OpenDepth,
			Open:        v.Open,
			Closed:      v.Closed,
			NavFile:     v.NavFile,
			Watch:       v.Watch,
		},
		Logging: Logging{
			FilePath: v.LogFile,
			Trace:    v.Trace,
		},
		File:  used,
		Flags: make(map[string]string),
	}
	for _, key := range k.Keys() {
		cfg.Flags[key] = k.String(key)
	}
	if flags != nil {
		cfg.Args = append([]string(nil), flags.Args()...)
	}
	return cfg, nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

// Validate rejects values no command can work with.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if cfg.App.OpenDepth < 0 {
		errs = append(errs, fmt.Errorf("open_depth must be >= 0 (got %d)", cfg.App.OpenDepth))
	}
	for _, raw := range cfg.App.Open {
		if nav.ParsePath(raw) == nil {
			errs = append(errs, fmt.Errorf("open: %q names no group", raw))
		}
	}
	for _, raw := range cfg.App.Closed {
		if nav.ParsePath(raw) == nil {
			errs = append(errs, fmt.Errorf("closed: %q names no group", raw))
		}
	}
	if cfg.App.Watch && strings.TrimSpace(cfg.App.NavFile) == "" {
		errs = append(errs, errors.New("watch requires nav_file"))
	}
	return errors.Join(errs...)
}
