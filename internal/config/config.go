// Package config loads the analyzer configuration file.
//
// A configuration file is optional. Its keys mirror the analyzer flags,
// and flags given on the command line override it:
//
//	framework: example.com/web/mvc
//	lifecycle_methods: [Close, Shutdown]
//	disable: [success]
//	timeout: 30s
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/mpyw/apiconv/internal/directive/ignore"
	"github.com/mpyw/apiconv/internal/symbols"
)

var (
	ErrRead    = errors.New("failed to read config")
	ErrInvalid = errors.New("invalid config")
)

// Config is the analyzer configuration.
type Config struct {
	Framework        string        `yaml:"framework"`
	LifecycleMethods []string      `yaml:"lifecycle_methods"`
	Disable          []string      `yaml:"disable"`
	Timeout          time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Framework:        symbols.DefaultFramework,
		LifecycleMethods: []string{"Close"},
	}
}

// Load reads the file at path over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	var errs error

	if strings.TrimSpace(c.Framework) == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: framework must not be empty", ErrInvalid))
	}

	if c.Timeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalid, c.Timeout))
	}

	for _, name := range c.LifecycleMethods {
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: empty lifecycle method name", ErrInvalid))
		}
	}

	for _, name := range c.Disable {
		if _, ok := ignore.ParseName(name); !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: unknown diagnostic %q in disable", ErrInvalid, name))
		}
	}

	return errs
}

// WithOverrides applies non-zero flag values on top of the configuration.
func (c *Config) WithOverrides(framework string, timeout time.Duration) *Config {
	out := *c

	if framework != "" {
		out.Framework = framework
	}
	if timeout > 0 {
		out.Timeout = timeout
	}

	return &out
}

// Enabled returns the diagnostics that are reported.
func (c *Config) Enabled() ignore.Enabled {
	enabled := make(ignore.Enabled)
	for _, name := range ignore.AllDiagnosticNames() {
		enabled[name] = true
	}

	for _, name := range c.Disable {
		if n, ok := ignore.ParseName(name); ok {
			delete(enabled, n)
		}
	}

	return enabled
}
