// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/hostreport/pkg/defaults"
	"github.com/NVIDIA/hostreport/pkg/errors"
)

// Environment variable names.
const (
	EnvConfigPath       = "HOSTREPORT_CONFIG"
	EnvLogLevel         = "LOG_LEVEL"
	EnvNoElevate        = "HOSTREPORT_NO_ELEVATE"
	EnvCollectorTimeout = "HOSTREPORT_COLLECTOR_TIMEOUT"
	EnvCPUSample        = "HOSTREPORT_CPU_SAMPLE"
)

// DefaultFileName is the config file looked up in the home directory.
const DefaultFileName = ".hostreport.yaml"

// DefaultLogLevel keeps the interactive output free of routine log lines.
const DefaultLogLevel = "warn"

// Config holds the resolved settings of one run.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// NoElevate disables the elevated relaunch attempt.
	NoElevate bool `yaml:"no_elevate"`

	// CollectorTimeout bounds each collector.
	CollectorTimeout time.Duration `yaml:"collector_timeout"`

	// CPUSampleInterval is the CPU usage sampling window.
	CPUSampleInterval time.Duration `yaml:"cpu_sample_interval"`

	// Environment selects the environment variables that are reported.
	Environment EnvironmentConfig `yaml:"environment"`
}

// EnvironmentConfig holds variable name patterns. A nil Exclude keeps the
// built-in credential filter.
type EnvironmentConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:          DefaultLogLevel,
		CollectorTimeout:  defaults.CollectorTimeout,
		CPUSampleInterval: defaults.CPUSampleInterval,
	}
}

// Load resolves the configuration from all sources. Values from .env only
// feed hostreport settings; the process environment is left untouched.
func Load() *Config {
	cfg := Default()

	dotenv, err := godotenv.Read()
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring .env file", slog.String("error", err.Error()))
	}
	lookup := layeredLookup(os.LookupEnv, dotenv)

	if path, explicit := filePath(lookup); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			if explicit || !errors.IsCode(err, errors.ErrCodeNotSupported) {
				slog.Warn("ignoring config file", slog.String("path", path), slog.String("error", err.Error()))
			}
		}
	}

	cfg.ApplyEnv(lookup)
	cfg.Validate()

	slog.Debug("configuration loaded",
		slog.String("log_level", cfg.LogLevel),
		slog.Bool("no_elevate", cfg.NoElevate),
		slog.Duration("collector_timeout", cfg.CollectorTimeout),
		slog.Duration("cpu_sample_interval", cfg.CPUSampleInterval))

	return cfg
}

// layeredLookup reads non-empty values from env first, then from fallback.
func layeredLookup(env func(string) (string, bool), fallback map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := env(key); ok && v != "" {
			return v, true
		}
		v, ok := fallback[key]
		return v, ok
	}
}

// filePath returns the config file to read and whether it was named
// explicitly through the environment.
func filePath(lookup func(string) (string, bool)) (string, bool) {
	if p, _ := lookup(EnvConfigPath); strings.TrimSpace(p) != "" {
		return strings.TrimSpace(p), true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, DefaultFileName), false
}

// LoadFile merges the YAML file at path into c. On error c is unchanged.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeNotSupported, "config file not found", err)
		}
		return errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to read config file", err)
	}

	merged := *c
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to parse config file", err,
			map[string]any{"path": path})
	}
	*c = merged
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup.
// Malformed values are logged and ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.LogLevel = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvNoElevate); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("ignoring invalid boolean", slog.String("var", EnvNoElevate), slog.String("value", v))
		} else {
			c.NoElevate = b
		}
	}

	c.CollectorTimeout = durationEnv(lookup, EnvCollectorTimeout, c.CollectorTimeout)
	c.CPUSampleInterval = durationEnv(lookup, EnvCPUSample, c.CPUSampleInterval)
}

func durationEnv(lookup func(string) (string, bool), key string, current time.Duration) time.Duration {
	v, ok := lookup(key)
	if !ok || v == "" {
		return current
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("ignoring invalid duration", slog.String("var", key), slog.String("value", v))
		return current
	}
	return d
}

// Validate replaces unusable values with defaults. The CPU sample must end
// well inside the collector timeout or Performance could never finish.
func (c *Config) Validate() {
	if c.CollectorTimeout <= 0 {
		c.CollectorTimeout = defaults.CollectorTimeout
	}
	if c.CPUSampleInterval <= 0 {
		c.CPUSampleInterval = defaults.CPUSampleInterval
	}
	if c.CPUSampleInterval >= c.CollectorTimeout {
		clamped := min(defaults.CPUSampleInterval, c.CollectorTimeout/2)
		slog.Warn("cpu sample interval exceeds collector timeout, clamping",
			slog.Duration("cpu_sample_interval", c.CPUSampleInterval),
			slog.Duration("collector_timeout", c.CollectorTimeout),
			slog.Duration("clamped", clamped))
		c.CPUSampleInterval = clamped
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = DefaultLogLevel
	}
}
