// Package config reads and writes the YAML configuration file holding the
// ledger location and the expected daily worktime.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"arbeitszeit/internal/files"
	"arbeitszeit/internal/ledger"
)

// DefaultWorktime is the baseline used when nothing is configured.
const DefaultWorktime = "08:00"

// WorktimeEnv overrides the configured baseline without touching the file.
const WorktimeEnv = "ARBEITSZEIT_WORKTIME"

type fileData struct {
	Path     string `yaml:"path,omitempty"`
	Worktime string `yaml:"worktime,omitempty"`
}

// Config wraps the on-disk YAML settings. Missing keys fall back to
// defaults derived from the Manager's base directory.
type Config struct {
	manager *files.Manager
	data    fileData
}

// Load reads the config under the manager's base dir, creating an empty
// file on first use so the location is discoverable.
func Load(manager *files.Manager) (*Config, error) {
	c := &Config{manager: manager}

	path := manager.ConfigPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := manager.EnsureBaseDir(); err != nil {
			return nil, err
		}
		if err := c.save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := yaml.Unmarshal(raw, &c.data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) save() error {
	raw, err := yaml.Marshal(c.data)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return files.WriteAtomic(c.manager.ConfigPath(), raw)
}

// Path returns the config file location.
func (c *Config) Path() string {
	return c.manager.ConfigPath()
}

// LedgerPath returns the configured ledger location, defaulting to
// arbeitszeit.txt beside the config file.
func (c *Config) LedgerPath() string {
	if c.data.Path != "" {
		return c.data.Path
	}
	return c.manager.DefaultLedgerPath()
}

// SetLedgerPath persists a new ledger location.
func (c *Config) SetLedgerPath(path string) error {
	c.data.Path = path
	return c.save()
}

// Baseline returns the expected daily worktime. The ARBEITSZEIT_WORKTIME
// env var wins over the file value; both fall back to 08:00.
func (c *Config) Baseline() (time.Duration, error) {
	text := c.data.Worktime
	if env := os.Getenv(WorktimeEnv); env != "" {
		text = env
	}
	if text == "" {
		text = DefaultWorktime
	}
	d, err := ledger.ParseDurationText(text)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, &ledger.ValidationError{Reason: fmt.Sprintf("worktime must be a concrete duration, not %q", ledger.NoneTime)}
	}
	return *d, nil
}

// SetBaseline persists a new expected daily worktime.
func (c *Config) SetBaseline(d time.Duration) error {
	c.data.Worktime = ledger.FormatDurationText(&d)
	return c.save()
}
