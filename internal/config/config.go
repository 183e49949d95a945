// Package config loads the glide.json project configuration used by the
// glide CLI and demo server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glide-ui/glide/pkg/transition"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glide.json"

	// DefaultAddr is the default demo server listen address.
	DefaultAddr = "localhost:3000"

	// DefaultTransitionName is the default class-name prefix.
	DefaultTransitionName = "fade"

	// DefaultEnterTimeoutMs and DefaultLeaveTimeoutMs bound the demo's
	// transitions; they match the demo stylesheet's 300ms easing.
	DefaultEnterTimeoutMs = 300
	DefaultLeaveTimeoutMs = 300
)

// Config represents the complete glide.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Addr is the demo server listen address.
	Addr string `json:"addr,omitempty"`

	// Transition configures the demo's transition group.
	Transition TransitionConfig `json:"transition,omitempty"`

	// configPath is where this config was loaded from.
	configPath string
}

// TransitionConfig contains transition settings in wire-friendly units.
type TransitionConfig struct {
	// Name is the class-name prefix.
	Name string `json:"name,omitempty"`

	// EnterTimeoutMs bounds enter and appear transitions, milliseconds.
	EnterTimeoutMs int `json:"enterTimeoutMs,omitempty"`

	// LeaveTimeoutMs bounds leave transitions, milliseconds.
	LeaveTimeoutMs int `json:"leaveTimeoutMs,omitempty"`

	// Appear enables the appear transition for initially mounted items.
	Appear bool `json:"appear,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr: DefaultAddr,
		Transition: TransitionConfig{
			Name:           DefaultTransitionName,
			EnterTimeoutMs: DefaultEnterTimeoutMs,
			LeaveTimeoutMs: DefaultLeaveTimeoutMs,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for glide.json in the directory; a missing file yields the
// defaults rather than an error.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read %s: %w", configPath, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	cfg.configPath = configPath
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path where the config was loaded from, or "" for a
// default config.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Transition.Name == "" {
		c.Transition.Name = DefaultTransitionName
	}
	if c.Transition.EnterTimeoutMs == 0 {
		c.Transition.EnterTimeoutMs = DefaultEnterTimeoutMs
	}
	if c.Transition.LeaveTimeoutMs == 0 {
		c.Transition.LeaveTimeoutMs = DefaultLeaveTimeoutMs
	}
}

// GroupConfig converts the wire representation into the engine's
// transition configuration.
func (c *Config) GroupConfig() transition.Config {
	cfg := transition.DefaultConfig()
	cfg.Name = c.Transition.Name
	cfg.EnterTimeout = time.Duration(c.Transition.EnterTimeoutMs) * time.Millisecond
	cfg.LeaveTimeout = time.Duration(c.Transition.LeaveTimeoutMs) * time.Millisecond
	cfg.Appear = c.Transition.Appear
	return cfg
}
