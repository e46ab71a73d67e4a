// Package config handles autogoals configuration loading and validation.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure for autogoals.
type Config struct {
	// Agent settings
	Agent AgentConfig `yaml:"agent" mapstructure:"agent"`

	// Goals file settings
	Goals GoalsConfig `yaml:"goals" mapstructure:"goals"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// AgentConfig describes the external coding-agent collaborator.
type AgentConfig struct {
	// Command is the executable to spawn for each session, resolved via PATH.
	// It is invoked with no arguments in the project directory.
	Command string `yaml:"command" mapstructure:"command"`
}

// GoalsConfig describes where the status document lives.
type GoalsConfig struct {
	// File is the status file name, relative to the project directory.
	File string `yaml:"file" mapstructure:"file"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Command: "claude",
		},
		Goals: GoalsConfig{
			File: "goals.yaml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Agent.Command) == "" {
		return fmt.Errorf("agent.command must not be empty")
	}
	if strings.TrimSpace(c.Goals.File) == "" {
		return fmt.Errorf("goals.file must not be empty")
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console (got %q)", c.Logging.Format)
	}
	return nil
}
