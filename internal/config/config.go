// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: where shnippets are
// stored, which editor and shell are used, and how verbose logging is.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigPathEnv overrides the location of config.yaml.
	ConfigPathEnv = "SHNIPPET_CONFIG"

	// SnippetDirEnv overrides the configured snippet directory.
	SnippetDirEnv = "SHNIPPET_DIR"

	defaultShell  = "/bin/sh"
	defaultEditor = "vi"
)

// Config represents the top-level application configuration
type Config struct {
	// SnippetDir is where the index and scripts live (optional, defaults to the XDG data dir)
	SnippetDir string `yaml:"snippet_dir,omitempty"`

	// Editor is the command used by `new` and `edit` (optional, falls back to $VISUAL, $EDITOR, vi)
	Editor string `yaml:"editor,omitempty"`

	// Shell is the interpreter used to run shnippets (optional, defaults to /bin/sh)
	Shell string `yaml:"shell,omitempty"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`
}

func DefaultConfigPath() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "shnippet", "config.yaml"), nil
}

// LoadConfig reads the config file from its default location. A missing file
// yields the zero Config.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(configPath)
}

func LoadConfigFrom(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// SnippetDirectory returns the resolved store directory. Precedence:
// $SHNIPPET_DIR, snippet_dir from the config file, $XDG_DATA_HOME/shnippet,
// ~/.local/share/shnippet.
func (c Config) SnippetDirectory() (string, error) {
	if dir := os.Getenv(SnippetDirEnv); dir != "" {
		return ResolvePath(dir)
	}
	if c.SnippetDir != "" {
		return ResolvePath(c.SnippetDir)
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "shnippet"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "shnippet"), nil
}

// EditorCommand returns the editor command line to use.
func (c Config) EditorCommand() string {
	for _, candidate := range []string{c.Editor, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return defaultEditor
}

// ShellPath returns the interpreter used to run shnippets.
func (c Config) ShellPath() string {
	if strings.TrimSpace(c.Shell) != "" {
		return c.Shell
	}
	return defaultShell
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
