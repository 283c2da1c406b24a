// Package config handles loading tasktrack.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the tasktrack.toml configuration file.
type Config struct {
	Tasks Tasks `toml:"tasks"`
}

// Tasks contains task-file related configuration.
type Tasks struct {
	// File is the task file used when --file is not given.
	File string `toml:"file"`

	// History is the history log path. Empty means "<file>.history".
	History string `toml:"history"`

	// DefaultStatus is the status given to new tasks when --status is
	// not provided. Empty means suspended.
	DefaultStatus string `toml:"default-status"`
}

// Load loads configuration from dir and the global config file.
// Per-key, a value in dir/tasktrack.toml overrides the global one.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "tasktrack.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tasktrack", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Tasks.File = mergeString(projectMeta.IsDefined("tasks", "file"), projectCfg.Tasks.File, globalCfg.Tasks.File)
	merged.Tasks.History = mergeString(projectMeta.IsDefined("tasks", "history"), projectCfg.Tasks.History, globalCfg.Tasks.History)
	merged.Tasks.DefaultStatus = mergeString(projectMeta.IsDefined("tasks", "default-status"), projectCfg.Tasks.DefaultStatus, globalCfg.Tasks.DefaultStatus)
	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
