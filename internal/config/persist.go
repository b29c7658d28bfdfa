package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"treefs/internal/domain"
)

const (
	configDirName  = "treefs"
	configFileName = "config.json"
)

func DefaultConfig() Config {
	return Config{
		StartPath:     "",
		SymlinkPolicy: domain.SymlinkFollow,
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LoadConfig() (Config, error) {
	config := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func SaveConfig(config Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.StartPath != nil {
		merged.StartPath = *stored.StartPath
	}
	if stored.SymlinkPolicy != nil && domain.ValidSymlinkPolicy(*stored.SymlinkPolicy) {
		merged.SymlinkPolicy = domain.SymlinkPolicy(*stored.SymlinkPolicy)
	}
	return merged
}
