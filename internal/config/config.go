package config

import "treefs/internal/domain"

type Config struct {
	StartPath     string               `json:"startPath"`
	SymlinkPolicy domain.SymlinkPolicy `json:"symlinkPolicy"`
}

type fileConfig struct {
	StartPath     *string `json:"startPath"`
	SymlinkPolicy *string `json:"symlinkPolicy"`
}
