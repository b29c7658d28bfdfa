//go:build !windows
// +build !windows

package services

import (
	"path/filepath"
	"strings"
)

// Unix has no hidden attribute; the dot-prefix convention stands in.
func (local *LocalFS) IsHidden(path string) (bool, error) {
	return strings.HasPrefix(filepath.Base(path), "."), nil
}
