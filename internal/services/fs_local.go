package services

import (
	"io/fs"
	"os"
	"path/filepath"
)

// LocalFS implements Filesystem over the host OS.
type LocalFS struct{}

func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

func (local *LocalFS) Abs(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	return abs, nil
}

func (local *LocalFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (local *LocalFS) ListDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		full := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, full)
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			// A symlink counts as a directory when its target is one.
			// The tree applies the symlink policy on top of this.
			info, statErr := os.Stat(full)
			if statErr == nil && info.IsDir() {
				dirs = append(dirs, full)
			}
		}
	}
	return dirs, nil
}

func (local *LocalFS) IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

func (local *LocalFS) MkDir(path string) error {
	return os.Mkdir(path, 0o755)
}

func (local *LocalFS) Move(oldPath, newPath string) error {
	if _, err := os.Stat(newPath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrExist}
	}
	return os.Rename(oldPath, newPath)
}
