package services

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// MemFS is an in-memory Filesystem for tests and demos. Directories are
// registered explicitly; the Fail* maps inject errors per path.
type MemFS struct {
	children map[string][]string // dir path -> ordered child base names
	hidden   map[string]bool
	symlinks map[string]bool

	FailList   map[string]error
	FailMove   map[string]error
	FailMkDir  map[string]error
	FailHidden map[string]error
	FailAbs    map[string]error
}

func NewMemFS(roots ...string) *MemFS {
	mem := &MemFS{
		children:   make(map[string][]string),
		hidden:     make(map[string]bool),
		symlinks:   make(map[string]bool),
		FailList:   make(map[string]error),
		FailMove:   make(map[string]error),
		FailMkDir:  make(map[string]error),
		FailHidden: make(map[string]error),
		FailAbs:    make(map[string]error),
	}
	for _, root := range roots {
		mem.children[filepath.Clean(root)] = nil
	}
	return mem
}

// AddDir registers path and every missing ancestor, appending each new
// directory to its parent's child list in insertion order.
func (mem *MemFS) AddDir(path string) {
	clean := filepath.Clean(path)
	if _, ok := mem.children[clean]; ok {
		return
	}
	parent := filepath.Dir(clean)
	if parent != clean {
		mem.AddDir(parent)
		mem.children[parent] = append(mem.children[parent], filepath.Base(clean))
	}
	mem.children[clean] = nil
}

func (mem *MemFS) MarkHidden(path string) {
	mem.hidden[filepath.Clean(path)] = true
}

func (mem *MemFS) MarkSymlink(path string) {
	mem.symlinks[filepath.Clean(path)] = true
}

func (mem *MemFS) Abs(path string) (string, error) {
	clean := filepath.Clean(path)
	if err := mem.FailAbs[clean]; err != nil {
		return "", err
	}
	return clean, nil
}

func (mem *MemFS) Exists(path string) bool {
	_, ok := mem.children[filepath.Clean(path)]
	return ok
}

func (mem *MemFS) ListDirs(path string) ([]string, error) {
	clean := filepath.Clean(path)
	if err := mem.FailList[clean]; err != nil {
		return nil, err
	}
	names, ok := mem.children[clean]
	if !ok {
		return nil, fmt.Errorf("list %s: %w", clean, fs.ErrNotExist)
	}
	dirs := make([]string, 0, len(names))
	for _, name := range names {
		dirs = append(dirs, filepath.Join(clean, name))
	}
	return dirs, nil
}

func (mem *MemFS) IsHidden(path string) (bool, error) {
	clean := filepath.Clean(path)
	if err := mem.FailHidden[clean]; err != nil {
		return false, err
	}
	return mem.hidden[clean], nil
}

func (mem *MemFS) IsSymlink(path string) (bool, error) {
	return mem.symlinks[filepath.Clean(path)], nil
}

func (mem *MemFS) MkDir(path string) error {
	clean := filepath.Clean(path)
	if err := mem.FailMkDir[clean]; err != nil {
		return err
	}
	if _, ok := mem.children[clean]; ok {
		return fmt.Errorf("mkdir %s: %w", clean, fs.ErrExist)
	}
	parent := filepath.Dir(clean)
	if _, ok := mem.children[parent]; !ok {
		return fmt.Errorf("mkdir %s: %w", clean, fs.ErrNotExist)
	}
	mem.children[parent] = append(mem.children[parent], filepath.Base(clean))
	mem.children[clean] = nil
	return nil
}

func (mem *MemFS) Move(oldPath, newPath string) error {
	oldClean := filepath.Clean(oldPath)
	newClean := filepath.Clean(newPath)
	if err := mem.FailMove[oldClean]; err != nil {
		return err
	}
	if _, ok := mem.children[oldClean]; !ok {
		return fmt.Errorf("rename %s: %w", oldClean, fs.ErrNotExist)
	}
	if _, ok := mem.children[newClean]; ok {
		return fmt.Errorf("rename %s: %w", newClean, fs.ErrExist)
	}

	oldParent := filepath.Dir(oldClean)
	newParent := filepath.Dir(newClean)
	if oldParent == newParent {
		// In-place rename keeps the sibling position.
		for i, name := range mem.children[oldParent] {
			if name == filepath.Base(oldClean) {
				mem.children[oldParent][i] = filepath.Base(newClean)
			}
		}
	} else {
		mem.children[oldParent] = removeName(mem.children[oldParent], filepath.Base(oldClean))
		mem.children[newParent] = append(mem.children[newParent], filepath.Base(newClean))
	}

	// Re-key the moved directory and everything under it.
	prefix := oldClean + string(filepath.Separator)
	moved := make(map[string][]string)
	for key, names := range mem.children {
		switch {
		case key == oldClean:
			moved[newClean] = names
			delete(mem.children, key)
		case strings.HasPrefix(key, prefix):
			moved[newClean+key[len(oldClean):]] = names
			delete(mem.children, key)
		}
	}
	for key, names := range moved {
		mem.children[key] = names
	}
	return nil
}

func removeName(names []string, target string) []string {
	kept := names[:0]
	for _, name := range names {
		if name != target {
			kept = append(kept, name)
		}
	}
	return kept
}

// StaticVolumes is a Volumes stub with fixed roots and label answers.
type StaticVolumes struct {
	Roots   []string
	Infos   map[string]VolumeInfo
	Errs    map[string]error
	ListErr error
}

func (volumes *StaticVolumes) List() ([]string, error) {
	if volumes.ListErr != nil {
		return nil, volumes.ListErr
	}
	return volumes.Roots, nil
}

func (volumes *StaticVolumes) Info(root string) (VolumeInfo, error) {
	if err := volumes.Errs[root]; err != nil {
		return VolumeInfo{}, err
	}
	return volumes.Infos[root], nil
}
