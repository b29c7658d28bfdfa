package services

// Filesystem is the OS boundary the tree operates through. Every call may
// fail; the tree decides per operation whether a failure is surfaced or
// degrades to "fewer children".
type Filesystem interface {
	// Abs canonicalizes a path to its absolute, cleaned form.
	Abs(path string) (string, error)
	Exists(path string) bool
	// ListDirs returns the absolute paths of the immediate subdirectories
	// of path, in the order the OS enumerated them.
	ListDirs(path string) ([]string, error)
	IsHidden(path string) (bool, error)
	IsSymlink(path string) (bool, error)
	MkDir(path string) error
	// Move renames a directory in a single filesystem operation.
	Move(oldPath, newPath string) error
}

type VolumeInfo struct {
	Label string
	Ready bool
}

// Volumes enumerates mounted volume roots and answers label queries.
type Volumes interface {
	List() ([]string, error)
	Info(root string) (VolumeInfo, error)
}
