package tree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"treefs/internal/domain"
	"treefs/internal/services"
)

// DefaultFolderName is the base name used by CreateChild before numeric
// suffixes are probed.
const DefaultFolderName = "New Folder"

// Drive names carry a volume separator ("C:"); directory names never do.
const volumeSeparator = ':'

type Options struct {
	SymlinkPolicy domain.SymlinkPolicy
}

// Explorer owns the operations on a directory tree: lazy expansion,
// renaming, and collision-avoiding folder creation. It is not safe for
// concurrent use; callers drive it from a single goroutine.
type Explorer struct {
	fs      services.Filesystem
	volumes services.Volumes
	opts    Options

	notifier     Notifier
	observers    map[string]func(Event)
	editHandlers map[string]func(*domain.Node) bool
}

func NewExplorer(fs services.Filesystem, volumes services.Volumes, opts Options) *Explorer {
	if opts.SymlinkPolicy == "" {
		opts.SymlinkPolicy = domain.SymlinkFollow
	}
	return &Explorer{
		fs:           fs,
		volumes:      volumes,
		opts:         opts,
		observers:    make(map[string]func(Event)),
		editHandlers: make(map[string]func(*domain.Node) bool),
	}
}

// Roots builds one read-only drive node per mounted volume. Enumeration
// failure degrades to an empty tree rather than an error.
func (explorer *Explorer) Roots() []*domain.Node {
	roots, err := explorer.volumes.List()
	if err != nil {
		return nil
	}
	nodes := make([]*domain.Node, 0, len(roots))
	for _, root := range roots {
		if node := explorer.NodeFromDrive(root); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// NodeFromDrive builds a read-only volume node. The identifier keeps its
// trailing separator stripped, so "C:\" becomes name and path "C:".
func (explorer *Explorer) NodeFromDrive(identifier string) *domain.Node {
	trimmed := strings.TrimRight(identifier, `/\`)
	if trimmed == "" {
		// The filesystem root itself ("/") trims to nothing; keep it.
		trimmed = identifier
	}
	if trimmed == "" {
		return nil
	}
	return &domain.Node{
		Kind:     domain.KindDrive,
		Name:     trimmed,
		Path:     trimmed,
		ReadOnly: true,
	}
}

// NodeFromPath builds a directory node from a path, canonicalized through
// the filesystem provider. Returns (nil, false) when canonicalization
// fails; callers skip the entry instead of aborting.
func (explorer *Explorer) NodeFromPath(path string) (*domain.Node, bool) {
	abs, err := explorer.fs.Abs(path)
	if err != nil {
		return nil, false
	}
	return &domain.Node{
		Kind: domain.KindDirectory,
		Name: filepath.Base(abs),
		Path: abs,
	}, true
}

// Expand marks the node expanded and populates its children with the
// non-hidden immediate subdirectories of its path. Loading happens at most
// once per node: a non-empty child list is returned as-is. Enumeration
// failures are swallowed and show as zero children. Returns the resulting
// child count.
func (explorer *Explorer) Expand(node *domain.Node) int {
	if node == nil {
		return 0
	}
	node.Expanded = true
	if len(node.Children) > 0 {
		return len(node.Children)
	}

	entries, err := explorer.fs.ListDirs(explorer.enumerationRoot(node))
	if err != nil {
		return 0
	}

	node.Children = node.Children[:0]
	for _, entry := range entries {
		hidden, err := explorer.fs.IsHidden(entry)
		if err != nil {
			// Attribute query failed for this entry alone: skip it,
			// keep going, and let the sink know.
			explorer.report("expand", entry, err)
			continue
		}
		if hidden {
			continue
		}
		if explorer.opts.SymlinkPolicy == domain.SymlinkSkip {
			link, err := explorer.fs.IsSymlink(entry)
			if err != nil || link {
				continue
			}
		}
		child, ok := explorer.NodeFromPath(entry)
		if !ok {
			continue
		}
		node.Children = append(node.Children, child)
	}
	explorer.emit(Event{Type: EventChildrenLoaded, Node: node})
	return len(node.Children)
}

// Select marks the node selected and, mirroring expand-on-select tree
// behavior, forces expansion.
func (explorer *Explorer) Select(node *domain.Node) {
	if node == nil {
		return
	}
	node.Selected = true
	if !node.Expanded {
		explorer.Expand(node)
	}
}

func (explorer *Explorer) Deselect(node *domain.Node) {
	if node != nil {
		node.Selected = false
	}
}

// Collapse clears the expansion flag. Children stay loaded; expansion is
// never refreshed for a node instance.
func (explorer *Explorer) Collapse(node *domain.Node) {
	if node != nil {
		node.Expanded = false
	}
}

// Rename moves the directory to a sibling path with the new leaf name and
// updates the node's path and name together. On any failure the node is
// left untouched and the error is surfaced and reported to the sink.
func (explorer *Explorer) Rename(node *domain.Node, newName string) error {
	if node == nil {
		return &services.OpError{Op: "rename", Kind: services.ErrInvalid, Err: errors.New("no node")}
	}
	if node.ReadOnly {
		return explorer.fail("rename", node.Path, &services.OpError{
			Op: "rename", Path: node.Path, Kind: services.ErrInvalid,
			Err: errors.New("volume roots cannot be renamed"),
		})
	}
	if newName == "" || strings.ContainsAny(newName, `/\`) {
		return explorer.fail("rename", node.Path, &services.OpError{
			Op: "rename", Path: node.Path, Kind: services.ErrInvalid,
			Err: fmt.Errorf("invalid name %q", newName),
		})
	}
	if !explorer.fs.Exists(node.Path) {
		return explorer.fail("rename", node.Path, &services.OpError{
			Op: "rename", Path: node.Path, Kind: services.ErrNotFound,
			Err: errors.New("source no longer exists"),
		})
	}
	if newName == node.Name {
		// Confirming the current name is a successful no-op, not a
		// destination collision with the node's own path.
		return nil
	}

	newPath := filepath.Join(filepath.Dir(node.Path), newName)
	if err := explorer.fs.Move(node.Path, newPath); err != nil {
		return explorer.fail("rename", node.Path, services.NewOpError("rename", node.Path, err))
	}

	node.Path = newPath
	node.Name = filepath.Base(newPath)
	explorer.emit(Event{Type: EventNodeRenamed, Node: node})
	return nil
}

// CreateChild creates one new empty subdirectory under the node, probing
// "New Folder", "New Folder 1", "New Folder 2", ... until a free name is
// found, and appends the new node to the children. Returns the new node,
// or nil with a surfaced error.
func (explorer *Explorer) CreateChild(node *domain.Node) (*domain.Node, error) {
	if node == nil {
		return nil, &services.OpError{Op: "create", Kind: services.ErrInvalid, Err: errors.New("no node")}
	}
	parent := explorer.enumerationRoot(node)
	if !explorer.fs.Exists(parent) {
		return nil, explorer.fail("create", parent, &services.OpError{
			Op: "create", Path: parent, Kind: services.ErrNotFound,
			Err: errors.New("parent no longer exists"),
		})
	}

	name := DefaultFolderName
	for suffix := 1; explorer.fs.Exists(filepath.Join(parent, name)); suffix++ {
		name = fmt.Sprintf("%s %d", DefaultFolderName, suffix)
	}

	target := filepath.Join(parent, name)
	if err := explorer.fs.MkDir(target); err != nil {
		return nil, explorer.fail("create", target, services.NewOpError("create", target, err))
	}

	child, ok := explorer.NodeFromPath(target)
	if !ok {
		return nil, explorer.fail("create", target, &services.OpError{
			Op: "create", Path: target, Kind: services.ErrInvalid,
			Err: errors.New("created directory could not be resolved"),
		})
	}
	node.Children = append(node.Children, child)
	explorer.emit(Event{Type: EventNodeCreated, Node: child})
	return child, nil
}

// DisplayLabel derives the presentation name. Directories show their leaf
// name; drives show the volume label, a not-ready marker, or the query
// error. Computed once per node and memoized on it.
func (explorer *Explorer) DisplayLabel(node *domain.Node) string {
	if node == nil {
		return ""
	}
	if node.Kind != domain.KindDrive {
		return node.Name
	}
	if !node.LabelLoaded {
		node.Label = explorer.driveLabel(node)
		node.LabelLoaded = true
	}
	return node.Label
}

func (explorer *Explorer) driveLabel(node *domain.Node) string {
	info, err := explorer.volumes.Info(explorer.enumerationRoot(node))
	if err != nil {
		return fmt.Sprintf("%s %v", node.Name, err)
	}
	if !info.Ready {
		return fmt.Sprintf("%s (not ready)", node.Name)
	}
	if info.Label == "" {
		return node.Name
	}
	return fmt.Sprintf("%s (%s)", node.Name, info.Label)
}

// enumerationRoot reconstructs "C:\" from a drive node named "C:"; plain
// directories enumerate at their path.
func (explorer *Explorer) enumerationRoot(node *domain.Node) string {
	if strings.ContainsRune(node.Name, volumeSeparator) {
		return node.Name + string(filepath.Separator)
	}
	return node.Path
}

func (explorer *Explorer) fail(op, path string, opErr *services.OpError) *services.OpError {
	explorer.report(op, path, opErr.Err)
	explorer.emit(Event{Type: EventOpFailed, Err: opErr})
	return opErr
}

func (explorer *Explorer) report(op, path string, err error) {
	if explorer.notifier != nil {
		explorer.notifier.Notify(op, path, err)
	}
}
