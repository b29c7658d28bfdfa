package domain

// Node is one entry in the directory tree: either a volume root or an
// ordinary directory. Children stay empty until the first expansion and
// are owned exclusively by their parent; their order is whatever order
// the filesystem returned entries in.
type Node struct {
	Kind     NodeKind
	Name     string
	Path     string
	ReadOnly bool
	Expanded bool
	Selected bool
	Children []*Node

	// Volume label, computed once on first display and cached here.
	Label       string
	LabelLoaded bool
}

func (node *Node) IsDrive() bool {
	return node.Kind == KindDrive
}

func (node *Node) HasChild(name string) bool {
	for _, child := range node.Children {
		if child.Name == name {
			return true
		}
	}
	return false
}

func (node *Node) ChildNames() []string {
	names := make([]string, 0, len(node.Children))
	for _, child := range node.Children {
		names = append(names, child.Name)
	}
	return names
}
