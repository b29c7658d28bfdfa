package state

import (
	"treefs/internal/config"
	"treefs/internal/domain"
)

// State is the UI-facing view over the tree: root nodes, cursor position,
// and the flattened list of currently visible nodes.
type State struct {
	Roots  []*domain.Node
	Cursor int
	Config config.Config
}

func NewState(cfg config.Config, roots []*domain.Node) *State {
	return &State{
		Roots:  roots,
		Cursor: 0,
		Config: cfg,
	}
}

type VisibleNode struct {
	Node  *domain.Node
	Depth int
}

// VisibleNodes flattens the tree top-down, descending only into expanded
// nodes, preserving child order.
func (appState *State) VisibleNodes() []VisibleNode {
	visible := make([]VisibleNode, 0, 64)
	for _, root := range appState.Roots {
		appendVisible(&visible, root, 0)
	}
	return visible
}

func appendVisible(visible *[]VisibleNode, node *domain.Node, depth int) {
	if node == nil {
		return
	}
	*visible = append(*visible, VisibleNode{Node: node, Depth: depth})
	if !node.Expanded {
		return
	}
	for _, child := range node.Children {
		appendVisible(visible, child, depth+1)
	}
}

// CurrentNode returns the node under the cursor, or nil when the tree is
// empty or the cursor is out of range.
func (appState *State) CurrentNode() *domain.Node {
	visible := appState.VisibleNodes()
	if len(visible) == 0 || appState.Cursor < 0 || appState.Cursor >= len(visible) {
		return nil
	}
	return visible[appState.Cursor].Node
}

// MoveCursor shifts the cursor by delta, clamped to the visible range.
func (appState *State) MoveCursor(delta int) {
	count := len(appState.VisibleNodes())
	if count == 0 {
		appState.Cursor = 0
		return
	}
	appState.Cursor += delta
	if appState.Cursor < 0 {
		appState.Cursor = 0
	}
	if appState.Cursor >= count {
		appState.Cursor = count - 1
	}
}

// ClampCursor keeps the cursor valid after the visible set shrinks, e.g.
// after a collapse.
func (appState *State) ClampCursor() {
	appState.MoveCursor(0)
}
