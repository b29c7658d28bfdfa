package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"treefs/internal/config"
	"treefs/internal/domain"
)

func sampleRoots() []*domain.Node {
	child := &domain.Node{Kind: domain.KindDirectory, Name: "sub"}
	expanded := &domain.Node{
		Kind:     domain.KindDirectory,
		Name:     "open",
		Expanded: true,
		Children: []*domain.Node{child},
	}
	collapsed := &domain.Node{
		Kind:     domain.KindDirectory,
		Name:     "closed",
		Children: []*domain.Node{{Name: "invisible"}},
	}
	return []*domain.Node{expanded, collapsed}
}

func TestVisibleNodesDescendsExpandedOnly(t *testing.T) {
	appState := NewState(config.DefaultConfig(), sampleRoots())

	visible := appState.VisibleNodes()

	names := make([]string, len(visible))
	depths := make([]int, len(visible))
	for i, row := range visible {
		names[i] = row.Node.Name
		depths[i] = row.Depth
	}
	assert.Equal(t, []string{"open", "sub", "closed"}, names)
	assert.Equal(t, []int{0, 1, 0}, depths)
}

func TestMoveCursorClampsToRange(t *testing.T) {
	appState := NewState(config.DefaultConfig(), sampleRoots())

	appState.MoveCursor(-5)
	assert.Equal(t, 0, appState.Cursor)

	appState.MoveCursor(99)
	assert.Equal(t, 2, appState.Cursor)
}

func TestCurrentNode(t *testing.T) {
	roots := sampleRoots()
	appState := NewState(config.DefaultConfig(), roots)

	assert.Equal(t, roots[0], appState.CurrentNode())

	appState.MoveCursor(2)
	assert.Equal(t, "closed", appState.CurrentNode().Name)
}

func TestCurrentNodeEmptyTree(t *testing.T) {
	appState := NewState(config.DefaultConfig(), nil)
	assert.Nil(t, appState.CurrentNode())
	appState.MoveCursor(1)
	assert.Equal(t, 0, appState.Cursor)
}

func TestClampCursorAfterCollapse(t *testing.T) {
	roots := sampleRoots()
	appState := NewState(config.DefaultConfig(), roots)
	appState.MoveCursor(2)

	roots[0].Expanded = false
	appState.ClampCursor()

	assert.Equal(t, 1, appState.Cursor)
	assert.Equal(t, "closed", appState.CurrentNode().Name)
}
