package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeChildHelpers(t *testing.T) {
	node := &Node{
		Kind: KindDirectory,
		Name: "data",
		Children: []*Node{
			{Name: "a"},
			{Name: "b"},
		},
	}

	assert.Equal(t, []string{"a", "b"}, node.ChildNames())
	assert.True(t, node.HasChild("a"))
	assert.False(t, node.HasChild("c"))
	assert.False(t, node.IsDrive())
}

func TestNodeIsDrive(t *testing.T) {
	drive := &Node{Kind: KindDrive, Name: "C:", Path: "C:", ReadOnly: true}
	assert.True(t, drive.IsDrive())
}

func TestValidSymlinkPolicy(t *testing.T) {
	assert.True(t, ValidSymlinkPolicy("follow"))
	assert.True(t, ValidSymlinkPolicy("skip"))
	assert.False(t, ValidSymlinkPolicy(""))
	assert.False(t, ValidSymlinkPolicy("mark"))
}
