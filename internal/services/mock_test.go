package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFSMoveRekeysSubtree(t *testing.T) {
	mem := NewMemFS("/")
	mem.AddDir("/data/old/nested")

	require.NoError(t, mem.Move("/data/old", "/data/new"))

	assert.False(t, mem.Exists("/data/old"))
	assert.False(t, mem.Exists("/data/old/nested"))
	assert.True(t, mem.Exists("/data/new"))
	assert.True(t, mem.Exists("/data/new/nested"))

	dirs, err := mem.ListDirs("/data/new")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Clean("/data/new/nested")}, dirs)
}

func TestMemFSMoveKeepsSiblingPosition(t *testing.T) {
	mem := NewMemFS("/")
	mem.AddDir("/data/a")
	mem.AddDir("/data/b")
	mem.AddDir("/data/c")

	require.NoError(t, mem.Move("/data/b", "/data/renamed"))

	dirs, err := mem.ListDirs("/data")
	require.NoError(t, err)
	names := make([]string, len(dirs))
	for i, dir := range dirs {
		names[i] = filepath.Base(dir)
	}
	assert.Equal(t, []string{"a", "renamed", "c"}, names)
}

func TestMemFSMkDirRequiresParent(t *testing.T) {
	mem := NewMemFS("/")

	err := mem.MkDir("/missing/child")
	require.Error(t, err)
	assert.Equal(t, ErrNotFound, Classify(err))

	mem.AddDir("/present")
	require.NoError(t, mem.MkDir("/present/child"))
	err = mem.MkDir("/present/child")
	require.Error(t, err)
	assert.Equal(t, ErrExists, Classify(err))
}
