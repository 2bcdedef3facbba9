package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageReadWrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "projects/p1.yaml", []byte("name: test")))

	data, err := s.Read(ctx, "projects/p1.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("name: test"), data)

	exists, err := s.Exists(ctx, "projects/p1.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorageReadNotFound(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Read(ctx, "missing.yaml")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := s.Exists(ctx, "missing.yaml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "a.yaml", []byte("x")))
	require.NoError(t, s.Delete(ctx, "a.yaml"))

	_, err = s.Read(ctx, "a.yaml")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "a.yaml"), ErrNotFound)
}

func TestLocalStorageList(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "tasks/t1.yaml", []byte("1")))
	require.NoError(t, s.Write(ctx, "tasks/t2.yaml", []byte("2")))
	require.NoError(t, s.Write(ctx, "projects/p1.yaml", []byte("3")))

	// Leftover temp files from interrupted writes must not be listed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks", "t3.yaml.tmp"), []byte("x"), 0o644))

	paths, err := s.List(ctx, "tasks")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"tasks/t1.yaml", "tasks/t2.yaml"}, paths)
}

func TestLocalStorageListMissingPrefix(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	paths, err := s.List(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLocalStorageOverwrite(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "a.yaml", []byte("old")))
	require.NoError(t, s.Write(ctx, "a.yaml", []byte("new")))

	data, err := s.Read(ctx, "a.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}
