package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/objlist/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "windows"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "objects", []byte("one")))
	require.NoError(t, s.Save(ctx, "objects", []byte("two")))

	data, err := s.Load(ctx, "objects")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestFileStoreMissing(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Load(ctx, "objects")
	assert.ErrorIs(t, err, ErrStateNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "objects"), ErrStateNotFound)
}

func TestFileStoreListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "b", []byte("xx")))
	require.NoError(t, s.Save(ctx, "a", []byte("x")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name)
	assert.Equal(t, 1, entries[0].Size)
	assert.Equal(t, "b", entries[1].Name)
	assert.Equal(t, 2, entries[1].Size)
}

func TestFileStoreDelete(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "objects", []byte("x")))
	require.NoError(t, s.Delete(ctx, "objects"))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"objects", true},
		{"parts-2.v1_x", true},
		{"", false},
		{".hidden", false},
		{"../escape", false},
		{"a/b", false},
		{"with space", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFileStoreRejectsInvalidName(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Save(context.Background(), "../x", []byte("x")))
}

func TestNewFileStoreEmptyDir(t *testing.T) {
	_, err := NewFileStore(" ")
	assert.Error(t, err)
}

func loadConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("OBJLIST_CONFIG_PATH", "")
	t.Setenv("OBJLIST_STATE_DIR", filepath.Join(dir, "state"))
	config.Load()
	return dir
}

func TestNewForBackendSQLite(t *testing.T) {
	dir := loadConfig(t)

	s, err := NewForBackend(BackendSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "objects", []byte("blob")))
	data, err := s.Load(ctx, "objects")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), data)

	_, err = s.Load(ctx, "other")
	assert.ErrorIs(t, err, ErrStateNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "other"), ErrStateNotFound)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "objects", entries[0].Name)
	assert.Equal(t, 4, entries[0].Size)

	assert.FileExists(t, filepath.Join(dir, "state", "windows.db"))
}

func TestNewForBackendSQLiteRejectsInvalidName(t *testing.T) {
	loadConfig(t)

	s, err := NewForBackend(BackendSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Error(t, s.Save(context.Background(), "bad name", []byte("x")))
}

func TestNewForBackendFile(t *testing.T) {
	dir := loadConfig(t)

	s, err := NewForBackend(BackendFile)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), "objects", []byte("x")))

	assert.FileExists(t, filepath.Join(dir, "state", "windows", "objects.state"))
}

func TestNewForBackendUnknown(t *testing.T) {
	loadConfig(t)

	_, err := NewForBackend("redis")
	assert.Error(t, err)
}

func TestNewFromConfigUsesBackendKey(t *testing.T) {
	dir := loadConfig(t)
	t.Setenv("OBJLIST_STORAGE_BACKEND", "file")
	config.Load()

	s, err := NewFromConfig()
	require.NoError(t, err)
	_, ok := s.(*FileStore)
	assert.True(t, ok)
	assert.DirExists(t, filepath.Join(dir, "state", "windows"))
}
