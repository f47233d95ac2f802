package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/objlist/internal/colors"
	"github.com/cristianoliveira/objlist/internal/config"
)

const (
	// BackendSQLite keeps window states in a SQLite database.
	BackendSQLite = "sqlite"
	// BackendFile keeps one state file per window.
	BackendFile = "file"
)

var (
	_ Store = (*sqliteAdapter)(nil)
	_ Store = (*FileStore)(nil)
)

// NewFromConfig opens the store selected by the storage_backend key.
func NewFromConfig() (Store, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite))
}

// NewForBackend opens the named backend at its configured location. A
// SQLite backend that cannot be opened falls back to the file backend.
func NewForBackend(backend string) (Store, error) {
	stateDir := config.Get("state_dir", "")
	fileDir := filepath.Join(stateDir, "windows")

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		dbPath := config.Get("state_db", filepath.Join(stateDir, "windows.db"))
		store, err := NewSQLiteStore(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return NewFileStore(fileDir)
		}
		return store, nil
	case BackendFile:
		return NewFileStore(fileDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
