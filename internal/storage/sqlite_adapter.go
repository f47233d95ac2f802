package storage

import (
	"context"
	"errors"

	"github.com/cristianoliveira/objlist/internal/storage/sqlite"
)

// sqliteAdapter maps the sqlite package onto Store.
type sqliteAdapter struct {
	store *sqlite.Store
}

// NewSQLiteStore opens a SQLite-backed Store at dbPath.
func NewSQLiteStore(dbPath string) (Store, error) {
	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return nil, err
	}
	return &sqliteAdapter{store: store}, nil
}

func (a *sqliteAdapter) Save(ctx context.Context, name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return a.store.Save(ctx, name, data)
}

func (a *sqliteAdapter) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := a.store.Load(ctx, name)
	return data, translate(err)
}

func (a *sqliteAdapter) Delete(ctx context.Context, name string) error {
	return translate(a.store.Delete(ctx, name))
}

func (a *sqliteAdapter) List(ctx context.Context) ([]Entry, error) {
	rows, err := a.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(rows))
	for i, r := range rows {
		out[i] = Entry{Name: r.Name, Size: r.Size, UpdatedAt: r.UpdatedAt}
	}
	return out, nil
}

func (a *sqliteAdapter) Close() error {
	return a.store.Close()
}

func translate(err error) error {
	if errors.Is(err, sqlite.ErrStateNotFound) {
		return ErrStateNotFound
	}
	return err
}
