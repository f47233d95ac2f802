package cmd

import (
	"context"
	"os"

	"github.com/cristianoliveira/objlist/internal/catalog"
	"github.com/cristianoliveira/objlist/internal/config"
	"github.com/cristianoliveira/objlist/internal/hooks"
	"github.com/cristianoliveira/objlist/internal/listmodel"
	"github.com/cristianoliveira/objlist/internal/storage"
	"github.com/cristianoliveira/objlist/internal/tui/app"
	"github.com/cristianoliveira/objlist/internal/version"
)

// defaultClient resolves command dependencies from the loaded config.
type defaultClient struct{}

var coreClient = defaultClient{}

func (defaultClient) Version() string { return version.String() }

func (defaultClient) WindowName() string { return config.Get("window_name", "objects") }

func (defaultClient) LoadCatalog() (*catalog.Catalog, error) {
	return catalog.Load(config.Get("catalog_path", ""))
}

func (defaultClient) OpenStore() (storage.Store, error) { return storage.NewFromConfig() }

func (defaultClient) RunTUI() error {
	return app.NewClient(nil, nil, nil).Run(config.Get("catalog_path", ""))
}

func (defaultClient) RunSelectHooks(ctx context.Context, window string, items []listmodel.Item) error {
	runner := hooks.NewFromConfig(hooks.WithOutput(os.Stderr))
	return runner.Run(ctx, hooks.PointSelect, hooks.SelectionEnv(window, items))
}
