// Package navigator wires the catalog client, index, selection controller and
// launcher into the operations the commands expose.
package navigator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/bluebook/internal/catalog"
	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/config"
	"github.com/colonyops/bluebook/internal/core/doctor"
	"github.com/colonyops/bluebook/internal/core/launcher"
	"github.com/colonyops/bluebook/internal/core/logging"
	"github.com/colonyops/bluebook/pkg/executil"
)

// App is the central entry point for bluebook operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config   *config.Config
	Catalog  *catalog.Client
	Index    *bluebook.Index
	Launcher *launcher.Launcher

	log zerolog.Logger
}

// NewApp constructs an App from configuration.
func NewApp(cfg *config.Config, exec executil.Executor) (*App, error) {
	client, err := catalog.New(cfg.Server.URL, cfg.Server.Timeout)
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}

	return &App{
		Config:   cfg,
		Catalog:  client,
		Index:    bluebook.NewIndex(),
		Launcher: launcher.New(exec, cfg.Opener.Command),
		log:      logging.Component("navigator"),
	}, nil
}

// Documents lists the documents on the server.
func (a *App) Documents(ctx context.Context) ([]bluebook.DocumentEntry, error) {
	docs, err := a.Catalog.ListDocuments(logging.WithServer(ctx, a.Catalog.BaseURL()))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// EnsureIndex loads the index unless it is already loaded.
func (a *App) EnsureIndex(ctx context.Context) error {
	if a.Index.Ready() {
		return nil
	}
	if err := a.Catalog.LoadIndex(logging.WithServer(ctx, a.Catalog.BaseURL()), a.Index); err != nil {
		return fmt.Errorf("load index: %w", err)
	}
	return nil
}

// Structure returns the index entry for a document, loading the index first
// if needed.
func (a *App) Structure(ctx context.Context, filename string) (bluebook.DocumentStructure, error) {
	if err := a.EnsureIndex(ctx); err != nil {
		return bluebook.DocumentStructure{}, err
	}
	s, ok := a.Index.Lookup(filename)
	if !ok {
		return bluebook.DocumentStructure{}, fmt.Errorf("%q: %w", filename, ErrUnknownDocument)
	}
	return s, nil
}

// URL returns the absolute view URL for a target path.
func (a *App) URL(path string) string {
	return a.Catalog.ViewURL(path)
}

// Open opens the view URL for path and returns it.
func (a *App) Open(ctx context.Context, document, path string) (string, error) {
	url := a.URL(path)
	ctx = logging.WithServer(logging.WithDocument(ctx, document), a.Catalog.BaseURL())

	if err := a.Launcher.Open(ctx, url); err != nil {
		return url, err
	}
	a.log.Info().Ctx(ctx).Str("url", url).Msg("opened")
	return url, nil
}

// Checks returns the health checks for this setup, in display order.
func (a *App) Checks(configPath string) []doctor.Check {
	return []doctor.Check{
		doctor.NewConfigCheck(a.Config, configPath),
		doctor.NewServerCheck(a.Catalog, a.Catalog.BaseURL()),
		doctor.NewOpenerCheck(a.Config.Opener.Command),
	}
}
