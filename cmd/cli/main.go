package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/tutoradmin/internal/client/api"
	"github.com/dmitrijs2005/tutoradmin/internal/client/cli"
	"github.com/dmitrijs2005/tutoradmin/internal/client/client"
	"github.com/dmitrijs2005/tutoradmin/internal/client/config"
	"github.com/dmitrijs2005/tutoradmin/internal/client/session"
	"github.com/dmitrijs2005/tutoradmin/internal/client/stores"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newDatabase,
			session.NewStorage,
			cli.NewRouter,
			newHTTPClient,
			func(c *client.HTTPClient) api.Sender { return c },
			api.NewAuthAPI,
			api.NewAdminAPI,
			api.NewParentAPI,
			api.NewTutorAPI,
			newAuthStore,
			newAdminStore,
			newParentStore,
			newTutorStore,
			cli.NewApp,
		),
		fx.Invoke(run),
	).Run()
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (logging.Logger, error) {
	l, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	if zl, ok := l.(*logging.ZapLogger); ok {
		lc.Append(fx.StopHook(func() { _ = zl.Sync() }))
	}
	return l, nil
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*sql.DB, error) {
	db, err := session.Open(context.Background(), cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(db.Close))
	return db, nil
}

func newHTTPClient(cfg *config.Config, storage *session.Storage, router *cli.Router, logger logging.Logger) (*client.HTTPClient, error) {
	return client.NewHTTPClient(cfg.APIBaseURL, storage, router,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
	)
}

func newAuthStore(a api.Auth, storage *session.Storage, logger logging.Logger) *stores.AuthStore {
	return stores.NewAuthStore(a, storage, logger)
}

func newAdminStore(a api.Admin, logger logging.Logger) *stores.AdminStore {
	return stores.NewAdminStore(a, logger)
}

func newParentStore(cfg *config.Config, a api.Parent, logger logging.Logger) *stores.ParentStore {
	return stores.NewParentStore(a, cfg.ParentDocumentsURL, logger)
}

func newTutorStore(cfg *config.Config, a api.Tutor, logger logging.Logger) *stores.TutorStore {
	return stores.NewTutorStore(a, cfg.TutorDocumentsURL, logger)
}

// run starts the console once the graph is built and stops the application
// when the user leaves it.
func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *cli.App) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				app.Run(ctx)
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
