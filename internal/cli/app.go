// Package cli implements the cadctl command tree. Every command is a
// thin page over the API client: it fetches what it needs, renders it,
// and holds no logic any other command depends on.
package cli

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/mohammadmehrani/CAD/internal/api"
	"github.com/mohammadmehrani/CAD/internal/cache"
	"github.com/mohammadmehrani/CAD/internal/config"
	"github.com/mohammadmehrani/CAD/internal/guard"
	"github.com/mohammadmehrani/CAD/internal/locale"
	"github.com/mohammadmehrani/CAD/internal/logging"
	"github.com/mohammadmehrani/CAD/internal/session"
	"github.com/mohammadmehrani/CAD/internal/tokens"
)

// App bundles the wired components behind the command tree. It is
// constructed once per invocation and torn down by Close.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	db      *sql.DB
	tokens  tokens.Store
	api     *api.Client
	session *session.Store
	guard   *guard.Guard
	locale  *locale.Manager
	cache   *cache.Cache
	render  *renderer
}

// NewApp wires the components for the given configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, err
	}

	db, err := tokens.OpenDatabase(ctx, cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	log := logging.NewText(os.Stderr, cfg.LogLevel)
	store := tokens.NewSQLiteStore(db)

	// The expiry hook closes over the session variable so the client can
	// be built first; by the time a request runs, the session exists.
	var sess *session.Store
	client := api.New(cfg.BaseURL, store,
		api.WithLogger(log),
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		api.WithSessionExpiredHook(func() {
			if sess != nil {
				sess.HandleSessionExpired()
			}
		}),
	)

	render := newRenderer(os.Stdout, cfg.JSON)
	sess = session.New(client, store,
		session.WithLogger(log),
		session.WithNavigator(render.navigate),
	)

	loc := locale.NewManager(store)
	if err := loc.Load(ctx); err != nil {
		log.Warn(ctx, "failed to load locale preference", "error", err)
	}
	loc.SetListener(render.setLocale)
	render.setLocale(loc.Current())

	return &App{
		cfg:     cfg,
		log:     log,
		db:      db,
		tokens:  store,
		api:     client,
		session: sess,
		guard:   guard.New(sess),
		locale:  loc,
		cache:   cache.New(cfg.CacheTTL),
		render:  render,
	}, nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
