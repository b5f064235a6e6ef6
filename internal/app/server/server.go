package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"devdash/internal/app/server/api"
	"devdash/internal/app/server/api/http/middleware/metrics"
	"devdash/internal/app/server/config"
	"devdash/internal/domain/archive"
	"devdash/internal/domain/dashboard"
	"devdash/internal/domain/document"
	"devdash/internal/domain/file"
	"devdash/internal/domain/listing"
	"devdash/internal/domain/project"
	"devdash/internal/domain/secret"
	"devdash/internal/domain/snippet"
	"devdash/internal/domain/team"
	"devdash/internal/domain/view"
	"devdash/internal/infrastructure/seed"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	backend *backend
	http    *http.Server
}

// New открывает хранилище, засевает его и собирает HTTP API
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	mode, err := listing.ParseMode(cfg.Mutation)
	if err != nil {
		return nil, err
	}

	ds, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return nil, err
	}

	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	svc, err := services(ctx, b, ds, mode, cfg.View.TTL, log)
	if err != nil {
		b.Close()
		return nil, err
	}

	mux := api.New(svc, metrics.New(), log)

	return &App{
		cfg:     cfg,
		log:     log.With("component", "server"),
		backend: b,
		http: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func services(ctx context.Context, b *backend, ds *seed.Dataset, mode listing.Mode, ttl time.Duration, log *slog.Logger) (*api.Services, error) {
	projects, err := openStore(ctx, b, project.Kind, jsonCodec[project.Project](), ds.Projects)
	if err != nil {
		return nil, err
	}
	snippets, err := openStore(ctx, b, snippet.Kind, jsonCodec[snippet.Snippet](), ds.Snippets)
	if err != nil {
		return nil, err
	}
	secrets, err := openStore(ctx, b, secret.Kind, secretCodec(b), ds.Secrets)
	if err != nil {
		return nil, err
	}
	files, err := openStore(ctx, b, file.Kind, jsonCodec[file.File](), ds.Files)
	if err != nil {
		return nil, err
	}
	members, err := openStore(ctx, b, team.Kind, jsonCodec[team.Member](), ds.Team)
	if err != nil {
		return nil, err
	}
	docs, err := openStore(ctx, b, document.Kind, jsonCodec[document.Document](), ds.Docs)
	if err != nil {
		return nil, err
	}
	archives, err := openStore(ctx, b, archive.Kind, jsonCodec[archive.Archive](), ds.Archives)
	if err != nil {
		return nil, err
	}

	svc := &api.Services{
		Projects: listing.NewService(project.Kind, projects, mode, log),
		Snippets: listing.NewService(snippet.Kind, snippets, mode, log),
		Secrets:  listing.NewService(secret.Kind, secrets, mode, log),
		Files:    listing.NewService(file.Kind, files, mode, log),
		Team:     listing.NewService(team.Kind, members, mode, log),
		Docs:     listing.NewService(document.Kind, docs, mode, log),
		Archives: listing.NewService(archive.Kind, archives, mode, log),
		Pinger:   b.pinger(),
		Storage:  b.name,
		Mode:     mode,
	}
	svc.Dashboard = dashboard.NewService(svc.Projects, svc.Archives, log)
	svc.Views = view.NewService([]listing.Viewer{
		svc.Projects, svc.Snippets, svc.Secrets, svc.Files, svc.Team, svc.Docs, svc.Archives,
	}, ttl, log)

	return svc, nil
}

// Handler нужен тестам, чтобы обойтись без сетевого порта
func (a *App) Handler() http.Handler {
	return a.http.Handler
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("starting server", "address", a.http.Addr, "storage", a.backend.name)
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if cerr := a.Close(); cerr != nil {
		a.log.Error("failed to close storage", "error", cerr)
	}

	return err
}

func (a *App) Close() error {
	return a.backend.Close()
}
