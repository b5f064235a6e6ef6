// GET  /api/v1/health                        # Состояние сервиса и хранилища
// GET  /api/v1/dashboard/stats               # Сводка по проектам
// GET  /api/v1/{kind}?q=&filter=&reveal=     # Список карточек
// GET  /api/v1/{kind}/{id}?reveal=           # Одна запись
// POST /api/v1/{kind}                        # Создать запись
// PUT  /api/v1/{kind}/{id}                   # Обновить запись
// DELETE /api/v1/{kind}/{id}                 # Удалить запись
// GET|PUT /api/v1/projects/{id}/readme       # README проекта
// GET  /api/v1/docs/{id}/content             # Содержимое документа
// POST|GET|PUT|DELETE /api/v1/views/...      # Представления списков
// GET  /metrics                              # Prometheus

package api

import (
	contentAPI "devdash/internal/app/server/api/http/content"
	dashboardAPI "devdash/internal/app/server/api/http/dashboard"
	healthAPI "devdash/internal/app/server/api/http/health"
	"devdash/internal/app/server/api/http/middleware"
	"devdash/internal/app/server/api/http/middleware/logger"
	"devdash/internal/app/server/api/http/middleware/metrics"
	"devdash/internal/app/server/api/http/resource"
	viewAPI "devdash/internal/app/server/api/http/view"
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

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// Services - доменные сервисы, которые публикует API
type Services struct {
	Projects  *listing.Service[project.Project]
	Snippets  *listing.Service[snippet.Snippet]
	Secrets   *listing.Service[secret.Secret]
	Files     *listing.Service[file.File]
	Team      *listing.Service[team.Member]
	Docs      *listing.Service[document.Document]
	Archives  *listing.Service[archive.Archive]
	Dashboard dashboard.Servicer
	Views     view.Servicer

	// Pinger равен nil для хранилища в памяти
	Pinger  healthAPI.Pinger
	Storage string
	Mode    listing.Mode
}

type routes interface {
	SetupRoutes(api huma.API)
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(svc *Services, m *metrics.Metrics, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)

	config := huma.DefaultConfig("DevDash API", "1.0.0")
	config.Info.Description = "Проекты, сниппеты, переменные окружения, файлы, команда, документация и архивы."

	API := humachi.New(mux, config)

	for _, h := range handlers(svc, m, log) {
		h.SetupRoutes(API)
	}
	mux.Handle("/metrics", m.Handler())

	return mux
}

func handlers(svc *Services, m *metrics.Metrics, log *slog.Logger) []routes {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware(), m.Middleware())

	out := []routes{
		healthAPI.NewHandler(svc.Pinger, svc.Storage, string(svc.Mode), log, middlewares.GetAllAndClear()),
		dashboardAPI.NewHandler(svc.Dashboard, log, middlewares.GetAllAndClear()),
		resource.NewHandler[project.Project](svc.Projects, m, log, middlewares.GetAllAndClear()),
		resource.NewHandler[snippet.Snippet](svc.Snippets, m, log, middlewares.GetAllAndClear()),
		resource.NewHandler[secret.Secret](svc.Secrets, m, log, middlewares.GetAllAndClear()),
		resource.NewHandler[file.File](svc.Files, m, log, middlewares.GetAllAndClear()),
		resource.NewHandler[team.Member](svc.Team, m, log, middlewares.GetAllAndClear()),
		resource.NewHandler[document.Document](svc.Docs, m, log, middlewares.GetAllAndClear()),
		resource.NewHandler[archive.Archive](svc.Archives, m, log, middlewares.GetAllAndClear()),
		contentAPI.NewHandler(svc.Projects, svc.Docs, log, middlewares.GetAllAndClear()),
		viewAPI.NewHandler(svc.Views, log, middlewares.GetAllAndClear()),
	}

	return out
}
