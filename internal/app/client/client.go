package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"devdash/internal/app/client/config"
	"devdash/internal/app/client/output"
	"devdash/internal/domain/dashboard"
	"devdash/internal/domain/listing"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Kinds - виды записей, которые публикует сервер
var Kinds = []string{"projects", "snippets", "secrets", "files", "team", "docs", "archives"}

type App struct {
	config *config.Config
	log    *slog.Logger
	http   *httpClient
	format output.Format
}

// Health - ответ /api/v1/health
type Health struct {
	Status       string `json:"status" yaml:"status"`
	Storage      string `json:"storage" yaml:"storage"`
	MutationMode string `json:"mutation_mode" yaml:"mutation_mode"`
}

// Mutation - подтверждение create/update/delete
type Mutation struct {
	ID        string `json:"id" yaml:"id"`
	Status    string `json:"status" yaml:"status"`
	Persisted bool   `json:"persisted" yaml:"persisted"`
}

// Content - README проекта или текст документа
type Content struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Format  string `json:"format" yaml:"format"`
	Content string `json:"content" yaml:"content"`
}

// View - открытое на сервере представление списка
type View struct {
	ID   string `json:"id" yaml:"id"`
	Kind string `json:"kind" yaml:"kind"`
}

type Toggle struct {
	RecordID string `json:"record_id" yaml:"record_id"`
	Visible  bool   `json:"visible" yaml:"visible"`
}

// ListOptions - параметры запроса списка
type ListOptions struct {
	Query  string
	Filter listing.FilterState
	Reveal []string
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Query != "" {
		q.Set("q", o.Query)
	}
	if len(o.Filter.Categories) > 0 {
		pairs := make([]string, 0, len(o.Filter.Categories))
		for dim, val := range o.Filter.Categories {
			pairs = append(pairs, dim+":"+val)
		}
		slices.Sort(pairs)
		q.Set("filter", strings.Join(pairs, ","))
	}
	if len(o.Reveal) > 0 {
		q.Set("reveal", strings.Join(o.Reveal, ","))
	}
	return q
}

func New(cfg *config.Config, format output.Format, log *slog.Logger) *App {
	return &App{
		config: cfg,
		log:    log.With("component", "client"),
		http:   newHTTPClient(cfg, log),
		format: format,
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

// SetServer переключает клиент на другой адрес сервера
func (a *App) SetServer(addr string) {
	a.config.ServerAddress = addr
	a.http = newHTTPClient(a.config, a.log)
}

// Printer печатает в w в формате, выбранном флагами
func (a *App) Printer(w io.Writer) *output.Printer {
	return output.New(w, a.format)
}

// CheckKind отсекает опечатки до обращения к серверу
func CheckKind(kind string) error {
	if !slices.Contains(Kinds, kind) {
		return fmt.Errorf("неизвестный вид записей %q, доступны: %s", kind, strings.Join(Kinds, ", "))
	}
	return nil
}

func (a *App) Health(ctx context.Context) (Health, error) {
	var h Health
	err := a.http.do(ctx, http.MethodGet, "/api/v1/health", nil, nil, &h)
	return h, err
}

func (a *App) Stats(ctx context.Context) (dashboard.Stats, error) {
	var s dashboard.Stats
	err := a.http.do(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil, nil, &s)
	return s, err
}

func (a *App) List(ctx context.Context, kind string, opts ListOptions) (listing.Page, error) {
	var p listing.Page
	if err := CheckKind(kind); err != nil {
		return p, err
	}
	err := a.http.do(ctx, http.MethodGet, "/api/v1/"+kind, opts.values(), nil, &p)
	return p, err
}

// Get возвращает запись как есть: у каждого вида своя схема
func (a *App) Get(ctx context.Context, kind, id string, reveal bool) (map[string]any, error) {
	if err := CheckKind(kind); err != nil {
		return nil, err
	}

	var q url.Values
	if reveal {
		q = url.Values{"reveal": {"true"}}
	}

	var rec map[string]any
	err := a.http.do(ctx, http.MethodGet, "/api/v1/"+kind+"/"+url.PathEscape(id), q, nil, &rec)
	return rec, err
}

func (a *App) Create(ctx context.Context, kind string, rec map[string]any) (Mutation, error) {
	var m Mutation
	if err := CheckKind(kind); err != nil {
		return m, err
	}
	err := a.http.do(ctx, http.MethodPost, "/api/v1/"+kind, nil, rec, &m)
	return m, err
}

func (a *App) Update(ctx context.Context, kind, id string, rec map[string]any) (Mutation, error) {
	var m Mutation
	if err := CheckKind(kind); err != nil {
		return m, err
	}
	err := a.http.do(ctx, http.MethodPut, "/api/v1/"+kind+"/"+url.PathEscape(id), nil, rec, &m)
	return m, err
}

func (a *App) Delete(ctx context.Context, kind, id string) (Mutation, error) {
	var m Mutation
	if err := CheckKind(kind); err != nil {
		return m, err
	}
	err := a.http.do(ctx, http.MethodDelete, "/api/v1/"+kind+"/"+url.PathEscape(id), nil, nil, &m)
	return m, err
}

func (a *App) Readme(ctx context.Context, projectID string, html bool) (Content, error) {
	return a.content(ctx, "/api/v1/projects/"+url.PathEscape(projectID)+"/readme", html)
}

func (a *App) Document(ctx context.Context, docID string, html bool) (Content, error) {
	return a.content(ctx, "/api/v1/docs/"+url.PathEscape(docID)+"/content", html)
}

func (a *App) content(ctx context.Context, path string, html bool) (Content, error) {
	q := url.Values{"format": {"markdown"}}
	if html {
		q.Set("format", "html")
	}

	var c Content
	err := a.http.do(ctx, http.MethodGet, path, q, nil, &c)
	return c, err
}

func (a *App) UpdateReadme(ctx context.Context, projectID, content string) (Mutation, error) {
	var m Mutation
	body := map[string]string{"content": content}
	err := a.http.do(ctx, http.MethodPut, "/api/v1/projects/"+url.PathEscape(projectID)+"/readme", nil, body, &m)
	return m, err
}

func (a *App) OpenView(ctx context.Context, kind string) (View, error) {
	var v View
	if err := CheckKind(kind); err != nil {
		return v, err
	}
	err := a.http.do(ctx, http.MethodPost, "/api/v1/views", nil, map[string]string{"kind": kind}, &v)
	return v, err
}

func (a *App) ShowView(ctx context.Context, id string) (listing.Page, error) {
	var p listing.Page
	err := a.http.do(ctx, http.MethodGet, "/api/v1/views/"+url.PathEscape(id), nil, nil, &p)
	return p, err
}

func (a *App) FilterView(ctx context.Context, id string, state listing.FilterState) (listing.Page, error) {
	var p listing.Page
	err := a.http.do(ctx, http.MethodPut, "/api/v1/views/"+url.PathEscape(id)+"/filter", nil, state, &p)
	return p, err
}

func (a *App) ToggleView(ctx context.Context, id, recordID string) (Toggle, error) {
	var t Toggle
	path := "/api/v1/views/" + url.PathEscape(id) + "/visibility/" + url.PathEscape(recordID)
	err := a.http.do(ctx, http.MethodPost, path, nil, nil, &t)
	return t, err
}

func (a *App) CloseView(ctx context.Context, id string) error {
	return a.http.do(ctx, http.MethodDelete, "/api/v1/views/"+url.PathEscape(id), nil, nil, nil)
}

// ReadRecord читает запись из YAML (JSON тоже подходит как подмножество YAML)
func ReadRecord(r io.Reader) (map[string]any, error) {
	var rec map[string]any
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("ошибка чтения записи: %w", err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("запись пуста")
	}
	return rec, nil
}

type appKey struct{}

// WithApp кладет клиент в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
