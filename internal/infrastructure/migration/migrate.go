package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"golang.org/x/exp/slog"
)

// Migrator - часть migrate.Migrate, которой пользуется Runner
type Migrator interface {
	Up() error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

// Engine открывает мигратор по каталогу схемы и строке подключения
type Engine func(sourceURL, databaseURL string) (Migrator, error)

func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Runner приводит схему таблицы resources к последней версии
type Runner struct {
	dir    string
	dsn    string
	engine Engine
	log    *slog.Logger
}

func NewRunner(dir, dsn string, engine Engine, log *slog.Logger) *Runner {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Runner{
		dir:    dir,
		dsn:    dsn,
		engine: engine,
		log:    log.With("component", "migration"),
	}
}

// Up применяет недостающие миграции и возвращает итоговую версию схемы
func (r *Runner) Up() (version uint, err error) {
	m, err := r.engine("file://"+r.dir, r.dsn)
	if err != nil {
		return 0, fmt.Errorf("open migrations %s: %w", r.dir, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		r.log.Debug("schema is up to date")
	case err != nil:
		return 0, fmt.Errorf("migration up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	r.log.Info("schema migrated", "version", version)
	return version, nil
}
