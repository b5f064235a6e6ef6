package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"devdash/internal/domain/listing"
	"devdash/internal/infrastructure/storage"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

type DB struct {
	db *sql.DB
}

func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite сериализует запись, одно соединение исключает SQLITE_BUSY
	db.SetMaxOpenConns(1)

	d := &DB{db: db}
	if err := d.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return d, nil
}

func (d *DB) initTables() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS resources (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			PRIMARY KEY (kind, id)
		);

		CREATE INDEX IF NOT EXISTS idx_resources_kind ON resources(kind, deleted_at);
	`)

	return err
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Store - хранилище одного вида записей в общей таблице resources.
// Удаление мягкое: строка остается, поэтому идентификатор не переиспользуется.
type Store[T any] struct {
	db    *sql.DB
	kind  string
	id    func(T) string
	codec storage.Codec[T]
	log   *slog.Logger
}

func NewStore[T any](d *DB, kind string, id func(T) string, codec storage.Codec[T], log *slog.Logger) *Store[T] {
	return &Store[T]{
		db:    d.db,
		kind:  kind,
		id:    id,
		codec: codec,
		log:   log.With("component", "sqlite_store", "kind", kind),
	}
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM resources
		WHERE kind = ? AND deleted_at IS NULL
		ORDER BY rowid`, s.kind)
	if err != nil {
		s.log.Error("failed to list resources", "error", err)
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		rec, err := s.codec.Decode([]byte(payload))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var (
		zero    T
		payload string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM resources
		WHERE kind = ? AND id = ? AND deleted_at IS NULL`, s.kind, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%w: %s", listing.ErrNotFound, id)
	}
	if err != nil {
		s.log.Error("failed to get resource", "id", id, "error", err)
		return zero, fmt.Errorf("get resource: %w", err)
	}

	return s.codec.Decode([]byte(payload))
}

func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	inserted, err := s.insert(ctx, rec)
	if err != nil {
		return zero, err
	}
	if !inserted {
		return zero, fmt.Errorf("%w: %s", listing.ErrDuplicateID, s.id(rec))
	}

	return rec, nil
}

func (s *Store[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T

	payload, err := s.codec.Encode(rec)
	if err != nil {
		return zero, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE resources SET payload = ?, updated_at = ?
		WHERE kind = ? AND id = ? AND deleted_at IS NULL`,
		string(payload), time.Now().UTC(), s.kind, s.id(rec))
	if err != nil {
		s.log.Error("failed to update resource", "id", s.id(rec), "error", err)
		return zero, fmt.Errorf("update resource: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return zero, fmt.Errorf("%w: %s", listing.ErrNotFound, s.id(rec))
	}

	return rec, nil
}

func (s *Store[T]) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE resources SET deleted_at = ?
		WHERE kind = ? AND id = ? AND deleted_at IS NULL`,
		time.Now().UTC(), s.kind, id)
	if err != nil {
		s.log.Error("failed to remove resource", "id", id, "error", err)
		return fmt.Errorf("remove resource: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", listing.ErrNotFound, id)
	}

	return nil
}

// Seed добавляет записи, которых еще нет в таблице. Повторный запуск ничего не меняет.
func (s *Store[T]) Seed(ctx context.Context, recs []T) error {
	added := 0
	for _, rec := range recs {
		inserted, err := s.insert(ctx, rec)
		if err != nil {
			return err
		}
		if inserted {
			added++
		}
	}
	s.log.Debug("seeded", "added", added, "total", len(recs))

	return nil
}

func (s *Store[T]) insert(ctx context.Context, rec T) (bool, error) {
	payload, err := s.codec.Encode(rec)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO resources (kind, id, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.kind, s.id(rec), string(payload), now, now)
	if err != nil {
		s.log.Error("failed to insert resource", "id", s.id(rec), "error", err)
		return false, fmt.Errorf("insert resource: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert resource: %w", err)
	}

	return n > 0, nil
}
