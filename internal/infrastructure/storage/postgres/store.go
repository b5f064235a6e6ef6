package postgres

import (
	"context"
	"errors"
	"fmt"

	"devdash/internal/domain/listing"
	"devdash/internal/infrastructure/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slog"
)

// querier - общая часть pgxpool.Pool и pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store хранит записи одного вида в таблице resources.
// Порядок задается колонкой position, удаление мягкое.
type Store[T any] struct {
	db    querier
	kind  string
	id    func(T) string
	codec storage.Codec[T]
	log   *slog.Logger
}

func NewStore[T any](db querier, kind string, id func(T) string, codec storage.Codec[T], log *slog.Logger) *Store[T] {
	return &Store[T]{
		db:    db,
		kind:  kind,
		id:    id,
		codec: codec,
		log:   log.With("component", "postgres_store", "kind", kind),
	}
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	const query = `
		SELECT payload FROM resources
		WHERE kind = $1 AND deleted_at IS NULL
		ORDER BY position`

	rows, err := s.db.Query(ctx, query, s.kind)
	if err != nil {
		s.log.Error("failed to list resources", "error", err)
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		rec, err := s.codec.Decode(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	const query = `
		SELECT payload FROM resources
		WHERE kind = $1 AND id = $2 AND deleted_at IS NULL`

	var (
		zero    T
		payload []byte
	)
	err := s.db.QueryRow(ctx, query, s.kind, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, fmt.Errorf("%w: %s", listing.ErrNotFound, id)
	}
	if err != nil {
		s.log.Error("failed to get resource", "id", id, "error", err)
		return zero, fmt.Errorf("get resource: %w", err)
	}

	return s.codec.Decode(payload)
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
	const query = `
		UPDATE resources SET payload = $3, updated_at = now()
		WHERE kind = $1 AND id = $2 AND deleted_at IS NULL`

	var zero T
	payload, err := s.codec.Encode(rec)
	if err != nil {
		return zero, err
	}

	tag, err := s.db.Exec(ctx, query, s.kind, s.id(rec), payload)
	if err != nil {
		s.log.Error("failed to update resource", "id", s.id(rec), "error", err)
		return zero, fmt.Errorf("update resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return zero, fmt.Errorf("%w: %s", listing.ErrNotFound, s.id(rec))
	}

	return rec, nil
}

func (s *Store[T]) Remove(ctx context.Context, id string) error {
	const query = `
		UPDATE resources SET deleted_at = now()
		WHERE kind = $1 AND id = $2 AND deleted_at IS NULL`

	tag, err := s.db.Exec(ctx, query, s.kind, id)
	if err != nil {
		s.log.Error("failed to remove resource", "id", id, "error", err)
		return fmt.Errorf("remove resource: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", listing.ErrNotFound, id)
	}

	return nil
}

// Seed добавляет отсутствующие записи, существующие и удаленные не трогает
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
	const query = `
		INSERT INTO resources (kind, id, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (kind, id) DO NOTHING`

	payload, err := s.codec.Encode(rec)
	if err != nil {
		return false, err
	}

	tag, err := s.db.Exec(ctx, query, s.kind, s.id(rec), payload)
	if err != nil {
		s.log.Error("failed to insert resource", "id", s.id(rec), "error", err)
		return false, fmt.Errorf("insert resource: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
