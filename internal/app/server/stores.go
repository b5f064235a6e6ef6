package server

import (
	"context"
	"fmt"

	"devdash/internal/app/server/config"
	"devdash/internal/app/server/crypto"
	"devdash/internal/domain/listing"
	"devdash/internal/domain/secret"
	"devdash/internal/infrastructure/storage"
	"devdash/internal/infrastructure/storage/postgres"
	"devdash/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// backend - открытое хранилище, общее для всех видов записей
type backend struct {
	name   string
	sqlite *sqlite.DB
	pg     *postgres.Storage
	sealer *crypto.Sealer
	log    *slog.Logger
}

func openBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*backend, error) {
	b := &backend{name: cfg.DB.Storage, log: log}

	switch cfg.DB.Storage {
	case config.StorageMemory:
		return b, nil
	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		b.sqlite = db
	case config.StoragePostgres:
		pg, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		b.pg = pg
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.DB.Storage)
	}

	sealer, err := crypto.NewSealer(cfg.Secret)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("create sealer: %w", err)
	}
	b.sealer = sealer

	return b, nil
}

func (b *backend) Ping(ctx context.Context) error {
	switch {
	case b.sqlite != nil:
		return b.sqlite.Ping(ctx)
	case b.pg != nil:
		return b.pg.Ping(ctx)
	}
	return nil
}

// pinger возвращает nil для памяти, чтобы проверка здоровья не ходила в хранилище
func (b *backend) pinger() interface{ Ping(context.Context) error } {
	if b.sqlite == nil && b.pg == nil {
		return nil
	}
	return b
}

func (b *backend) Close() error {
	switch {
	case b.sqlite != nil:
		return b.sqlite.Close()
	case b.pg != nil:
		return b.pg.Close()
	}
	return nil
}

// seeder - хранилище, которое умеет дозаполниться начальными данными
type seeder[T any] interface {
	listing.Store[T]
	Seed(ctx context.Context, recs []T) error
}

func openStore[T any](ctx context.Context, b *backend, k *listing.Kind[T], codec storage.Codec[T], seed []T) (listing.Store[T], error) {
	var s seeder[T]

	switch {
	case b.sqlite != nil:
		s = sqlite.NewStore(b.sqlite, k.Name, k.ID, codec, b.log)
	case b.pg != nil:
		s = postgres.NewStore(b.pg.Pool(), k.Name, k.ID, codec, b.log)
	default:
		return listing.NewMemoryStore(k.ID, seed), nil
	}

	if err := s.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed %s: %w", k.Name, err)
	}
	return s, nil
}

func jsonCodec[T any]() storage.Codec[T] {
	return storage.JSONCodec[T]{}
}

// secretCodec шифрует значения переменных окружения в SQL хранилищах
func secretCodec(b *backend) storage.Codec[secret.Secret] {
	if b.sealer == nil {
		return storage.JSONCodec[secret.Secret]{}
	}
	return storage.NewSealedCodec(b.sealer,
		func(s secret.Secret) string { return s.Value },
		func(s secret.Secret, v string) secret.Secret {
			s.Value = v
			return s
		},
	)
}
