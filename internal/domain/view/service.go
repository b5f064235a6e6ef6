package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"devdash/internal/domain/listing"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"
)

var (
	ErrNotFound    = errors.New("view not found")
	ErrUnknownKind = errors.New("unknown resource kind")
)

// Session - состояние одного открытого представления списка:
// фильтр и множество раскрытых записей. Живет до закрытия или истечения TTL.
type Session struct {
	mu      sync.Mutex
	ID      string
	Kind    string
	filter  listing.FilterState
	visible *listing.VisibilitySet
}

type Servicer interface {
	Open(ctx context.Context, kind string) (string, error)
	Show(ctx context.Context, id string) (listing.Page, error)
	SetFilter(ctx context.Context, id string, state listing.FilterState) (listing.Page, error)
	Toggle(ctx context.Context, id, recordID string) (bool, error)
	Close(ctx context.Context, id string) error
}

type Service struct {
	viewers map[string]listing.Viewer
	cache   *cache.Cache
	log     *slog.Logger
}

func NewService(viewers []listing.Viewer, ttl time.Duration, log *slog.Logger) *Service {
	byKind := make(map[string]listing.Viewer, len(viewers))
	for _, v := range viewers {
		byKind[v.Kind()] = v
	}

	return &Service{
		viewers: byKind,
		cache:   cache.New(ttl, 2*ttl),
		log:     log.With("component", "view_service"),
	}
}

func (s *Service) Open(_ context.Context, kind string) (string, error) {
	if _, ok := s.viewers[kind]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	sess := &Session{
		ID:      uuid.NewString(),
		Kind:    kind,
		visible: listing.NewVisibilitySet(),
	}
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
	s.log.Debug("view opened", "view_id", sess.ID, "kind", kind)

	return sess.ID, nil
}

func (s *Service) Show(ctx context.Context, id string) (listing.Page, error) {
	sess, err := s.session(id)
	if err != nil {
		return listing.Page{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.viewers[sess.Kind].Page(ctx, sess.filter, sess.visible)
}

// SetFilter заменяет фильтр представления; неверный фильтр не сохраняется
func (s *Service) SetFilter(ctx context.Context, id string, state listing.FilterState) (listing.Page, error) {
	sess, err := s.session(id)
	if err != nil {
		return listing.Page{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	page, err := s.viewers[sess.Kind].Page(ctx, state, sess.visible)
	if err != nil {
		return listing.Page{}, err
	}
	sess.filter = state

	return page, nil
}

// Toggle принимает только идентификаторы, существующие в хранилище вида
func (s *Service) Toggle(ctx context.Context, id, recordID string) (bool, error) {
	sess, err := s.session(id)
	if err != nil {
		return false, err
	}

	ok, err := s.viewers[sess.Kind].Exists(ctx, recordID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("toggle %s: %w: %s", sess.Kind, listing.ErrNotFound, recordID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.visible.Toggle(recordID), nil
}

func (s *Service) Close(_ context.Context, id string) error {
	if _, err := s.session(id); err != nil {
		return err
	}
	s.cache.Delete(id)
	s.log.Debug("view closed", "view_id", id)
	return nil
}

// session продлевает TTL при каждом обращении
func (s *Service) session(id string) (*Session, error) {
	v, found := s.cache.Get(id)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess := v.(*Session)
	s.cache.Set(id, sess, cache.DefaultExpiration)
	return sess, nil
}
