package listing

import (
	"context"
	"fmt"
	"sync"
)

// Store - хранилище записей одного вида. Реализации: память, sqlite, postgres.
// Порядок List совпадает с порядком создания записей.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Remove(ctx context.Context, id string) error
}

// MemoryStore хранит записи в памяти процесса. Удаленные идентификаторы
// запоминаются и повторно не выдаются.
type MemoryStore[T any] struct {
	mu    sync.RWMutex
	id    func(T) string
	items []T
	used  map[string]struct{}
}

func NewMemoryStore[T any](id func(T) string, seed []T) *MemoryStore[T] {
	s := &MemoryStore[T]{
		id:    id,
		items: make([]T, 0, len(seed)),
		used:  make(map[string]struct{}, len(seed)),
	}
	for _, rec := range seed {
		if _, dup := s.used[id(rec)]; dup {
			continue
		}
		s.used[id(rec)] = struct{}{}
		s.items = append(s.items, rec)
	}
	return s
}

func (s *MemoryStore[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.items[i], nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *MemoryStore[T]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(rec)
	if _, ok := s.used[id]; ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	s.used[id] = struct{}{}
	s.items = append(s.items, rec)
	return rec, nil
}

func (s *MemoryStore[T]) Update(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(rec)
	i := s.index(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.items[i] = rec
	return rec, nil
}

func (s *MemoryStore[T]) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// index вызывается под блокировкой
func (s *MemoryStore[T]) index(id string) int {
	for i, rec := range s.items {
		if s.id(rec) == id {
			return i
		}
	}
	return -1
}
