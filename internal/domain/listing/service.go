package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Mode - режим обработки мутаций
type Mode string

const (
	// ModeStub принимает и подтверждает мутации, но не пишет в хранилище
	ModeStub Mode = "stub"
	// ModePersist записывает мутации в хранилище
	ModePersist Mode = "persist"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeStub:
		return ModeStub, nil
	case ModePersist:
		return ModePersist, nil
	}
	return "", fmt.Errorf("unknown mutation mode %q", s)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Page - результат одного прохода store -> filter -> renderer
type Page struct {
	Kind     string       `json:"kind"`
	Filter   FilterState  `json:"filter"`
	Total    int          `json:"total"`
	Matched  int          `json:"matched"`
	Items    []Card       `json:"items"`
	Empty    *EmptyNotice `json:"empty,omitempty"`
	Revealed []string     `json:"revealed,omitempty"`
}

// Result - подтверждение мутации
type Result struct {
	ID        string `json:"id"`
	Persisted bool   `json:"persisted"`
}

// Viewer - вид записей без параметра типа, нужен сессиям представлений и статистике
type Viewer interface {
	Kind() string
	Page(ctx context.Context, state FilterState, visible *VisibilitySet) (Page, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Service - обобщенное представление списка для одного вида записей
type Service[T any] struct {
	kind  *Kind[T]
	store Store[T]
	mode  Mode
	newID func() string
	log   *slog.Logger
}

func NewService[T any](kind *Kind[T], store Store[T], mode Mode, log *slog.Logger) *Service[T] {
	return &Service[T]{
		kind:  kind,
		store: store,
		mode:  mode,
		newID: uuid.NewString,
		log:   log.With("component", kind.Name+"_service"),
	}
}

func (s *Service[T]) Kind() string {
	return s.kind.Name
}

func (s *Service[T]) Descriptor() *Kind[T] {
	return s.kind
}

func (s *Service[T]) Mode() Mode {
	return s.mode
}

// List возвращает отфильтрованные записи без рендеринга
func (s *Service[T]) List(ctx context.Context, state FilterState) ([]T, error) {
	if err := s.kind.ValidateFilter(state); err != nil {
		return nil, err
	}

	all, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list %s: %w", s.kind.Name, err)
	}
	return Apply(s.kind, all, state), nil
}

func (s *Service[T]) Page(ctx context.Context, state FilterState, visible *VisibilitySet) (Page, error) {
	if err := s.kind.ValidateFilter(state); err != nil {
		return Page{}, err
	}

	all, err := s.store.List(ctx)
	if err != nil {
		s.log.Error("failed to list records", "error", err)
		return Page{}, fmt.Errorf("list %s: %w", s.kind.Name, err)
	}

	matched := Apply(s.kind, all, state)
	empty := DecideEmpty(len(all), len(matched))

	return Page{
		Kind:     s.kind.Name,
		Filter:   state,
		Total:    len(all),
		Matched:  len(matched),
		Items:    Render(s.kind, matched, visible),
		Empty:    s.kind.Notice(empty),
		Revealed: visible.IDs(),
	}, nil
}

// Get возвращает запись; чувствительные поля маскируются, если reveal = false
func (s *Service[T]) Get(ctx context.Context, id string, reveal bool) (T, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to get record", "id", id, "error", err)
		}
		var zero T
		return zero, fmt.Errorf("get %s: %w", s.kind.Noun, err)
	}

	if !reveal && s.kind.Mask != nil {
		rec = s.kind.Mask(rec)
	}
	return rec, nil
}

func (s *Service[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.store.Get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("lookup %s: %w", s.kind.Noun, err)
	}
}

// Visible строит множество раскрытых записей, отбрасывая идентификаторы,
// которых нет в хранилище
func (s *Service[T]) Visible(ctx context.Context, ids []string) (*VisibilitySet, error) {
	if len(ids) == 0 {
		return NewVisibilitySet(), nil
	}

	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind.Name, err)
	}
	known := make(map[string]struct{}, len(all))
	for _, rec := range all {
		known[s.kind.ID(rec)] = struct{}{}
	}

	visible := NewVisibilitySet()
	for _, id := range ids {
		if _, ok := known[id]; ok && !visible.IsVisible(id) {
			visible.Toggle(id)
		}
	}
	return visible, nil
}

func (s *Service[T]) Create(ctx context.Context, rec T) (Result, error) {
	id := s.kind.ID(rec)
	if id == "" {
		id = s.newID()
		rec = s.kind.WithID(rec, id)
	}

	if err := validateRecord(rec); err != nil {
		return Result{}, err
	}

	exists, err := s.Exists(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if exists {
		return Result{}, fmt.Errorf("create %s: %w: %s", s.kind.Noun, ErrDuplicateID, id)
	}

	if s.mode == ModeStub {
		s.log.Info("create accepted without persisting", "id", id)
		return Result{ID: id}, nil
	}

	if _, err := s.store.Create(ctx, rec); err != nil {
		s.log.Error("failed to create record", "id", id, "error", err)
		return Result{}, fmt.Errorf("create %s: %w", s.kind.Noun, err)
	}

	s.log.Info("record created", "id", id)
	return Result{ID: id, Persisted: true}, nil
}

// Update заменяет запись целиком; идентификатор берется из id, а не из тела
func (s *Service[T]) Update(ctx context.Context, id string, rec T) (Result, error) {
	rec = s.kind.WithID(rec, id)
	if err := validateRecord(rec); err != nil {
		return Result{}, err
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("update %s: %w", s.kind.Noun, err)
	}
	if !s.kind.capabilities(current).Edit {
		return Result{}, fmt.Errorf("update %s %s: %w", s.kind.Noun, id, ErrProtected)
	}

	if s.mode == ModeStub {
		s.log.Info("update accepted without persisting", "id", id)
		return Result{ID: id}, nil
	}

	if _, err := s.store.Update(ctx, rec); err != nil {
		s.log.Error("failed to update record", "id", id, "error", err)
		return Result{}, fmt.Errorf("update %s: %w", s.kind.Noun, err)
	}

	s.log.Info("record updated", "id", id)
	return Result{ID: id, Persisted: true}, nil
}

func (s *Service[T]) Remove(ctx context.Context, id string) (Result, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("remove %s: %w", s.kind.Noun, err)
	}
	if !s.kind.capabilities(current).Remove {
		return Result{}, fmt.Errorf("remove %s %s: %w", s.kind.Noun, id, ErrProtected)
	}

	if s.mode == ModeStub {
		s.log.Info("remove accepted without persisting", "id", id)
		return Result{ID: id}, nil
	}

	if err := s.store.Remove(ctx, id); err != nil {
		s.log.Error("failed to remove record", "id", id, "error", err)
		return Result{}, fmt.Errorf("remove %s: %w", s.kind.Noun, err)
	}

	s.log.Info("record removed", "id", id)
	return Result{ID: id, Persisted: true}, nil
}

func validateRecord(rec any) error {
	if err := validate.Struct(rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
