package listing

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All - значение-заглушка, отключающее категориальный фильтр
const All = "all"

// FilterState - текстовый запрос и выбранные значения категориальных измерений
type FilterState struct {
	Text       string            `json:"text,omitempty" yaml:"text,omitempty" doc:"Подстрока для поиска без учета регистра"`
	Categories map[string]string `json:"categories,omitempty" yaml:"categories,omitempty" doc:"Измерение -> точное значение или all"`
}

// active возвращает только измерения, которые действительно фильтруют
func (f FilterState) active() map[string]string {
	out := make(map[string]string, len(f.Categories))
	for name, value := range f.Categories {
		if value == "" || value == All {
			continue
		}
		out[name] = value
	}
	return out
}

// IsZero сообщает, что фильтр пропускает все записи
func (f FilterState) IsZero() bool {
	return f.Text == "" && len(f.active()) == 0
}

// ParseFilters разбирает пары вида "status:ongoing" или "role=admin"
func ParseFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		idx := strings.IndexAny(pair, ":=")
		if idx <= 0 {
			return nil, fmt.Errorf("%w: %q, expected dimension:value", ErrBadFilter, pair)
		}
		out[strings.TrimSpace(pair[:idx])] = strings.TrimSpace(pair[idx+1:])
	}
	return out, nil
}

func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

type predicate[T any] struct {
	kind  *Kind[T]
	text  string
	dims  []Dimension[T]
	wants []string
}

func newPredicate[T any](k *Kind[T], state FilterState) predicate[T] {
	p := predicate[T]{kind: k, text: fold(state.Text)}
	for name, value := range state.active() {
		d, ok := k.dimension(name)
		if !ok {
			// неизвестное измерение не может совпасть ни с одной записью
			d = Dimension[T]{Name: name, Value: func(T) string { return "" }}
		}
		p.dims = append(p.dims, d)
		p.wants = append(p.wants, value)
	}
	return p
}

func (p predicate[T]) match(rec T) bool {
	for i, d := range p.dims {
		if d.Value(rec) != p.wants[i] {
			return false
		}
	}

	if p.text == "" {
		return true
	}
	for _, field := range p.kind.Searchable(rec) {
		if strings.Contains(fold(field), p.text) {
			return true
		}
	}
	return false
}

// Match проверяет одну запись: текст совпадает с любым полем поиска
// И каждое активное измерение равно выбранному значению
func Match[T any](k *Kind[T], rec T, state FilterState) bool {
	return newPredicate(k, state).match(rec)
}

// Apply возвращает подпоследовательность records, сохраняя исходный порядок.
// Исходный срез не изменяется.
func Apply[T any](k *Kind[T], records []T, state FilterState) []T {
	p := newPredicate(k, state)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if p.match(rec) {
			out = append(out, rec)
		}
	}
	return out
}
