package listing

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MaskRune     = "•"
	MaxMaskWidth = 20
)

// Mask заменяет значение строкой из точек длиной min(len(value), MaxMaskWidth)
func Mask(value string) string {
	n := utf8.RuneCountInString(value)
	if n > MaxMaskWidth {
		n = MaxMaskWidth
	}
	return strings.Repeat(MaskRune, n)
}

// VisibilitySet - множество раскрытых идентификаторов одного представления списка.
// Нулевой указатель означает "ничего не раскрыто".
type VisibilitySet struct {
	revealed map[string]struct{}
}

func NewVisibilitySet(ids ...string) *VisibilitySet {
	v := &VisibilitySet{revealed: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id != "" {
			v.revealed[id] = struct{}{}
		}
	}
	return v
}

// Toggle переключает видимость id и возвращает новое состояние
func (v *VisibilitySet) Toggle(id string) bool {
	if v.revealed == nil {
		v.revealed = make(map[string]struct{})
	}
	if _, ok := v.revealed[id]; ok {
		delete(v.revealed, id)
		return false
	}
	v.revealed[id] = struct{}{}
	return true
}

func (v *VisibilitySet) IsVisible(id string) bool {
	if v == nil {
		return false
	}
	_, ok := v.revealed[id]
	return ok
}

// IDs возвращает раскрытые идентификаторы в отсортированном виде
func (v *VisibilitySet) IDs() []string {
	if v == nil {
		return nil
	}
	ids := make([]string, 0, len(v.revealed))
	for id := range v.revealed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
