package listing

import "fmt"

// Tone - визуальный оттенок бейджа
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneDanger  Tone = "danger"
	ToneAccent  Tone = "accent"
)

// Dimension - категориальное измерение вида записей (status, role, language...)
type Dimension[T any] struct {
	Name  string
	Value func(T) string
	// Tones задает оттенок бейджа для известных значений, остальные получают ToneNeutral
	Tones map[string]Tone
}

func (d Dimension[T]) tone(value string) Tone {
	if t, ok := d.Tones[value]; ok {
		return t
	}
	return ToneNeutral
}

// Field - поле карточки. Sensitive поля маскируются, пока не раскрыты.
type Field struct {
	Name      string
	Value     string
	Sensitive bool
}

// Capabilities - набор разрешенных действий над конкретной записью
type Capabilities struct {
	View   bool
	Copy   bool
	Edit   bool
	Remove bool
}

// DefaultCapabilities разрешает просмотр, редактирование и удаление
var DefaultCapabilities = Capabilities{View: true, Edit: true, Remove: true}

// Kind описывает вид записей: как извлечь идентификатор, подпись, поля поиска,
// категориальные измерения и поля карточки. Один Kind на каждый вид ресурса.
type Kind[T any] struct {
	Name string // множественное имя, используется в маршрутах: "projects"
	Noun string // единственное число для сообщений: "project"

	ID          func(T) string
	WithID      func(T, string) T
	Label       func(T) string
	Description func(T) string
	Searchable  func(T) []string
	Dimensions  []Dimension[T]
	Fields      func(T) []Field

	// Capabilities может быть nil, тогда действуют DefaultCapabilities
	Capabilities func(T) Capabilities
	// Mask скрывает чувствительное содержимое записи при выдаче одной записи
	Mask func(T) T
}

func (k *Kind[T]) dimension(name string) (Dimension[T], bool) {
	for _, d := range k.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension[T]{}, false
}

// DimensionNames возвращает имена измерений в порядке объявления
func (k *Kind[T]) DimensionNames() []string {
	names := make([]string, len(k.Dimensions))
	for i, d := range k.Dimensions {
		names[i] = d.Name
	}
	return names
}

func (k *Kind[T]) capabilities(rec T) Capabilities {
	if k.Capabilities == nil {
		return DefaultCapabilities
	}
	return k.Capabilities(rec)
}

// ValidateFilter проверяет, что все измерения фильтра известны виду
func (k *Kind[T]) ValidateFilter(state FilterState) error {
	for name := range state.Categories {
		if _, ok := k.dimension(name); !ok {
			return fmt.Errorf("%w: %s has no dimension %q", ErrUnknownDimension, k.Name, name)
		}
	}
	return nil
}
