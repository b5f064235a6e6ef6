package listing

// Action - доступное над карточкой действие
type Action string

const (
	ActionView   Action = "view"
	ActionCopy   Action = "copy"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

type Badge struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
	Tone      Tone   `json:"tone"`
}

type CardField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Masked bool   `json:"masked,omitempty"`
}

// Card - отображаемое представление одной записи
type Card struct {
	Key         string      `json:"key"`
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
	Badges      []Badge     `json:"badges"`
	Fields      []CardField `json:"fields,omitempty"`
	Actions     []Action    `json:"actions"`
}

// Render проецирует отфильтрованные записи в карточки. Чистая функция от входа.
func Render[T any](k *Kind[T], records []T, visible *VisibilitySet) []Card {
	cards := make([]Card, 0, len(records))
	for _, rec := range records {
		cards = append(cards, renderCard(k, rec, visible))
	}
	return cards
}

func renderCard[T any](k *Kind[T], rec T, visible *VisibilitySet) Card {
	id := k.ID(rec)
	card := Card{
		Key:     k.Name + ":" + id,
		ID:      id,
		Label:   k.Label(rec),
		Badges:  make([]Badge, 0, len(k.Dimensions)),
		Actions: actions(k.capabilities(rec)),
	}
	if k.Description != nil {
		card.Description = k.Description(rec)
	}

	for _, d := range k.Dimensions {
		value := d.Value(rec)
		if value == "" {
			continue
		}
		card.Badges = append(card.Badges, Badge{Dimension: d.Name, Value: value, Tone: d.tone(value)})
	}

	if k.Fields != nil {
		for _, f := range k.Fields(rec) {
			cf := CardField{Name: f.Name, Value: f.Value}
			if f.Sensitive && !visible.IsVisible(id) {
				cf.Value = Mask(f.Value)
				cf.Masked = true
			}
			card.Fields = append(card.Fields, cf)
		}
	}

	return card
}

func actions(c Capabilities) []Action {
	out := make([]Action, 0, 4)
	if c.View {
		out = append(out, ActionView)
	}
	if c.Copy {
		out = append(out, ActionCopy)
	}
	if c.Edit {
		out = append(out, ActionEdit)
	}
	if c.Remove {
		out = append(out, ActionDelete)
	}
	return out
}

// HasAction - удобная проверка для вызывающего кода и тестов
func (c Card) HasAction(a Action) bool {
	for _, have := range c.Actions {
		if have == a {
			return true
		}
	}
	return false
}
