package listing

import "fmt"

// EmptyState - состояние пустого списка
type EmptyState string

const (
	EmptyNone    EmptyState = ""
	EmptyNoData  EmptyState = "no_data"
	EmptyNoMatch EmptyState = "no_match"
)

// DecideEmpty пересчитывается на каждой фильтрации и не хранит состояние.
// Пустое хранилище всегда дает EmptyNoData, независимо от запроса.
func DecideEmpty(total, matched int) EmptyState {
	switch {
	case total == 0:
		return EmptyNoData
	case matched == 0:
		return EmptyNoMatch
	default:
		return EmptyNone
	}
}

// EmptyNotice - сообщение и призыв к действию для пустого списка
type EmptyNotice struct {
	State   EmptyState `json:"state"`
	Message string     `json:"message"`
	Action  string     `json:"action"`
}

// Notice возвращает nil, если список не пуст
func (k *Kind[T]) Notice(state EmptyState) *EmptyNotice {
	switch state {
	case EmptyNoData:
		return &EmptyNotice{
			State:   state,
			Message: fmt.Sprintf("No %s yet", k.Name),
			Action:  fmt.Sprintf("Create your first %s", k.Noun),
		}
	case EmptyNoMatch:
		return &EmptyNotice{
			State:   state,
			Message: fmt.Sprintf("No %s match your search", k.Name),
			Action:  "Clear the search and filters",
		}
	default:
		return nil
	}
}
