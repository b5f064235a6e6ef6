package resource

import "devdash/internal/domain/listing"

type listInput struct {
	Query  string   `query:"q" doc:"Подстрока для поиска без учета регистра"`
	Filter []string `query:"filter" doc:"Категориальные фильтры dimension:value через запятую, значение all отключает фильтр"`
	Reveal []string `query:"reveal" doc:"Идентификаторы записей, чьи скрытые поля нужно показать"`
}

type listOutput struct {
	Body listing.Page
}

type findInput struct {
	ID     string `path:"id" example:"1" doc:"ID записи"`
	Reveal bool   `query:"reveal" doc:"Показать скрытые поля"`
}

type findOutput[T any] struct {
	Body T
}

type createInput[T any] struct {
	Body T
}

type updateInput[T any] struct {
	ID   string `path:"id" example:"1" doc:"ID записи"`
	Body T
}

type deleteInput struct {
	ID string `path:"id" example:"1" doc:"ID записи"`
}

type output struct {
	Body mutationResponse
}

type mutationResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status" example:"Ok"`
	Persisted bool   `json:"persisted" doc:"false, если сервер работает в режиме stub и хранилище не изменилось"`
}
