package content

import "devdash/internal/utils/markdown"

type readInput struct {
	ID     string          `path:"id" example:"1" doc:"ID записи"`
	Format markdown.Format `query:"format" enum:"markdown,html" default:"markdown" doc:"markdown - исходник, html - отрендеренный GFM"`
}

type readOutput struct {
	Body contentResponse
}

type contentResponse struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Format  markdown.Format `json:"format"`
	Content string          `json:"content"`
}

type writeInput struct {
	ID   string `path:"id" example:"1" doc:"ID проекта"`
	Body writeRequest
}

type writeRequest struct {
	Content string `json:"content" doc:"Новый README в markdown"`
}

type writeOutput struct {
	Body writeResponse
}

type writeResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status" example:"Ok"`
	Persisted bool   `json:"persisted"`
}
