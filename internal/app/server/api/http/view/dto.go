package view

import "devdash/internal/domain/listing"

type openInput struct {
	Body openRequest
}

type openRequest struct {
	Kind string `json:"kind" example:"secrets" doc:"Вид записей: projects, snippets, secrets, files, team, docs, archives"`
}

type openOutput struct {
	Body openResponse
}

type openResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

type viewInput struct {
	ID string `path:"id" doc:"ID представления"`
}

type filterInput struct {
	ID   string `path:"id" doc:"ID представления"`
	Body listing.FilterState
}

type pageOutput struct {
	Body listing.Page
}

type toggleInput struct {
	ID       string `path:"id" doc:"ID представления"`
	RecordID string `path:"recordID" doc:"ID записи"`
}

type toggleOutput struct {
	Body toggleResponse
}

type toggleResponse struct {
	RecordID string `json:"record_id"`
	Visible  bool   `json:"visible"`
}
