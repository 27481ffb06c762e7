package dto

import "time"

// NoteRequest is the body for create and replace. Id stays a pointer: create
// must reject a body that carries one, replace must require it.
type NoteRequest struct {
	Id      *int64 `json:"id"`
	Content string `json:"content" validate:"required,min=1,max=3000"`
}

// NotePatchRequest is the sparse body for partial update. Only content is
// client-mutable; id is carried for the path/body match check.
type NotePatchRequest struct {
	Id      *int64         `json:"id"`
	Content OptionalString `json:"content"`
}

type NoteResponse struct {
	Id        int64     `json:"id"`
	Content   string    `json:"content"`
	UserId    *int64    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteListResponse struct {
	Items []*NoteResponse `json:"items"`
	Total int64           `json:"total"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
