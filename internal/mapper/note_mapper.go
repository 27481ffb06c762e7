package mapper

import (
	"notes-api-be/internal/dto"
	"notes-api-be/internal/entity"
	"notes-api-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:        n.Id,
		Content:   n.Content,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:        n.Id,
		Content:   n.Content,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) ToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}
	return &dto.NoteResponse{
		Id:        n.Id,
		Content:   n.Content,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NoteMapper) ToResponses(notes []*entity.Note) []*dto.NoteResponse {
	responses := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = m.ToResponse(n)
	}
	return responses
}

// PartialUpdate copies onto note only the fields actually present in the
// patch. Id, owner and creation timestamp are never touched here; a null
// content must have been rejected in validation before this point, so a
// present-but-null field is ignored rather than cleared.
func (m *NoteMapper) PartialUpdate(note *entity.Note, patch *dto.NotePatchRequest) {
	if note == nil || patch == nil {
		return
	}
	if patch.Content.Set && patch.Content.Valid {
		note.Content = patch.Content.Value
	}
}
