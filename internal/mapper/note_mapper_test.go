package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"notes-api-be/internal/dto"
	"notes-api-be/internal/entity"
)

func TestPartialUpdate(t *testing.T) {
	owner := int64(7)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	base := func() *entity.Note {
		return &entity.Note{
			Id:        1,
			Content:   "original",
			UserId:    &owner,
			CreatedAt: created,
		}
	}

	m := NewNoteMapper()

	t.Run("absent content leaves entity untouched", func(t *testing.T) {
		note := base()
		m.PartialUpdate(note, &dto.NotePatchRequest{})
		assert.Equal(t, *base(), *note)
	})

	t.Run("present content overwrites", func(t *testing.T) {
		note := base()
		m.PartialUpdate(note, &dto.NotePatchRequest{
			Content: dto.OptionalString{Set: true, Valid: true, Value: "patched"},
		})
		assert.Equal(t, "patched", note.Content)
	})

	t.Run("null content is ignored, not cleared", func(t *testing.T) {
		note := base()
		m.PartialUpdate(note, &dto.NotePatchRequest{
			Content: dto.OptionalString{Set: true, Valid: false},
		})
		assert.Equal(t, "original", note.Content)
	})

	t.Run("immutable fields never touched", func(t *testing.T) {
		note := base()
		m.PartialUpdate(note, &dto.NotePatchRequest{
			Content: dto.OptionalString{Set: true, Valid: true, Value: "patched"},
		})
		assert.Equal(t, int64(1), note.Id)
		assert.Equal(t, &owner, note.UserId)
		assert.Equal(t, created, note.CreatedAt)
	})

	t.Run("idempotent", func(t *testing.T) {
		note := base()
		patch := &dto.NotePatchRequest{
			Content: dto.OptionalString{Set: true, Valid: true, Value: "patched"},
		}
		m.PartialUpdate(note, patch)
		first := *note
		m.PartialUpdate(note, patch)
		assert.Equal(t, first, *note)
	})
}

func TestModelEntityRoundTrip(t *testing.T) {
	m := NewNoteMapper()
	owner := int64(9)
	note := &entity.Note{
		Id:        3,
		Content:   "hello",
		UserId:    &owner,
		CreatedAt: time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, note, m.ToEntity(m.ToModel(note)))
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestToResponse(t *testing.T) {
	m := NewNoteMapper()
	note := &entity.Note{Id: 3, Content: "hello"}

	res := m.ToResponse(note)
	assert.Equal(t, int64(3), res.Id)
	assert.Equal(t, "hello", res.Content)
	assert.Nil(t, res.UserId)

	assert.Len(t, m.ToResponses([]*entity.Note{note, note}), 2)
}
