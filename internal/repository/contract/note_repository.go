package contract

import (
	"context"

	"notes-api-be/internal/entity"
	"notes-api-be/internal/repository/specification"
)

type NoteRepository interface {
	// Create persists a new note and assigns its id.
	Create(ctx context.Context, note *entity.Note) error
	// Save writes an already-identified note back.
	Save(ctx context.Context, note *entity.Note) error
	// Delete removes by id; deleting an absent id is a no-op. The bool reports
	// whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// FindOne returns nil without error when no row matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
