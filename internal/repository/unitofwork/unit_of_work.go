package unitofwork

import (
	"context"

	"notes-api-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	UserRepository() contract.UserRepository
}
