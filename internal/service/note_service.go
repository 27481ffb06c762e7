package service

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"notes-api-be/internal/criteria"
	"notes-api-be/internal/dto"
	"notes-api-be/internal/entity"
	"notes-api-be/internal/mapper"
	"notes-api-be/internal/pkg/apperror"
	"notes-api-be/internal/pkg/logger"
	"notes-api-be/internal/repository/specification"
	"notes-api-be/internal/repository/unitofwork"
	"notes-api-be/pkg/events"
)

type INoteService interface {
	Create(ctx context.Context, ownerID *int64, req *dto.NoteRequest) (*dto.NoteResponse, error)
	Replace(ctx context.Context, ownerID *int64, id int64, req *dto.NoteRequest) (*dto.NoteResponse, error)
	PartialUpdate(ctx context.Context, ownerID *int64, id int64, patch *dto.NotePatchRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, id int64) (*dto.NoteResponse, error)
	List(ctx context.Context, ownerID *int64, c *criteria.NoteCriteria, page dto.Pageable) (*dto.NoteListResponse, error)
	Count(ctx context.Context, ownerID *int64, c *criteria.NoteCriteria) (int64, error)
	Delete(ctx context.Context, ownerID *int64, id int64) error
}

// sortColumns is the whitelist of sortable properties; anything else in a sort
// parameter is an invalid argument.
var sortColumns = map[string]string{
	"id":        "notes.id",
	"content":   "notes.content",
	"createdAt": "notes.created_at",
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	mapper           *mapper.NoteMapper
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		mapper:           mapper.NewNoteMapper(),
		log:              log,
	}
}

func (c *noteService) Create(ctx context.Context, ownerID *int64, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	if req.Id != nil {
		return nil, apperror.NewInvalidArgument("a new note cannot already have an id")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Content:   req.Content,
		UserId:    ownerID,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	c.publishEvent(ctx, events.NoteCreated, &note)
	return c.mapper.ToResponse(&note), nil
}

func (c *noteService) Replace(ctx context.Context, ownerID *int64, id int64, req *dto.NoteRequest) (*dto.NoteResponse, error) {
	if err := checkIDMatch(req.Id, id); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("note not found")
	}

	note.Content = req.Content
	if ownerID != nil {
		note.UserId = ownerID
	}

	if err := uow.NoteRepository().Save(ctx, note); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.NewStorageFailure(err)
	}

	c.publishEvent(ctx, events.NoteUpdated, note)
	return c.mapper.ToResponse(note), nil
}

func (c *noteService) PartialUpdate(ctx context.Context, ownerID *int64, id int64, patch *dto.NotePatchRequest) (*dto.NoteResponse, error) {
	if err := checkIDMatch(patch.Id, id); err != nil {
		return nil, err
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.NewStorageFailure(err)
	}
	defer uow.Rollback()

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.LockForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("note not found")
	}

	c.mapper.PartialUpdate(note, patch)
	if ownerID != nil {
		note.UserId = ownerID
	}

	if err := uow.NoteRepository().Save(ctx, note); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.NewStorageFailure(err)
	}

	c.publishEvent(ctx, events.NoteUpdated, note)
	return c.mapper.ToResponse(note), nil
}

func (c *noteService) Show(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("note not found")
	}
	return c.mapper.ToResponse(note), nil
}

func (c *noteService) List(ctx context.Context, ownerID *int64, crit *criteria.NoteCriteria, page dto.Pageable) (*dto.NoteListResponse, error) {
	crit = scopeToOwner(crit, ownerID)
	pred := specification.ByNoteCriteria(crit)

	uow := c.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.NoteRepository().Count(ctx, pred)
	if err != nil {
		return nil, err
	}

	specs := []specification.Specification{pred}
	orderSpecs, err := sortSpecs(page.Sort)
	if err != nil {
		return nil, err
	}
	specs = append(specs, orderSpecs...)
	specs = append(specs, specification.Pagination{Limit: page.Size, Offset: page.Offset()})

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return &dto.NoteListResponse{
		Items: c.mapper.ToResponses(notes),
		Total: total,
	}, nil
}

func (c *noteService) Count(ctx context.Context, ownerID *int64, crit *criteria.NoteCriteria) (int64, error) {
	crit = scopeToOwner(crit, ownerID)
	uow := c.uowFactory.NewUnitOfWork(ctx)
	return uow.NoteRepository().Count(ctx, specification.ByNoteCriteria(crit))
}

func (c *noteService) Delete(ctx context.Context, ownerID *int64, id int64) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	// Deleting an absent id is a successful no-op.
	deleted, err := uow.NoteRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	// The audit trail only records deletions that removed a row.
	if deleted {
		c.publishEvent(ctx, events.NoteDeleted, &entity.Note{Id: id, UserId: ownerID})
	}
	return nil
}

// scopeToOwner overwrites any client-supplied owner filter with an equality
// filter on the acting identity. A caller must never see or count another
// identity's notes; with no resolvable identity the criteria pass through
// unscoped, which embedding callers opt into explicitly.
func scopeToOwner(crit *criteria.NoteCriteria, ownerID *int64) *criteria.NoteCriteria {
	if crit == nil {
		crit = &criteria.NoteCriteria{}
	}
	if ownerID != nil {
		crit.UserID = &criteria.RangeFilter[int64]{Equals: ownerID}
	}
	return crit
}

func checkIDMatch(bodyID *int64, pathID int64) error {
	if bodyID == nil {
		return apperror.NewInvalidArgument("invalid id: missing from body")
	}
	if *bodyID != pathID {
		return apperror.NewInvalidArgument("invalid id: body does not match path")
	}
	return nil
}

func validatePatch(patch *dto.NotePatchRequest) error {
	if !patch.Content.Set {
		return nil
	}
	if !patch.Content.Valid {
		return apperror.NewInvalidArgument("content cannot be set to null")
	}
	// Character count, matching the rune-based min/max validator tags on create.
	if n := utf8.RuneCountInString(patch.Content.Value); n < 1 || n > 3000 {
		return apperror.NewInvalidArgument("content must be between 1 and 3000 characters")
	}
	return nil
}

func sortSpecs(orders []dto.SortOrder) ([]specification.Specification, error) {
	specs := make([]specification.Specification, 0, len(orders)+1)
	sortedByID := false
	for _, o := range orders {
		column, ok := sortColumns[o.Property]
		if !ok {
			return nil, apperror.NewInvalidArgument("unsupported sort property: " + o.Property)
		}
		if o.Property == "id" {
			sortedByID = true
		}
		specs = append(specs, specification.OrderBy{Field: column, Desc: o.Desc})
	}
	// Deterministic tie-break.
	if !sortedByID {
		specs = append(specs, specification.OrderBy{Field: "notes.id"})
	}
	return specs, nil
}

func (c *noteService) publishEvent(ctx context.Context, eventType string, note *entity.Note) {
	if c.publisherService == nil {
		return
	}
	payload, err := json.Marshal(events.NoteEvent{
		Type:       eventType,
		NoteId:     note.Id,
		UserId:     note.UserId,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}
	// Auxiliary: a failed publish is logged, never surfaced to the caller.
	if err := c.publisherService.Publish(ctx, payload); err != nil && c.log != nil {
		c.log.Warn("note", "failed to publish note event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
