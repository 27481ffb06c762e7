package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"notes-api-be/internal/criteria"
	"notes-api-be/internal/dto"
	"notes-api-be/internal/pkg/apperror"
	"notes-api-be/internal/pkg/serverutils"
	"notes-api-be/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Replace(ctx *fiber.Ctx) error
	PartialUpdate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("count", c.Count)
	h.Get(":id", c.Show)
	h.Put(":id", c.Replace)
	h.Patch(":id", c.PartialUpdate)
	h.Delete(":id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	ownerID := serverutils.CurrentUserID(ctx)

	var req dto.NoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewInvalidArgument("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), ownerID, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Replace(ctx *fiber.Ctx) error {
	ownerID := serverutils.CurrentUserID(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.NoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewInvalidArgument("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Replace(ctx.Context(), ownerID, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) PartialUpdate(ctx *fiber.Ctx) error {
	ownerID := serverutils.CurrentUserID(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var patch dto.NotePatchRequest
	if err := ctx.BodyParser(&patch); err != nil {
		return apperror.NewInvalidArgument("malformed request body")
	}

	res, err := c.noteService.PartialUpdate(ctx.Context(), ownerID, id, &patch)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success patch note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	ownerID := serverutils.CurrentUserID(ctx)

	crit, err := decodeCriteria(ctx)
	if err != nil {
		return err
	}
	page, err := decodePageable(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), ownerID, crit, page)
	if err != nil {
		return err
	}

	ctx.Set("X-Total-Count", strconv.FormatInt(res.Total, 10))
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Count(ctx *fiber.Ctx) error {
	ownerID := serverutils.CurrentUserID(ctx)

	crit, err := decodeCriteria(ctx)
	if err != nil {
		return err
	}

	count, err := c.noteService.Count(ctx.Context(), ownerID, crit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success count notes", dto.CountResponse{Count: count}))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	ownerID := serverutils.CurrentUserID(ctx)

	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), ownerID, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func parseID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidArgument("invalid id in path")
	}
	return id, nil
}

func decodeCriteria(ctx *fiber.Ctx) (*criteria.NoteCriteria, error) {
	crit, err := criteria.DecodeNoteCriteria(ctx.Queries())
	if err != nil {
		return nil, apperror.NewInvalidArgument(err.Error())
	}
	return crit, nil
}

func decodePageable(ctx *fiber.Ctx) (dto.Pageable, error) {
	var sorts []string
	for _, raw := range ctx.Context().QueryArgs().PeekMulti("sort") {
		sorts = append(sorts, string(raw))
	}
	page, err := dto.ParsePageable(ctx.Query("page"), ctx.Query("size"), sorts)
	if err != nil {
		return page, apperror.NewInvalidArgument(err.Error())
	}
	return page, nil
}
