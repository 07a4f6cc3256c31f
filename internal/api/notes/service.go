package notes

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/evgeniy-krivenko/color-notes/internal/api"
	"github.com/evgeniy-krivenko/color-notes/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/internal/pipeline"
	"github.com/evgeniy-krivenko/color-notes/pkg/response"
)

var _ api.Router = (*Service)(nil)

type notesUsecase interface {
	CreateNote(ctx context.Context, accountID int64, in entity.NoteInput) (int64, error)
	ListNotes(ctx context.Context, accountID int64, filter entity.ListFilter) ([]entity.Note, error)
	GetNote(ctx context.Context, accountID, id int64) (entity.Note, error)
	UpdateNote(ctx context.Context, accountID, id int64, in entity.NoteInput) (int64, error)
	DeleteNote(ctx context.Context, accountID, id int64) (int64, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	usecase  notesUsecase       `option:"mandatory" validate:"required"`
	pipeline *pipeline.Pipeline `option:"mandatory" validate:"required"`
}

type Service struct {
	Options
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes service options: %v", err)
	}

	return &Service{Options: opts}, nil
}

// Register implements api.Router.
func (s *Service) Register(r fiber.Router) {
	r.Get("/note", s.list)
	r.Post("/note", s.create)
	r.Get("/note/:id", s.get)
	r.Put("/note/:id", s.update)
	r.Delete("/note/:id", s.delete)
}

func (s *Service) list(c *fiber.Ctx) error {
	ctx, req, err := pipeline.Handle(c.UserContext(), s.pipeline, pipeline.KindRead, metadata(c), bindList(c))
	if err != nil {
		return err
	}

	notes, err := s.usecase.ListNotes(ctx, req.Caller.AccountID, req.Params.Filter())
	if err != nil {
		return err
	}

	return c.JSON(response.Success(converter.ConvertNotesToDTO(notes)))
}

func (s *Service) create(c *fiber.Ctx) error {
	ctx, req, err := pipeline.Handle(c.UserContext(), s.pipeline, pipeline.KindCreate, metadata(c), bindBody[pipeline.CreateNoteRequest](c))
	if err != nil {
		return err
	}

	id, err := s.usecase.CreateNote(ctx, req.Caller.AccountID, req.Params.Input())
	if err != nil {
		return err
	}

	return c.JSON(response.Success(converter.ConvertNoteIDToDTO(id)))
}

func (s *Service) get(c *fiber.Ctx) error {
	ctx, req, err := pipeline.Handle(c.UserContext(), s.pipeline, pipeline.KindRead, metadata(c), bindID(c))
	if err != nil {
		return err
	}

	note, err := s.usecase.GetNote(ctx, req.Caller.AccountID, req.Params.ID)
	if err != nil {
		return err
	}

	return c.JSON(response.Success(converter.ConvertNoteToDTO(note)))
}

func (s *Service) update(c *fiber.Ctx) error {
	var bind pipeline.Binder[pipeline.UpdateNoteRequest] = func(req *pipeline.UpdateNoteRequest) []entity.Violation {
		violations := bindBody[pipeline.UpdateNoteRequest](c)(req)
		id, v := pathID(c)
		req.ID = id
		return append(violations, v...)
	}

	ctx, req, err := pipeline.Handle(c.UserContext(), s.pipeline, pipeline.KindUpdate, metadata(c), bind)
	if err != nil {
		return err
	}

	id, err := s.usecase.UpdateNote(ctx, req.Caller.AccountID, req.Params.ID, req.Params.Input())
	if err != nil {
		return err
	}

	return c.JSON(response.Success(converter.ConvertNoteIDToDTO(id)))
}

func (s *Service) delete(c *fiber.Ctx) error {
	ctx, req, err := pipeline.Handle(c.UserContext(), s.pipeline, pipeline.KindDelete, metadata(c), bindID(c))
	if err != nil {
		return err
	}

	id, err := s.usecase.DeleteNote(ctx, req.Caller.AccountID, req.Params.ID)
	if err != nil {
		return err
	}

	return c.JSON(response.Success(converter.ConvertNoteIDToDTO(id)))
}
