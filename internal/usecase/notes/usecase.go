package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, accountID int64, in entity.NoteInput) (int64, error)
	ListNotes(ctx context.Context, accountID int64, filter entity.ListFilter) ([]entity.Note, error)
	GetNote(ctx context.Context, accountID, id int64) (entity.Note, error)
	UpdateNote(ctx context.Context, accountID, id int64, in entity.NoteInput) (int64, error)
	DeleteNote(ctx context.Context, accountID, id int64) (int64, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, accountID int64, in entity.NoteInput) (int64, error) {
	id, err := u.repo.CreateNote(ctx, accountID, in)
	if err != nil {
		return 0, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "note created", slogx.NoteID(id))
	return id, nil
}

func (u *Usecase) ListNotes(ctx context.Context, accountID int64, filter entity.ListFilter) ([]entity.Note, error) {
	notes, err := u.repo.ListNotes(ctx, accountID, filter)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	return notes, nil
}

func (u *Usecase) GetNote(ctx context.Context, accountID, id int64) (entity.Note, error) {
	note, err := u.repo.GetNote(ctx, accountID, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

func (u *Usecase) UpdateNote(ctx context.Context, accountID, id int64, in entity.NoteInput) (int64, error) {
	updated, err := u.repo.UpdateNote(ctx, accountID, id, in)
	if err != nil {
		return 0, fmt.Errorf("usecase update note: %w", err)
	}

	slogx.Info(ctx, "note updated", slogx.NoteID(updated))
	return updated, nil
}

func (u *Usecase) DeleteNote(ctx context.Context, accountID, id int64) (int64, error) {
	deleted, err := u.repo.DeleteNote(ctx, accountID, id)
	if err != nil {
		return 0, fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "note deleted", slogx.NoteID(deleted))
	return deleted, nil
}
