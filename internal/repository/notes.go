package repository

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/internal/repository/converter"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
)

// Every call is scoped by accountID: a note of another account looks
// exactly like a missing one.

func (r *Repo) CreateNote(ctx context.Context, accountID int64, in entity.NoteInput) (int64, error) {
	res, err := r.db.Execute(ctx, routineNoteCreate, routine.Params{
		"id_account": accountID,
		"titulo":     in.Title,
		"conteudo":   in.Content,
		"cor":        in.Color,
	}, routine.Single)
	if err != nil {
		return 0, fmt.Errorf("create note: %w", translate(err))
	}

	if res.Row() == nil {
		return 0, fmt.Errorf("create note: routine returned no row")
	}

	id, err := converter.NoteID(res.Row())
	if err != nil {
		return 0, fmt.Errorf("create note: %w", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.AccountID(accountID), slogx.NoteID(id))

	return id, nil
}

func (r *Repo) ListNotes(ctx context.Context, accountID int64, filter entity.ListFilter) ([]entity.Note, error) {
	order := filter.Order
	if order == "" {
		order = entity.DefaultOrdering
	}

	var color any
	if filter.Color != "" {
		color = filter.Color
	}

	res, err := r.db.Execute(ctx, routineNoteList, routine.Params{
		"id_account": accountID,
		"filtro_cor": color,
		"ordem":      string(order),
	}, routine.Multi)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", translate(err))
	}

	notes, err := converter.ConvertNotesToEntity(res.Rows)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *Repo) GetNote(ctx context.Context, accountID, id int64) (entity.Note, error) {
	res, err := r.db.Execute(ctx, routineNoteGet, routine.Params{
		"id_account": accountID,
		"id_note":    id,
	}, routine.Single)
	if err != nil {
		return entity.Note{}, fmt.Errorf("get note: %w", translate(err))
	}

	if res.Row() == nil {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	note, err := converter.ConvertNoteToEntity(res.Row())
	if err != nil {
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

func (r *Repo) UpdateNote(ctx context.Context, accountID, id int64, in entity.NoteInput) (int64, error) {
	res, err := r.db.Execute(ctx, routineNoteUpdate, routine.Params{
		"id_account": accountID,
		"id_note":    id,
		"titulo":     in.Title,
		"conteudo":   in.Content,
		"cor":        in.Color,
	}, routine.Single)
	if err != nil {
		return 0, fmt.Errorf("update note: %w", translate(err))
	}

	return affectedID(res, "update note")
}

func (r *Repo) DeleteNote(ctx context.Context, accountID, id int64) (int64, error) {
	res, err := r.db.Execute(ctx, routineNoteDelete, routine.Params{
		"id_account": accountID,
		"id_note":    id,
	}, routine.Single)
	if err != nil {
		return 0, fmt.Errorf("delete note: %w", translate(err))
	}

	return affectedID(res, "delete note")
}

func affectedID(res routine.Result, op string) (int64, error) {
	if res.Row() == nil {
		return 0, entity.ErrNoteNotFound
	}

	id, err := converter.NoteID(res.Row())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// translate turns a domain rule rejection into an entity error and leaves
// every other failure untouched.
func translate(err error) error {
	if msg, ok := routine.IsDomainRule(err); ok {
		return &entity.DomainRuleError{Message: msg}
	}

	return err
}
