package converter

import (
	"fmt"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
)

const (
	colID        = "id_note"
	colAccountID = "id_account"
	colTitle     = "titulo"
	colContent   = "conteudo"
	colColor     = "cor"
	colCreatedAt = "data_criacao"
	colUpdatedAt = "data_atualizacao"
)

func NoteID(row routine.Row) (int64, error) {
	id, err := row.Int64(colID)
	if err != nil {
		return 0, fmt.Errorf("convert note id: %w", err)
	}

	return id, nil
}

func ConvertNoteToEntity(row routine.Row) (entity.Note, error) {
	var (
		note entity.Note
		err  error
	)

	if note.ID, err = row.Int64(colID); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}
	if note.AccountID, err = row.Int64(colAccountID); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}
	if note.Title, err = row.String(colTitle); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}
	if note.Content, err = row.String(colContent); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}
	if note.Color, err = row.String(colColor); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}
	if note.CreatedAt, err = row.Time(colCreatedAt); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}
	if note.UpdatedAt, err = row.NullTime(colUpdatedAt); err != nil {
		return entity.Note{}, fmt.Errorf("convert note: %w", err)
	}

	return note, nil
}

func ConvertNotesToEntity(rows []routine.Row) ([]entity.Note, error) {
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		note, err := ConvertNoteToEntity(row)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}
