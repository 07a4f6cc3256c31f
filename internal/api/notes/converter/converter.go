package converter

import (
	"time"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
)

type Note struct {
	IDNote          int64      `json:"idNote"`
	IDAccount       int64      `json:"idAccount"`
	Titulo          string     `json:"titulo"`
	Conteudo        string     `json:"conteudo"`
	Cor             string     `json:"cor"`
	DataCriacao     time.Time  `json:"dataCriacao"`
	DataAtualizacao *time.Time `json:"dataAtualizacao"`
}

type NoteID struct {
	IDNote int64 `json:"idNote"`
}

func ConvertNoteToDTO(note entity.Note) Note {
	return Note{
		IDNote:          note.ID,
		IDAccount:       note.AccountID,
		Titulo:          note.Title,
		Conteudo:        note.Content,
		Cor:             note.Color,
		DataCriacao:     note.CreatedAt.UTC(),
		DataAtualizacao: utcPtr(note.UpdatedAt),
	}
}

// ConvertNotesToDTO never returns nil so an empty list encodes as [].
func ConvertNotesToDTO(notes []entity.Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, ConvertNoteToDTO(n))
	}

	return out
}

func ConvertNoteIDToDTO(id int64) NoteID {
	return NoteID{IDNote: id}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	u := t.UTC()
	return &u
}
