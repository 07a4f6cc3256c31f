package pipeline

import "github.com/evgeniy-krivenko/color-notes/internal/entity"

// Each field has exactly one source: path params, query or JSON body.
// Optional inputs are pointers: nil means absent, and only an absent value
// takes a default.

type ListNotesRequest struct {
	FiltroCor *string `query:"filtroCor" validate:"omitnil,notecolor"`
	Ordem     *string `query:"ordem" validate:"omitnil,oneof=data_criacao_asc data_criacao_desc titulo_asc titulo_desc"`
}

func (r *ListNotesRequest) applyDefaults() {
	if r.Ordem == nil {
		order := string(entity.DefaultOrdering)
		r.Ordem = &order
	}
}

func (r ListNotesRequest) Filter() entity.ListFilter {
	filter := entity.ListFilter{Order: entity.DefaultOrdering}
	if r.FiltroCor != nil {
		filter.Color = *r.FiltroCor
	}
	if r.Ordem != nil {
		filter.Order = entity.Ordering(*r.Ordem)
	}

	return filter
}

type CreateNoteRequest struct {
	Titulo   string  `json:"titulo" validate:"required,min=3,max=100"`
	Conteudo string  `json:"conteudo" validate:"required,min=1,max=5000"`
	Cor      *string `json:"cor" validate:"omitnil,notecolor"`
}

func (r *CreateNoteRequest) applyDefaults() {
	if r.Cor == nil {
		color := entity.DefaultColor
		r.Cor = &color
	}
}

func (r CreateNoteRequest) Input() entity.NoteInput {
	in := entity.NoteInput{Title: r.Titulo, Content: r.Conteudo, Color: entity.DefaultColor}
	if r.Cor != nil {
		in.Color = *r.Cor
	}

	return in
}

// NoteIDRequest serves get and delete.
type NoteIDRequest struct {
	ID int64 `params:"id" validate:"gt=0"`
}

type UpdateNoteRequest struct {
	ID       int64  `json:"-" params:"id" validate:"gt=0"`
	Titulo   string `json:"titulo" validate:"required,min=3,max=100"`
	Conteudo string `json:"conteudo" validate:"required,min=1,max=5000"`
	Cor      string `json:"cor" validate:"required,notecolor"`
}

func (r UpdateNoteRequest) Input() entity.NoteInput {
	return entity.NoteInput{Title: r.Titulo, Content: r.Conteudo, Color: r.Cor}
}
