package entity

import "time"

const DefaultColor = "#FFFFFF"

type Ordering string

const (
	OrderCreatedAsc  Ordering = "data_criacao_asc"
	OrderCreatedDesc Ordering = "data_criacao_desc"
	OrderTitleAsc    Ordering = "titulo_asc"
	OrderTitleDesc   Ordering = "titulo_desc"
)

const DefaultOrdering = OrderCreatedDesc

type Note struct {
	ID        int64
	AccountID int64
	Title     string
	Content   string
	Color     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NoteInput is stored as given. Defaults are resolved before it is built.
type NoteInput struct {
	Title   string
	Content string
	Color   string
}

type ListFilter struct {
	// Color is an exact, case-insensitive match; empty means no filter.
	Color string
	Order Ordering
}
