package repository

import (
	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
)

const (
	routineNoteCreate = "functional.sp_note_create"
	routineNoteList   = "functional.sp_note_list"
	routineNoteGet    = "functional.sp_note_get"
	routineNoteUpdate = "functional.sp_note_update"
	routineNoteDelete = "functional.sp_note_delete"
)

type Repo struct {
	db routine.Executor
}

func New(db routine.Executor) *Repo {
	return &Repo{db: db}
}
