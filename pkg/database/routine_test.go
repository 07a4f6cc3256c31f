package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
)

func TestCallStatement(t *testing.T) {
	stmt := callStatement("functional.sp_note_get", routine.Params{
		"id_note":    int64(3),
		"id_account": int64(1),
	})

	assert.Equal(t,
		"SELECT * FROM functional.sp_note_get(id_account => @id_account, id_note => @id_note)",
		stmt,
	)

	assert.Equal(t, "SELECT * FROM functional.sp_ping()", callStatement("functional.sp_ping", nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind routine.Kind
		wantMsg  string
	}{
		{
			name:     "routine raised rule violation",
			err:      &pgconn.PgError{Code: RuleViolationCode, Message: "unknown ordering"},
			wantKind: routine.KindDomainRule,
			wantMsg:  "unknown ordering",
		},
		{
			name:     "check constraint",
			err:      fmt.Errorf("query: %w", &pgconn.PgError{Code: "23514", ConstraintName: "note_cor_check"}),
			wantKind: routine.KindDomainRule,
			wantMsg:  "constraint violated: note_cor_check",
		},
		{
			name:     "string too long",
			err:      &pgconn.PgError{Code: "22001"},
			wantKind: routine.KindDomainRule,
			wantMsg:  "value too long",
		},
		{
			name:     "syntax error",
			err:      &pgconn.PgError{Code: "42601", Message: "syntax error at or near"},
			wantKind: routine.KindUnexpected,
		},
		{
			name:     "connection failure",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: routine.KindUnexpected,
		},
		{
			name:     "cancellation",
			err:      context.Canceled,
			wantKind: routine.KindUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, msg := Classify(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestExecuteRejectsUnsafeNames(t *testing.T) {
	db := &Database{}

	_, err := db.Execute(context.Background(), "note; drop table note", nil, routine.Single)

	var rerr *routine.Error
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, routine.KindUnexpected, rerr.Kind)
}

func TestNewOptionsValidate(t *testing.T) {
	opts := NewOptions("localhost:5432", "user", "secret", "notes")
	assert.NoError(t, opts.Validate())

	opts = NewOptions("not a host", "", "", "notes", WithRetryAttempts(0))
	assert.Error(t, opts.Validate())
}
