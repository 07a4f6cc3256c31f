package database

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/evgeniy-krivenko/color-notes/pkg/routine"
)

// RuleViolationCode is the SQLSTATE raised by stored routines to reject a
// request on business grounds.
const RuleViolationCode = "NR001"

const (
	integrityViolationClass   = "23"
	stringDataRightTruncation = "22001"
)

var _ routine.Executor = (*Database)(nil)

// Execute calls a set-returning function using named notation, so the
// parameter names must match the function's argument names. Rows are read
// inside the call's transaction.
func (db *Database) Execute(
	ctx context.Context,
	name string,
	params routine.Params,
	card routine.Cardinality,
) (routine.Result, error) {
	if err := routine.ValidateCall(name, params); err != nil {
		return routine.Result{}, &routine.Error{Kind: routine.KindUnexpected, Routine: name, Err: err}
	}

	var maps []map[string]any
	err := db.RunInTx(ctx, func(ctx context.Context) error {
		rows, err := db.Query(ctx, callStatement(name, params), pgx.NamedArgs(params))
		if err != nil {
			return err
		}

		maps, err = pgx.CollectRows(rows, pgx.RowToMap)
		return err
	})
	if err != nil {
		return routine.Result{}, routine.Wrap(name, err, Classify)
	}

	out := make([]routine.Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, routine.Row(m))
	}

	return routine.Shape(out, card), nil
}

func callStatement(name string, params routine.Params) string {
	args := make([]string, 0, len(params))
	for _, p := range params.Names() {
		args = append(args, p+" => @"+p)
	}

	return "SELECT * FROM " + name + "(" + strings.Join(args, ", ") + ")"
}

// Classify treats routine-raised rule violations, integrity violations and
// oversized values as domain rules. Everything else is unexpected.
func Classify(err error) (routine.Kind, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return routine.KindUnexpected, ""
	}

	switch {
	case pgErr.Code == RuleViolationCode:
		return routine.KindDomainRule, pgErr.Message
	case strings.HasPrefix(pgErr.Code, integrityViolationClass):
		if pgErr.ConstraintName != "" {
			return routine.KindDomainRule, "constraint violated: " + pgErr.ConstraintName
		}
		return routine.KindDomainRule, "constraint violated"
	case pgErr.Code == stringDataRightTruncation:
		return routine.KindDomainRule, "value too long"
	default:
		return routine.KindUnexpected, ""
	}
}
