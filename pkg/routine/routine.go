// Package routine describes a persistence capability reached by name:
// a server-side routine is executed with bound parameters and yields rows
// according to a declared cardinality.
package routine

import (
	"context"
	"fmt"
	"regexp"
	"sort"
)

type Cardinality int

const (
	// None discards every returned row.
	None Cardinality = iota
	// Single returns the first row, or no row at all.
	Single
	// Multi returns every row in the order produced by the routine.
	Multi
)

func (c Cardinality) String() string {
	switch c {
	case None:
		return "none"
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return fmt.Sprintf("cardinality(%d)", int(c))
	}
}

// Executor is implemented by every persistence backend.
type Executor interface {
	Execute(ctx context.Context, name string, params Params, card Cardinality) (Result, error)
}

// Params are bound by name. Nil values are bound as NULL.
type Params map[string]any

// Names returns parameter names in a stable order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Result holds rows shaped by the requested cardinality.
type Result struct {
	Rows []Row
}

// Row returns the single row of the result, or nil when the routine produced none.
func (r Result) Row() Row {
	if len(r.Rows) == 0 {
		return nil
	}

	return r.Rows[0]
}

// Empty reports whether the routine produced no rows.
func (r Result) Empty() bool {
	return len(r.Rows) == 0
}

// Shape trims rows according to the cardinality contract.
func Shape(rows []Row, card Cardinality) Result {
	switch card {
	case None:
		return Result{}
	case Single:
		if len(rows) > 1 {
			rows = rows[:1]
		}
	}

	return Result{Rows: rows}
}

var namePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)
var paramPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidateCall rejects routine and parameter names that are not plain
// lowercase identifiers, since backends interpolate them into statements.
func ValidateCall(name string, params Params) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid routine name %q", name)
	}

	for param := range params {
		if !paramPattern.MatchString(param) {
			return fmt.Errorf("invalid parameter name %q for routine %s", param, name)
		}
	}

	return nil
}
