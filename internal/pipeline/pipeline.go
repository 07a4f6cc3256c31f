package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/evgeniy-krivenko/color-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/internal/validator"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

type Kind string

const (
	KindCreate Kind = "create"
	KindRead   Kind = "read"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// Binder fills the typed request from transport sources. It reports
// values that could not be decoded instead of failing.
type Binder[T any] func(req *T) []entity.Violation

type Validated[T any] struct {
	Kind   Kind
	Caller ctxtr.Caller
	Params T
}

type defaulter interface {
	applyDefaults()
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=pipeline_options.gen.go -from-struct=Options
type Options struct {
	resolver  IdentityResolver     `option:"mandatory" validate:"required"`
	validator *validator.Validator `option:"mandatory" validate:"required"`
}

type Pipeline struct {
	Options
}

func New(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate pipeline options: %v", err)
	}

	return &Pipeline{Options: opts}, nil
}

// Handle resolves the caller, binds and validates the request. The
// returned context carries the caller. Identity is checked before any
// input is looked at.
func Handle[T any](
	ctx context.Context,
	p *Pipeline,
	kind Kind,
	md Metadata,
	bind Binder[T],
) (context.Context, Validated[T], error) {
	caller, err := p.resolver.Resolve(ctx, md)
	if err != nil {
		slogx.Debug(ctx, "caller identity rejected", slog.String("kind", string(kind)), slogx.Err(err))
		return ctx, Validated[T]{}, entity.ErrUnauthorized
	}
	if !caller.Valid() {
		return ctx, Validated[T]{}, entity.ErrUnauthorized
	}

	ctx = ctxtr.WithCaller(ctx, caller)

	var req T
	var violations []entity.Violation
	if bind != nil {
		violations = bind(&req)
	}

	if err := p.validator.Validate(req); err != nil {
		var verr *entity.ValidationError
		if !errors.As(err, &verr) {
			return ctx, Validated[T]{}, fmt.Errorf("validate %s request: %w", kind, err)
		}
		violations = append(violations, verr.Violations...)
	}

	if len(violations) > 0 {
		verr := &entity.ValidationError{Violations: dedupByField(violations)}
		slogx.Debug(ctx, "request rejected",
			slog.String("kind", string(kind)),
			slog.Int("violations", len(verr.Violations)),
		)
		return ctx, Validated[T]{}, verr
	}

	if d, ok := any(&req).(defaulter); ok {
		d.applyDefaults()
	}

	return ctx, Validated[T]{Kind: kind, Caller: caller, Params: req}, nil
}

// dedupByField keeps the first violation reported for each field.
func dedupByField(vs []entity.Violation) []entity.Violation {
	seen := make(map[string]struct{}, len(vs))
	out := make([]entity.Violation, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v.Field]; ok {
			continue
		}
		seen[v.Field] = struct{}{}
		out = append(out, v)
	}

	return out
}
