package routine

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnexpected Kind = iota
	// KindDomainRule marks a business rule rejected by the routine itself.
	// Message is safe to show to callers.
	KindDomainRule
)

func (k Kind) String() string {
	if k == KindDomainRule {
		return "domain_rule"
	}

	return "unexpected"
}

type Error struct {
	Kind    Kind
	Routine string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindDomainRule {
		return fmt.Sprintf("routine %s: %s: %s", e.Routine, e.Kind, e.Message)
	}

	return fmt.Sprintf("routine %s: %v", e.Routine, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classifier decides the kind of a backend failure and extracts the
// caller-safe message for domain rules.
type Classifier func(err error) (Kind, string)

// Wrap converts a backend failure into *Error using classify.
func Wrap(name string, err error, classify Classifier) error {
	if err == nil {
		return nil
	}

	var rerr *Error
	if errors.As(err, &rerr) {
		return err
	}

	kind, msg := classify(err)

	return &Error{Kind: kind, Routine: name, Message: msg, Err: err}
}

// IsDomainRule reports whether err carries a domain rule rejection and returns its message.
func IsDomainRule(err error) (string, bool) {
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Kind == KindDomainRule {
		return rerr.Message, true
	}

	return "", false
}
