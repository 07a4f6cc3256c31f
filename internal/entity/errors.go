package entity

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrNoteNotFound = errors.New("note not found")
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// DomainRuleError is a business rule rejected by the persistence layer.
type DomainRuleError struct {
	Message string
}

func (e *DomainRuleError) Error() string {
	return "domain rule violated: " + e.Message
}
