// Package response holds the envelope every HTTP outcome is wrapped in.
package response

import "time"

const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeDomainRule   = "DOMAIN_RULE"
	CodeRateLimited  = "RATE_LIMITED"
	CodeRequest      = "REQUEST_ERROR"
	CodeUnavailable  = "UNAVAILABLE"
	CodeInternal     = "INTERNAL_ERROR"
)

type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *Error    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

var now = time.Now

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data, Timestamp: now().UTC()}
}

func Failure(code, message string, details any) Envelope {
	return Envelope{
		Success:   false,
		Error:     &Error{Code: code, Message: message, Details: details},
		Timestamp: now().UTC(),
	}
}
