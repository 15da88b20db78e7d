// Package apperr defines the discriminated failure type returned by the
// application services. Each failure carries exactly one kind and one
// human-readable message; the HTTP adapter maps kinds to status codes.
package apperr

// Kind classifies a domain failure.
type Kind string

const (
	// KindInvalidRequest marks a malformed or business-rule-violating payload.
	KindInvalidRequest Kind = "invalid_request"

	// KindUnauthorized marks a missing/invalid credential or an ownership violation.
	KindUnauthorized Kind = "unauthorized"

	// KindNotFound marks an absent resource.
	KindNotFound Kind = "not_found"
)

// Error is a typed domain failure. Services return it explicitly instead of
// signalling through sentinel comparisons; infrastructure failures travel as
// ordinary wrapped errors and surface as 500s at the boundary.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Invalid builds an InvalidRequest failure.
func Invalid(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

// Unauthorized builds an Unauthorized failure.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// NotFound builds a NotFound failure.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}
