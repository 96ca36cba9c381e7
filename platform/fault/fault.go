// Package fault defines the closed error taxonomy shared by the business and
// persistence layers. Callers match with errors.As/KindOf; the web layer owns
// the translation to HTTP statuses.
package fault

import "errors"

type Kind int

const (
	// Validation is a missing or empty required field.
	Validation Kind = iota
	// Unauthenticated covers missing/invalid/expired tokens and bad login credentials.
	Unauthenticated
	// Conflict is a duplicate registration email.
	Conflict
	// NotFound is a record that does not exist for the caller.
	NotFound
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf extracts the taxonomy kind from an error chain.
// The second return is false for untyped errors, which the web layer
// reports as store failures.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
