// Package errors defines typed errors with categories for user-friendly reporting.
// Each seeding step that can fail has its own Kind, so the command layer can
// tell a bad key file apart from an unreachable node.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KeyLoadFailed indicates the key material could not be read or parsed.
	KeyLoadFailed Kind = "key_load_failed"
	// CommandBuildFailed indicates a command could not be built or signed.
	CommandBuildFailed Kind = "command_build_failed"
	// LocalFailed indicates the /local preview call did not complete.
	LocalFailed Kind = "local_failed"
	// SendFailed indicates the /send broadcast call did not complete.
	SendFailed Kind = "send_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }

// KindOf returns the Kind of the first *E in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
