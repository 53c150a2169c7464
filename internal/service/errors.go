package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")          // 404
	ErrBusiness          = errors.New("business rule")      // 422
	ErrEmailExists       = errors.New("email exists")       // 409
	ErrCPFExists         = errors.New("cpf exists")         // 409
	ErrInvalidQuantity   = errors.New("invalid quantity")   // 400
	ErrInsufficientStock = errors.New("insufficient stock") // 400
	ErrValidation        = errors.New("validation")         // 400
)

// Error carries a client-facing message next to one of the sentinel kinds
// above, so callers can both errors.Is on the kind and show Msg.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newErr(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Message returns the client-facing message of err, or "" when err does not
// carry one.
func Message(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Msg
	}
	return ""
}
