package tokens

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedToken marks tokens whose $type has no CSS value mapping
	ErrUnsupportedToken = errors.New("unsupported token")

	// ErrInvalidToken marks tokens whose $value does not match their $type
	ErrInvalidToken = errors.New("invalid token value")
)

// TokenError describes why a single token could not be converted
type TokenError struct {
	Name   string
	Type   string
	Reason string
	Err    error
}

func (e *TokenError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("token %s (%s): %v", e.Name, e.Type, e.Err)
	}
	return fmt.Sprintf("token %s (%s): %v: %s", e.Name, e.Type, e.Err, e.Reason)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

func unsupported(name, typ string) error {
	return &TokenError{Name: name, Type: typ, Err: ErrUnsupportedToken}
}

func invalid(name, typ, reason string) error {
	return &TokenError{Name: name, Type: typ, Reason: reason, Err: ErrInvalidToken}
}
