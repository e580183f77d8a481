package lint

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel wrapped by every *SyntaxError
var ErrSyntax = errors.New("invalid CSS syntax")

// SyntaxError locates the first node tree-sitter could not parse.
// Row and Column are zero-based, in the coordinates of the checked source.
type SyntaxError struct {
	Row     uint
	Column  uint
	Snippet string
	Missing bool
}

func (e *SyntaxError) Error() string {
	what := "unexpected"
	if e.Missing {
		what = "missing"
	}
	return fmt.Sprintf("%d:%d: %s %q", e.Row+1, e.Column+1, what, e.Snippet)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
