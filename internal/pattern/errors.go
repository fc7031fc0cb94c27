package pattern

import (
	"fmt"

	"github.com/osse101/filecatalog/internal/domain"
)

// SyntaxError reports where compilation of a pattern failed.
type SyntaxError struct {
	Pattern string
	Offset  int // rune offset into Pattern
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %v at offset %d in %q", domain.ErrMsgInvalidPattern, e.Err, e.Offset, e.Pattern)
}

// Unwrap exposes both the specific cause and domain.ErrInvalidPattern.
func (e *SyntaxError) Unwrap() []error {
	return []error{e.Err, domain.ErrInvalidPattern}
}

func syntaxError(src []rune, offset int, err error) *SyntaxError {
	return &SyntaxError{Pattern: string(src), Offset: offset, Err: err}
}
