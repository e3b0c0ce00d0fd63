package texm

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyClosingBraces reports a '}' with no matching '{'.
	ErrTooManyClosingBraces = errors.New("too many closing braces")

	// ErrTooFewClosingBraces reports a '{' that is never closed.
	ErrTooFewClosingBraces = errors.New("too few closing braces")

	// ErrTooDeep reports braces or tag bodies nested beyond the
	// configured maximum depth.
	ErrTooDeep = errors.New("nesting too deep")

	// ErrInvalidItem reports a JSON or YAML item that does not describe
	// exactly one of text, tag or braces.
	ErrInvalidItem = errors.New("invalid item")
)

// SyntaxError describes a parse failure and where it happened.
type SyntaxError struct {
	Err    error // One of the Err* sentinels.
	Offset int   // Byte offset into the input.
	Line   int   // 1-based line number.
	Column int   // 1-based column, counted in runes.
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// newSyntaxError builds a SyntaxError for the byte offset off in src.
func newSyntaxError(err error, src string, off int) *SyntaxError {
	line, col := 1, 1
	// Ranging over a string yields one rune per invalid byte, which
	// matches how the cursor steps over malformed UTF-8.
	for _, r := range src[:off] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}

	return &SyntaxError{Err: err, Offset: off, Line: line, Column: col}
}
