package parse

import (
	"errors"
	"fmt"

	"github.com/karoljaro/yaml-xml-json-converter/format"
)

// ErrParse is the sentinel wrapped by every decode failure.
// Use errors.Is(err, parse.ErrParse) to distinguish malformed input from
// environment problems.
var ErrParse = errors.New("parse error")

// Error reports that source text does not parse as the claimed format.
// Line and Col are 1-based and zero when the underlying parser gave no
// position.
type Error struct {
	Format format.Format
	Line   int
	Col    int
	Cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("invalid %s at line %d, column %d: %v", e.Format, e.Line, e.Col, e.Cause)
	case e.Line > 0:
		return fmt.Sprintf("invalid %s at line %d: %v", e.Format, e.Line, e.Cause)
	default:
		return fmt.Sprintf("invalid %s: %v", e.Format, e.Cause)
	}
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Cause}
}

func errAt(f format.Format, line, col int, causeFormat string, args ...any) *Error {
	return &Error{
		Format: f,
		Line:   line,
		Col:    col,
		Cause:  fmt.Errorf(causeFormat, args...),
	}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(d []byte, off int) (int, int) {
	if off > len(d) {
		off = len(d)
	}
	line, col := 1, 1
	for _, c := range d[:off] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
