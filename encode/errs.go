package encode

import (
	"errors"
	"fmt"

	"github.com/karoljaro/yaml-xml-json-converter/format"
)

// ErrEncoding is the sentinel wrapped by every encode failure.
var ErrEncoding = errors.New("encoding error")

// Error reports that an in-memory document cannot be represented in the
// target format. Path locates the offending node.
type Error struct {
	Format format.Format
	Path   string
	Cause  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot encode %s at %s: %v", e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("cannot encode %s: %v", e.Format, e.Cause)
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrEncoding}
	}
	return []error{ErrEncoding, e.Cause}
}

func encErr(f format.Format, path, causeFormat string, args ...any) *Error {
	return &Error{
		Format: f,
		Path:   path,
		Cause:  fmt.Errorf(causeFormat, args...),
	}
}
