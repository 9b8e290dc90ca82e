package reportfig

import (
	"errors"
	"fmt"
)

// Sentinel errors for common template construction failure conditions.
var (
	ErrNoScript      = errors.New("reportfig: script name is required for the source footnote")
	ErrContent       = errors.New("reportfig: text must be a single entry or a list of entries")
	ErrNoDefaultSpan = errors.New("reportfig: element index exceeds the default title block spans")
	ErrBarcodeKind   = errors.New("reportfig: unsupported barcode kind")
)

// Error represents an error that occurred during a specific template
// operation. It wraps an underlying error and includes the operation name
// for context.
type Error struct {
	Op  string // operation name, e.g. "Render", "Layout"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reportfig.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("reportfig.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new Error wrapping the given error with operation context.
func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
