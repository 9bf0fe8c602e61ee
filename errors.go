package ili9488

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a window or scroll area does not fit
	// the panel. Nothing is sent to the controller.
	ErrOutOfBounds = errors.New("ili9488: rectangle coordinates outside display area")
	// ErrLengthMismatch is returned when the number of colors does not match
	// the window area. Nothing is sent to the controller.
	ErrLengthMismatch = errors.New("ili9488: color count does not match window area")
	// ErrNoScrollArea is returned by ScrollTo and Scroll before SetScrollArea.
	ErrNoScrollArea = errors.New("ili9488: scroll area not defined")
)

// TransportError wraps a failure reported by the Transport.
//
// The operation that triggered it was aborted part way; the controller state
// is unknown until the operation is retried or Init is called again.
type TransportError struct {
	Op  string // Command name, or "reset"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ili9488: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
