package sixaxis

import "errors"

var (
	// ErrNoController indicates the input source could not be acquired.
	ErrNoController = errors.New("no controller")

	// ErrAlreadyOpen indicates Open was called on an open handle.
	ErrAlreadyOpen = errors.New("already open")

	// ErrNotOpen indicates Close was called on a handle that is not open.
	ErrNotOpen = errors.New("not open")

	// ErrUnknownEventType indicates a record with an unmapped type tag.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrUnknownControlIndex indicates a record with an unmapped control index.
	ErrUnknownControlIndex = errors.New("unknown control index")
)
