package trace

import "errors"

var (
	// ErrMalformedLine is returned by ReadTrace when a line is not a
	// valid "a <int>", "d <ordinal> <int>", or "p" command.
	ErrMalformedLine = errors.New("malformed trace line")
	// ErrEmptyHeap is returned by Run when a "d" or "p" command targets
	// an empty heap.
	ErrEmptyHeap = errors.New("trace command against an empty heap")
	// ErrUnknownOrdinal is returned by Run when a "d" command names an
	// ordinal that was never added. A "d" naming an already popped
	// ordinal reaches the heap, whose own DecreaseKey error is returned.
	ErrUnknownOrdinal = errors.New("trace command references an unknown ordinal")
)
