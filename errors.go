package aheap

import "errors"

var (
	// ErrHeapEmpty is returned when attempting to Pop or Peek from an empty
	// heap. The heap is left unchanged. Remove on an empty heap returns
	// ErrNodeNotFound instead, since no handle is live there.
	ErrHeapEmpty = errors.New("the heap is empty and contains no elements")

	// ErrNodeNotFound is returned when a handle does not refer to any live
	// element in the heap, for example because it was already popped or
	// removed.
	ErrNodeNotFound = errors.New("handle does not link to a live element")

	// ErrInvariantViolation is returned by DecreaseKey when the requested
	// key is greater than the element's current key and the heap was built
	// with HeapConfig.SkipInvariantChecks left false, and by
	// FibonacciHeap.Union when asked to union a heap with itself.
	ErrInvariantViolation = errors.New("operation would violate heap invariants")
)
