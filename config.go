package aheap

// HeapConfig configures a PairingHeap or FibonacciHeap at construction time.
type HeapConfig struct {
	// UsePool indicates whether the heap should recycle node allocations
	// through a sync.Pool instead of allocating on every Add.
	UsePool bool
	// IDGenerator mints the string backing each Handle. If nil, an
	// IntegerIDGenerator is used.
	IDGenerator IDGenerator
	// SkipInvariantChecks disables the DecreaseKey check that the new key
	// is not greater than the element's current key. Left false (the zero
	// value), a DecreaseKey call that would increase a key is rejected
	// with ErrInvariantViolation instead of silently corrupting heap order.
	SkipInvariantChecks bool
}

// GetGenerator returns the configured IDGenerator, defaulting to an
// IntegerIDGenerator when none was supplied.
func (h *HeapConfig) GetGenerator() IDGenerator {
	if h.IDGenerator == nil {
		return &IntegerIDGenerator{}
	}
	return h.IDGenerator
}
