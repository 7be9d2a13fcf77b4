package trace

// AddressableHeap is the subset of PairingHeap/FibonacciHeap's surface
// the runner needs to replay a trace. The handle type is left opaque
// (any) so the runner can drive either heap kind, or the baseline
// binary heap's plain int ordinal, without depending on either's
// concrete handle type.
type AddressableHeap interface {
	Add(key int64) any
	Pop() (int64, error)
	DecreaseKey(handle any, newKey int64) error
}

// Run replays commands against h, maintaining the ordinal-to-handle
// vector the trace format assumes: the n-th Add command's handle is
// recorded at index n, and a later "d <ordinal> <int>" looks it back
// up. Returns ErrEmptyHeap if a "d" or "p" targets an empty heap and
// ErrUnknownOrdinal if a "d" names an ordinal that was never added.
func Run(h AddressableHeap, commands []Command) error {
	handles := make([]any, 0, len(commands))
	size := 0

	for _, cmd := range commands {
		switch cmd.Kind {
		case Add:
			handles = append(handles, h.Add(cmd.Key))
			size++
		case Decrease:
			if size == 0 {
				return ErrEmptyHeap
			}
			if cmd.Ordinal < 0 || cmd.Ordinal >= len(handles) {
				return ErrUnknownOrdinal
			}
			if err := h.DecreaseKey(handles[cmd.Ordinal], cmd.Key); err != nil {
				return err
			}
		case Pop:
			if size == 0 {
				return ErrEmptyHeap
			}
			if _, err := h.Pop(); err != nil {
				return err
			}
			size--
		}
	}
	return nil
}
