package aheap

import "math"

// Key is the priority type stored by both heap implementations. The package
// supports only integer ordering; see NegInf.
type Key = int64

// NegInf is a sentinel strictly less than every admissible user key. Remove
// decreases a handle's key to NegInf and pops it, which is why user keys
// must stay strictly greater than math.MinInt64.
const NegInf Key = math.MinInt64

// Handle is a stable, caller-retained reference to an element previously
// returned by Add. It remains valid for the element's entire lifetime in the
// heap: internal tree surgery (melds, cuts, consolidation) never invalidates
// it, because it names a map entry rather than a position in the tree. Once
// the element is popped or removed the handle is dangling; the heap is not
// required to detect reuse of a dangling handle.
type Handle struct{ id string }

// floorLogPhi returns ⌊log_φ(n)⌋ for n ≥ 1, where φ = (1+√5)/2. It bounds
// the maximum degree of any root in a Fibonacci heap of size n.
func floorLogPhi(n int) int {
	if n < 1 {
		return 0
	}
	const phi = math.Phi
	return int(math.Log(float64(n)) / math.Log(phi))
}
