package trace

import "github.com/heapomatic/aheap"

// PairingAdapter wraps a PairingHeap so it satisfies AddressableHeap,
// boxing its Handle behind the any the runner passes around.
type PairingAdapter struct{ *aheap.PairingHeap }

func (p PairingAdapter) Add(key int64) any { return p.PairingHeap.Add(key) }

func (p PairingAdapter) Pop() (int64, error) { return p.PairingHeap.Pop() }

func (p PairingAdapter) DecreaseKey(handle any, newKey int64) error {
	return p.PairingHeap.DecreaseKey(handle.(aheap.Handle), newKey)
}

// FibonacciAdapter wraps a FibonacciHeap so it satisfies
// AddressableHeap.
type FibonacciAdapter struct{ *aheap.FibonacciHeap }

func (f FibonacciAdapter) Add(key int64) any { return f.FibonacciHeap.Add(key) }

func (f FibonacciAdapter) Pop() (int64, error) { return f.FibonacciHeap.Pop() }

func (f FibonacciAdapter) DecreaseKey(handle any, newKey int64) error {
	return f.FibonacciHeap.DecreaseKey(handle.(aheap.Handle), newKey)
}

// BinaryAdapter wraps a BinaryHeapBaseline so it satisfies
// AddressableHeap, boxing its int insertion ordinal behind the any the
// runner passes around.
type BinaryAdapter struct{ *aheap.BinaryHeapBaseline }

func (b BinaryAdapter) Add(key int64) any { return b.BinaryHeapBaseline.Add(key) }

func (b BinaryAdapter) Pop() (int64, error) { return b.BinaryHeapBaseline.Pop() }

func (b BinaryAdapter) DecreaseKey(handle any, newKey int64) error {
	return b.BinaryHeapBaseline.DecreaseKey(handle.(int), newKey)
}
