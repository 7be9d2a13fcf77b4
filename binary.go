package aheap

// BinaryHeapBaseline is a plain array-backed min-heap keyed by
// (key, insertion ordinal). It exists purely as a reference
// implementation: a cross-validation oracle for PairingHeap and
// FibonacciHeap in tests, and a performance baseline in the trace
// runner. DecreaseKey is implemented lazily, the standard trick for
// array heaps that have no way to locate an interior element in O(1):
// the new (key, ordinal) pair is pushed fresh and the stale one is left
// in place, to be discarded the next time it would otherwise surface at
// the root.
type BinaryHeapBaseline struct {
	heap    []binaryEntry
	current []Key
	live    []bool
	size    int
}

// binaryEntry is one slot of the array heap: a key together with the
// insertion ordinal it belongs to.
type binaryEntry struct {
	key     Key
	ordinal int
}

// NewBinaryHeapBaseline creates an empty baseline heap.
func NewBinaryHeapBaseline() *BinaryHeapBaseline {
	return &BinaryHeapBaseline{}
}

// Size returns the number of live elements in the heap.
func (b *BinaryHeapBaseline) Size() int { return b.size }

// IsEmpty reports whether the heap contains no live elements.
func (b *BinaryHeapBaseline) IsEmpty() bool { return b.size == 0 }

// Peek returns the minimum key without removing it. Stale entries left
// behind by a decrease-key are discarded first, so the array's true
// root always surfaces. Returns ErrHeapEmpty if the heap is empty.
func (b *BinaryHeapBaseline) Peek() (Key, error) {
	if b.size == 0 {
		return 0, ErrHeapEmpty
	}
	b.discardStaleRoots()
	return b.heap[0].key, nil
}

// Add inserts key into the heap and returns its insertion ordinal,
// which is the stable handle this baseline uses in place of a real
// Handle (it never needs to locate an interior element, only ever the
// root).
func (b *BinaryHeapBaseline) Add(key Key) int {
	ordinal := len(b.current)
	b.current = append(b.current, key)
	b.live = append(b.live, true)
	b.push(binaryEntry{key: key, ordinal: ordinal})
	b.size++
	return ordinal
}

// Pop removes and returns the minimum key, discarding any stale
// entries that have accumulated at the root from prior decrease-keys.
// Returns ErrHeapEmpty, with the heap left unchanged, if the heap is
// empty.
func (b *BinaryHeapBaseline) Pop() (Key, error) {
	if b.size == 0 {
		return 0, ErrHeapEmpty
	}
	b.discardStaleRoots()

	top := b.heap[0]
	last := len(b.heap) - 1
	b.heap[0] = b.heap[last]
	b.heap = b.heap[:last]
	if len(b.heap) > 0 {
		b.siftDown(0)
	}

	b.live[top.ordinal] = false
	b.size--
	return top.key, nil
}

// DecreaseKey lowers the key of the element with the given insertion
// ordinal. The caller must guarantee newKey <= the element's current
// key. A fresh (newKey, ordinal) entry is pushed; the old entry is left
// in the array and is discarded, lazily, whenever it would otherwise
// reach the root. Returns ErrNodeNotFound if ordinal names no live
// element.
func (b *BinaryHeapBaseline) DecreaseKey(ordinal int, newKey Key) error {
	if ordinal < 0 || ordinal >= len(b.live) || !b.live[ordinal] {
		return ErrNodeNotFound
	}
	b.current[ordinal] = newKey
	b.push(binaryEntry{key: newKey, ordinal: ordinal})
	return nil
}

// Remove extracts the element with the given insertion ordinal from
// the heap, regardless of its key. Equivalent to
// DecreaseKey(ordinal, NegInf) followed by one Pop, which extracts it,
// exposed here as a single call for parity with the
// addressable heaps' Remove. Returns ErrNodeNotFound if ordinal names
// no live element.
func (b *BinaryHeapBaseline) Remove(ordinal int) (Key, error) {
	if ordinal < 0 || ordinal >= len(b.live) || !b.live[ordinal] {
		return 0, ErrNodeNotFound
	}
	key := b.current[ordinal]
	if err := b.DecreaseKey(ordinal, NegInf); err != nil {
		return 0, err
	}
	if _, err := b.Pop(); err != nil {
		return 0, err
	}
	return key, nil
}

// discardStaleRoots pops entries off the array root whose ordinal was
// already popped, or whose key no longer matches the ordinal's current
// key, meaning a decrease-key superseded them, until the true minimum
// surfaces.
func (b *BinaryHeapBaseline) discardStaleRoots() {
	for len(b.heap) > 0 {
		root := b.heap[0]
		if b.live[root.ordinal] && root.key == b.current[root.ordinal] {
			return
		}
		last := len(b.heap) - 1
		b.heap[0] = b.heap[last]
		b.heap = b.heap[:last]
		if len(b.heap) > 0 {
			b.siftDown(0)
		}
	}
}

func (b *BinaryHeapBaseline) push(entry binaryEntry) {
	b.heap = append(b.heap, entry)
	b.siftUp(len(b.heap) - 1)
}

func (b *BinaryHeapBaseline) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if b.heap[parent].key <= b.heap[i].key {
			break
		}
		b.heap[parent], b.heap[i] = b.heap[i], b.heap[parent]
		i = parent
	}
}

func (b *BinaryHeapBaseline) siftDown(i int) {
	n := len(b.heap)
	for {
		left := 2*i + 1
		right := left + 1
		smallest := i
		if left < n && b.heap[left].key < b.heap[smallest].key {
			smallest = left
		}
		if right < n && b.heap[right].key < b.heap[smallest].key {
			smallest = right
		}
		if smallest == i {
			return
		}
		b.heap[smallest], b.heap[i] = b.heap[i], b.heap[smallest]
		i = smallest
	}
}
