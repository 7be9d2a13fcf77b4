package aheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairingHeapEmptyPops(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Size())

	_, err := h.Pop()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	_, err = h.Peek()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	assert.Equal(t, 0, h.Size())
}

func TestPairingHeapSingleton(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	h.Add(42)

	key, err := h.Peek()
	assert.NoError(t, err)
	assert.Equal(t, Key(42), key)

	key, err = h.Pop()
	assert.NoError(t, err)
	assert.Equal(t, Key(42), key)
	assert.True(t, h.IsEmpty())
}

func TestPairingHeapTwoPassInterior(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	for _, k := range []Key{5, 3, 8, 1, 7} {
		h.Add(k)
	}

	var popped []Key
	for !h.IsEmpty() {
		k, err := h.Pop()
		assert.NoError(t, err)
		popped = append(popped, k)
	}
	assert.Equal(t, []Key{1, 3, 5, 7, 8}, popped)
}

func TestPairingHeapDecreaseAcrossSubtree(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	h.Add(10)
	h.Add(20)
	handle := h.Add(30)
	h.Add(40)

	assert.NoError(t, h.DecreaseKey(handle, 0))

	var popped []Key
	for !h.IsEmpty() {
		k, err := h.Pop()
		assert.NoError(t, err)
		popped = append(popped, k)
	}
	assert.Equal(t, []Key{0, 10, 20, 40}, popped)
}

func TestPairingHeapRemoveMiddle(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	var h9 Handle
	for _, k := range []Key{5, 2, 9, 1, 7, 3, 8} {
		handle := h.Add(k)
		if k == 9 {
			h9 = handle
		}
	}

	removed, err := h.Remove(h9)
	assert.NoError(t, err)
	assert.Equal(t, Key(9), removed)

	var popped []Key
	for !h.IsEmpty() {
		k, err := h.Pop()
		assert.NoError(t, err)
		popped = append(popped, k)
	}
	assert.Equal(t, []Key{1, 2, 3, 5, 7, 8}, popped)
}

func TestPairingHeapAddOnlyPopsNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := NewPairingHeap(HeapConfig{})
	for i := 0; i < 500; i++ {
		h.Add(Key(rng.Intn(1000)))
	}

	prev, err := h.Pop()
	assert.NoError(t, err)
	for !h.IsEmpty() {
		k, err := h.Pop()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, k, prev)
		prev = k
	}
}

func TestPairingHeapRemoveAddLeavesHeapUnchanged(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	h.Add(1)
	h.Add(2)
	sizeBefore := h.Size()
	peekBefore, _ := h.Peek()

	handle := h.Add(99)
	_, err := h.Remove(handle)
	assert.NoError(t, err)

	assert.Equal(t, sizeBefore, h.Size())
	peekAfter, _ := h.Peek()
	assert.Equal(t, peekBefore, peekAfter)
}

func TestPairingHeapLengthMatchesSize(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	h.Add(1)
	h.Add(2)
	h.Add(3)
	assert.Equal(t, h.Size(), h.Length())
}

func TestPairingHeapCloneIsIndependent(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	h1 := h.Add(5)
	h.Add(2)
	h.Add(8)
	h.Add(1)

	clone := h.Clone()
	assert.Equal(t, h.Size(), clone.Size())

	peekBefore, _ := clone.Peek()
	assert.NoError(t, h.DecreaseKey(h1, -10))
	assert.NoError(t, clone.DecreaseKey(h1, 0))

	origKey, err := h.Peek()
	assert.NoError(t, err)
	assert.Equal(t, Key(-10), origKey)

	cloneKey, err := clone.Peek()
	assert.NoError(t, err)
	assert.NotEqual(t, origKey, cloneKey)
	_ = peekBefore

	var origPopped, clonePopped []Key
	for !h.IsEmpty() {
		k, err := h.Pop()
		assert.NoError(t, err)
		origPopped = append(origPopped, k)
	}
	for !clone.IsEmpty() {
		k, err := clone.Pop()
		assert.NoError(t, err)
		clonePopped = append(clonePopped, k)
	}
	assert.Equal(t, []Key{-10, 1, 2, 8}, origPopped)
	assert.Equal(t, []Key{0, 1, 2, 8}, clonePopped)
}

func TestPairingHeapDecreaseKeyViolationRejected(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	handle := h.Add(10)

	err := h.DecreaseKey(handle, 20)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	key, _ := h.Peek()
	assert.Equal(t, Key(10), key)
}

func TestPairingHeapDecreaseKeySkipChecks(t *testing.T) {
	h := NewPairingHeap(HeapConfig{SkipInvariantChecks: true})
	handle := h.Add(10)

	err := h.DecreaseKey(handle, 20)
	assert.NoError(t, err)
}

func TestPairingHeapStaleHandle(t *testing.T) {
	h := NewPairingHeap(HeapConfig{})
	handle := h.Add(1)
	_, err := h.Pop()
	assert.NoError(t, err)

	err = h.DecreaseKey(handle, 0)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = h.Remove(handle)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

// TestPairingHeapMixedWorkloadMatchesBruteForce drives add/decrease/pop
// against the heap and cross-validates every pop against a brute-force scan
// of a plain slice tracking the same elements, mirroring spec.md's
// mixed-workload equivalence property across 100 random seeds.
func TestPairingHeapMixedWorkloadMatchesBruteForce(t *testing.T) {
	for seed := 0; seed < 100; seed++ {
		rng := rand.New(rand.NewSource(int64(seed)))
		h := NewPairingHeap(HeapConfig{})

		var handles []Handle
		var keys []Key
		var alive []bool

		for i := 0; i < 10000; i++ {
			liveCount := 0
			for _, a := range alive {
				if a {
					liveCount++
				}
			}

			switch {
			case liveCount == 0 || rng.Intn(3) == 0:
				k := Key(rng.Intn(1 << 20))
				handles = append(handles, h.Add(k))
				keys = append(keys, k)
				alive = append(alive, true)
			case rng.Intn(2) == 0:
				j := rng.Intn(len(handles))
				if !alive[j] {
					continue
				}
				nk := keys[j] - Key(rng.Intn(1<<10))
				assert.NoError(t, h.DecreaseKey(handles[j], nk))
				keys[j] = nk
			default:
				bestIdx := -1
				for idx, a := range alive {
					if a && (bestIdx == -1 || keys[idx] < keys[bestIdx]) {
						bestIdx = idx
					}
				}
				if bestIdx == -1 {
					continue
				}
				got, err := h.Pop()
				assert.NoError(t, err)
				assert.Equal(t, keys[bestIdx], got)
				alive[bestIdx] = false
			}
		}
	}
}
