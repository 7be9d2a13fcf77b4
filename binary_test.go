package aheap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryHeapBaselineEmptyPops(t *testing.T) {
	b := NewBinaryHeapBaseline()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Size())

	_, err := b.Pop()
	assert.ErrorIs(t, err, ErrHeapEmpty)
	_, err = b.Peek()
	assert.ErrorIs(t, err, ErrHeapEmpty)
}

func TestBinaryHeapBaselineOrdering(t *testing.T) {
	b := NewBinaryHeapBaseline()
	for _, k := range []Key{5, 3, 8, 1, 7} {
		b.Add(k)
	}

	var popped []Key
	for !b.IsEmpty() {
		k, err := b.Pop()
		assert.NoError(t, err)
		popped = append(popped, k)
	}
	assert.Equal(t, []Key{1, 3, 5, 7, 8}, popped)
}

func TestBinaryHeapBaselineDecreaseKeyLeavesStaleEntry(t *testing.T) {
	b := NewBinaryHeapBaseline()
	b.Add(10)
	ord := b.Add(20)
	b.Add(30)

	assert.NoError(t, b.DecreaseKey(ord, 0))

	key, err := b.Peek()
	assert.NoError(t, err)
	assert.Equal(t, Key(0), key)

	var popped []Key
	for !b.IsEmpty() {
		k, err := b.Pop()
		assert.NoError(t, err)
		popped = append(popped, k)
	}
	assert.Equal(t, []Key{0, 10, 30}, popped)
}

func TestBinaryHeapBaselineRemoveMiddle(t *testing.T) {
	b := NewBinaryHeapBaseline()
	var ord9 int
	for _, k := range []Key{5, 2, 9, 1, 7, 3, 8} {
		ordinal := b.Add(k)
		if k == 9 {
			ord9 = ordinal
		}
	}

	removed, err := b.Remove(ord9)
	assert.NoError(t, err)
	assert.Equal(t, Key(9), removed)

	var popped []Key
	for !b.IsEmpty() {
		k, err := b.Pop()
		assert.NoError(t, err)
		popped = append(popped, k)
	}
	assert.Equal(t, []Key{1, 2, 3, 5, 7, 8}, popped)
}

func TestBinaryHeapBaselineStaleOrdinal(t *testing.T) {
	b := NewBinaryHeapBaseline()
	ord := b.Add(1)
	_, err := b.Pop()
	assert.NoError(t, err)

	err = b.DecreaseKey(ord, 0)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = b.Remove(ord)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	err = b.DecreaseKey(999, 0)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestBinaryHeapBaselineAddOnlyPopsNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	b := NewBinaryHeapBaseline()
	for i := 0; i < 500; i++ {
		b.Add(Key(rng.Intn(1000)))
	}

	prev, err := b.Pop()
	assert.NoError(t, err)
	for !b.IsEmpty() {
		k, err := b.Pop()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, k, prev)
		prev = k
	}
}

// TestBinaryHeapBaselineMatchesPairingHeap cross-validates the baseline
// against PairingHeap on an identical sequence of add/decrease/pop
// operations, the same cross-validation role spec.md assigns this
// baseline over both addressable heaps, checked across 100 random seeds.
func TestBinaryHeapBaselineMatchesPairingHeap(t *testing.T) {
	for seed := 0; seed < 100; seed++ {
		rng := rand.New(rand.NewSource(int64(seed)))
		b := NewBinaryHeapBaseline()
		p := NewPairingHeap(HeapConfig{})

		var pHandles []Handle
		var bOrdinals []int
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
				pHandles = append(pHandles, p.Add(k))
				bOrdinals = append(bOrdinals, b.Add(k))
				keys = append(keys, k)
				alive = append(alive, true)
			case rng.Intn(2) == 0:
				j := rng.Intn(len(pHandles))
				if !alive[j] {
					continue
				}
				nk := keys[j] - Key(rng.Intn(1<<10))
				assert.NoError(t, p.DecreaseKey(pHandles[j], nk))
				assert.NoError(t, b.DecreaseKey(bOrdinals[j], nk))
				keys[j] = nk
			default:
				if b.IsEmpty() {
					continue
				}
				pKey, err := p.Pop()
				assert.NoError(t, err)
				bKey, err := b.Pop()
				assert.NoError(t, err)
				assert.Equal(t, bKey, pKey)

				for idx, k := range keys {
					if alive[idx] && k == pKey {
						alive[idx] = false
						break
					}
				}
			}
		}
	}
}
