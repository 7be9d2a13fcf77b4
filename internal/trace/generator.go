package trace

import (
	"container/heap"
	"math/rand"
)

// Generator produces random traces with a requested composition: an
// initial batch of Add commands sized by Config.Size, followed by
// Config.Op further commands sampled by weight among add/decrease/pop.
// It maintains its own bookkeeping heap (container/heap, not the
// library under test) purely to know which ordinals are currently live
// and what their current keys are, the same role heapq plays in the
// reference generator this type is grounded on.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Stats summarizes a generated trace's composition, mirroring the
// tuple the reference generator returns for display purposes.
type Stats struct {
	Total   int
	Add     int
	Decr    int
	Pop     int
	MinVal  int64
	MaxVal  int64
}

// Generate produces size initial adds followed by op further commands
// sampled by weight among cfg's AddFreq/DecFreq/PopFreq; the draw is
// uniform over [0, AddFreq+DecFreq+PopFreq], so add carries one unit of
// weight more than AddFreq. A decrease or
// pop is re-sampled as an add whenever the heap is currently empty. A
// decrease always targets a currently live ordinal and always lowers
// its key by sampling uniformly in [cfg.MinVal, current key].
func (g *Generator) Generate(cfg Config) ([]Command, Stats) {
	commands := make([]Command, 0, cfg.Size+cfg.Op)
	bk := &bookkeepingHeap{}
	heap.Init(bk)

	current := make([]int64, 0, cfg.Size+cfg.Op)
	live := 0

	stats := Stats{MinVal: cfg.MinVal, MaxVal: cfg.MaxVal}

	push := func(key int64) int {
		ordinal := len(current)
		current = append(current, key)
		heap.Push(bk, bookkeepingEntry{key: key, ordinal: ordinal})
		live++
		return ordinal
	}

	for i := 0; i < cfg.Size; i++ {
		key := g.uniform(cfg.MinVal, cfg.MaxVal)
		push(key)
		commands = append(commands, Command{Kind: Add, Key: key})
		stats.Add++
	}

	totalFreq := cfg.AddFreq + cfg.DecFreq + cfg.PopFreq
	for i := 0; i < cfg.Op; i++ {
		action := g.rng.Intn(totalFreq + 1)
		switch {
		case action < cfg.DecFreq && live != 0:
			entry := g.sampleLive(bk, current)
			newKey := g.uniform(cfg.MinVal, entry.key)
			current[entry.ordinal] = newKey
			// An unchanged key keeps its existing entry; a duplicate would
			// still match current after the ordinal is popped.
			if newKey != entry.key {
				heap.Push(bk, bookkeepingEntry{key: newKey, ordinal: entry.ordinal})
			}
			commands = append(commands, Command{Kind: Decrease, Ordinal: entry.ordinal, Key: newKey})
			stats.Decr++
		case action < cfg.DecFreq+cfg.PopFreq && live != 0:
			for {
				top := heap.Pop(bk).(bookkeepingEntry)
				if current[top.ordinal] == top.key {
					live--
					break
				}
			}
			commands = append(commands, Command{Kind: Pop})
			stats.Pop++
		default:
			key := g.uniform(cfg.MinVal, cfg.MaxVal)
			push(key)
			commands = append(commands, Command{Kind: Add, Key: key})
			stats.Add++
		}
	}

	stats.Total = cfg.Size + cfg.Op
	return commands, stats
}

// sampleLive repeatedly samples a uniformly random entry from the
// bookkeeping heap's backing array until it finds one whose key still
// matches the ordinal's current key, i.e. one that hasn't since been
// superseded by an earlier decrease or already popped.
func (g *Generator) sampleLive(bk *bookkeepingHeap, current []int64) bookkeepingEntry {
	for {
		entry := (*bk)[g.rng.Intn(len(*bk))]
		if current[entry.ordinal] == entry.key {
			return entry
		}
	}
}

func (g *Generator) uniform(lo, hi int64) int64 {
	if lo >= hi {
		return lo
	}
	return lo + g.rng.Int63n(hi-lo+1)
}

type bookkeepingEntry struct {
	key     int64
	ordinal int
}

type bookkeepingHeap []bookkeepingEntry

func (h bookkeepingHeap) Len() int            { return len(h) }
func (h bookkeepingHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h bookkeepingHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bookkeepingHeap) Push(x any) {
	*h = append(*h, x.(bookkeepingEntry))
}
func (h *bookkeepingHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
