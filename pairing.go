package aheap

// pairingNode is a node in a pairing heap tree. Each node holds a first
// child and a doubly-linked sibling chain (nextSibling/prevSibling); the
// prevSibling link is what lets decrease-key cut a node out of an arbitrary
// position in its parent's child list in O(1) rather than scanning from
// firstChild to find the predecessor.
type pairingNode struct {
	id          string
	key         Key
	parent      *pairingNode
	firstChild  *pairingNode
	nextSibling *pairingNode
	prevSibling *pairingNode
}

// clearPairingLinks resets every linking pointer on a node. Used before a
// node is returned to the pool so a future Get starts from a clean slate.
func clearPairingLinks(node *pairingNode) {
	node.parent = nil
	node.firstChild = nil
	node.nextSibling = nil
	node.prevSibling = nil
}

// PairingHeap is an addressable min-heap implemented as a pairing heap: a
// single-rooted multi-way tree in which each node holds a first child and a
// right sibling. Add, DecreaseKey, and Remove hand out and accept Handles
// that stay valid across any amount of internal tree surgery.
type PairingHeap struct {
	root            *pairingNode
	size            int
	elements        map[string]*pairingNode
	pool            pool[*pairingNode]
	idGen           IDGenerator
	checkInvariants bool
}

// NewPairingHeap creates an empty pairing heap. See HeapConfig for pooling,
// handle-ID generation, and invariant-checking options.
func NewPairingHeap(config HeapConfig) *PairingHeap {
	return &PairingHeap{
		elements:        make(map[string]*pairingNode),
		pool:            newPool(config.UsePool, func() *pairingNode { return &pairingNode{} }),
		idGen:           config.GetGenerator(),
		checkInvariants: !config.SkipInvariantChecks,
	}
}

// Size returns the number of elements currently in the heap.
func (p *PairingHeap) Size() int { return p.size }

// Length is a heapcraft-style alias for Size.
func (p *PairingHeap) Length() int { return p.size }

// IsEmpty reports whether the heap contains no elements.
func (p *PairingHeap) IsEmpty() bool { return p.size == 0 }

// Clone returns a deep copy of the heap: every node is reallocated
// through the pool and re-linked to its counterpart in the copy, so
// mutating the clone (or cutting/melding within it) never touches the
// original's nodes. Handles from the original are valid on the clone,
// since ids are copied verbatim.
func (p *PairingHeap) Clone() *PairingHeap {
	elements := make(map[string]*pairingNode, len(p.elements))
	for _, node := range p.elements {
		cloned := p.pool.Get()
		cloned.id = node.id
		cloned.key = node.key
		cloned.parent = node.parent
		cloned.firstChild = node.firstChild
		cloned.nextSibling = node.nextSibling
		cloned.prevSibling = node.prevSibling
		elements[node.id] = cloned
	}

	for _, node := range elements {
		if node.parent != nil {
			node.parent = elements[node.parent.id]
		}
		if node.firstChild != nil {
			node.firstChild = elements[node.firstChild.id]
		}
		if node.nextSibling != nil {
			node.nextSibling = elements[node.nextSibling.id]
		}
		if node.prevSibling != nil {
			node.prevSibling = elements[node.prevSibling.id]
		}
	}

	var root *pairingNode
	if p.root != nil {
		root = elements[p.root.id]
	}

	return &PairingHeap{
		root:            root,
		size:            p.size,
		elements:        elements,
		pool:            p.pool,
		idGen:           p.idGen,
		checkInvariants: p.checkInvariants,
	}
}

// Peek returns the minimum key without removing it. Returns ErrHeapEmpty if
// the heap is empty.
func (p *PairingHeap) Peek() (Key, error) {
	if p.size == 0 {
		return 0, ErrHeapEmpty
	}
	return p.root.key, nil
}

// meld combines two disjoint, non-nil trees into one, returning the new
// root. The tree with the smaller key becomes the root and the other
// becomes its new first child, splicing in front of the existing child
// list. Equal keys keep the first argument as root, a deterministic
// tie-break.
func (p *PairingHeap) meld(a, b *pairingNode) *pairingNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	var prior, other *pairingNode
	if b.key < a.key {
		prior, other = b, a
	} else {
		prior, other = a, b
	}

	if prior.firstChild != nil {
		prior.firstChild.prevSibling = other
	}
	other.nextSibling = prior.firstChild
	other.prevSibling = nil
	other.parent = prior
	prior.firstChild = other
	return prior
}

// merge performs the classical two-pass pairing process on a sibling chain:
// left-to-right, melding consecutive pairs; then right-to-left, folding the
// resulting pair-roots into a single tree.
func (p *PairingHeap) merge(first *pairingNode) *pairingNode {
	if first == nil {
		return nil
	}

	var pairs []*pairingNode
	node := first
	for node != nil {
		a := node
		b := a.nextSibling
		if b == nil {
			a.nextSibling, a.prevSibling = nil, nil
			pairs = append(pairs, a)
			break
		}
		node = b.nextSibling
		a.nextSibling, a.prevSibling = nil, nil
		b.nextSibling, b.prevSibling = nil, nil
		pairs = append(pairs, p.meld(a, b))
	}

	acc := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		acc = p.meld(acc, pairs[i])
	}
	return acc
}

// Add inserts key into the heap and returns a Handle naming the new
// element. Amortized O(1).
func (p *PairingHeap) Add(key Key) Handle {
	node := p.pool.Get()
	clearPairingLinks(node)
	node.id = p.idGen.Next()
	node.key = key
	p.elements[node.id] = node
	p.root = p.meld(p.root, node)
	p.size++
	return Handle{id: node.id}
}

// Pop removes and returns the minimum key. Returns ErrHeapEmpty, with the
// heap left unchanged, if the heap is empty.
func (p *PairingHeap) Pop() (Key, error) {
	if p.size == 0 {
		return 0, ErrHeapEmpty
	}

	removed := p.root
	p.root = p.merge(removed.firstChild)
	if p.root != nil {
		p.root.parent = nil
	}
	p.size--
	delete(p.elements, removed.id)
	key := removed.key
	clearPairingLinks(removed)
	p.pool.Put(removed)
	return key, nil
}

// DecreaseKey lowers the key of the element named by handle to newKey. The
// caller must guarantee newKey <= the element's current key; unless the
// heap was built with HeapConfig.SkipInvariantChecks set, a larger newKey
// is rejected with ErrInvariantViolation and the heap is left unchanged.
// Returns ErrNodeNotFound if handle is stale.
func (p *PairingHeap) DecreaseKey(handle Handle, newKey Key) error {
	node, ok := p.elements[handle.id]
	if !ok {
		return ErrNodeNotFound
	}
	if p.checkInvariants && newKey > node.key {
		return ErrInvariantViolation
	}

	node.key = newKey
	if node.parent == nil || node.key >= node.parent.key {
		return nil
	}

	p.cut(node)
	p.root = p.meld(p.root, node)
	return nil
}

// cut splices node out of its parent's child list, maintaining the sibling
// chain on both sides, and clears node's parent/sibling links.
func (p *PairingHeap) cut(node *pairingNode) {
	if node.prevSibling != nil {
		node.prevSibling.nextSibling = node.nextSibling
	} else {
		node.parent.firstChild = node.nextSibling
	}
	if node.nextSibling != nil {
		node.nextSibling.prevSibling = node.prevSibling
	}
	node.parent, node.nextSibling, node.prevSibling = nil, nil, nil
}

// Remove extracts the element named by handle from the heap, regardless of
// its key, and returns its key. Equivalent to DecreaseKey(handle, NegInf)
// followed by Pop. Returns ErrNodeNotFound if handle is stale.
func (p *PairingHeap) Remove(handle Handle) (Key, error) {
	node, ok := p.elements[handle.id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	key := node.key
	node.key = NegInf
	if node.parent != nil {
		p.cut(node)
		p.root = p.meld(p.root, node)
	}

	if _, err := p.Pop(); err != nil {
		return 0, err
	}
	return key, nil
}
