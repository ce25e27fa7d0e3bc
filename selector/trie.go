package selector

type node[O any] struct {
	children map[any]*node[O]
	value    O
	set      bool
}

func newNode[O any]() *node[O] {
	return &node[O]{children: make(map[any]*node[O])}
}

// Trie is a bounded table addressed by a path of keys.
//
// Entries are written into the head generation. Once the head holds maxSize
// entries the older generation is dropped and the head becomes the older one.
type Trie[O any] struct {
	generations [2]*node[O]
	headIdx     int
	size        uint32
	maxSize     uint32
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Trie[O]{
		generations: [2]*node[O]{newNode[O](), newNode[O]()},
		maxSize:     maxSize,
	}
}

func (t *Trie[O]) Load(keys []any) (O, bool) {
	if len(keys) == 0 {
		panic("load: empty keys")
	}
	for _, idx := range [2]int{t.headIdx, 1 - t.headIdx} {
		if n := lookup(t.generations[idx], keys); n != nil && n.set {
			return n.value, true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []any, value O) {
	if len(keys) == 0 {
		panic("store: empty keys")
	}
	n := t.generations[t.headIdx]
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			child = newNode[O]()
			n.children[k] = child
		}
		n = child
	}
	if !n.set {
		if t.size == t.maxSize {
			t.rotate()
			t.Store(keys, value)
			return
		}
		t.size++
	}
	n.value = value
	n.set = true
}

// Reset drops both generations.
func (t *Trie[O]) Reset() {
	t.generations = [2]*node[O]{newNode[O](), newNode[O]()}
	t.size = 0
}

func (t *Trie[O]) rotate() {
	t.headIdx = 1 - t.headIdx
	t.generations[t.headIdx] = newNode[O]()
	t.size = 0
}

func lookup[O any](n *node[O], keys []any) *node[O] {
	for _, k := range keys {
		child, ok := n.children[k]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
