package biditrie

// TrieHandle is a lightweight reference to one root cell inside a
// Container. Multiple handles may share one Container's buffer, and a
// Container's char0-relative offsets mean strings interned for one handle
// are freely reusable by another.
type TrieHandle struct {
	c    *Container
	root uint32
	size int
}

// Add inserts a pattern occupying [internOffset, internOffset+totalLen) of
// the character region, split at pivot, and returns the boundary cell the
// caller should annotate via SetExtra. Add panics if pivot is not in
// [0, totalLen), since a zero-length right part can't be represented
// without ambiguity against a virgin root cell (see Container.add).
func (h *TrieHandle) Add(internOffset uint32, totalLen, pivot int) uint32 {
	b := h.c.add(h.root, internOffset, totalLen, pivot)
	h.size++
	return b
}

// GetExtra reads a boundary cell's EXTRA field.
func (h *TrieHandle) GetExtra(boundary uint32) uint32 {
	return h.c.getExtra(boundary)
}

// SetExtra annotates a boundary cell with a caller-defined handle. 0
// clears the terminal, 1 accepts unconditionally, anything else is routed
// through the Container's extraHandler at match time.
func (h *TrieHandle) SetExtra(boundary uint32, value uint32) {
	h.c.setExtra(boundary, value)
}

// Matches tests whether some pattern in this trie has its pivot align at
// haystack position i. See Container.LastMatch for the side-channel
// outputs on success.
func (h *TrieHandle) Matches(i int) bool {
	return h.c.matches(h.root, i)
}

// Iter returns a fresh Iterator over this trie's right-side text.
func (h *TrieHandle) Iter() *Iterator {
	return h.c.Iter(h.root)
}

// Size returns the number of Add calls made against this handle.
func (h *TrieHandle) Size() int {
	return h.size
}

// Root returns the handle's root cell index, primarily for tests and
// serialization diagnostics.
func (h *TrieHandle) Root() uint32 {
	return h.root
}
