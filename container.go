package biditrie

import "github.com/axiomhq/biditrie/internal/fuzzset"

// Options configures a new Container. ByteLength is an advisory initial
// capacity; the effective capacity is rounded up to a page and floored at
// 4 pages. Char0 is an advisory initial byte offset for the character
// region, rounded up to a page; it defaults to half the effective capacity
// when zero or too small to follow the header. ExtraHandler may be nil only if no stored pattern will ever use
// an EXTRA value other than 0 or 1.
type Options struct {
	ByteLength   int
	Char0        int
	ExtraHandler func(l, r, extraID int) int
}

// Container owns the backing buffer, the four region offsets embedded in
// it, and an optional extraHandler predicate. It is single-writer,
// multi-reader: callers must ensure no Add/Reset/Deserialize runs
// concurrently with Matches or iteration (spec 5). $l/$r/$iu are
// Container-scoped, so parallel matchers need separate Containers.
type Container struct {
	buf          *buffer
	extraHandler func(l, r, extraID int) int
	search       searcher

	l, r, iu int

	dedupFilter *fuzzset.Set
	dedupIndex  map[string]uint32
}

// NewContainer creates a Container with the given options.
func NewContainer(opts Options) *Container {
	buf := newBuffer(opts.ByteLength, opts.Char0)
	c := &Container{
		buf:          buf,
		extraHandler: opts.ExtraHandler,
	}
	c.search = newSearcher(buf, true)
	return c
}

// NewHandle allocates a fresh, empty trie root in this container's buffer.
func (c *Container) NewHandle() *TrieHandle {
	root := c.buf.allocateCell()
	return &TrieHandle{c: c, root: root}
}

// Handle wraps an existing root cell index as a TrieHandle, e.g. one
// recovered via RootCell after Deserialize.
func (c *Container) Handle(root uint32) *TrieHandle {
	return &TrieHandle{c: c, root: root}
}

// RootCell returns the word index of the first cell ever allocated from
// this container, i.e. trie0/4. For the common case of exactly one
// TrieHandle per Container, this recovers the handle's root after
// Deserialize without needing to persist it out-of-band.
func (c *Container) RootCell() uint32 {
	return uint32(c.buf.trie0() / 4)
}

// SetHaystack copies data into the shared haystack window and records its
// length.
func (c *Container) SetHaystack(data []byte) error {
	return c.buf.setHaystack(data)
}

// Haystack returns the current haystack content. The returned slice
// aliases the buffer and is invalidated by the next growth or Deserialize.
func (c *Container) Haystack() []byte {
	return c.buf.haystack()
}

// StoreString interns bytes into the character region and returns an
// offset relative to char0 for later use with Add.
func (c *Container) StoreString(data []byte) (uint32, error) {
	return c.buf.storeString(data)
}

// StoreStringDeduped is like StoreString but reuses the offset of an
// already-interned identical string when one exists, so repeated literal
// runs shared across many patterns (a filter list's "://" or "/ad",
// say) are appended to the character region only once. A fuzzset
// prefilter gates the exact map lookup; a prefilter miss always falls
// through to a fresh StoreString, so a false positive can never return an
// incorrect offset.
func (c *Container) StoreStringDeduped(data []byte) (uint32, error) {
	if c.dedupFilter == nil {
		c.dedupFilter = fuzzset.New(4096, 4)
		c.dedupIndex = make(map[string]uint32)
	}
	if c.dedupFilter.MaybeContains(data) {
		if off, ok := c.dedupIndex[string(data)]; ok {
			return off, nil
		}
	}
	off, err := c.buf.storeString(data)
	if err != nil {
		return 0, err
	}
	c.dedupFilter.Insert(data)
	c.dedupIndex[string(data)] = off
	return off, nil
}

// ExtractString decodes a byte range of the character region as a string,
// for presentation only; it is never used on the match hot path.
func (c *Container) ExtractString(offset uint32, n int) string {
	return c.buf.extractString(offset, n)
}

// LastMatch returns the side-channel outputs of the most recent successful
// Matches call: leftmost matched index, one-past-right matched index, and
// the extraHandler's return value (-1 for an unconditional accept).
func (c *Container) LastMatch() (l, r, iu int) {
	return c.l, c.r, c.iu
}

// Reset truncates the trie and character regions, discarding all content
// at once. Existing TrieHandles become invalid; call NewHandle again.
func (c *Container) Reset() {
	c.buf.reset()
	c.dedupFilter = nil
	c.dedupIndex = nil
}

// Optimize shrinks the backing buffer to fit its current content.
func (c *Container) Optimize() {
	c.buf.shrinkBuf()
}
