package biditrie

import "unsafe"

// searcher is the trait-like interface spec 4.6 and 9 describe: two
// behaviorally-identical implementations of the three byte-exact string
// search primitives, selected once at construction time. hL/hR are
// absolute byte offsets into the backing buffer (typically the haystack
// window); nL is an offset relative to char0.
type searcher interface {
	startsWith(hL, hR int, nL uint32, nLen int) bool
	indexOf(hL, hR int, nL uint32, nLen int) int
	lastIndexOf(hL, hR int, nL uint32, nLen int) int
}

// newSearcher picks the native (cgo) implementation when preferNative is
// set and the build and host support it, falling back to the portable Go
// implementation otherwise. Both must be behaviorally identical.
func newSearcher(buf *buffer, preferNative bool) searcher {
	if preferNative {
		if s, ok := newNativeSearcher(buf); ok {
			return s
		}
	}
	return &portableSearcher{buf: buf}
}

// hostIsLittleEndian reports the host's native byte order. The portable
// search path reads individual bytes and is endian-clean regardless; the
// native path is disabled on big-endian hosts (spec 6).
func hostIsLittleEndian() bool {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	return b[0] == 1
}

// StartsWith tests whether hL+nLen <= hR and the haystack bytes starting at
// hL equal the nLen needle bytes starting at char0+nL.
func (c *Container) StartsWith(hL, hR int, nL uint32, nLen int) bool {
	return c.search.startsWith(hL, hR, nL, nLen)
}

// IndexOf returns the leftmost position in [hL, hR-nLen] at which the
// needle occurs, or -1.
func (c *Container) IndexOf(hL, hR int, nL uint32, nLen int) int {
	return c.search.indexOf(hL, hR, nL, nLen)
}

// LastIndexOf returns the rightmost such position, or -1.
func (c *Container) LastIndexOf(hL, hR int, nL uint32, nLen int) int {
	return c.search.lastIndexOf(hL, hR, nL, nLen)
}
