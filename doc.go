// Package biditrie implements a bidirectional segment trie: a compact
// structure that stores (left, right) pattern pairs sharing a common pivot
// and answers "does some stored pattern's pivot align at haystack position i"
// in time proportional to the matched prefix/suffix length and branch fan-out.
//
// # Overview
//
// Unlike a conventional trie, BidiTrie keeps nodes, interned character data,
// and the haystack itself in one growable byte buffer. There is no per-node
// allocation and no pointer chasing: every cell is addressed by a small
// integer word index into that buffer. Insertion splits stored segments on
// the first byte mismatch (radix-style); matching walks outward from a pivot
// in both directions, right first and then, if a boundary demands it, left.
//
// # When to Use BidiTrie
//
// BidiTrie is suited to anchor-style filter matching:
//   - URL/path filter lists where patterns are split around a fixed anchor
//     (e.g. "-images/ad-" anchored at "ad")
//   - Any matcher that needs many candidate patterns tested at a single
//     haystack position without re-scanning from scratch
//   - Workloads that want to restore a prebuilt matcher instantly from a
//     serialized image instead of rebuilding it from source patterns
//
// # When NOT to Use BidiTrie
//
// BidiTrie is not suitable for:
//   - General substring search without a known pivot alignment
//   - Unicode-normalized or case-folded matching (matching is byte-exact)
//   - Workloads requiring pattern deletion (reset is bulk-only)
//   - Concurrent mutation from multiple writers
//
// # Basic Usage
//
//	c := biditrie.NewContainer(biditrie.Options{})
//	h := c.NewHandle()
//
//	off, _ := c.StoreString([]byte("-images/ad-"))
//	b := h.Add(off, 11, 8) // pivot at "ad"
//	h.SetExtra(b, 1)       // accept unconditionally
//
//	c.SetHaystack([]byte("http://x/-images/ad-banner"))
//	if h.Matches(17) {
//	    l, r, _ := c.LastMatch()
//	    _ = c.Haystack()[l:r]
//	}
//
// # Performance Characteristics
//
// Insertion and matching are both O(matched length + fan-out at each branch).
// Buffer growth is amortized (page-aligned) and invalidates cached byte-slice
// references; callers must re-acquire slices (such as the one Haystack
// returns) after any call that grows or resizes the buffer, or after
// Deserialize.
// Serialization is a byte-for-byte copy of the live buffer truncated to its
// used length; deserialization reverses that copy and re-reads four header
// offsets, making restart from a cached selfie effectively free compared to
// rebuilding the trie from source patterns.
package biditrie
