package biditrie

// Iterator performs a DFS over one trie's right-side text, yielding the
// path string of each right-side boundary cell once, as a decoded string.
// Patterns with identical right-side text share one boundary, so that text
// is yielded once however many patterns carry it; left-side text is never
// yielded. It follows spec 4.5's fork-stack design: a stack of
// (cellIndex, scratchLen) resume points rather than recursion, and a
// scratch buffer accumulating the path.
type Iterator struct {
	c       *Container
	cur     uint32
	stack   []iterFrame
	scratch []byte
	done    bool
}

type iterFrame struct {
	cell       uint32
	scratchLen int
}

// Iter returns a fresh Iterator over the given trie root.
func (c *Container) Iter(root uint32) *Iterator {
	it := &Iterator{c: c, cur: root, scratch: make([]byte, 0, 256)}
	if isEmptySegmentCell(c.buf, root) {
		it.done = true
	}
	return it
}

// Next returns the next stored right-side string and true, or ("", false)
// once the trie is exhausted.
func (it *Iterator) Next() (string, bool) {
	if it.done {
		return "", false
	}
	buf := it.c.buf
	for {
		if it.cur == 0 {
			if len(it.stack) == 0 {
				it.done = true
				return "", false
			}
			f := it.stack[len(it.stack)-1]
			it.stack = it.stack[:len(it.stack)-1]
			it.cur = f.cell
			it.scratch = it.scratch[:f.scratchLen]
			continue
		}

		if buf.isBoundaryCell(it.cur) {
			result := string(it.scratch)
			it.cur = buf.word0(it.cur) // NEXT_AND
			return result, true
		}

		off, length := buf.segmentInfo(it.cur)
		if orIdx := buf.word1(it.cur); orIdx != 0 {
			it.stack = append(it.stack, iterFrame{cell: orIdx, scratchLen: len(it.scratch)})
		}
		it.scratch = append(it.scratch, buf.charBytes(off, length)...)
		it.cur = buf.word0(it.cur) // AND
	}
}
