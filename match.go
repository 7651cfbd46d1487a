package biditrie

// matches tests whether some pattern stored under root has its pivot align
// at haystack position i. On success it sets the container-scoped $l, $r,
// $iu fields (leftmost matched index, one-past-right matched index, and the
// extraHandler's return value, or -1 for an unconditional accept).
//
// The walk treats a boundary cell and a continuation segment cell
// uniformly: after a segment fully matches, it moves to AND and loops,
// checking at the top of the loop whether the new cell is a boundary
// (evaluate EXTRA/ALT_AND/NEXT_AND) or another segment to keep matching.
func (c *Container) matches(root uint32, i int) bool {
	buf := c.buf
	hsLen := buf.haystackLen()
	if i < 0 || i > hsLen {
		return false
	}

	icell := root
	al := i
	for {
		if buf.isBoundaryCell(icell) {
			if ok := c.acceptBoundary(icell, i, al); ok {
				return true
			}
			next := buf.word0(icell) // NEXT_AND
			if next == 0 {
				return false
			}
			icell = next
			if al >= hsLen {
				return false
			}
			continue
		}

		icell = c.firstByteMatch(icell, al, hsLen)
		if icell == 0 {
			return false
		}

		off, length := buf.segmentInfo(icell)
		start := al
		al++
		if start+length > hsLen {
			return false
		}
		for k := 1; k < length; k++ {
			if buf.charByteAt(off+uint32(k)) != buf.data[al] {
				return false
			}
			al++
		}

		and := buf.word0(icell)
		if and == 0 {
			return false
		}
		icell = and
	}
}

// firstByteMatch walks the OR chain starting at icell until a segment cell
// whose first byte equals haystack[al] is found, returning 0 if the chain
// is exhausted or the haystack runs out.
func (c *Container) firstByteMatch(icell uint32, al, hsLen int) uint32 {
	buf := c.buf
	for icell != 0 {
		if buf.isBoundaryCell(icell) {
			return 0
		}
		if al >= hsLen {
			return 0
		}
		off, _ := buf.segmentInfo(icell)
		if buf.charByteAt(off) == buf.data[al] {
			return icell
		}
		icell = buf.word1(icell)
	}
	return 0
}

// matchesLeft is the mirror of matches: it consumes haystack bytes from
// al-1 down toward 0, comparing each stored left-segment from its last
// byte backward, and reports (leftmost matched index, finalR, handle) on
// the first accepted boundary.
func (c *Container) matchesLeft(root uint32, al, finalR int) bool {
	buf := c.buf
	icell := root
	for {
		if buf.isBoundaryCell(icell) {
			if ok := c.acceptBoundary(icell, al, finalR); ok {
				return true
			}
			next := buf.word0(icell) // NEXT_AND
			if next == 0 {
				return false
			}
			icell = next
			if al <= 0 {
				return false
			}
			continue
		}

		icell = c.lastByteMatchLeft(icell, al)
		if icell == 0 {
			return false
		}

		off, length := buf.segmentInfo(icell)
		al--
		if al-(length-1) < 0 {
			return false
		}
		for k := 1; k < length; k++ {
			if buf.charByteAt(off+uint32(length-1-k)) != buf.data[al-1] {
				return false
			}
			al--
		}

		and := buf.word0(icell)
		if and == 0 {
			return false
		}
		icell = and
	}
}

func (c *Container) lastByteMatchLeft(icell uint32, al int) uint32 {
	buf := c.buf
	for icell != 0 {
		if buf.isBoundaryCell(icell) {
			return 0
		}
		if al <= 0 {
			return 0
		}
		off, length := buf.segmentInfo(icell)
		if buf.charByteAt(off+uint32(length-1)) == buf.data[al-1] {
			return icell
		}
		icell = buf.word1(icell)
	}
	return 0
}

// acceptBoundary evaluates a boundary cell's EXTRA field and, if it does
// not itself terminate the match, recurses into the left trie via ALT_AND.
// On acceptance it records (l, r, handle) and returns true.
func (c *Container) acceptBoundary(boundary uint32, l, r int) bool {
	buf := c.buf
	extra := buf.word2(boundary)
	if extra != 0 {
		if extra == 1 {
			c.l, c.r, c.iu = l, r, -1
			return true
		}
		if c.extraHandler != nil {
			if handle := c.extraHandler(l, r, int(extra)); handle != 0 {
				c.l, c.r, c.iu = l, r, handle
				return true
			}
		}
	}
	altRoot := buf.word1(boundary) // ALT_AND
	if altRoot != 0 {
		return c.matchesLeft(altRoot, l, r)
	}
	return false
}
