package biditrie

// isEmptySegmentCell reports whether a normal cell has never had a segment
// written to it (word2 == 0, i.e. offset 0 and length 0).
func isEmptySegmentCell(b *buffer, idx uint32) bool {
	return b.word2(idx) == 0
}

// insertRight performs the right-hand radix-split descent of spec step 4.3:
// it walks/splits segment cells rooted at root to make room for a pattern
// of the given total length starting at internOffset, and returns the cell
// whose full match marks completion of this insertion (the cell addLeft
// should then splice a boundary onto).
func (c *Container) insertRight(root uint32, internOffset uint32, total int) uint32 {
	buf := c.buf

	if isEmptySegmentCell(buf, root) {
		buf.setSegment(root, internOffset, total)
		return root
	}

	icell := root
	al := 0
	for {
		off, length := buf.segmentInfo(icell)
		if length == 0 {
			// icell is a boundary cell reached mid-chain: an earlier,
			// shorter pattern already terminates here.
			if al == total {
				// This pattern is an exact duplicate of that shorter one;
				// ensureBoundary treats NEXT_AND like any other AND link.
				return icell
			}
			// Continue matching the remainder of this pattern via
			// NEXT_AND, splicing in a fresh continuation segment if one
			// does not exist yet.
			next := buf.word0(icell)
			if next == 0 {
				newCell := buf.allocateCell()
				buf.setSegment(newCell, internOffset+uint32(al), total-al)
				buf.setWord0(icell, newCell)
				return newCell
			}
			icell = next
			continue
		}

		if buf.charByteAt(off) != buf.charByteAt(internOffset+uint32(al)) {
			orIdx := buf.word1(icell)
			if orIdx == 0 {
				newCell := buf.allocateCell()
				buf.setSegment(newCell, internOffset+uint32(al), total-al)
				buf.setWord1(icell, newCell)
				return newCell
			}
			icell = orIdx
			continue
		}

		bi, al2 := 1, al+1
		for bi < length && al2 < total &&
			buf.charByteAt(off+uint32(bi)) == buf.charByteAt(internOffset+uint32(al2)) {
			bi++
			al2++
		}
		al = al2

		if bi == length {
			if al == total {
				return icell
			}
			andIdx := buf.word0(icell)
			if andIdx != 0 {
				icell = andIdx
				continue
			}
			newCell := buf.allocateCell()
			buf.setSegment(newCell, internOffset+uint32(al), total-al)
			buf.setWord0(icell, newCell)
			return newCell
		}

		// Partial segment match: split icell at bi.
		oldAnd := buf.word0(icell)
		tail := buf.allocateCell()
		buf.setSegment(tail, off+uint32(bi), length-bi)
		buf.setWord0(tail, oldAnd)
		buf.setWord1(tail, 0)
		buf.setSegment(icell, off, bi)
		buf.setWord0(icell, tail)

		if al == total {
			return icell
		}
		newCell := buf.allocateCell()
		buf.setSegment(newCell, internOffset+uint32(al), total-al)
		buf.setWord1(tail, newCell)
		return newCell
	}
}

// insertLeft is the mirror of insertRight: it inserts the leftLen bytes
// preceding the pivot (always the prefix [0, leftLen) of the same interned
// pattern, since the left trie always shrinks its remaining range from the
// high end), comparing and splitting segments from their tail byte backward
// rather than their head byte forward.
func (c *Container) insertLeft(root uint32, internOffset uint32, leftLen int) uint32 {
	buf := c.buf

	if isEmptySegmentCell(buf, root) {
		buf.setSegment(root, internOffset, leftLen)
		return root
	}

	icell := root
	consumed := 0
	for {
		off, length := buf.segmentInfo(icell)
		if length == 0 {
			// icell is a boundary cell reached mid-chain: an earlier,
			// shorter left pattern already terminates here.
			if consumed == leftLen {
				return icell
			}
			next := buf.word0(icell)
			if next == 0 {
				rem := leftLen - consumed
				newCell := buf.allocateCell()
				buf.setSegment(newCell, internOffset, rem)
				buf.setWord0(icell, newCell)
				return newCell
			}
			icell = next
			continue
		}

		segLast := buf.charByteAt(off + uint32(length-1))
		patByte := buf.charByteAt(internOffset + uint32(leftLen-1-consumed))
		if segLast != patByte {
			orIdx := buf.word1(icell)
			if orIdx == 0 {
				rem := leftLen - consumed
				newCell := buf.allocateCell()
				buf.setSegment(newCell, internOffset, rem)
				buf.setWord1(icell, newCell)
				return newCell
			}
			icell = orIdx
			continue
		}

		bi := 1
		for bi < length && consumed+bi < leftLen &&
			buf.charByteAt(off+uint32(length-1-bi)) == buf.charByteAt(internOffset+uint32(leftLen-1-consumed-bi)) {
			bi++
		}
		consumed += bi

		if bi == length {
			if consumed == leftLen {
				return icell
			}
			andIdx := buf.word0(icell)
			if andIdx != 0 {
				icell = andIdx
				continue
			}
			rem := leftLen - consumed
			newCell := buf.allocateCell()
			buf.setSegment(newCell, internOffset, rem)
			buf.setWord0(icell, newCell)
			return newCell
		}

		// Partial match: the matched suffix [length-bi, length) stays on
		// icell; the unmatched prefix becomes a tail cell inheriting the
		// old AND, mirroring insertRight's split.
		oldAnd := buf.word0(icell)
		tail := buf.allocateCell()
		buf.setSegment(tail, off, length-bi)
		buf.setWord0(tail, oldAnd)
		buf.setWord1(tail, 0)
		buf.setSegment(icell, off+uint32(length-bi), bi)
		buf.setWord0(icell, tail)

		if consumed == leftLen {
			return icell
		}
		rem := leftLen - consumed
		newCell := buf.allocateCell()
		buf.setSegment(newCell, internOffset, rem)
		buf.setWord1(tail, newCell)
		return newCell
	}
}

// ensureBoundary makes cell.AND a boundary cell, splicing a fresh one in if
// AND is zero or refers to a plain segment cell (the boundary cell
// placement rule of spec 4.3), and returns its index.
func (c *Container) ensureBoundary(cell uint32) uint32 {
	buf := c.buf
	and := buf.word0(cell)
	if and != 0 && buf.isBoundaryCell(and) {
		return and
	}
	b := buf.allocateCell()
	buf.setWord0(b, and) // NEXT_AND inherits whatever AND pointed to before
	buf.setWord1(b, 0)   // ALT_AND
	buf.setWord2(b, 0)   // EXTRA: no terminal yet
	buf.setWord0(cell, b)
	return b
}

// add inserts a pattern occupying [internOffset, internOffset+totalLen) of
// the character region, split at pivot into a right part walked from root
// and, if pivot > 0, a left part walked from the resulting boundary's
// ALT_AND. It returns the boundary cell the caller should annotate via
// SetExtra.
//
// pivot must satisfy 0 <= pivot < totalLen: the right part [pivot, totalLen)
// must be at least one byte. A zero-length right part can't be told apart
// from a virgin, never-inserted-into root cell under the word2-magnitude
// boundary/normal/empty discriminator (cell.go), which would otherwise let a
// root cell's first insertion be silently misread as a boundary cell with a
// fabricated EXTRA. Patterns with nothing to the right of their pivot aren't
// representable by this layout; route them through a pivot that leaves at
// least one byte on the right, or store the pattern reversed.
func (c *Container) add(root uint32, internOffset uint32, totalLen, pivot int) uint32 {
	if pivot < 0 || pivot >= totalLen {
		panic("biditrie: pivot must satisfy 0 <= pivot < totalLen")
	}
	rightLanded := c.insertRight(root, internOffset+uint32(pivot), totalLen-pivot)
	return c.addLeft(rightLanded, internOffset, pivot)
}

// addLeft ensures a boundary exists on rightLanded.AND and, unless that
// boundary already unconditionally dominates (EXTRA == 1), walks the left
// trie rooted at its ALT_AND for the pivot bytes preceding the right part.
func (c *Container) addLeft(rightLanded uint32, internOffset uint32, pivot int) uint32 {
	buf := c.buf
	rightBoundary := c.ensureBoundary(rightLanded)

	if buf.word2(rightBoundary) == 1 {
		return rightBoundary
	}
	if pivot == 0 {
		return rightBoundary
	}

	altRoot := buf.word1(rightBoundary)
	if altRoot == 0 {
		altRoot = buf.allocateCell()
		buf.setWord1(rightBoundary, altRoot)
	}

	leftLanded := c.insertLeft(altRoot, internOffset, pivot)
	return c.ensureBoundary(leftLanded)
}

// setExtra annotates a boundary cell with a caller-defined handle. value
// must be <= bcellExtraMax; 0 clears the terminal, 1 accepts unconditionally,
// anything else is passed to the extraHandler predicate at match time.
func (c *Container) setExtra(boundary uint32, value uint32) {
	if value > bcellExtraMax {
		panic("biditrie: extra value exceeds BCELL_EXTRA_MAX")
	}
	c.buf.setWord2(boundary, value)
}

func (c *Container) getExtra(boundary uint32) uint32 {
	return c.buf.word2(boundary)
}
