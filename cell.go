package biditrie

// A cell is a fixed 12-byte record holding three packed 32-bit words and is
// identified everywhere by its word index (byte offset / 4); index 0 is
// reserved as the "none" sentinel since trie0 is always > 0.
//
// Normal cell (branch on a segment):
//
//	word0 AND       child cell reached when the segment matches (0 = none)
//	word1 OR        sibling cell to try on first-byte mismatch (0 = none)
//	word2 SEGMENT   (length<<24)|offsetIntoCharRegion, length in 1..255
//
// Boundary cell (marks the end of a stored pattern):
//
//	word0 NEXT_AND  next normal cell to continue matching (0 = none)
//	word1 ALT_AND   root of the left-side trie walked from this pivot
//	word2 EXTRA     0 = no terminal, 1 = unconditional accept, else a handle
//
// Boundary vs normal is distinguished purely by the magnitude of word2:
// segment length is always >= 1 for a normal cell, so word2 > bcellExtraMax
// there, while EXTRA is capped at bcellExtraMax for a boundary cell.

func cellByteOffset(idx uint32) int { return int(idx) * 4 }

func (b *buffer) word0(idx uint32) uint32 { return b.u32(cellByteOffset(idx)) }
func (b *buffer) word1(idx uint32) uint32 { return b.u32(cellByteOffset(idx) + 4) }
func (b *buffer) word2(idx uint32) uint32 { return b.u32(cellByteOffset(idx) + 8) }

func (b *buffer) setWord0(idx, v uint32) { b.putU32(cellByteOffset(idx), v) }
func (b *buffer) setWord1(idx, v uint32) { b.putU32(cellByteOffset(idx)+4, v) }
func (b *buffer) setWord2(idx, v uint32) { b.putU32(cellByteOffset(idx)+8, v) }

// isBoundaryCell reports whether idx holds a boundary cell, i.e. its word2
// decodes to segment length 0.
func (b *buffer) isBoundaryCell(idx uint32) bool {
	return b.word2(idx) <= bcellExtraMax
}

// segmentInfo decodes a normal cell's packed word2 into (offset, length),
// where offset is relative to char0.
func (b *buffer) segmentInfo(idx uint32) (offset uint32, length int) {
	w := b.word2(idx)
	length = int(w >> 24)
	offset = w & bcellExtraMax
	return
}

// setSegment packs a (offset, length) pair into a normal cell's word2.
func (b *buffer) setSegment(idx uint32, offset uint32, length int) {
	b.setWord2(idx, (uint32(length)<<24)|(offset&bcellExtraMax))
}

// charByteAt reads one byte at an absolute char-region-relative offset.
func (b *buffer) charByteAt(offset uint32) byte {
	return b.data[b.char0()+int(offset)]
}

func (b *buffer) charBytes(offset uint32, length int) []byte {
	start := b.char0() + int(offset)
	return b.data[start : start+length]
}
