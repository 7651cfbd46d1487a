package biditrie

// portableSearcher implements the three search primitives directly over
// the backing buffer with plain byte comparisons. This keeps it
// endian-clean regardless of host byte order (spec 6), since it never
// reads a multi-byte word.
type portableSearcher struct {
	buf *buffer
}

func (s *portableSearcher) needle(nL uint32, nLen int) []byte {
	return s.buf.charBytes(nL, nLen)
}

func (s *portableSearcher) startsWith(hL, hR int, nL uint32, nLen int) bool {
	if hL+nLen > hR {
		return false
	}
	n := s.needle(nL, nLen)
	h := s.buf.data[hL : hL+nLen]
	for i := range n {
		if h[i] != n[i] {
			return false
		}
	}
	return true
}

func (s *portableSearcher) indexOf(hL, hR int, nL uint32, nLen int) int {
	if nLen == 0 {
		if hL <= hR {
			return hL
		}
		return -1
	}
	n := s.needle(nL, nLen)
	last := hR - nLen
	for pos := hL; pos <= last; pos++ {
		if matchAt(s.buf.data, pos, n) {
			return pos
		}
	}
	return -1
}

func (s *portableSearcher) lastIndexOf(hL, hR int, nL uint32, nLen int) int {
	if nLen == 0 {
		if hL <= hR {
			return hR
		}
		return -1
	}
	n := s.needle(nL, nLen)
	for pos := hR - nLen; pos >= hL; pos-- {
		if matchAt(s.buf.data, pos, n) {
			return pos
		}
	}
	return -1
}

func matchAt(data []byte, pos int, n []byte) bool {
	for i := range n {
		if data[pos+i] != n[i] {
			return false
		}
	}
	return true
}
