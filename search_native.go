//go:build cgo

package biditrie

/*
#include <string.h>
#include <stdint.h>

static int bt_starts_with(const uint8_t *h, const uint8_t *n, int64_t nlen) {
	return memcmp(h, n, (size_t)nlen) == 0;
}

static int64_t bt_index_of(const uint8_t *h, int64_t hlen, const uint8_t *n, int64_t nlen) {
	int64_t last = hlen - nlen;
	for (int64_t i = 0; i <= last; i++) {
		const uint8_t *hit = memchr(h + i, n[0], (size_t)(last - i + 1));
		if (hit == NULL) {
			return -1;
		}
		i = (int64_t)(hit - h);
		if (i > last) {
			return -1;
		}
		if (memcmp(h + i, n, (size_t)nlen) == 0) {
			return i;
		}
	}
	return -1;
}

static int64_t bt_last_index_of(const uint8_t *h, int64_t hlen, const uint8_t *n, int64_t nlen) {
	for (int64_t i = hlen - nlen; i >= 0; i--) {
		if (memcmp(h + i, n, (size_t)nlen) == 0) {
			return i;
		}
	}
	return -1;
}
*/
import "C"

import "unsafe"

// nativeSearcher mirrors simd_decoder.go's opt-in cgo pattern: a thin shim
// over libc's memcmp/memchr operating directly on the backing buffer, used
// in place of portableSearcher when cgo and a little-endian host are both
// available.
type nativeSearcher struct {
	buf *buffer
}

func newNativeSearcher(buf *buffer) (searcher, bool) {
	if !hostIsLittleEndian() {
		return nil, false
	}
	return &nativeSearcher{buf: buf}, true
}

func (s *nativeSearcher) ptr(pos int) *C.uint8_t {
	return (*C.uint8_t)(unsafe.Pointer(&s.buf.data[pos]))
}

func (s *nativeSearcher) startsWith(hL, hR int, nL uint32, nLen int) bool {
	if hL+nLen > hR {
		return false
	}
	if nLen == 0 {
		return true
	}
	return C.bt_starts_with(s.ptr(hL), s.ptr(s.buf.char0()+int(nL)), C.int64_t(nLen)) != 0
}

func (s *nativeSearcher) indexOf(hL, hR int, nL uint32, nLen int) int {
	hlen := hR - hL
	if nLen == 0 {
		if hL <= hR {
			return hL
		}
		return -1
	}
	if nLen > hlen {
		return -1
	}
	r := int64(C.bt_index_of(s.ptr(hL), C.int64_t(hlen), s.ptr(s.buf.char0()+int(nL)), C.int64_t(nLen)))
	if r < 0 {
		return -1
	}
	return hL + int(r)
}

func (s *nativeSearcher) lastIndexOf(hL, hR int, nL uint32, nLen int) int {
	hlen := hR - hL
	if nLen == 0 {
		if hL <= hR {
			return hR
		}
		return -1
	}
	if nLen > hlen {
		return -1
	}
	r := int64(C.bt_last_index_of(s.ptr(hL), C.int64_t(hlen), s.ptr(s.buf.char0()+int(nL)), C.int64_t(nLen)))
	if r < 0 {
		return -1
	}
	return hL + int(r)
}
