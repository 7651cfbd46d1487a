package biditrie

import "testing"

func TestNewBufferHeaderInvariant(t *testing.T) {
	b := newBuffer(0, 0)
	if !b.checkHeader() {
		t.Fatal("fresh buffer violates trie0<=trie1<=char0<=char1<=len(data)")
	}
	if b.trie0() != headerEnd {
		t.Fatalf("trie0 = %d, want %d", b.trie0(), headerEnd)
	}
	if b.trie1() != b.trie0() || b.char1() != b.char0() {
		t.Fatal("fresh buffer should have empty trie and char regions")
	}
	if len(b.data) < 4*pageSize {
		t.Fatalf("buffer floor not applied: len=%d", len(b.data))
	}
}

func TestAllocateCellGrows(t *testing.T) {
	b := newBuffer(0, 0)
	char0 := b.char0()
	var last uint32
	for i := 0; i < 20000; i++ {
		last = b.allocateCell()
		if !b.checkHeader() {
			t.Fatalf("header invariant broken after %d allocations", i)
		}
	}
	if b.trie1() <= b.char0() && b.char0() == char0 {
		// Either trie1 grew within the original char0, or char0 moved to
		// make room -- both are valid, but trie1 must never exceed char0.
	}
	if b.trie1() > b.char0() {
		t.Fatalf("trie1 (%d) exceeds char0 (%d)", b.trie1(), b.char0())
	}
	if cellByteOffset(last)+cellSize > b.trie1() {
		t.Fatal("last allocated cell lies outside the trie region")
	}
}

func TestAllocatedCellIsZeroed(t *testing.T) {
	b := newBuffer(0, 0)
	idx := b.allocateCell()
	b.setWord0(idx, 0xdeadbeef)
	b.setWord1(idx, 0x11111111)
	b.setWord2(idx, 0x22222222)
	idx2 := b.allocateCell()
	if b.word0(idx2) != 0 || b.word1(idx2) != 0 || b.word2(idx2) != 0 {
		t.Fatal("freshly allocated cell is not zero-initialized")
	}
	_ = idx
}

func TestStoreStringAndExtract(t *testing.T) {
	b := newBuffer(0, 0)
	off, err := b.storeString([]byte("hello"))
	if err != nil {
		t.Fatalf("storeString: %v", err)
	}
	if got := b.extractString(off, 5); got != "hello" {
		t.Fatalf("extractString = %q, want %q", got, "hello")
	}
	off2, err := b.storeString([]byte("world!"))
	if err != nil {
		t.Fatalf("storeString: %v", err)
	}
	if got := b.extractString(off2, 6); got != "world!" {
		t.Fatalf("extractString = %q, want %q", got, "world!")
	}
	if got := b.extractString(off, 5); got != "hello" {
		t.Fatalf("first string corrupted after second store: got %q", got)
	}
}

func TestStoreStringTooLong(t *testing.T) {
	b := newBuffer(0, 0)
	data := make([]byte, maxStringLen+1)
	if _, err := b.storeString(data); err != ErrStringTooLong {
		t.Fatalf("storeString over limit: err = %v, want ErrStringTooLong", err)
	}
}

func TestSetHaystackTooLong(t *testing.T) {
	b := newBuffer(0, 0)
	data := make([]byte, haystackWindowSize+1)
	if err := b.setHaystack(data); err != ErrHaystackTooLong {
		t.Fatalf("setHaystack over limit: err = %v, want ErrHaystackTooLong", err)
	}
}

func TestResetTruncatesRegions(t *testing.T) {
	b := newBuffer(0, 0)
	b.allocateCell()
	b.allocateCell()
	if _, err := b.storeString([]byte("abc")); err != nil {
		t.Fatalf("storeString: %v", err)
	}
	b.reset()
	if b.trie1() != b.trie0() {
		t.Fatalf("trie1 (%d) != trie0 (%d) after reset", b.trie1(), b.trie0())
	}
	if b.char1() != b.char0() {
		t.Fatalf("char1 (%d) != char0 (%d) after reset", b.char1(), b.char0())
	}
	if b.haystackLen() != 0 {
		t.Fatal("haystackLen not cleared by reset")
	}
}

func TestShrinkBufPreservesContent(t *testing.T) {
	b := newBuffer(8*pageSize, 6*pageSize)
	idx := b.allocateCell()
	b.setSegment(idx, 0, 3)
	off, _ := b.storeString([]byte("xyz"))
	b.shrinkBuf()
	if !b.checkHeader() {
		t.Fatal("header invariant broken after shrink")
	}
	if got := b.extractString(off, 3); got != "xyz" {
		t.Fatalf("extractString after shrink = %q, want %q", got, "xyz")
	}
	o2, l2 := b.segmentInfo(idx)
	if l2 != 3 || o2 != 0 {
		t.Fatalf("segment info after shrink = (%d,%d), want (0,3)", o2, l2)
	}
}
