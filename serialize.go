package biditrie

import "encoding/base64"

// Serialize returns the buffer bytes [0, char1) rounded up to a 4-byte
// unit, self-describing via its embedded header slots (spec 4.7).
func (c *Container) Serialize() []byte {
	n := c.buf.char1()
	n = (n + 3) &^ 3
	out := make([]byte, n)
	copy(out, c.buf.data[:n])
	return out
}

// Deserialize restores a Container's full state (haystack window, header
// slots, trie cells, interned characters) from a byte image produced by
// Serialize.
func (c *Container) Deserialize(image []byte) error {
	if len(image) == 0 {
		return ErrEmptyImage
	}
	if len(image) < headerEnd {
		return ErrCorruptImage
	}

	needed := roundUpPage(len(image))
	if needed > len(c.buf.data) {
		c.buf.data = make([]byte, needed)
	} else {
		clear(c.buf.data)
	}
	copy(c.buf.data, image)

	if !c.buf.checkHeader() {
		return ErrCorruptImage
	}
	c.search = newSearcher(c.buf, true)
	c.dedupFilter = nil
	c.dedupIndex = nil
	return nil
}

// Encoder wraps a serialized image, e.g. for transport over a text-only
// channel. Decoder reverses the wrapping. Both are optional collaborators:
// Serialize/Deserialize operate on the raw image by default.
type Encoder interface {
	Encode(image []byte) []byte
}

// Decoder reverses an Encoder's wrapping, returning ErrCorruptImage if the
// wrapped payload's declared length does not match the decoded image.
type Decoder interface {
	Decode(wrapped []byte) ([]byte, error)
}

// Base64Encoder wraps a serialized image as base64 text prefixed by a
// 4-byte little-endian length header, so a truncated or corrupted
// transfer is detectable before the (potentially large) base64 payload is
// decoded.
type Base64Encoder struct{}

func (Base64Encoder) Encode(image []byte) []byte {
	hdr := make([]byte, 4)
	putUint32LE(hdr, uint32(len(image)))
	enc := base64.StdEncoding.EncodeToString(image)
	out := make([]byte, 0, len(hdr)+len(enc))
	out = append(out, hdr...)
	out = append(out, enc...)
	return out
}

func (Base64Encoder) Decode(wrapped []byte) ([]byte, error) {
	if len(wrapped) < 4 {
		return nil, ErrEmptyImage
	}
	want := getUint32LE(wrapped[:4])
	if base64.StdEncoding.EncodedLen(int(want)) != len(wrapped)-4 {
		return nil, ErrCorruptImage
	}
	image, err := base64.StdEncoding.DecodeString(string(wrapped[4:]))
	if err != nil {
		return nil, err
	}
	if uint32(len(image)) != want {
		return nil, ErrCorruptImage
	}
	return image, nil
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getUint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
