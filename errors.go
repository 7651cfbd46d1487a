package biditrie

import "errors"

// ErrEmptyImage is returned by Deserialize when the supplied image has zero length.
var ErrEmptyImage = errors.New("biditrie: empty serialized image")

// ErrCorruptImage is returned by Deserialize when the header slots recovered
// from a copied-in image violate trie0 <= trie1 <= char0 <= char1 <= len(buf).
var ErrCorruptImage = errors.New("biditrie: corrupt serialized image")

// ErrStringTooLong is returned by StoreString when a segment exceeds the
// 255-byte limit imposed by the packed SEGMENT_INFO length field.
var ErrStringTooLong = errors.New("biditrie: string exceeds 255 bytes")

// ErrHaystackTooLong is returned when a caller's haystack does not fit the
// fixed 2048-byte haystack window.
var ErrHaystackTooLong = errors.New("biditrie: haystack exceeds window size")
