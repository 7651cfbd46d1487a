//go:build !cgo

package biditrie

// newNativeSearcher is unavailable without cgo; newSearcher falls back to
// portableSearcher.
func newNativeSearcher(buf *buffer) (searcher, bool) {
	return nil, false
}
