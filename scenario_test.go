package biditrie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axiomhq/biditrie"
)

// storePattern interns s and adds it to h split at pivot, returning the
// boundary cell so the caller can annotate it with SetExtra.
func storePattern(t *testing.T, c *biditrie.Container, h *biditrie.TrieHandle, s string, pivot int) uint32 {
	t.Helper()
	off, err := c.StoreString([]byte(s))
	require.NoError(t, err)
	return h.Add(off, len(s), pivot)
}

// TestScenarioPivotSplit covers the "-images/ad-" example: a single
// pattern split at "ad" matched against a longer haystack, checking the
// $l/$r side channel lands on the surrounding boundary characters.
func TestScenarioPivotSplit(t *testing.T) {
	c := biditrie.NewContainer(biditrie.Options{})
	h := c.NewHandle()

	b := storePattern(t, c, h, "-images/ad-", 8) // left="-images/", right="ad-"
	h.SetExtra(b, 1)

	haystack := "http://x/-images/ad-banner"
	require.NoError(t, c.SetHaystack([]byte(haystack)))

	require.True(t, h.Matches(17)) // position of "ad" within haystack
	l, r, iu := c.LastMatch()
	require.Equal(t, 9, l)
	require.Equal(t, 20, r)
	require.Equal(t, -1, iu)
}

// TestScenarioSharedRightDistinctLeft covers two patterns sharing an
// identical right-hand segment ("ad.") but differing on the left
// ("/google_" vs "/images_"), verifying the left trie's OR-branch picks
// the correct one.
func TestScenarioSharedRightDistinctLeft(t *testing.T) {
	c := biditrie.NewContainer(biditrie.Options{})
	h := c.NewHandle()

	bg := storePattern(t, c, h, "/google_ad.", 8)
	h.SetExtra(bg, 1)
	bi := storePattern(t, c, h, "/images_ad.", 8)
	h.SetExtra(bi, 1)

	require.NoError(t, c.SetHaystack([]byte("/images_ad.gif")))

	require.True(t, h.Matches(8))
	l, r, iu := c.LastMatch()
	require.Equal(t, 0, l)
	require.Equal(t, 11, r)
	require.Equal(t, -1, iu) // EXTRA==1 accepts unconditionally regardless of which left branch matched

	require.NoError(t, c.SetHaystack([]byte("/google_ad.gif")))
	require.True(t, h.Matches(8))
	l, r, _ = c.LastMatch()
	require.Equal(t, 0, l)
	require.Equal(t, 11, r)
}

// TestScenarioPivotZero covers a pattern with no left-hand text: pivot 0
// means the entire pattern is the right-hand walk and no left trie is
// ever consulted.
func TestScenarioPivotZero(t *testing.T) {
	c := biditrie.NewContainer(biditrie.Options{})
	h := c.NewHandle()

	b := storePattern(t, c, h, "ad", 0)
	h.SetExtra(b, 1)

	require.NoError(t, c.SetHaystack([]byte("gonnabuyad")))
	require.True(t, h.Matches(8))
	l, r, _ := c.LastMatch()
	require.Equal(t, l, r-2)
}

// TestScenarioResetDiscardsPatterns covers reset(): after Reset, a fresh
// handle over the same container accepts nothing until new patterns are
// added.
func TestScenarioResetDiscardsPatterns(t *testing.T) {
	c := biditrie.NewContainer(biditrie.Options{})
	h := c.NewHandle()

	b := storePattern(t, c, h, "ad", 0)
	h.SetExtra(b, 1)
	require.NoError(t, c.SetHaystack([]byte("buyad")))
	require.True(t, h.Matches(3))

	c.Reset()
	h2 := c.NewHandle()
	require.NoError(t, c.SetHaystack([]byte("buyad")))
	require.False(t, h2.Matches(3))
}

// TestScenarioExtraHandlerTieBreak covers a boundary cell whose EXTRA is
// overwritten: the extraHandler only accepts id 9, so after SetExtra(7)
// the match fails and after SetExtra(9) it succeeds, reporting the
// handler's return value.
func TestScenarioExtraHandlerTieBreak(t *testing.T) {
	handler := func(l, r, extraID int) int {
		if extraID == 9 {
			return 42
		}
		return 0
	}
	c := biditrie.NewContainer(biditrie.Options{ExtraHandler: handler})
	h := c.NewHandle()
	require.NoError(t, c.SetHaystack([]byte("buyad")))

	b1 := storePattern(t, c, h, "ad", 0)
	h.SetExtra(b1, 7)
	require.False(t, h.Matches(3))

	b2 := storePattern(t, c, h, "ad", 0)
	require.Equal(t, b1, b2, "identical pattern must land on the same boundary cell")
	h.SetExtra(b2, 9)

	require.True(t, h.Matches(3))
	_, _, iu := c.LastMatch()
	require.Equal(t, 42, iu)
}

// TestScenarioManyPatternsRoundTrip inserts a batch of distinct patterns,
// serializes the container, restores it into a fresh one, and checks every
// pattern still matches identically.
func TestScenarioManyPatternsRoundTrip(t *testing.T) {
	c := biditrie.NewContainer(biditrie.Options{})
	h := c.NewHandle()

	type pat struct {
		s          string
		pivot      int
		haystack   string
		pos        int
	}
	pats := []pat{
		{"-images/ad-", 8, "http://x/-images/ad-banner", 17},
		{"/google_ad.", 8, "/google_ad.gif", 8},
		{"/images_ad.", 8, "/images_ad.gif", 8},
		{"banner.gif", 0, "site.com/banner.gif", 9},
		{"ad", 0, "buyad", 3},
		{"tracker.js", 7, "//cdn/tracker.js", 13},
	}
	boundaries := make([]uint32, len(pats))
	for i, p := range pats {
		boundaries[i] = storePattern(t, c, h, p.s, p.pivot)
		h.SetExtra(boundaries[i], 1)
	}

	image := c.Serialize()
	require.NotEmpty(t, image)

	c2 := biditrie.NewContainer(biditrie.Options{})
	require.NoError(t, c2.Deserialize(image))
	h2 := c2.Handle(c2.RootCell())

	for _, p := range pats {
		require.NoError(t, c.SetHaystack([]byte(p.haystack)))
		require.True(t, h.Matches(p.pos), "pattern %q failed to match before round trip", p.s)
		l, r, iu := c.LastMatch()

		require.NoError(t, c2.SetHaystack([]byte(p.haystack)))
		require.True(t, h2.Matches(p.pos), "pattern %q failed to match after round trip", p.s)
		l2, r2, iu2 := c2.LastMatch()
		require.Equal(t, l, l2, "pattern %q: $l changed across round trip", p.s)
		require.Equal(t, r, r2, "pattern %q: $r changed across round trip", p.s)
		require.Equal(t, iu, iu2, "pattern %q: $iu changed across round trip", p.s)
	}
}
