// Command bidiload loads a serialized BidiTrie image from disk, tests a
// pivot alignment against a haystack, and reports the match outcome.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/axiomhq/biditrie"
)

func main() {
	imagePath := flag.String("image", "", "path to a serialized BidiTrie image")
	haystack := flag.String("haystack", "", "haystack text to match against")
	pos := flag.Int("pos", 0, "haystack position to test for pivot alignment")
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "bidiload: -image is required")
		os.Exit(2)
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bidiload: read image: %v\n", err)
		os.Exit(1)
	}

	c := biditrie.NewContainer(biditrie.Options{})
	if err := c.Deserialize(image); err != nil {
		fmt.Fprintf(os.Stderr, "bidiload: deserialize: %v\n", err)
		os.Exit(1)
	}

	if *haystack != "" {
		if err := c.SetHaystack([]byte(*haystack)); err != nil {
			fmt.Fprintf(os.Stderr, "bidiload: set haystack: %v\n", err)
			os.Exit(1)
		}
	}

	session := uuid.New()
	h := c.Handle(c.RootCell())
	matched := h.Matches(*pos)
	l, r, iu := c.LastMatch()
	fmt.Printf("session=%s matched=%t l=%d r=%d iu=%d\n", session, matched, l, r, iu)
}
