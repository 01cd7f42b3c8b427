// Package ngram implements the incremental 1/2/3-gram sliding window
// that sits between character normalization and profile lookup.
package ngram

import "github.com/textplane/langdetect/internal/charnorm"

// NullToken is returned by Get when no n-gram of the requested order is
// available yet, or when the candidate n-gram is made entirely of
// markers.
const NullToken = ""

// Generator holds the last three folded code points pushed into it and
// hands back the 1/2/3-gram ending at the most recent push. It carries
// an implicit leading marker so a word-initial 2-gram or 3-gram can
// form from the very first real character.
type Generator struct {
	buf        [3]rune
	filled     int
	prevMarker bool
}

// New returns a Generator primed with the implicit leading marker.
func New() *Generator {
	g := &Generator{prevMarker: true}
	g.buf[2] = charnorm.Marker
	g.filled = 1
	return g
}

// Push folds r and slides it into the window. Consecutive markers
// (word boundaries, runs of punctuation) collapse into a single
// marker so that e.g. "foo!!  bar" produces the same boundary as
// "foo bar".
func (g *Generator) Push(r rune) {
	f := charnorm.Fold(r)
	if f == charnorm.Marker && g.prevMarker {
		return
	}
	g.prevMarker = f == charnorm.Marker
	g.buf[0], g.buf[1], g.buf[2] = g.buf[1], g.buf[2], f
	if g.filled < 3 {
		g.filled++
	}
}

// Get returns the n-gram (n in 1..3) ending at the most recently
// pushed rune, or NullToken if the window holds fewer than n runes
// (the implicit leading marker counts as one) or the candidate n-gram
// is marker-only.
func (g *Generator) Get(n int) string {
	if n < 1 || n > 3 || g.filled < n {
		return NullToken
	}
	window := g.buf[3-n:]
	allMarker := true
	for _, r := range window {
		if r != charnorm.Marker {
			allMarker = false
			break
		}
	}
	if allMarker {
		return NullToken
	}
	return string(window)
}
