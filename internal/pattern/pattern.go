// Package pattern implements the coat patterns: pure rules mapping a
// character position in the art to a coat color. A pattern is a tagged
// kind plus its bound colors; ColorAt is the single interpreter for
// every rule.
package pattern

import (
	"strings"

	"github.com/ninamew/catto/internal/colors"
)

// Kind tags the geometric rule a pattern uses.
type Kind int

const (
	KindSolid Kind = iota
	KindBicolor
	KindTabby
	KindCalico
	KindTortoiseshell
	KindColorpoint
	KindSmoke
	KindTuxedo
	KindPortraitBicolor
	KindPortraitGradient
	KindPortraitSilverTabby
	KindPortraitSilverWhite
	KindHeartOverlay
)

// Pattern is a coat pattern: a rule kind plus the colors bound to it.
// Patterns are immutable values; apply one with render.Colorize.
type Pattern struct {
	Name   string
	Kind   Kind
	Colors []colors.Name
}

// Line carries the per-row geometry shared by the rules: the row's
// position in the art and where its non-whitespace content sits.
type Line struct {
	Index int // 0-based row
	Total int // rows in the art
	Text  string

	// ContentLen is the row length with leading whitespace stripped.
	// Center is the midpoint column of that content, offset by the
	// leading whitespace count.
	ContentLen int
	Center     float64
}

// NewLine computes the geometry for one row.
func NewLine(text string, index, total int) Line {
	trimmed := strings.TrimLeft(text, " \t")
	lead := len(text) - len(trimmed)
	return Line{
		Index:      index,
		Total:      total,
		Text:       text,
		ContentLen: len(trimmed),
		Center:     float64(lead) + float64(len(trimmed))/2,
	}
}

// relative returns the row's vertical position as a fraction of the
// art's height.
func (ln Line) relative() float64 {
	if ln.Total == 0 {
		return 0
	}
	return float64(ln.Index) / float64(ln.Total)
}

// distFromCenter returns how far column col sits from the row's content
// midpoint.
func (ln Line) distFromCenter(col int) float64 {
	d := float64(col) - ln.Center
	if d < 0 {
		d = -d
	}
	return d
}

// ColorAt returns the color for the character ch at column col of ln.
// The second return is false when the character should stay uncolored
// (only the heart overlay's filler rune does that). Whitespace handling
// is the renderer's job; ColorAt assumes it is looking at a glyph.
func (p Pattern) ColorAt(ln Line, col int, ch rune) (colors.Name, bool) {
	switch p.Kind {
	case KindSolid:
		return p.Colors[0], true
	case KindBicolor:
		return bicolorAt(p, ln, col), true
	case KindTabby:
		return tabbyAt(p, ln), true
	case KindCalico:
		return calicoAt(ln, col), true
	case KindTortoiseshell:
		return tortoiseshellAt(ln, col), true
	case KindColorpoint:
		return colorpointAt(p, ln), true
	case KindSmoke:
		return smokeAt(p, col), true
	case KindTuxedo:
		return tuxedoAt(ln, col), true
	case KindPortraitBicolor:
		return portraitBicolorAt(p, ln, col), true
	case KindPortraitGradient:
		return portraitGradientAt(ln, col), true
	case KindPortraitSilverTabby:
		return portraitSilverTabbyAt(ln, col), true
	case KindPortraitSilverWhite:
		return portraitSilverWhiteAt(ln, col), true
	case KindHeartOverlay:
		return heartOverlayAt(ln, col, ch)
	default:
		return colors.Black, true
	}
}
