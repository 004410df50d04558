// Package colors defines the closed set of coat colors and the table
// mapping each name to its terminal escape code.
package colors

import (
	"errors"
	"fmt"
)

// Name identifies a coat color.
type Name int

// The palette. Declaration order is load-bearing: the code table is
// built from it, so codes stay identical across runs.
const (
	Black Name = iota
	White
	Orange
	Ginger
	Cream
	Brown
	Chocolate
	Gray
	BlueGray
	Lilac
	Cinnamon
	Fawn
	Silver
	DarkOrange
	LightGray
	DarkGray
	Golden
	Auburn
	Tan
	ForestGreen
	PinkRed
	nameCount // Sentinel value for iteration
)

// String returns the snake_case name used in pattern names and listings.
func (n Name) String() string {
	switch n {
	case Black:
		return "black"
	case White:
		return "white"
	case Orange:
		return "orange"
	case Ginger:
		return "ginger"
	case Cream:
		return "cream"
	case Brown:
		return "brown"
	case Chocolate:
		return "chocolate"
	case Gray:
		return "gray"
	case BlueGray:
		return "blue_gray"
	case Lilac:
		return "lilac"
	case Cinnamon:
		return "cinnamon"
	case Fawn:
		return "fawn"
	case Silver:
		return "silver"
	case DarkOrange:
		return "dark_orange"
	case LightGray:
		return "light_gray"
	case DarkGray:
		return "dark_gray"
	case Golden:
		return "golden"
	case Auburn:
		return "auburn"
	case Tan:
		return "tan"
	case ForestGreen:
		return "forest_green"
	case PinkRed:
		return "pink_red"
	default:
		return "unknown"
	}
}

// All returns every palette name in declaration order.
func All() []Name {
	names := make([]Name, 0, nameCount)
	for n := Black; n < nameCount; n++ {
		names = append(names, n)
	}
	return names
}

// Code is a renderable terminal color escape sequence.
type Code string

// Reset returns the terminal to its default foreground color.
const Reset Code = "\x1b[0m"

// ansi256 holds the 256-color palette index for each name. Indices are
// hand-picked to read as the coat color on a dark terminal; no two
// names share an index.
var ansi256 = [nameCount]uint8{
	Black:       16,
	White:       231,
	Orange:      208,
	Ginger:      202,
	Cream:       230,
	Brown:       130,
	Chocolate:   94,
	Gray:        245,
	BlueGray:    103,
	Lilac:       183,
	Cinnamon:    173,
	Fawn:        180,
	Silver:      251,
	DarkOrange:  166,
	LightGray:   252,
	DarkGray:    238,
	Golden:      220,
	Auburn:      124,
	Tan:         179,
	ForestGreen: 28,
	PinkRed:     198,
}

// ErrUnknownColor reports a name outside the palette. A pattern asking
// for one is a bug; the table fails loudly instead of substituting a
// default.
var ErrUnknownColor = errors.New("colors: unknown color")

// Table resolves color names to renderable escape codes. Built once at
// startup and read-only afterwards.
type Table struct {
	codes [nameCount]Code
}

// NewTable builds the palette table from the declaration order above.
func NewTable() *Table {
	var t Table
	for n := Black; n < nameCount; n++ {
		t.codes[n] = Code(fmt.Sprintf("\x1b[38;5;%dm", ansi256[n]))
	}
	return &t
}

// Code resolves name to its escape code.
func (t *Table) Code(n Name) (Code, error) {
	if !t.Has(n) {
		return "", fmt.Errorf("%w: %d", ErrUnknownColor, int(n))
	}
	return t.codes[n], nil
}

// Has reports whether n is part of the palette.
func (t *Table) Has(n Name) bool {
	return n >= 0 && n < nameCount
}
