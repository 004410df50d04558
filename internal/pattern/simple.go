package pattern

import "github.com/ninamew/catto/internal/colors"

// Solid colors every glyph with c.
func Solid(c colors.Name) Pattern {
	return Pattern{
		Name:   "solid_" + c.String(),
		Kind:   KindSolid,
		Colors: []colors.Name{c},
	}
}

// Bicolor alternates a and b in diagonal bands.
func Bicolor(a, b colors.Name) Pattern {
	return Pattern{
		Name:   "bicolor_" + a.String() + "_" + b.String(),
		Kind:   KindBicolor,
		Colors: []colors.Name{a, b},
	}
}

func bicolorAt(p Pattern, ln Line, col int) colors.Name {
	if (ln.Index+col)%7 < 4 {
		return p.Colors[0]
	}
	return p.Colors[1]
}

// Tabby lays a stripe color over every third row of the base coat.
func Tabby(base, stripe colors.Name) Pattern {
	return Pattern{
		Name:   "tabby_" + base.String() + "_" + stripe.String(),
		Kind:   KindTabby,
		Colors: []colors.Name{base, stripe},
	}
}

func tabbyAt(p Pattern, ln Line) colors.Name {
	if ln.Index%3 == 0 {
		return p.Colors[1]
	}
	return p.Colors[0]
}

// Calico is the classic white/orange/black patchwork. Columns cycle
// through white and orange with an 11-column period; the third patch
// color itself cycles across 5-row bands.
func Calico() Pattern {
	return Pattern{Name: "calico", Kind: KindCalico}
}

var calicoPatches = [3]colors.Name{colors.White, colors.Orange, colors.Black}

func calicoAt(ln Line, col int) colors.Name {
	switch m := col % 11; {
	case m < 4:
		return colors.White
	case m < 7:
		return colors.Orange
	default:
		return calicoPatches[(ln.Index/5)%3]
	}
}

// Tortoiseshell mottles orange, black and ginger.
func Tortoiseshell() Pattern {
	return Pattern{Name: "tortoiseshell", Kind: KindTortoiseshell}
}

func tortoiseshellAt(ln Line, col int) colors.Name {
	switch m := (ln.Index*3 + col*7) % 5; {
	case m < 2:
		return colors.Orange
	case m < 4:
		return colors.Black
	default:
		return colors.Ginger
	}
}

// Colorpoint darkens the extremities: the outer fifth of rows at the
// top and bottom take the points color, the body keeps its own.
func Colorpoint(points, body colors.Name) Pattern {
	return Pattern{
		Name:   "colorpoint_" + points.String() + "_" + body.String(),
		Kind:   KindColorpoint,
		Colors: []colors.Name{points, body},
	}
}

func colorpointAt(p Pattern, ln Line) colors.Name {
	rel := ln.relative()
	if rel < 0.2 || rel >= 0.8 {
		return p.Colors[0]
	}
	return p.Colors[1]
}

// Smoke ticks every fourth column of the base coat with a lighter
// variant of it.
func Smoke(base colors.Name) Pattern {
	return Pattern{
		Name:   "smoke_" + base.String(),
		Kind:   KindSmoke,
		Colors: []colors.Name{base},
	}
}

func smokeAt(p Pattern, col int) colors.Name {
	if col%4 != 0 {
		return p.Colors[0]
	}
	switch p.Colors[0] {
	case colors.Black:
		return colors.DarkGray
	case colors.Gray:
		return colors.LightGray
	case colors.BlueGray:
		return colors.Silver
	default:
		return colors.Silver
	}
}

// Tuxedo paints a white bib on a black coat: the middle half of rows
// crossed with the middle third of each row's columns.
func Tuxedo() Pattern {
	return Pattern{Name: "tuxedo", Kind: KindTuxedo}
}

func tuxedoAt(ln Line, col int) colors.Name {
	rel := ln.relative()
	if rel < 0.25 || rel >= 0.75 {
		return colors.Black
	}
	width := len(ln.Text)
	if col >= width/3 && col < 2*width/3 {
		return colors.White
	}
	return colors.Black
}
