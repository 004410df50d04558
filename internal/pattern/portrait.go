package pattern

import "github.com/ninamew/catto/internal/colors"

// The portraits generalize the tuxedo idea: vertical zones, each with a
// distance threshold scaled by the row's content length. Thresholds
// widen going down the image so the chest color flares out from a
// narrow blaze into the belly. All of them were tuned by eye against
// the bundled silhouette.

// PortraitBicolor is the cap-and-blaze model: back color everywhere the
// character sits farther from the row center than the zone threshold,
// chest color inside it.
func PortraitBicolor(back, chest colors.Name) Pattern {
	return Pattern{
		Name:   "portrait_" + back.String() + "_" + chest.String(),
		Kind:   KindPortraitBicolor,
		Colors: []colors.Name{back, chest},
	}
}

func portraitBicolorAt(p Pattern, ln Line, col int) colors.Name {
	back, chest := p.Colors[0], p.Colors[1]
	rel := ln.relative()

	// Cap zone: no blaze at all.
	if rel < 0.08 {
		return back
	}

	// Blaze widens through the face, then the body zones open up.
	var threshold float64
	switch {
	case rel < 0.13:
		threshold = 0.06
	case rel < 0.22:
		threshold = 0.12
	case rel < 0.34:
		threshold = 0.18
	case rel < 0.5:
		threshold = 0.25
	case rel < 0.7:
		threshold = 0.3
	case rel < 0.85:
		threshold = 0.4
	default:
		threshold = 0.45
	}

	if ln.distFromCenter(col) > threshold*float64(ln.ContentLen) {
		return back
	}
	return chest
}

// PortraitGradient is the warm brown/gold coat: darker at the edges,
// warmer toward the center, in five vertical zones.
func PortraitGradient() Pattern {
	return Pattern{Name: "portrait_gradient", Kind: KindPortraitGradient}
}

func portraitGradientAt(ln Line, col int) colors.Name {
	dist := ln.distFromCenter(col)
	cl := float64(ln.ContentLen)
	switch rel := ln.relative(); {
	case rel < 0.15:
		switch {
		case dist > 0.30*cl:
			return colors.Chocolate
		case dist > 0.15*cl:
			return colors.Brown
		default:
			return colors.Ginger
		}
	case rel < 0.35:
		switch {
		case dist > 0.35*cl:
			return colors.Chocolate
		case dist > 0.20*cl:
			return colors.Brown
		default:
			return colors.Golden
		}
	case rel < 0.65:
		switch {
		case dist > 0.38*cl:
			return colors.Brown
		case dist > 0.22*cl:
			return colors.Ginger
		default:
			return colors.Golden
		}
	case rel < 0.85:
		switch {
		case dist > 0.40*cl:
			return colors.Brown
		case dist > 0.25*cl:
			return colors.Ginger
		default:
			return colors.Orange
		}
	default:
		switch {
		case dist > 0.30*cl:
			return colors.Chocolate
		case dist > 0.18*cl:
			return colors.Ginger
		default:
			return colors.Orange
		}
	}
}

// PortraitSilverTabby crosses the zone model with a striping signal and
// drops occasional tan patches plus a white tail tip in the bottom
// zone.
func PortraitSilverTabby() Pattern {
	return Pattern{Name: "portrait_silver_tabby", Kind: KindPortraitSilverTabby}
}

func portraitSilverTabbyAt(ln Line, col int) colors.Name {
	dist := ln.distFromCenter(col)
	cl := float64(ln.ContentLen)
	rel := ln.relative()

	// Tail tip stays solid white.
	if rel >= 0.85 && dist < 0.15*cl {
		return colors.White
	}

	// Tan accent patches off the main stripe rhythm.
	if ln.Index%6 == 0 && dist > 0.25*cl {
		return colors.Tan
	}
	if ln.Index%7 == 2 && dist <= 0.25*cl {
		return colors.Tan
	}

	if dist > 0.4*cl {
		return colors.Gray
	}
	if ln.Index%4 < 2 {
		return colors.DarkGray
	}
	return colors.Silver
}

// PortraitSilverWhite is the gray-back, white-chest-and-belly coat in
// six vertical zones.
func PortraitSilverWhite() Pattern {
	return Pattern{Name: "portrait_silver_white", Kind: KindPortraitSilverWhite}
}

func portraitSilverWhiteAt(ln Line, col int) colors.Name {
	dist := ln.distFromCenter(col)
	cl := float64(ln.ContentLen)
	switch rel := ln.relative(); {
	case rel < 0.1:
		if dist > 0.25*cl {
			return colors.DarkGray
		}
		return colors.Gray
	case rel < 0.3:
		switch {
		case dist > 0.30*cl:
			return colors.DarkGray
		case dist > 0.15*cl:
			return colors.Gray
		default:
			return colors.Silver
		}
	case rel < 0.5:
		switch {
		case dist > 0.35*cl:
			return colors.Gray
		case dist > 0.20*cl:
			return colors.Silver
		default:
			return colors.White
		}
	case rel < 0.7:
		switch {
		case dist > 0.40*cl:
			return colors.Gray
		case dist > 0.22*cl:
			return colors.LightGray
		default:
			return colors.White
		}
	case rel < 0.85:
		switch {
		case dist > 0.42*cl:
			return colors.Silver
		case dist > 0.25*cl:
			return colors.LightGray
		default:
			return colors.White
		}
	default:
		if dist > 0.30*cl {
			return colors.LightGray
		}
		return colors.White
	}
}
