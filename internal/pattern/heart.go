package pattern

import "github.com/ninamew/catto/internal/colors"

// HeartFiller is the background rune of the heart asset. It always
// passes through uncolored, whatever region it falls in.
const HeartFiller = '.'

// heartBounds maps a row of the heart asset to the first column of the
// heart glyphs on that row. Measured by hand against assets/heart.txt;
// the overlay only makes sense for that exact file.
var heartBounds = map[int]int{
	2:  14,
	3:  13,
	4:  12,
	5:  12,
	6:  13,
	7:  14,
	8:  15,
	9:  16,
	10: 17,
}

// HeartOverlay colors the companion piece forest green with the
// hand-measured heart region in pink.
func HeartOverlay() Pattern {
	return Pattern{Name: "heart", Kind: KindHeartOverlay}
}

func heartOverlayAt(ln Line, col int, ch rune) (colors.Name, bool) {
	if ch == HeartFiller {
		return colors.ForestGreen, false
	}
	if first, ok := heartBounds[ln.Index]; ok && col >= first {
		return colors.PinkRed, true
	}
	return colors.ForestGreen, true
}
