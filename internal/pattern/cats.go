package pattern

import "github.com/ninamew/catto/internal/colors"

// The named cats. Each is a portrait model bound to that cat's actual
// coat; they are reachable only by explicit selection, never by the
// random draw.

// Jennycatto is the house tuxedo: black back, white blaze and chest.
func Jennycatto() Pattern {
	p := PortraitBicolor(colors.Black, colors.White)
	p.Name = "jennycatto"
	return p
}

// Persephone wears the same cap-and-blaze cut in gray over cream.
func Persephone() Pattern {
	p := PortraitBicolor(colors.Gray, colors.Cream)
	p.Name = "persephone"
	return p
}

// Iggy is the warm brown/gold gradient.
func Iggy() Pattern {
	p := PortraitGradient()
	p.Name = "iggy"
	return p
}

// Lucy is the silver tabby with tan patches and a white tail tip.
func Lucy() Pattern {
	p := PortraitSilverTabby()
	p.Name = "lucy"
	return p
}

// Cassandra is the silver-and-white bicolor.
func Cassandra() Pattern {
	p := PortraitSilverWhite()
	p.Name = "cassandra"
	return p
}

// Portraits returns the named cats in listing order.
func Portraits() []Pattern {
	return []Pattern{Iggy(), Lucy(), Cassandra(), Persephone(), Jennycatto()}
}
