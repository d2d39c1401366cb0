// Package color turns CSS color strings into the fill and outline colors of
// plotted shapes.
package color

import (
	"fmt"
	imgcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

type Style struct {
	Fill   imgcolor.NRGBA
	Stroke imgcolor.NRGBA
}

// outlineDarken is how far toward black the outline is blended from the fill.
const outlineDarken = 0.35

// NewStyle parses css and scales its alpha by alpha for the fill. The outline
// is an opaque, darker version of the fill.
func NewStyle(css string, alpha float64) (Style, error) {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return Style{}, fmt.Errorf("invalid color %q: %w", css, err)
	}
	fill := colorful.Color{R: c.R, G: c.G, B: c.B}
	a := uint8(math.Round(c.A * alpha * 255))

	fr, fg, fb := fill.RGB255()
	sr, sg, sb := Darken(fill, outlineDarken).RGB255()
	return Style{
		Fill:   imgcolor.NRGBA{R: fr, G: fg, B: fb, A: a},
		Stroke: imgcolor.NRGBA{R: sr, G: sg, B: sb, A: 255},
	}, nil
}

// Darken blends c toward black in Lab space. amount 0 returns c, 1 returns black.
func Darken(c colorful.Color, amount float64) colorful.Color {
	return c.BlendLab(colorful.Color{}, amount).Clamped()
}
