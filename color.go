// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	// ShapeFill is the fill of closed shapes without a style.
	ShapeFill = Color{0x88 / 255., 0x88 / 255., 0xdd / 255., 1}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A*0xffff + .5)
	r = uint32(c.R*c.A*0xffff + .5)
	g = uint32(c.G*c.A*0xffff + .5)
	b = uint32(c.B*c.A*0xffff + .5)
	return
}

// Hex returns the #rrggbb form of the color, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// String implements fmt.Stringer on Color.
func (c Color) String() string {
	if c.A == 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s/%g", c.Hex(), c.A)
}

// ParseColor parses #rgb or #rrggbb.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("color %q can't be parsed", s)
	}
	if len(s) == 4 {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if len(s) != 7 {
		return Color{}, fmt.Errorf("color %q not of valid length", s)
	}
	if strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
		return Color{}, fmt.Errorf("color %q is not hexadecimal", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("color %q can't be parsed: %w", s, err)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

// colorFromComponents builds a color from 3 or 4 components in [0, 1].
func colorFromComponents(v []float64) (Color, error) {
	if len(v) != 3 && len(v) != 4 {
		return Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(v))
	}
	for _, f := range v {
		if f < 0 || f > 1 || math.IsNaN(f) {
			return Color{}, fmt.Errorf("color component %g not in [0, 1]", f)
		}
	}
	c := Color{v[0], v[1], v[2], 1}
	if len(v) == 4 {
		c.A = v[3]
	}
	return c, nil
}

// over composites c over the opaque color bg.
func (c Color) over(bg Color) Color {
	return Color{
		R: c.R*c.A + bg.R*(1-c.A),
		G: c.G*c.A + bg.G*(1-c.A),
		B: c.B*c.A + bg.B*(1-c.A),
		A: 1,
	}
}

// textColor returns an accessible text color to use on top of a supplied background color. The
// formula used for calculating whether the contrast is accessible comes from a W3 working group
// paper on accessibility at http://www.w3.org/TR/AERT. The recommended contrast is a brightness
// difference of at least 125 and a color difference of at least 500. The default text color is
// black, so the color difference for text is just the sum of the components.
func textColor(bg Color) Color {
	r, g, b := int(bg.R*255+.5), int(bg.G*255+.5), int(bg.B*255+.5)
	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return White
	}
	return Black
}
