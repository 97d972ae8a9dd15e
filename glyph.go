// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"
	fx "golang.org/x/image/math/fixed"
)

// monoOutlines is parsed on first use. A parsed font is safe for concurrent use as long as
// every caller brings its own sfnt.Buffer.
var monoOutlines = sync.OnceValues(func() (*sfnt.Font, error) {
	return sfnt.Parse(gomono.TTF)
})

// outline is one glyph path segment in output units. Only the first Args of a move or line
// are used.
type outline struct {
	Op   sfnt.SegmentOp
	Args [3]Vec
}

// textOutlines returns the glyph outlines of s set in Go Mono at size, with the baseline
// starting at at. Y grows downward like every other output coordinate.
func textOutlines(at Vec, s string, size float64) ([]outline, error) {
	f, err := monoOutlines()
	if err != nil {
		return nil, err
	}
	var b sfnt.Buffer
	ppem := fx.Int26_6(size * 64)
	var out []outline
	pen := at.X
	for _, r := range s {
		idx, err := f.GlyphIndex(&b, r)
		if err != nil {
			return nil, err
		}
		segs, err := f.LoadGlyph(&b, idx, ppem, nil)
		if err != nil {
			return nil, err
		}
		for _, sg := range segs {
			o := outline{Op: sg.Op}
			for i, p := range sg.Args {
				o.Args[i] = Vec{pen + unfix(p.X), at.Y + unfix(p.Y)}
			}
			out = append(out, o)
		}
		adv, err := f.GlyphAdvance(&b, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, err
		}
		pen += unfix(adv)
	}
	return out, nil
}

func unfix(v fx.Int26_6) float64 {
	return float64(v) / 64
}
