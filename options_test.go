// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"math"
	"testing"

	"github.com/maruel/ut"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       string
		expected Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{".png", PNG},
		{"jpeg", JPEG},
		{"jpg", JPEG},
		{"svg", SVG},
		{"eps", EPS},
		{"ps", EPS},
		{"pdf", PDF},
	}
	for i, line := range data {
		f, err := ParseFormat(line.in)
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, line.expected, f)
	}
	for i, in := range []string{"", "gif", "svgz"} {
		_, err := ParseFormat(in)
		ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrConfiguration))
	}
	ut.AssertEqual(t, "jpeg", JPEG.String())
	ut.AssertEqual(t, ".pdf", PDF.Ext())
	ut.AssertEqual(t, "Format(7)", Format(7).String())
	ut.AssertEqual(t, true, JPEG.IsRaster())
	ut.AssertEqual(t, false, SVG.IsRaster())
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, nil, (&Options{}).Validate())
	ut.AssertEqual(t, nil, (&Options{Format: PDF, Scale: 2, Width: 100, AspectRatio: 1.5}).Validate())
	data := []struct {
		opts  Options
		param string
	}{
		{Options{Format: Format(-1)}, "format"},
		{Options{Format: Format(5)}, "format"},
		{Options{Scale: -1}, "scale"},
		{Options{Width: -10}, "width"},
		{Options{Height: math.Inf(1)}, "height"},
		{Options{PixelsPerUnit: math.NaN()}, "pixels_per_unit"},
		{Options{AspectRatio: -.5}, "aspect_ratio"},
	}
	for i, line := range data {
		err := line.opts.Validate()
		ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrConfiguration))
		var c *ConfigurationError
		ut.AssertEqualIndex(t, i, true, errors.As(err, &c))
		ut.AssertEqualIndex(t, i, line.param, c.Param)
	}
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()
	o := Options{Format: SVG}.withDefaults()
	ut.AssertEqual(t, Options{Format: SVG, Scale: 1, PixelsPerUnit: DefaultPixelsPerUnit, AspectRatio: 1}, o)
	ut.AssertEqual(t, Constraints{Density: Vec{10, 10}, AspectRatio: 1}, o.constraints())
	o = Options{Scale: 2, AspectRatio: 2, Width: 50}.withDefaults()
	ut.AssertEqual(t, Constraints{Width: 50, Density: Vec{20, 40}, AspectRatio: 2}, o.constraints())
}
