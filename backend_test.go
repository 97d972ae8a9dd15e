// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"fmt"
	"testing"

	"github.com/maruel/ut"
)

func TestNewBackend(t *testing.T) {
	t.Parallel()
	for _, f := range []Format{PNG, JPEG, SVG, EPS, PDF} {
		b, err := NewBackend(f)
		ut.AssertEqualIndex(t, int(f), nil, err)
		// Nothing can be drawn before the canvas exists.
		err = b.Draw(nil)
		ut.AssertEqualIndex(t, int(f), true, errors.Is(err, ErrBackend))
		_, err = b.Bytes()
		ut.AssertEqualIndex(t, int(f), true, errors.Is(err, ErrBackend))
		var be *BackendError
		ut.AssertEqualIndex(t, int(f), true, errors.As(err, &be))
		ut.AssertEqualIndex(t, int(f), f, be.Format)
	}
	_, err := NewBackend(Format(42))
	ut.AssertEqual(t, true, errors.Is(err, ErrConfiguration))
}

func TestCheckCanvas(t *testing.T) {
	t.Parallel()
	data := []struct {
		format Format
		canvas Vec
		ok     bool
	}{
		{SVG, Vec{1, 1}, true},
		{SVG, Vec{.5, 10}, false},
		{PDF, Vec{10, 0}, false},
		{EPS, Vec{100000, 100000}, true},
		{PNG, Vec{100000, 100000}, false},
		{JPEG, Vec{8192, 8192}, true},
	}
	for i, line := range data {
		err := checkCanvas(line.format, Layout{Canvas: line.canvas})
		ut.AssertEqualIndex(t, i, line.ok, err == nil)
		if err != nil {
			ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrBackend))
		}
	}
}

func TestLineStroke(t *testing.T) {
	t.Parallel()
	s := lineStroke(Stroke{Color: Black, Width: 2, Dash: []float64{4, 2}}, 2.5)
	ut.AssertEqual(t, Stroke{Color: Black, Width: 5, Dash: []float64{10, 5}}, s)
	s = lineStroke(Stroke{Color: White, Width: 2}, .5)
	ut.AssertEqual(t, Stroke{Color: White, Width: 1}, s)
}

func TestFixed(t *testing.T) {
	t.Parallel()
	data := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{10, "10"},
		{2.5, "2.5"},
		{1. / 3, "0.333"},
		{-0.0001, "0"},
		{-12.25, "-12.25"},
	}
	for i, line := range data {
		ut.AssertEqualIndex(t, i, line.expected, fixed(line.in))
	}
}

// recorder is a Painter logging the primitives it receives.
type recorder struct {
	ops []string
}

func (r *recorder) FillPolygon(points []Vec, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %s %d", c.Hex(), len(points)))
}

func (r *recorder) StrokePath(points []Vec, closed bool, s Stroke) {
	r.ops = append(r.ops, fmt.Sprintf("stroke %s %g %v closed=%t", s.Color.Hex(), s.Width, s.Dash, closed))
}

func (r *recorder) FillText(at Vec, text string, size float64, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %s %g %s", text, at, size, c.Hex()))
}
