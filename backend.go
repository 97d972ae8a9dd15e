// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"fmt"
	"strconv"
)

// Backend turns drawables into one output format.
//
// Create must be called first, then Draw any number of times, then Bytes.
type Backend interface {
	// Create prepares a canvas of l.Canvas size.
	Create(l Layout) error
	// Draw paints d in order, already scaled to output units.
	Draw(d []Drawable) error
	// Bytes serializes the canvas.
	Bytes() ([]byte, error)
}

// MaxCanvasPixels bounds the area of raster canvases.
const MaxCanvasPixels = 1 << 26

var errNotCreated = errors.New("canvas not created")

// NewBackend returns a fresh backend for f.
func NewBackend(f Format) (Backend, error) {
	switch f {
	case PNG, JPEG:
		return &rasterBackend{format: f}, nil
	case SVG:
		return &svgBackend{}, nil
	case EPS:
		return &epsBackend{}, nil
	case PDF:
		return &pdfBackend{}, nil
	}
	return nil, &ConfigurationError{Param: "format", Value: f, Reason: "unknown format"}
}

// checkCanvas validates the canvas size of l for format f.
func checkCanvas(f Format, l Layout) error {
	w, h := l.Canvas.X, l.Canvas.Y
	if !(w >= 1 && h >= 1) {
		return &BackendError{Format: f, Op: "create", Err: fmt.Errorf("canvas %s is smaller than 1x1", l.Canvas)}
	}
	if f.IsRaster() && w*h > MaxCanvasPixels {
		return &BackendError{Format: f, Op: "create", Err: fmt.Errorf("canvas %s exceeds %d pixels", l.Canvas, MaxCanvasPixels)}
	}
	return nil
}

// lineStroke returns s with its nominal lengths converted to output units.
func lineStroke(s Stroke, lineScale float64) Stroke {
	out := Stroke{Color: s.Color, Width: s.Width * lineScale}
	if len(s.Dash) != 0 {
		out.Dash = make([]float64, len(s.Dash))
		for i, d := range s.Dash {
			out.Dash[i] = d * lineScale
		}
	}
	return out
}

// fixed formats v with at most 3 decimals for vector outputs.
func fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
