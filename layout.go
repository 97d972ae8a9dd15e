// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import "fmt"

// DefaultPixelsPerUnit is the output units per character cell when nothing else is asked.
const DefaultPixelsPerUnit = 10

// Constraints are the sizing inputs besides the footprint.
type Constraints struct {
	// Width and Height pin the canvas size on their axis. Zero means not pinned.
	Width  float64
	Height float64
	// Density is the output units per diagram unit on each axis.
	Density Vec
	// AspectRatio is the cell height over its width. Zero means 1.
	AspectRatio float64
}

// Layout is the result of sizing: what a backend needs to create its canvas.
type Layout struct {
	// Canvas is the output size.
	Canvas Vec
	// Scale maps diagram units to output units.
	Scale ScaleFactor
	// LineScale multiplies nominal line widths and dash lengths.
	LineScale float64
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{%s x(%g,%g) lines x%g}", l.Canvas, l.Scale.X, l.Scale.Y, l.LineScale)
}

// ComputeLayout derives the canvas size and scale factor from the footprint's natural size.
//
// When a single axis is pinned the other follows so the footprint keeps its proportions. When
// both are pinned they are used as is. It doesn't modify f.
func ComputeLayout(f Footprint, c Constraints) (Layout, error) {
	n := f.NaturalSize()
	if n.X <= 0 || n.Y <= 0 {
		return Layout{}, &MissingBackgroundError{}
	}
	a := c.AspectRatio
	if a == 0 {
		a = 1
	}
	var canvas Vec
	switch {
	case c.Width != 0 && c.Height != 0:
		canvas = Vec{c.Width, c.Height}
	case c.Width != 0:
		canvas = Vec{c.Width, c.Width / n.X * n.Y * a}
	case c.Height != 0:
		canvas = Vec{c.Height / n.Y * n.X / a, c.Height}
	default:
		canvas = Vec{n.X * c.Density.X, n.Y * c.Density.Y}
	}
	s := ScaleFactor{canvas.X / n.X, canvas.Y / n.Y}
	return Layout{Canvas: canvas, Scale: s, LineScale: s.X / (DefaultPixelsPerUnit * a)}, nil
}

// LayoutFor sizes the canvas for the first Footprint in c.
func LayoutFor(c Collection, cons Constraints) (Layout, error) {
	f, err := c.Footprint()
	if err != nil {
		return Layout{}, err
	}
	return ComputeLayout(f, cons)
}
