// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"math"
	"strings"
)

// Format is an output format.
type Format int

// Supported formats. PNG and JPEG are raster, the others are vector.
const (
	PNG Format = iota
	JPEG
	SVG
	EPS
	PDF
)

var formatNames = []string{"png", "jpeg", "svg", "eps", "pdf"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Ext returns the usual file name extension, with the leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// IsRaster returns true for pixel based formats.
func (f Format) IsRaster() bool {
	return f == PNG || f == JPEG
}

// ParseFormat parses a format name, case insensitively. "jpg" and "ps" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch l := strings.ToLower(strings.TrimPrefix(s, ".")); l {
	case "jpg":
		return JPEG, nil
	case "ps":
		return EPS, nil
	default:
		for i, n := range formatNames {
			if n == l {
				return Format(i), nil
			}
		}
	}
	return 0, &ConfigurationError{Param: "format", Value: s, Reason: "unknown format"}
}

// Options are the parameters of one render.
//
// A zero Width or Height means the axis is not pinned. Zero Scale, PixelsPerUnit and
// AspectRatio select the defaults.
type Options struct {
	Format Format
	// Scale multiplies the density.
	Scale float64
	// Width pins the canvas width in output units.
	Width float64
	// Height pins the canvas height in output units.
	Height float64
	// PixelsPerUnit is the output units per character cell.
	PixelsPerUnit float64
	// AspectRatio is the cell height over its width.
	AspectRatio float64
}

// Validate returns a *ConfigurationError naming the first invalid field.
func (o *Options) Validate() error {
	if o.Format < PNG || o.Format > PDF {
		return &ConfigurationError{Param: "format", Value: o.Format, Reason: "unknown format"}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"scale", o.Scale},
		{"width", o.Width},
		{"height", o.Height},
		{"pixels_per_unit", o.PixelsPerUnit},
		{"aspect_ratio", o.AspectRatio},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigurationError{Param: f.name, Value: f.v, Reason: "must be finite"}
		}
		if f.v < 0 {
			return &ConfigurationError{Param: f.name, Value: f.v, Reason: "must not be negative"}
		}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.PixelsPerUnit == 0 {
		o.PixelsPerUnit = DefaultPixelsPerUnit
	}
	if o.AspectRatio == 0 {
		o.AspectRatio = 1
	}
	return o
}

// constraints returns the sizing constraints for o, which must have defaults applied.
func (o Options) constraints() Constraints {
	d := o.PixelsPerUnit * o.Scale
	return Constraints{
		Width:       o.Width,
		Height:      o.Height,
		Density:     Vec{d, d * o.AspectRatio},
		AspectRatio: o.AspectRatio,
	}
}
