// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import "fmt"

// A Vec is a position or an extent in diagram units. Before scaling one character cell is
// one unit wide and one unit high; after scaling units are output pixels (or points).
type Vec struct {
	X float64
	Y float64
}

// String implements fmt.Stringer on Vec.
func (v Vec) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Mul scales v per axis.
func (v Vec) Mul(f ScaleFactor) Vec {
	return Vec{v.X * f.X, v.Y * f.Y}
}

// ScaleFactor is the per axis multiplier applied to every Scalable before drawing.
type ScaleFactor struct {
	X float64
	Y float64
}

// An Entity is anything a stage puts in a Collection. What the pipeline and the renderer do
// with it depends only on the capability interfaces it implements.
type Entity interface{}

// Drawable is implemented by entities with a spatial extent.
type Drawable interface {
	// Min returns the minimum corner, used to order painting.
	Min() Vec
	// Size returns the axis aligned extent.
	Size() Vec
	// Paint issues the drawing primitives for this entity.
	Paint(Painter)
}

// Scalable is implemented by entities whose coordinates must be multiplied by the computed
// ScaleFactor before drawing. Pointer implementations appearing several times in a
// Collection are scaled once.
type Scalable interface {
	Scale(ScaleFactor)
}

// Named is implemented by entities that style rules can address by name.
type Named interface {
	Names() []string
}

// Styled is implemented by entities that accept style attributes.
type Styled interface {
	Named
	// ApplyStyle merges s over the current style.
	ApplyStyle(s Style)
}

// Painter is the set of primitives every backend provides. Coordinates are in output units.
type Painter interface {
	FillPolygon(points []Vec, c Color)
	StrokePath(points []Vec, closed bool, s Stroke)
	FillText(at Vec, text string, size float64, c Color)
}

// Stroke describes how a line is drawn. Width and Dash are nominal and get multiplied by the
// backend's line scale.
type Stroke struct {
	Color Color
	Width float64
	Dash  []float64
}

// BackgroundName is the name style rules use to address the Background.
const BackgroundName = "_background_"

// Background is the diagram's footprint. Its natural size is the scale reference used to
// derive the canvas size.
type Background struct {
	natural Vec
	size    Vec
	style   Style
	scaled  bool
}

// NewBackground returns a Background of the given natural size.
func NewBackground(size Vec) *Background {
	return &Background{natural: size, size: size, style: Style{Fill: &White}}
}

// Min implements Drawable.
func (b *Background) Min() Vec {
	return Vec{}
}

// Size implements Drawable.
func (b *Background) Size() Vec {
	return b.size
}

// Scale implements Scalable.
func (b *Background) Scale(f ScaleFactor) {
	b.size = b.size.Mul(f)
	b.scaled = true
}

// Scaled returns true once the background was rescaled to output units.
func (b *Background) Scaled() bool {
	return b.scaled
}

// Names implements Named.
func (b *Background) Names() []string {
	return []string{BackgroundName}
}

// ApplyStyle implements Styled.
func (b *Background) ApplyStyle(s Style) {
	b.style = b.style.Merge(s)
}

// Style returns the background style.
func (b *Background) Style() Style {
	return b.style
}

// Paint implements Drawable.
func (b *Background) Paint(p Painter) {
	if b.style.Fill == nil {
		return
	}
	p.FillPolygon(rect(Vec{}, b.size), *b.style.Fill)
}

func (b *Background) String() string {
	return fmt.Sprintf("Background{%s}", b.size)
}

// rect returns the four corners of the rectangle at min with extent size, clockwise.
func rect(min, size Vec) []Vec {
	return []Vec{
		min,
		{min.X + size.X, min.Y},
		min.Add(size),
		{min.X, min.Y + size.Y},
	}
}

// bounds returns the minimum corner and extent of points.
func bounds(points []Vec) (Vec, Vec) {
	if len(points) == 0 {
		return Vec{}, Vec{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi.Sub(lo)
}

func scaleAll(points []Vec, f ScaleFactor) {
	for i := range points {
		points[i] = points[i].Mul(f)
	}
}
