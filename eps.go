// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"bytes"

	"golang.org/x/image/font/sfnt"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
)

// epsBackend writes Encapsulated PostScript through the gonum vg canvas. PostScript has no
// transparency so alpha is ignored and fully transparent primitives are skipped. Labels are
// drawn as Go Mono glyph outlines, so no font needs to be installed on the printer.
type epsBackend struct {
	c      *vgeps.Canvas
	layout Layout
	err    error
}

func (e *epsBackend) Create(l Layout) error {
	if err := checkCanvas(EPS, l); err != nil {
		return err
	}
	e.layout = l
	// One point per output unit.
	e.c = vgeps.NewTitle(vg.Length(l.Canvas.X), vg.Length(l.Canvas.Y), "shaape")
	return nil
}

func (e *epsBackend) Draw(d []Drawable) error {
	if e.c == nil {
		return &BackendError{Format: EPS, Op: "draw", Err: errNotCreated}
	}
	for _, o := range d {
		o.Paint(e)
		if e.err != nil {
			return &BackendError{Format: EPS, Op: "draw", Err: e.err}
		}
	}
	return nil
}

func (e *epsBackend) Bytes() ([]byte, error) {
	if e.c == nil {
		return nil, &BackendError{Format: EPS, Op: "encode", Err: errNotCreated}
	}
	var b bytes.Buffer
	if _, err := e.c.WriteTo(&b); err != nil {
		return nil, &BackendError{Format: EPS, Op: "encode", Err: err}
	}
	// vgeps doubles the '%' of the magic line; readers require "%!PS".
	out := b.Bytes()
	if bytes.HasPrefix(out, []byte("%%!")) {
		out = out[1:]
	}
	return out, nil
}

// point flips p: PostScript's y axis points up.
func (e *epsBackend) point(p Vec) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(e.layout.Canvas.Y - p.Y)}
}

func (e *epsBackend) path(points []Vec, closed bool) vg.Path {
	var p vg.Path
	for i, v := range points {
		if i == 0 {
			p.Move(e.point(v))
		} else {
			p.Line(e.point(v))
		}
	}
	if closed {
		p.Close()
	}
	return p
}

func (e *epsBackend) setColor(c Color) {
	c.A = 1
	e.c.SetColor(c)
}

func (e *epsBackend) FillPolygon(points []Vec, c Color) {
	if len(points) < 3 || c.A == 0 {
		return
	}
	e.setColor(c)
	e.c.Fill(e.path(points, true))
}

func (e *epsBackend) StrokePath(points []Vec, closed bool, s Stroke) {
	if len(points) < 2 || s.Color.A == 0 {
		return
	}
	s = lineStroke(s, e.layout.LineScale)
	dashes := make([]vg.Length, len(s.Dash))
	for i, d := range s.Dash {
		dashes[i] = vg.Length(d)
	}
	e.setColor(s.Color)
	e.c.SetLineWidth(vg.Length(s.Width))
	e.c.SetLineDash(dashes, 0)
	e.c.Stroke(e.path(points, closed))
}

func (e *epsBackend) FillText(at Vec, text string, size float64, c Color) {
	if c.A == 0 || size <= 0 || e.err != nil {
		return
	}
	segs, err := textOutlines(at, text, size)
	if err != nil {
		e.err = err
		return
	}
	var p vg.Path
	var cur Vec
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			cur = s.Args[0]
			p.Move(e.point(cur))
		case sfnt.SegmentOpLineTo:
			cur = s.Args[0]
			p.Line(e.point(cur))
		case sfnt.SegmentOpQuadTo:
			// PostScript only has cubic curves.
			q, end := s.Args[0], s.Args[1]
			c1 := Vec{cur.X + (q.X-cur.X)*2/3, cur.Y + (q.Y-cur.Y)*2/3}
			c2 := Vec{end.X + (q.X-end.X)*2/3, end.Y + (q.Y-end.Y)*2/3}
			p.CubeTo(e.point(c1), e.point(c2), e.point(end))
			cur = end
		case sfnt.SegmentOpCubeTo:
			cur = s.Args[2]
			p.CubeTo(e.point(s.Args[0]), e.point(s.Args[1]), e.point(cur))
		}
	}
	if len(p) == 0 {
		return
	}
	e.setColor(c)
	e.c.Fill(p)
}
