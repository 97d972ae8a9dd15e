// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"image"
)

// Direction is where an arrow head points.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Arrow is an arrow head filling one cell.
type Arrow struct {
	cell   image.Point
	dir    Direction
	points []Vec
	// owner is the line the head terminates, if any.
	owner *shape
}

func newArrow(p image.Point, dir Direction) *Arrow {
	x, y := float64(p.X), float64(p.Y)
	var pts []Vec
	switch dir {
	case Left:
		pts = []Vec{{x + 1, y + .15}, {x, y + .5}, {x + 1, y + .85}}
	case Right:
		pts = []Vec{{x, y + .15}, {x + 1, y + .5}, {x, y + .85}}
	case Up:
		pts = []Vec{{x + .15, y + 1}, {x + .5, y}, {x + .85, y + 1}}
	default:
		pts = []Vec{{x + .15, y}, {x + .5, y + 1}, {x + .85, y}}
	}
	return &Arrow{cell: p, dir: dir, points: pts}
}

func (a *Arrow) String() string {
	return fmt.Sprintf("Arrow{%s %s}", a.cell, a.dir)
}

// Direction returns where the head points.
func (a *Arrow) Direction() Direction {
	return a.dir
}

// Attached returns true if the head terminates a line.
func (a *Arrow) Attached() bool {
	return a.owner != nil
}

// Min implements Drawable.
func (a *Arrow) Min() Vec {
	lo, _ := bounds(a.points)
	return lo
}

// Size implements Drawable.
func (a *Arrow) Size() Vec {
	_, size := bounds(a.points)
	return size
}

// Scale implements Scalable.
func (a *Arrow) Scale(f ScaleFactor) {
	scaleAll(a.points, f)
}

// Paint implements Drawable. The head takes the color of its line.
func (a *Arrow) Paint(p Painter) {
	c := Black
	if a.owner != nil {
		c = a.owner.style.stroke(false).Color
	}
	p.FillPolygon(a.points, c)
}

// cellOwner is implemented by shapes built from grid cells.
type cellOwner interface {
	hasCell(image.Point) bool
	attach(*Arrow)
}

func (s *shape) attach(a *Arrow) {
	a.owner = s
	s.arrows = append(s.arrows, a)
}

// ArrowStage turns the arrow heads left over by the overlay stage into Arrows, attached to
// the line they terminate.
type ArrowStage struct {
	stageBase
}

// NewArrowStage returns the arrow stage.
func NewArrowStage() *ArrowStage {
	return &ArrowStage{stageBase{name: "arrow"}}
}

// Run implements Stage.
func (s *ArrowStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	var owners []cellOwner
	for _, o := range objs {
		if c, ok := o.(cellOwner); ok {
			owners = append(owners, c)
		}
	}
	g := newGrid(text)
	var spans []Span
	p := image.Point{}
	for y := 0; y < g.size.Y; y++ {
		p.Y = y
		for x := 0; x < g.size.X; x++ {
			p.X = x
			var dir Direction
			switch g.at(p) {
			case '<':
				dir = Left
			case '>':
				dir = Right
			case '^':
				dir = Up
			case 'v':
				dir = Down
			default:
				continue
			}
			a := newArrow(p, dir)
			for _, o := range owners {
				if o.hasCell(p) {
					o.attach(a)
					break
				}
			}
			spans = append(spans, g.spans([]image.Point{p})...)
			s.emit(a)
		}
	}
	return s.consume(spans...)
}
