// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"image"
)

// shape is the common code between Path and Polygon.
type shape struct {
	// points always starts with the top most, then left most point, starting to the right.
	points  []image.Point
	corners []Vec
	dashed  bool
	names   []string
	style   Style
	arrows  []*Arrow
}

// Points returns the grid cells the shape was drawn with.
func (s *shape) Points() []image.Point {
	return s.points
}

// Corners returns the points at which the outline changes direction, in diagram units.
func (s *shape) Corners() []Vec {
	return s.corners
}

// IsDashed is true if the shape was drawn with '=' or ':'.
func (s *shape) IsDashed() bool {
	return s.dashed
}

// Arrows returns the arrow heads attached to the shape.
func (s *shape) Arrows() []*Arrow {
	return s.arrows
}

// Names implements Named.
func (s *shape) Names() []string {
	return s.names
}

// ApplyStyle implements Styled.
func (s *shape) ApplyStyle(st Style) {
	s.style = s.style.Merge(st)
}

// Style returns the effective style.
func (s *shape) Style() Style {
	return s.style
}

// Min implements Drawable.
func (s *shape) Min() Vec {
	lo, _ := bounds(s.corners)
	return lo
}

// Size implements Drawable.
func (s *shape) Size() Vec {
	_, size := bounds(s.corners)
	return size
}

// Scale implements Scalable.
func (s *shape) Scale(f ScaleFactor) {
	scaleAll(s.corners, f)
}

func (s *shape) addName(n string) {
	for _, o := range s.names {
		if o == n {
			return
		}
	}
	s.names = append(s.names, n)
}

func (s *shape) hasCell(p image.Point) bool {
	for _, o := range s.points {
		if o == p {
			return true
		}
	}
	return false
}

// Path is an open line, likely between two polygons.
type Path struct {
	shape
}

func (p *Path) String() string {
	return fmt.Sprintf("Path{%s}", p.points[0])
}

// Paint implements Drawable.
func (p *Path) Paint(pt Painter) {
	pt.StrokePath(p.corners, false, p.style.stroke(p.dashed))
}

// Polygon is a closed path, e.g. a rectangle.
type Polygon struct {
	shape
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon{%s}", p.points[0])
}

// Paint implements Drawable.
func (p *Polygon) Paint(pt Painter) {
	if p.style.Fill != nil {
		pt.FillPolygon(p.corners, *p.style.Fill)
	}
	pt.StrokePath(p.corners, true, p.style.stroke(p.dashed))
}

// HasPoint determines whether v lies inside the polygon. Since we support complex convex and
// concave polygons, we need to do a full point-in-polygon test. The algorithm implemented comes
// from the more efficient, less-clever version at http://alienryderflex.com/polygon/.
func (p *Polygon) HasPoint(v Vec) bool {
	hasPoint := false
	c := p.corners
	j := len(c) - 1
	for i := range c {
		if (c[i].Y < v.Y && c[j].Y >= v.Y || c[j].Y < v.Y && c[i].Y >= v.Y) && (c[i].X <= v.X || c[j].X <= v.X) {
			if c[i].X+(v.Y-c[i].Y)/(c[j].Y-c[i].Y)*(c[j].X-c[i].X) < v.X {
				hasPoint = !hasPoint
			}
		}
		j = i
	}
	return hasPoint
}

// Area returns the absolute area enclosed by the polygon, in squared diagram units.
func (p *Polygon) Area() float64 {
	a := 0.
	c := p.corners
	j := len(c) - 1
	for i := range c {
		a += (c[j].X + c[i].X) * (c[j].Y - c[i].Y)
		j = i
	}
	if a < 0 {
		a = -a
	}
	return a / 2
}

// OverlayStage finds the line work: closed polygons and open paths. Arrow heads take part in
// the paths they end but are left in the text for the arrow stage.
type OverlayStage struct {
	stageBase
}

// NewOverlayStage returns the overlay stage.
func NewOverlayStage() *OverlayStage {
	return &OverlayStage{stageBase{name: "overlay"}}
}

// Run implements Stage.
func (s *OverlayStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	g := newGrid(text)
	var spans []Span
	p := image.Point{}

	// The logic is to find any new paths by starting with a point that wasn't touched yet.
	for y := 0; y < g.size.Y; y++ {
		p.Y = y
		for x := 0; x < g.size.X; x++ {
			p.X = x
			if g.isVisited(p) || !g.at(p).isPathStart() {
				continue
			}
			// Found the start of a one or multiple connected paths. Traverse all connecting
			// points. This will generate multiple objects if multiple paths (either open or
			// closed) are found.
			g.visit(p)
			for _, points := range g.scanPath([]image.Point{p}) {
				for _, p := range points {
					g.visit(p)
					if !g.at(p).isArrow() {
						spans = append(spans, g.spans([]image.Point{p})...)
					}
				}
				s.emit(newShape(g, points))
			}
		}
	}
	return s.consume(dedupe(spans)...)
}

func newShape(g *grid, points []image.Point) Entity {
	cells, closed := pointsToCorners(points)
	sh := shape{points: points, corners: make([]Vec, len(cells))}
	for i, c := range cells {
		sh.corners[i] = cellCenter(c)
	}
	for _, p := range points {
		if g.at(p).isDashed() {
			sh.dashed = true
		}
	}
	if closed {
		sh.style.Fill = &ShapeFill
		return &Polygon{sh}
	}
	return &Path{sh}
}

// scanPath tries to complete one or multiple path or box starting with the partial path. It
// recursively calls itself when it finds multiple unvisited out-going paths.
func (g *grid) scanPath(points []image.Point) [][]image.Point {
	cur := points[len(points)-1]
	next := g.next(cur)
	if len(next) == 0 {
		if len(points) == 1 {
			// Discard 'path' of 1 point. Do not mark point as visited.
			g.unvisit(cur)
			return nil
		}
		return [][]image.Point{points}
	}
	var out [][]image.Point
	for _, n := range next {
		// Go depth first instead of bread first, this makes it workable for closed path.
		if g.isVisited(n) {
			continue
		}
		g.visit(n)
		p2 := make([]image.Point, len(points)+1)
		copy(p2, points)
		p2[len(p2)-1] = n
		out = append(out, g.scanPath(p2)...)
	}
	return out
}

// next returns the next points that can be used to make progress.
//
// Look at top, left, right, down, skipping visited points and returns all the possibilities.
func (g *grid) next(pos image.Point) []image.Point {
	var out []image.Point
	if !g.isVisited(pos) {
		panic(fmt.Errorf("Internal error; revisiting %s", pos))
	}
	ch := g.at(pos)
	if ch.canHorizontal() {
		if g.canLeft(pos) {
			n := pos
			n.X--
			if !g.isVisited(n) && g.at(n).canHorizontal() {
				out = append(out, n)
			}
		}
		if g.canRight(pos) {
			n := pos
			n.X++
			if !g.isVisited(n) && g.at(n).canHorizontal() {
				out = append(out, n)
			}
		}
	}
	if ch.canVertical() {
		if g.canUp(pos) {
			n := pos
			n.Y--
			if !g.isVisited(n) && g.at(n).canVertical() {
				out = append(out, n)
			}
		}
		if g.canDown(pos) {
			n := pos
			n.Y++
			if !g.isVisited(n) && g.at(n).canVertical() {
				out = append(out, n)
			}
		}
	}
	return out
}

// dedupe drops repeated spans; branching paths share their common prefix.
func dedupe(spans []Span) []Span {
	seen := make(map[Span]bool, len(spans))
	out := spans[:0]
	for _, s := range spans {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// isHorizontal returns if p1 and p2 are horizontally aligned.
func isHorizontal(p1, p2 image.Point) bool {
	d := p1.X - p2.X
	return d <= 1 && d >= -1 && p1.Y == p2.Y
}

// isVertical returns if p1 and p2 are vertically aligned.
func isVertical(p1, p2 image.Point) bool {
	d := p1.Y - p2.Y
	return d <= 1 && d >= -1 && p1.X == p2.X
}

// pointsToCorners returns all the corners (points where there is a change of directionality)
// for a path. Second return value is true if the path is closed.
func pointsToCorners(points []image.Point) ([]image.Point, bool) {
	l := len(points)
	if l == 1 || l == 2 {
		return points, false
	}
	out := []image.Point{points[0]}
	horiz := false
	if isHorizontal(points[0], points[1]) {
		horiz = true
	} else if isVertical(points[0], points[1]) {
		horiz = false
	} else {
		panic("discontinuous points")
	}
	for i := 2; i < l; i++ {
		if isHorizontal(points[i-1], points[i]) {
			if !horiz {
				out = append(out, points[i-1])
				horiz = true
			}
		} else if isVertical(points[i-1], points[i]) {
			if horiz {
				out = append(out, points[i-1])
				horiz = false
			}
		} else {
			panic("discontinuous points")
		}
	}
	// Check if a closed path or not. If not, append the last point.
	last := points[l-1]
	closed := true
	if isHorizontal(points[0], last) {
		if !horiz {
			closed = false
			out = append(out, last)
		}
	} else if isVertical(points[0], last) {
		if horiz {
			closed = false
			out = append(out, last)
		}
	} else {
		closed = false
		out = append(out, last)
	}
	return out, closed
}
