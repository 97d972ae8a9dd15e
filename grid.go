// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"image"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// cell is one character position of the grid.
type cell struct {
	ch char
	// span is where the rune lives in the source. Start is -1 for padding, expanded tabs,
	// consumed runes and the second half of double width runes.
	span Span
}

var blank = cell{ch: ' ', span: Span{-1, -1}}

// grid is the residual text laid out in rows and columns. (0,0) is top left.
type grid struct {
	cells   []cell
	visited []bool
	size    image.Point
}

// newGrid lays out what is left of t. Tabs are expanded, carriage returns dropped, double width
// runes take two cells and zero width runes join the cell before them.
func newGrid(t RawText) *grid {
	var rows [][]cell
	var row []cell
	src := t.Source()
	for i := 0; i < len(src); {
		r, l := utf8.DecodeRuneInString(src[i:])
		switch {
		case r == '\n':
			rows = append(rows, row)
			row = nil
		case r == '\r':
		case r == '\t':
			for n := tabWidth - len(row)%tabWidth; n > 0; n-- {
				row = append(row, blank)
			}
		default:
			w := runewidth.RuneWidth(r)
			switch {
			case t.IsConsumed(i):
				for n := max(w, 1); n > 0; n-- {
					row = append(row, blank)
				}
			case w == 0 && len(row) > 0 && row[len(row)-1].span.Start >= 0:
				row[len(row)-1].span.End = i + l
			case w == 0:
			default:
				row = append(row, cell{ch: char(r), span: Span{i, i + l}})
				if w == 2 {
					row = append(row, cell{ch: continuation, span: Span{-1, -1}})
				}
			}
		}
		i += l
	}
	rows = append(rows, row)

	g := &grid{size: image.Point{Y: len(rows)}}
	for _, row := range rows {
		g.size.X = max(g.size.X, len(row))
	}
	g.cells = make([]cell, g.size.X*g.size.Y)
	g.visited = make([]bool, g.size.X*g.size.Y)
	for y, row := range rows {
		x := copy(g.cells[y*g.size.X:], row)
		for ; x < g.size.X; x++ {
			g.cells[y*g.size.X+x] = blank
		}
	}
	return g
}

func (g *grid) at(p image.Point) char {
	return g.cells[p.Y*g.size.X+p.X].ch
}

// atOr returns the char at p, or ' ' if p is outside the grid.
func (g *grid) atOr(p image.Point) char {
	if !p.In(image.Rectangle{Max: g.size}) {
		return ' '
	}
	return g.at(p)
}

func (g *grid) span(p image.Point) Span {
	return g.cells[p.Y*g.size.X+p.X].span
}

// spans returns the source spans of points, skipping cells with no source.
func (g *grid) spans(points []image.Point) []Span {
	out := make([]Span, 0, len(points))
	for _, p := range points {
		if s := g.span(p); s.Start >= 0 {
			out = append(out, s)
		}
	}
	return out
}

func (g *grid) isVisited(p image.Point) bool {
	return g.visited[p.Y*g.size.X+p.X]
}

func (g *grid) visit(p image.Point) {
	g.visited[p.Y*g.size.X+p.X] = true
}

func (g *grid) unvisit(p image.Point) {
	o := p.Y*g.size.X + p.X
	if !g.visited[o] {
		panic("Internal error")
	}
	g.visited[o] = false
}

func (g *grid) canLeft(p image.Point) bool {
	return p.X > 0
}

func (g *grid) canRight(p image.Point) bool {
	return p.X < g.size.X-1
}

func (g *grid) canUp(p image.Point) bool {
	return p.Y > 0
}

func (g *grid) canDown(p image.Point) bool {
	return p.Y < g.size.Y-1
}

// isArrowDown returns true if the 'v' at p reads as an arrow head: something vertical above
// it and no letters on either side.
func (g *grid) isArrowDown(p image.Point) bool {
	if g.at(p) != 'v' {
		return false
	}
	above := g.atOr(image.Point{X: p.X, Y: p.Y - 1})
	left := g.atOr(image.Point{X: p.X - 1, Y: p.Y})
	right := g.atOr(image.Point{X: p.X + 1, Y: p.Y})
	return (above.isVertical() || above.isCorner()) && !left.isWord() && !right.isWord()
}

// cellCenter returns the center of the cell at p in diagram units.
func cellCenter(p image.Point) Vec {
	return Vec{float64(p.X) + .5, float64(p.Y) + .5}
}
