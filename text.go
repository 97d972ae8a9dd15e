// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"image"
	"strings"
)

// Text is a run of label text. It occupies one row of cells.
type Text struct {
	text string
	// cell is the grid position of the first rune.
	cell image.Point
	min  Vec
	size Vec

	// Set by the name stage.
	container Region
	// Set by the style stage.
	style Style
}

// String returns the text content.
func (t *Text) String() string {
	return fmt.Sprintf("Text{%s %q}", t.cell, t.text)
}

// Text returns the label.
func (t *Text) Text() string {
	return t.text
}

// Container returns the innermost region enclosing the text, if any.
func (t *Text) Container() Region {
	return t.container
}

func (t *Text) anchor() Vec {
	return cellCenter(t.cell)
}

func (t *Text) label() string {
	return t.text
}

func (t *Text) place(r Region) {
	t.container = r
}

// Min implements Drawable.
func (t *Text) Min() Vec {
	return t.min
}

// Size implements Drawable.
func (t *Text) Size() Vec {
	return t.size
}

// Scale implements Scalable.
func (t *Text) Scale(f ScaleFactor) {
	t.min = t.min.Mul(f)
	t.size = t.size.Mul(f)
}

// Names implements Named: a text answers to its own content.
func (t *Text) Names() []string {
	return []string{t.text}
}

// ApplyStyle implements Styled. Only the text color applies.
func (t *Text) ApplyStyle(s Style) {
	t.style = t.style.Merge(Style{Text: s.Text})
}

// Color returns the color the text is painted with: the styled one, or whichever of black
// and white reads best on the container's fill.
func (t *Text) Color() Color {
	if t.style.Text != nil {
		return *t.style.Text
	}
	if t.container != nil {
		if fill := t.container.Style().Fill; fill != nil {
			return textColor(fill.over(White))
		}
	}
	return Black
}

// Paint implements Drawable.
func (t *Text) Paint(p Painter) {
	baseline := Vec{t.min.X, t.min.Y + t.size.Y*.75}
	p.FillText(baseline, t.text, t.size.Y*.8, t.Color())
}

// TextStage extracts labels. A label starts on a printable rune that is not part of the
// drawing grammar and runs to the right, allowing up to two consecutive spaces.
type TextStage struct {
	stageBase
}

// NewTextStage returns the text stage.
func NewTextStage() *TextStage {
	return &TextStage{stageBase{name: "text"}}
}

// Run implements Stage.
func (s *TextStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	g := newGrid(text)
	var spans []Span
	p := image.Point{}
	for y := 0; y < g.size.Y; y++ {
		p.Y = y
		for x := 0; x < g.size.X; x++ {
			p.X = x
			if g.isVisited(p) || !g.isTextStart(p) {
				continue
			}
			points := g.scanText(p)
			for _, p := range points {
				g.visit(p)
			}
			spans = append(spans, g.spans(points)...)
			s.emit(newText(g, points))
		}
	}
	return s.consume(spans...)
}

func newText(g *grid, points []image.Point) *Text {
	var b strings.Builder
	for _, p := range points {
		if ch := g.at(p); ch != continuation {
			b.WriteRune(rune(ch))
		}
	}
	start := points[0]
	return &Text{
		text: b.String(),
		cell: start,
		min:  Vec{float64(start.X), float64(start.Y)},
		size: Vec{float64(len(points)), 1},
	}
}

func (g *grid) isTextStart(p image.Point) bool {
	return g.at(p).isTextStart() && !g.isArrowDown(p)
}

// scanText extracts a line of text.
func (g *grid) scanText(start image.Point) []image.Point {
	points := []image.Point{start}
	whiteSpaceStreak := 0
	cur := start
	for g.canRight(cur) {
		cur.X++
		if g.isVisited(cur) {
			break
		}
		ch := g.at(cur)
		if ch.isInlinePunct() && g.at(points[len(points)-1]).isWord() && g.isInlinePunct(cur) {
			whiteSpaceStreak = 0
			points = append(points, cur)
			continue
		}
		if !ch.isTextCont() || g.isArrowDown(cur) {
			break
		}
		if ch.isSpace() {
			whiteSpaceStreak++
			// Stop if hit 3 consecutive whitespace.
			if whiteSpaceStreak > 2 {
				break
			}
		} else {
			whiteSpaceStreak = 0
		}
		points = append(points, cur)
	}
	// TrimRight space.
	for len(points) != 0 && g.at(points[len(points)-1]).isSpace() {
		points = points[:len(points)-1]
	}
	return points
}

// isInlinePunct returns true if the punctuation at p belongs to the word before it rather than
// to a line: nothing drawn follows it and nothing vertical touches it.
func (g *grid) isInlinePunct(p image.Point) bool {
	next := g.atOr(image.Point{X: p.X + 1, Y: p.Y})
	above := g.atOr(image.Point{X: p.X, Y: p.Y - 1})
	below := g.atOr(image.Point{X: p.X, Y: p.Y + 1})
	return !next.isGraphic() && !above.canVertical() && !below.canVertical()
}
