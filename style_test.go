// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestStyleStage(t *testing.T) {
	t.Parallel()
	in := strings.Join([]string{
		"+----+   +---+",
		"| db |-->|   |",
		"+----+   +---+",
		"",
		"options:",
		`- "db": {fill: "#f00"}`,
		`- "d.*": {frame: "#0f0", width: 4}`,
		`- "_background_": {fill: "#000"}`,
		`- "db": {fill: "#00f"}`,
	}, "\n")
	objs, err := DefaultPipeline().Run(NewRawText(in))
	ut.AssertEqual(t, nil, err)

	var polygons []*Polygon
	var bg *Background
	var txt *Text
	var arrow *Arrow
	for _, o := range objs {
		switch v := o.(type) {
		case *Polygon:
			polygons = append(polygons, v)
		case *Background:
			bg = v
		case *Text:
			txt = v
		case *Arrow:
			arrow = v
		}
	}
	ut.AssertEqual(t, 2, len(polygons))
	blue := Color{0, 0, 1, 1}
	green := Color{0, 1, 0, 1}
	ut.AssertEqual(t, []string{"db"}, polygons[0].Names())
	ut.AssertEqual(t, Style{Fill: &blue, Frame: &green, Width: 4}, polygons[0].Style())
	ut.AssertEqual(t, Style{Fill: &ShapeFill}, polygons[1].Style())
	ut.AssertEqual(t, Black, *bg.Style().Fill)
	ut.AssertEqual(t, Vec{14, 3}, bg.NaturalSize())
	ut.AssertEqual(t, White, txt.Color())
	ut.AssertEqual(t, true, arrow.Attached())

	rec := &recorder{}
	polygons[0].Paint(rec)
	polygons[1].Paint(rec)
	expected := []string{
		"fill #0000ff 4",
		"stroke #00ff00 4 [] closed=true",
		"fill #8888dd 4",
		"stroke #000000 2 [] closed=true",
	}
	ut.AssertEqual(t, expected, rec.ops)
}

func TestStyleStageBadPattern(t *testing.T) {
	t.Parallel()
	rule := &StyleRule{Pattern: "(", Span: Span{2, 5}}
	s := NewStyleStage()
	err := s.Run(NewRawText("0123456"), Collection{rule})
	var m *MalformedInputError
	ut.AssertEqual(t, true, errors.As(err, &m))
	ut.AssertEqual(t, "style", m.Stage)
	ut.AssertEqual(t, Span{2, 5}, m.Span)
	ut.AssertEqual(t, "234", m.Text)
}

func TestStyleStageUnbalancedPattern(t *testing.T) {
	t.Parallel()
	red := Color{1, 0, 0, 1}
	a := &Polygon{shape{names: []string{"anything"}}}
	for i, p := range []string{"a)|(.*", ")(", "a)"} {
		objs := Collection{a, &StyleRule{Pattern: p, Style: Style{Fill: &red}}}
		err := NewStyleStage().Run(NewRawText(""), objs)
		ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrMalformedInput))
	}
	ut.AssertEqual(t, (*Color)(nil), a.Style().Fill)
}

func TestStyleStageAnchored(t *testing.T) {
	t.Parallel()
	red := Color{1, 0, 0, 1}
	a := &Polygon{shape{names: []string{"db"}}}
	b := &Polygon{shape{names: []string{"dbx"}}}
	c := &Polygon{shape{names: []string{"x", "web"}}}
	objs := Collection{a, b, c, &StyleRule{Pattern: "db|web", Style: Style{Fill: &red}}}
	ut.AssertEqual(t, nil, NewStyleStage().Run(NewRawText(""), objs))
	ut.AssertEqual(t, &red, a.Style().Fill)
	ut.AssertEqual(t, (*Color)(nil), b.Style().Fill)
	ut.AssertEqual(t, &red, c.Style().Fill)
}

func TestStyleMerge(t *testing.T) {
	t.Parallel()
	red := Color{1, 0, 0, 1}
	blue := Color{0, 0, 1, 1}
	base := Style{Fill: &red, Width: 2, Dash: []float64{1}}
	ut.AssertEqual(t, base, base.Merge(Style{}))
	ut.AssertEqual(t, Style{Fill: &blue, Width: 2, Dash: []float64{1}}, base.Merge(Style{Fill: &blue}))
	ut.AssertEqual(t, Style{Fill: &red, Text: &blue, Width: 5, Dash: []float64{}}, base.Merge(Style{Text: &blue, Width: 5, Dash: []float64{}}))
	ut.AssertEqual(t, Stroke{Color: Black, Width: 2, Dash: []float64{4, 2}}, Style{}.stroke(true))
	ut.AssertEqual(t, Stroke{Color: blue, Width: 3}, Style{Frame: &blue, Width: 3}.stroke(false))
}
