// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestConfigStage(t *testing.T) {
	t.Parallel()
	in := strings.Join([]string{
		"+-+",
		"options:",
		`- "a|b": {fill: "#f00", frame: [0, 0, 1, 0.5], width: 3, dash: true}`,
		`- "c": {text: ["#0f0", "#00f"], dash: [1, 2]}`,
		`background: "#eee"`,
	}, "\n")
	s := NewConfigStage()
	ut.AssertEqual(t, nil, s.Run(NewRawText(in), nil))
	ut.AssertEqual(t, "+-+", strings.TrimSpace(s.Parsed().String()))
	ut.AssertEqual(t, []string{`StyleRule{"a|b"}`, `StyleRule{"c"}`, `StyleRule{"_background_"}`}, getStrings(s.Objects()))

	red := Color{1, 0, 0, 1}
	blue := Color{0, 0, 1, .5}
	green := Color{0, 1, 0, 1}
	eee, err := ParseColor("#eee")
	ut.AssertEqual(t, nil, err)

	a := s.Objects()[0].(*StyleRule)
	ut.AssertEqual(t, Style{Fill: &red, Frame: &blue, Width: 3, Dash: []float64{4, 2}}, a.Style)
	start := strings.Index(in, "- \"a|b\"")
	ut.AssertEqual(t, Span{start, start + len(`- "a|b": {fill: "#f00", frame: [0, 0, 1, 0.5], width: 3, dash: true}`)}, a.Span)

	c := s.Objects()[1].(*StyleRule)
	ut.AssertEqual(t, Style{Text: &green, Dash: []float64{1, 2}}, c.Style)

	bg := s.Objects()[2].(*StyleRule)
	ut.AssertEqual(t, Style{Fill: &eee}, bg.Style)
}

func TestConfigStageNone(t *testing.T) {
	t.Parallel()
	data := []string{
		"",
		"+-+\n| |\n+-+",
		// Must start the line.
		" options:\n- a: {}",
		"my options: are open",
		// A label, not a configuration block.
		"background: the sky",
		"+-+\nbackground: \"#eee\"",
	}
	for i, line := range data {
		s := NewConfigStage()
		ut.AssertEqualIndex(t, i, nil, s.Run(NewRawText(line), nil))
		ut.AssertEqualIndex(t, i, 0, len(s.Objects()))
		ut.AssertEqualIndex(t, i, line, s.Parsed().String())
	}
}

func TestConfigStageDashOff(t *testing.T) {
	t.Parallel()
	s := NewConfigStage()
	ut.AssertEqual(t, nil, s.Run(NewRawText("options:\n- a: {dash: false}"), nil))
	ut.AssertEqual(t, []float64{}, s.Objects()[0].(*StyleRule).Style.Dash)
	// An explicit solid line overrides the dashes a shape was drawn with.
	ut.AssertEqual(t, []float64{}, s.Objects()[0].(*StyleRule).Style.stroke(true).Dash)
}

func TestConfigStageErrors(t *testing.T) {
	t.Parallel()
	data := []string{
		"options: [",
		"options:\n- a: {fill: red}",
		"options:\n- a: {fil: '#f00'}",
		"options:\n- a: {width: -1}",
		"options:\n- a: {dash: [0]}",
		"options:\n- a: {fill: [1, 0]}",
		"options: 3",
		"options:\n- [1]",
		"options: []\nfoo: 1",
		"options: []\nbackground: [2, 0, 0]",
		"options: []\nbackground: 'blue'",
		"options:\n- a: 1",
	}
	for i, line := range data {
		s := NewConfigStage()
		err := s.Run(NewRawText("+\n"+line), nil)
		ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrMalformedInput))
		var m *MalformedInputError
		ut.AssertEqualIndex(t, i, true, errors.As(err, &m))
		ut.AssertEqualIndex(t, i, "config", m.Stage)
		ut.AssertEqualIndex(t, i, true, m.Span.Start >= 2)
	}
}
