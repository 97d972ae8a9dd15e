// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"regexp"
)

// Style holds the attributes a StyleRule may set. Nil and zero fields are unset and leave the
// underlying value alone when merged.
type Style struct {
	Fill  *Color
	Frame *Color
	Text  *Color
	Width float64
	Dash  []float64
}

// Merge returns s with every field set in o overriding it.
func (s Style) Merge(o Style) Style {
	if o.Fill != nil {
		s.Fill = o.Fill
	}
	if o.Frame != nil {
		s.Frame = o.Frame
	}
	if o.Text != nil {
		s.Text = o.Text
	}
	if o.Width != 0 {
		s.Width = o.Width
	}
	if o.Dash != nil {
		s.Dash = o.Dash
	}
	return s
}

// stroke returns the line style, falling back to a solid black line of width 2.
func (s Style) stroke(dashed bool) Stroke {
	st := Stroke{Color: Black, Width: 2}
	if s.Frame != nil {
		st.Color = *s.Frame
	}
	if s.Width != 0 {
		st.Width = s.Width
	}
	switch {
	case s.Dash != nil:
		st.Dash = s.Dash
	case dashed:
		st.Dash = []float64{4, 2}
	}
	return st
}

// StyleRule is a style addressed at every entity with a name matching Pattern. It is not
// Drawable: it only carries configuration from the config stage to the style stage.
type StyleRule struct {
	Pattern string
	Style   Style
	// Span is where the rule was written, for error reporting.
	Span Span
}

func (r *StyleRule) String() string {
	return fmt.Sprintf("StyleRule{%q}", r.Pattern)
}

// StyleStage resolves StyleRules against Named entities. It runs last so that every name the
// name stage attached is known. It only touches style attributes, never geometry.
type StyleStage struct {
	stageBase
}

// NewStyleStage returns the style stage.
func NewStyleStage() *StyleStage {
	return &StyleStage{stageBase{name: "style"}}
}

// Run implements Stage.
func (s *StyleStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	var styled []Styled
	var rules []*StyleRule
	for _, o := range objs {
		if st, ok := o.(Styled); ok {
			styled = append(styled, st)
		}
		if r, ok := o.(*StyleRule); ok {
			rules = append(rules, r)
		}
	}
	for _, r := range rules {
		// The pattern must parse on its own before it is anchored.
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return s.malformed(text, r.Span, err)
		}
		re, err := regexp.Compile("^(?:" + r.Pattern + ")$")
		if err != nil {
			return s.malformed(text, r.Span, err)
		}
		for _, st := range styled {
			for _, n := range st.Names() {
				if re.MatchString(n) {
					st.ApplyStyle(r.Style)
					break
				}
			}
		}
	}
	return nil
}
