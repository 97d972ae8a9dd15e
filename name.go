// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import "strings"

// Region is implemented by closed shapes that can contain labels.
type Region interface {
	Named
	HasPoint(Vec) bool
	Area() float64
	Style() Style
	addName(string)
}

// label is implemented by entities that can be placed in a Region.
type label interface {
	anchor() Vec
	label() string
	place(Region)
}

// NameStage places every label in the innermost Region enclosing it. A single word label
// also names that region, so that style rules can address it. It consumes nothing.
type NameStage struct {
	stageBase
}

// NewNameStage returns the name stage.
func NewNameStage() *NameStage {
	return &NameStage{stageBase{name: "name"}}
}

// Run implements Stage.
func (s *NameStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	var regions []Region
	var labels []label
	for _, o := range objs {
		if r, ok := o.(Region); ok {
			regions = append(regions, r)
		}
		if l, ok := o.(label); ok {
			labels = append(labels, l)
		}
	}
	for _, l := range labels {
		var inner Region
		for _, r := range regions {
			if r.HasPoint(l.anchor()) && (inner == nil || r.Area() < inner.Area()) {
				inner = r
			}
		}
		if inner == nil {
			continue
		}
		l.place(inner)
		if w := l.label(); !strings.ContainsAny(w, " \t") {
			inner.addName(w)
		}
	}
	return nil
}
