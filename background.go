// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import "image"

// BackgroundStage measures the diagram body and adds the Background. Trailing blanks on each
// row and trailing blank rows do not count. It consumes nothing.
type BackgroundStage struct {
	stageBase
}

// NewBackgroundStage returns the background stage.
func NewBackgroundStage() *BackgroundStage {
	return &BackgroundStage{stageBase{name: "background"}}
}

// Run implements Stage.
func (s *BackgroundStage) Run(text RawText, objs Collection) error {
	s.reset(text, objs)
	g := newGrid(text)
	var size image.Point
	for y := 0; y < g.size.Y; y++ {
		for x := g.size.X - 1; x >= 0; x-- {
			if !g.at(image.Point{X: x, Y: y}).isSpace() {
				size.X = max(size.X, x+1)
				size.Y = y + 1
				break
			}
		}
	}
	if size.X == 0 {
		return nil
	}
	s.emit(NewBackground(Vec{float64(size.X), float64(size.Y)}))
	return nil
}
