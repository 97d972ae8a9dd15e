// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"context"
	"log/slog"
)

// Pipeline runs stages in order, each one receiving the residual text and the collection left
// by the previous one.
//
// A Pipeline is not safe for concurrent use; build one per render.
type Pipeline struct {
	stages []Stage
	trace  bool
	steps  []Step
}

// Step records what one stage received and produced.
type Step struct {
	Stage string
	In    RawText
	Out   RawText
	// Objects is the full collection after the stage.
	Objects Collection
}

// Consumed returns the spans the stage took from the text.
func (s *Step) Consumed() []Span {
	return s.Out.ConsumedSince(s.In)
}

// NewPipeline returns a pipeline running stages in the given order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// DefaultPipeline returns the stages in their standard order: config, background, text,
// overlay, arrow, name and style.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		NewConfigStage(),
		NewBackgroundStage(),
		NewTextStage(),
		NewOverlayStage(),
		NewArrowStage(),
		NewNameStage(),
		NewStyleStage(),
	)
}

// WithTrace makes Run record a Step per stage.
func (p *Pipeline) WithTrace() *Pipeline {
	p.trace = true
	return p
}

// Stages returns the stages in execution order.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Steps returns the steps recorded by the last Run, if tracing.
func (p *Pipeline) Steps() []Step {
	return p.steps
}

// Run feeds text through every stage and returns the final collection. The first stage error
// aborts the run and is returned wrapped in a *StageError.
func (p *Pipeline) Run(text RawText) (Collection, error) {
	p.steps = nil
	var objs Collection
	for _, s := range p.stages {
		if err := s.Run(text, objs); err != nil {
			Logger().Debug("stage failed", slog.String("stage", s.Name()), slog.Any("err", err))
			return nil, &StageError{Stage: s.Name(), Err: err}
		}
		out := s.Parsed()
		next := s.Objects()
		if Logger().Enabled(context.Background(), slog.LevelDebug) {
			n := 0
			for _, sp := range out.ConsumedSince(text) {
				n += sp.Len()
			}
			Logger().Debug("stage",
				slog.String("stage", s.Name()),
				slog.Int("found", len(next)-len(objs)),
				slog.Int("objects", len(next)),
				slog.Int("consumed", n))
		}
		if p.trace {
			p.steps = append(p.steps, Step{Stage: s.Name(), In: text, Out: out, Objects: next})
		}
		text, objs = out, next
	}
	return objs, nil
}
