// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

// Stage is one step of the parsing pipeline. A stage receives the text earlier stages left
// behind together with the objects found so far. It records the residual text and the
// resulting collection, which the pipeline hands to the next stage.
//
// A stage is deterministic. It may consume text it interpreted, append entities and attach the
// attributes it owns to entities found earlier. It must leave anything it does not recognize in
// the residual text.
type Stage interface {
	// Name identifies the stage in errors and logs.
	Name() string
	// Run processes text and objs. It fails with a *MalformedInputError when the input can't
	// be interpreted.
	Run(text RawText, objs Collection) error
	// Parsed returns the residual text after Run.
	Parsed() RawText
	// Objects returns the full collection after Run.
	Objects() Collection
}

// stageBase implements the bookkeeping part of Stage.
type stageBase struct {
	name    string
	parsed  RawText
	objects Collection
}

func (b *stageBase) Name() string {
	return b.name
}

func (b *stageBase) Parsed() RawText {
	return b.parsed
}

func (b *stageBase) Objects() Collection {
	return b.objects
}

// reset starts a run: the residual is the input until something is consumed.
func (b *stageBase) reset(text RawText, objs Collection) {
	b.parsed = text
	b.objects = objs
}

func (b *stageBase) emit(e ...Entity) {
	b.objects = b.objects.Append(e...)
}

func (b *stageBase) consume(spans ...Span) error {
	t, err := b.parsed.Consume(spans...)
	if err != nil {
		return err
	}
	b.parsed = t
	return nil
}

func (b *stageBase) malformed(text RawText, s Span, err error) error {
	return &MalformedInputError{Stage: b.name, Span: s, Text: text.Slice(s), Err: err}
}
