// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import "log/slog"

// Render parses src and renders it in the format selected by opts.
//
// Options are validated before any parsing. Every call builds its own pipeline, collection and
// backend so concurrent calls are independent.
func Render(src string, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	objs, err := DefaultPipeline().Run(NewRawText(src))
	if err != nil {
		return nil, err
	}
	return Draw(objs, opts)
}

// Draw renders a collection produced by a Pipeline. It takes ownership of objs: every Scalable
// entity is rescaled to output units, so a collection can be drawn only once. Drawing it
// again fails with a ConfigurationError.
func Draw(objs Collection, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if fp, err := objs.Footprint(); err == nil {
		if s, ok := fp.(interface{ Scaled() bool }); ok && s.Scaled() {
			return nil, &ConfigurationError{Param: "objects", Value: len(objs), Reason: "collection was already drawn"}
		}
	}
	l, err := LayoutFor(objs, opts.constraints())
	if err != nil {
		return nil, err
	}
	Logger().Debug("layout", slog.String("format", opts.Format.String()), slog.Any("layout", l))
	ordered := objs.DrawOrder()
	ordered.Scale(l.Scale)
	b, err := NewBackend(opts.Format)
	if err != nil {
		return nil, err
	}
	if err := b.Create(l); err != nil {
		return nil, err
	}
	if err := b.Draw(ordered.Drawables()); err != nil {
		return nil, err
	}
	return b.Bytes()
}
