// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/maruel/ut"
)

func TestRenderInvalidOptions(t *testing.T) {
	t.Parallel()
	data := []Options{
		{Format: Format(42)},
		{Scale: -1},
		{Width: math.NaN()},
		{AspectRatio: math.Inf(1)},
	}
	for i, opts := range data {
		// The input would fail too; options are checked first.
		_, err := Render("", opts)
		ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrConfiguration))
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()
	for i, src := range []string{"", "   \n  \n"} {
		out, err := Render(src, Options{Format: SVG})
		ut.AssertEqualIndex(t, i, true, errors.Is(err, ErrMissingBackground))
		ut.AssertEqualIndex(t, i, 0, len(out))
	}
}

func TestRenderSize(t *testing.T) {
	t.Parallel()
	rows := make([]string, 40)
	rows[0] = "+" + strings.Repeat("-", 78) + "+"
	for i := 1; i < 39; i++ {
		rows[i] = "|" + strings.Repeat(" ", 78) + "|"
	}
	rows[39] = rows[0]
	src := strings.Join(rows, "\n")
	data := []struct {
		opts     Options
		expected string
	}{
		{Options{Format: SVG}, `width="800px" height="400px"`},
		{Options{Format: SVG, Width: 400}, `width="400px" height="200px"`},
		{Options{Format: SVG, Height: 100}, `width="200px" height="100px"`},
		{Options{Format: SVG, Width: 100, Height: 100}, `width="100px" height="100px"`},
		{Options{Format: SVG, Scale: 2}, `width="1600px" height="800px"`},
	}
	for i, line := range data {
		out, err := Render(src, line.opts)
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, true, strings.Contains(string(out), line.expected))
	}
}

func TestRenderBackgroundFirst(t *testing.T) {
	t.Parallel()
	r := &recorder{}
	objs, err := DefaultPipeline().Run(NewRawText(smallBox))
	ut.AssertEqual(t, nil, err)
	l, err := LayoutFor(objs, Options{}.withDefaults().constraints())
	ut.AssertEqual(t, nil, err)
	ordered := objs.DrawOrder()
	ordered.Scale(l.Scale)
	for _, d := range ordered.Drawables() {
		d.Paint(r)
	}
	expected := []string{
		"fill #ffffff 4",
		"fill #8888dd 4",
		"stroke #000000 2 [] closed=true",
	}
	ut.AssertEqual(t, expected, r.ops)
}

func TestRenderBackgroundLabel(t *testing.T) {
	t.Parallel()
	out, err := Render("background: the sky", Options{Format: SVG})
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, true, strings.Contains(string(out), "sky</text>"))
}

func TestRenderConcurrent(t *testing.T) {
	t.Parallel()
	src := strings.Join(realWorld, "\n")
	expected, err := Render(src, Options{Format: SVG})
	ut.AssertEqual(t, nil, err)
	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Render(src, Options{Format: SVG})
		}()
	}
	wg.Wait()
	for i, out := range results {
		ut.AssertEqualIndex(t, i, true, bytes.Equal(expected, out))
	}
}

func TestDrawTakesCollection(t *testing.T) {
	t.Parallel()
	objs, err := DefaultPipeline().Run(NewRawText(smallBox))
	ut.AssertEqual(t, nil, err)
	out, err := Draw(objs, Options{Format: SVG})
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, true, strings.Contains(string(out), `width="40px" height="30px"`))
	ut.AssertEqual(t, true, strings.Contains(string(out), `d="M 5 5 L 35 5`))
	_, err = Draw(objs, Options{Format: Format(-1)})
	ut.AssertEqual(t, true, errors.Is(err, ErrConfiguration))
	// Already in output units: a second draw would scale it twice.
	again, err := Draw(objs, Options{Format: SVG})
	ut.AssertEqual(t, true, errors.Is(err, ErrConfiguration))
	var ce *ConfigurationError
	ut.AssertEqual(t, true, errors.As(err, &ce))
	ut.AssertEqual(t, "objects", ce.Param)
	ut.AssertEqual(t, 0, len(again))
}
