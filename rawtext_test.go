// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"testing"

	"github.com/maruel/ut"
)

func TestRawTextConsume(t *testing.T) {
	t.Parallel()
	data := []struct {
		src      string
		spans    []Span
		residual string
		consumed []Span
	}{
		{"abc", nil, "abc", nil},
		{"abc", []Span{{0, 1}}, " bc", []Span{{0, 1}}},
		{"ab\ncd", []Span{{0, 5}}, "  \n  ", []Span{{0, 2}, {3, 5}}},
		{"ab\ncd", []Span{{1, 2}, {3, 4}}, "a \n d", []Span{{1, 2}, {3, 4}}},
		// Double width runes leave two blanks.
		{"日本x", []Span{{0, 3}}, "  本x", []Span{{0, 3}}},
		{"éa", []Span{{0, 2}}, " a", []Span{{0, 2}}},
	}
	for i, line := range data {
		in := NewRawText(line.src)
		out, err := in.Consume(line.spans...)
		ut.AssertEqualIndex(t, i, nil, err)
		ut.AssertEqualIndex(t, i, line.residual, out.String())
		ut.AssertEqualIndex(t, i, line.consumed, out.ConsumedSince(in))
		ut.AssertEqualIndex(t, i, line.src, out.Source())
		// The input is left untouched.
		ut.AssertEqualIndex(t, i, line.src, in.String())
	}
}

func TestRawTextConsumeErrors(t *testing.T) {
	t.Parallel()
	in, err := NewRawText("abc").Consume(Span{1, 2})
	ut.AssertEqual(t, nil, err)
	data := []Span{{1, 2}, {0, 3}, {-1, 1}, {2, 4}, {2, 1}}
	for i, s := range data {
		out, err := in.Consume(s)
		ut.AssertEqualIndex(t, i, true, err != nil)
		ut.AssertEqualIndex(t, i, "a c", out.String())
	}
}

func TestRawTextUnconsumed(t *testing.T) {
	t.Parallel()
	in, err := NewRawText("abcdef").Consume(Span{1, 2}, Span{4, 5})
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, []Span{{0, 1}, {2, 4}, {5, 6}}, in.Unconsumed(Span{0, 6}))
	ut.AssertEqual(t, []Span{{2, 4}}, in.Unconsumed(Span{1, 5}))
	ut.AssertEqual(t, []Span(nil), in.Unconsumed(Span{4, 5}))
	ut.AssertEqual(t, "c ", in.Residual(Span{2, 5}))
	ut.AssertEqual(t, "bcde", in.Slice(Span{1, 5}))
	ut.AssertEqual(t, false, in.IsBlank())
	all, err := in.Consume(in.Unconsumed(Span{0, 6})...)
	ut.AssertEqual(t, nil, err)
	ut.AssertEqual(t, true, all.IsBlank())
}

func TestRawTextLines(t *testing.T) {
	t.Parallel()
	in := NewRawText("ab\n\ncde\nf")
	ut.AssertEqual(t, Span{0, 2}, in.lineSpan(1))
	ut.AssertEqual(t, Span{3, 3}, in.lineSpan(3))
	ut.AssertEqual(t, Span{4, 7}, in.lineSpan(4))
	ut.AssertEqual(t, Span{8, 9}, in.lineSpan(8))
	ut.AssertEqual(t, 0, in.lineStart(0))
	ut.AssertEqual(t, 4, in.lineStart(2))
	ut.AssertEqual(t, 8, in.lineStart(3))
	ut.AssertEqual(t, 9, in.lineStart(10))
}
