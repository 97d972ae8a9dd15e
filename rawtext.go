// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// A Span is a half-open byte range [Start, End) into the original diagram source.
type Span struct {
	Start int
	End   int
}

// String implements fmt.Stringer on Span.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// RawText is the diagram source as seen by one stage. Stages never edit it: they consume
// byte ranges, which yields a new RawText. Consumed runes render as blanks of the same display
// width, so every unconsumed rune keeps its row and column.
type RawText struct {
	src      string
	consumed []bool
}

// NewRawText returns a RawText with nothing consumed yet.
func NewRawText(src string) RawText {
	return RawText{src: src, consumed: make([]bool, len(src))}
}

// Source returns the original, unconsumed diagram source.
func (t RawText) Source() string {
	return t.src
}

// IsConsumed returns true if the byte at offset off was consumed by some stage.
func (t RawText) IsConsumed(off int) bool {
	return t.consumed[off]
}

// Consume returns a copy of t with the supplied spans marked as consumed. Newlines are never
// consumed, which keeps the line structure intact for later stages. Consuming a byte twice is
// an error: a later stage may only take what earlier stages left behind.
func (t RawText) Consume(spans ...Span) (RawText, error) {
	out := RawText{src: t.src, consumed: make([]bool, len(t.consumed))}
	copy(out.consumed, t.consumed)
	for _, s := range spans {
		if s.Start < 0 || s.End > len(t.src) || s.Start > s.End {
			return t, fmt.Errorf("span %s out of range for %d bytes", s, len(t.src))
		}
		for i := s.Start; i < s.End; i++ {
			if t.src[i] == '\n' {
				continue
			}
			if out.consumed[i] {
				return t, fmt.Errorf("span %s: byte %d already consumed", s, i)
			}
			out.consumed[i] = true
		}
	}
	return out, nil
}

// ConsumedSince returns, in source order, the spans consumed in t but not in prev. Both must
// derive from the same source.
func (t RawText) ConsumedSince(prev RawText) []Span {
	var out []Span
	start := -1
	for i := range t.consumed {
		fresh := t.consumed[i] && (len(prev.consumed) <= i || !prev.consumed[i])
		switch {
		case fresh && start == -1:
			start = i
		case !fresh && start != -1:
			out = append(out, Span{start, i})
			start = -1
		}
	}
	if start != -1 {
		out = append(out, Span{start, len(t.consumed)})
	}
	return out
}

// Slice returns the original source bytes covered by s.
func (t RawText) Slice(s Span) string {
	return t.src[s.Start:s.End]
}

// String renders the residual text: consumed runes become spaces, as many as the rune's
// display width.
func (t RawText) String() string {
	return t.Residual(Span{0, len(t.src)})
}

// Residual renders the residual text within s.
func (t RawText) Residual(s Span) string {
	var b strings.Builder
	b.Grow(s.Len())
	for i := s.Start; i < s.End; {
		r, l := utf8.DecodeRuneInString(t.src[i:])
		if t.consumed[i] {
			b.WriteString(strings.Repeat(" ", max(runewidth.RuneWidth(r), 1)))
		} else {
			b.WriteString(t.src[i : i+l])
		}
		i += l
	}
	return b.String()
}

// Unconsumed splits s into the spans whose bytes no stage consumed yet.
func (t RawText) Unconsumed(s Span) []Span {
	var out []Span
	start := -1
	for i := s.Start; i < s.End; i++ {
		switch {
		case !t.consumed[i] && start == -1:
			start = i
		case t.consumed[i] && start != -1:
			out = append(out, Span{start, i})
			start = -1
		}
	}
	if start != -1 {
		out = append(out, Span{start, s.End})
	}
	return out
}

// IsBlank returns true when nothing but whitespace remains.
func (t RawText) IsBlank() bool {
	return strings.TrimSpace(t.String()) == ""
}

// lineSpan returns the span of the line holding byte offset off, without its newline.
func (t RawText) lineSpan(off int) Span {
	start := strings.LastIndexByte(t.src[:off], '\n') + 1
	end := strings.IndexByte(t.src[off:], '\n')
	if end == -1 {
		end = len(t.src)
	} else {
		end += off
	}
	return Span{start, end}
}

// lineStart returns the byte offset at which the n-th line (0 based) begins, or len(src) if
// there are fewer lines.
func (t RawText) lineStart(n int) int {
	off := 0
	for ; n > 0; n-- {
		i := strings.IndexByte(t.src[off:], '\n')
		if i == -1 {
			return len(t.src)
		}
		off += i + 1
	}
	return off
}
