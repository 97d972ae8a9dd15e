// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	defaultFont = "Consolas,Monaco,Anonymous Pro,Anonymous,Bitstream Sans Mono,monospace"
	header      = "<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"
	watermark   = "<!-- Created with shaape -->\n"
	svgTag      = "<svg width=\"%spx\" height=\"%spx\" viewBox=\"0 0 %s %s\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\">\n"
	groupTag    = "  <g stroke-linejoin=\"round\" style=\"font-family:%s\">\n"

	polygonTag = "    <path d=\"%s Z\" stroke=\"none\" fill=\"%s\"%s />\n"
	pathTag    = "    <path d=\"%s%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"%s%s />\n"
	textTag    = "    <text x=\"%s\" y=\"%s\" font-size=\"%s\" fill=\"%s\"%s>%s</text>\n"
)

// svgBackend writes SVG 1.1 by hand.
type svgBackend struct {
	b      bytes.Buffer
	layout Layout
	open   bool
}

func (s *svgBackend) Create(l Layout) error {
	if err := checkCanvas(SVG, l); err != nil {
		return err
	}
	s.layout = l
	s.b.Reset()
	// Generating the XML manually is a tad fishy but encoding/xml enforces standard XML header
	// and the end code would be significantly larger.
	_, _ = io.WriteString(&s.b, header)
	_, _ = io.WriteString(&s.b, watermark)
	w, h := fixed(l.Canvas.X), fixed(l.Canvas.Y)
	_, _ = fmt.Fprintf(&s.b, svgTag, w, h, w, h)
	_, _ = fmt.Fprintf(&s.b, groupTag, escape(defaultFont))
	s.open = true
	return nil
}

func (s *svgBackend) Draw(d []Drawable) error {
	if !s.open {
		return &BackendError{Format: SVG, Op: "draw", Err: errNotCreated}
	}
	for _, o := range d {
		o.Paint(s)
	}
	return nil
}

func (s *svgBackend) Bytes() ([]byte, error) {
	if !s.open {
		return nil, &BackendError{Format: SVG, Op: "encode", Err: errNotCreated}
	}
	out := make([]byte, 0, s.b.Len()+16)
	out = append(out, s.b.Bytes()...)
	return append(out, "  </g>\n</svg>\n"...), nil
}

func (s *svgBackend) FillPolygon(points []Vec, c Color) {
	if len(points) == 0 {
		return
	}
	_, _ = fmt.Fprintf(&s.b, polygonTag, flatten(points), c.Hex(), opacity("fill-opacity", c))
}

func (s *svgBackend) StrokePath(points []Vec, closed bool, st Stroke) {
	if len(points) < 2 {
		return
	}
	st = lineStroke(st, s.layout.LineScale)
	sfx := ""
	if closed {
		sfx = " Z"
	}
	dash := ""
	if len(st.Dash) != 0 {
		l := make([]string, len(st.Dash))
		for i, v := range st.Dash {
			l[i] = fixed(v)
		}
		dash = fmt.Sprintf(" stroke-dasharray=\"%s\"", strings.Join(l, ","))
	}
	_, _ = fmt.Fprintf(&s.b, pathTag, flatten(points), sfx, st.Color.Hex(), fixed(st.Width), opacity("stroke-opacity", st.Color), dash)
}

func (s *svgBackend) FillText(at Vec, text string, size float64, c Color) {
	_, _ = fmt.Fprintf(&s.b, textTag, fixed(at.X), fixed(at.Y), fixed(size), c.Hex(), opacity("fill-opacity", c), escape(text))
}

func opacity(attr string, c Color) string {
	if c.A >= 1 {
		return ""
	}
	return fmt.Sprintf(" %s=\"%s\"", attr, fixed(c.A))
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}

func flatten(points []Vec) string {
	var b strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&b, "%s %s %s", cmd, fixed(p.X), fixed(p.Y))
	}
	return b.String()
}
