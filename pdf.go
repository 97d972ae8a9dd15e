// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"bytes"
	"math"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// pdfFont is the standard 14 font labels are set in. It needs no embedding.
const pdfFont = "Courier"

// pdfBackend writes a single page PDF with fpdf, one point per output unit. Alpha below 1
// switches the document to PDF 1.4 and adds a graphics state per opacity.
type pdfBackend struct {
	pdf    *fpdf.Fpdf
	layout Layout
	alpha  float64
}

func (p *pdfBackend) Create(l Layout) error {
	if err := checkCanvas(PDF, l); err != nil {
		return err
	}
	p.layout = l
	p.pdf = fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: l.Canvas.X, Ht: l.Canvas.Y},
	})
	p.pdf.SetCreator("shaape", false)
	p.pdf.SetMargins(0, 0, 0)
	p.pdf.SetAutoPageBreak(false, 0)
	p.pdf.SetLineJoinStyle("round")
	p.pdf.AddPage()
	p.alpha = 1
	if err := p.pdf.Error(); err != nil {
		return &BackendError{Format: PDF, Op: "create", Err: err}
	}
	return nil
}

func (p *pdfBackend) Draw(d []Drawable) error {
	if p.pdf == nil {
		return &BackendError{Format: PDF, Op: "draw", Err: errNotCreated}
	}
	for _, o := range d {
		o.Paint(p)
		if err := p.pdf.Error(); err != nil {
			return &BackendError{Format: PDF, Op: "draw", Err: err}
		}
	}
	return nil
}

func (p *pdfBackend) Bytes() ([]byte, error) {
	if p.pdf == nil {
		return nil, &BackendError{Format: PDF, Op: "encode", Err: errNotCreated}
	}
	var b bytes.Buffer
	if err := p.pdf.Output(&b); err != nil {
		return nil, &BackendError{Format: PDF, Op: "encode", Err: err}
	}
	return b.Bytes(), nil
}

// setAlpha switches the opacity only when it changes.
func (p *pdfBackend) setAlpha(a float64) {
	if a != p.alpha {
		p.pdf.SetAlpha(a, "Normal")
		p.alpha = a
	}
}

func (p *pdfBackend) FillPolygon(points []Vec, c Color) {
	if len(points) < 3 {
		return
	}
	pts := make([]fpdf.PointType, len(points))
	for i, v := range points {
		pts[i] = fpdf.PointType{X: v.X, Y: v.Y}
	}
	p.setAlpha(c.A)
	r, g, b := rgb255(c)
	p.pdf.SetFillColor(r, g, b)
	p.pdf.Polygon(pts, "F")
}

func (p *pdfBackend) StrokePath(points []Vec, closed bool, s Stroke) {
	if len(points) < 2 {
		return
	}
	s = lineStroke(s, p.layout.LineScale)
	p.setAlpha(s.Color.A)
	r, g, b := rgb255(s.Color)
	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetLineWidth(s.Width)
	p.pdf.SetDashPattern(s.Dash, 0)
	for i, v := range points {
		if i == 0 {
			p.pdf.MoveTo(v.X, v.Y)
		} else {
			p.pdf.LineTo(v.X, v.Y)
		}
	}
	if closed {
		p.pdf.ClosePath()
	}
	p.pdf.DrawPath("D")
}

func (p *pdfBackend) FillText(at Vec, text string, size float64, c Color) {
	if size <= 0 {
		return
	}
	p.setAlpha(c.A)
	r, g, b := rgb255(c)
	p.pdf.SetTextColor(r, g, b)
	p.pdf.SetFont(pdfFont, "", size)
	p.pdf.Text(at.X, at.Y, encodeText(text, charmap.Windows1252))
}

func rgb255(c Color) (int, int, int) {
	f := func(v float64) int {
		return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return f(c.R), f(c.G), f(c.B)
}

// encodeText returns s in the single byte encoding m. Runes m can't encode become '?'.
func encodeText(s string, m *charmap.Charmap) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := m.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}
