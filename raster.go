// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"bytes"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// jpegQuality is the quality of JPEG output.
const jpegQuality = 90

// monoFont is parsed on first use and shared by every raster render.
var monoFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gomono.TTF)
})

// rasterBackend paints with the gg software rasterizer.
type rasterBackend struct {
	format Format
	layout Layout
	dc     *gg.Context
	font   *text.FontSource
	err    error
}

func (r *rasterBackend) Create(l Layout) error {
	if err := checkCanvas(r.format, l); err != nil {
		return err
	}
	font, err := monoFont()
	if err != nil {
		return &BackendError{Format: r.format, Op: "create", Err: err}
	}
	r.layout = l
	r.font = font
	r.dc = gg.NewContext(int(math.Ceil(l.Canvas.X)), int(math.Ceil(l.Canvas.Y)))
	r.dc.SetLineJoin(gg.LineJoinRound)
	if r.format == JPEG {
		// No alpha channel.
		r.dc.ClearWithColor(gg.White)
	}
	return nil
}

func (r *rasterBackend) Draw(d []Drawable) error {
	if r.dc == nil {
		return &BackendError{Format: r.format, Op: "draw", Err: errNotCreated}
	}
	for _, o := range d {
		o.Paint(r)
		if r.err != nil {
			return &BackendError{Format: r.format, Op: "draw", Err: r.err}
		}
	}
	return nil
}

func (r *rasterBackend) Bytes() ([]byte, error) {
	if r.dc == nil {
		return nil, &BackendError{Format: r.format, Op: "encode", Err: errNotCreated}
	}
	if err := r.dc.FlushGPU(); err != nil {
		Logger().Warn("flushing accelerator", slog.Any("err", err))
	}
	var b bytes.Buffer
	var err error
	if r.format == JPEG {
		err = r.dc.EncodeJPEG(&b, jpegQuality)
	} else {
		err = r.dc.EncodePNG(&b)
	}
	if cerr := r.dc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, &BackendError{Format: r.format, Op: "encode", Err: err}
	}
	return b.Bytes(), nil
}

func (r *rasterBackend) path(points []Vec) {
	r.dc.ClearPath()
	for i, p := range points {
		if i == 0 {
			r.dc.MoveTo(p.X, p.Y)
		} else {
			r.dc.LineTo(p.X, p.Y)
		}
	}
}

func (r *rasterBackend) setColor(c Color) {
	r.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (r *rasterBackend) FillPolygon(points []Vec, c Color) {
	if len(points) < 3 || r.err != nil {
		return
	}
	r.path(points)
	r.dc.ClosePath()
	r.setColor(c)
	r.err = r.dc.Fill()
}

func (r *rasterBackend) StrokePath(points []Vec, closed bool, s Stroke) {
	if len(points) < 2 || r.err != nil {
		return
	}
	s = lineStroke(s, r.layout.LineScale)
	r.path(points)
	if closed {
		r.dc.ClosePath()
	}
	r.setColor(s.Color)
	r.dc.SetLineWidth(s.Width)
	r.dc.SetDash(s.Dash...)
	r.err = r.dc.Stroke()
}

func (r *rasterBackend) FillText(at Vec, s string, size float64, c Color) {
	if r.err != nil || size <= 0 {
		return
	}
	r.dc.SetFont(r.font.Face(size))
	r.setColor(c)
	r.dc.DrawString(s, at.X, at.Y)
}
