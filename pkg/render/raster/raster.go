// Package raster draws gauges into an RGBA image.
package raster

import (
	"image"
	"image/color"
	"io"
	"log"

	"git.sr.ht/~sbinet/gg"
	"github.com/roffe/speedview/pkg/common"
	"github.com/roffe/speedview/pkg/fonts"
	"github.com/roffe/speedview/pkg/gauge"
)

var _ gauge.Surface = (*Surface)(nil)

type Surface struct {
	dc     *gg.Context
	fonts  *fonts.Source
	width  int
	height int
}

// New returns a w by h surface. A nil source uses the bundled font.
func New(w, h int, src *fonts.Source) *Surface {
	if src == nil {
		src = fonts.Bundled()
	}
	dc := gg.NewContext(w, h)
	dc.SetLineCapButt()
	return &Surface{dc: dc, fonts: src, width: w, height: h}
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

func (s *Surface) Clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

func (s *Surface) Line(x1, y1, x2, y2 float64, p gauge.Paint) {
	s.dc.SetColor(p.Color)
	s.dc.SetLineWidth(p.Width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *Surface) Circle(cx, cy, r float64, p gauge.Paint) {
	s.dc.SetColor(p.Color)
	s.dc.DrawCircle(cx, cy, r)
	if p.Fill {
		s.dc.Fill()
		return
	}
	s.dc.SetLineWidth(p.Width)
	s.dc.Stroke()
}

func (s *Surface) Arc(oval gauge.Rect, start, sweep float64, p gauge.Paint) {
	c := oval.Center()
	s.dc.SetColor(p.Color)
	s.dc.SetLineWidth(p.Width)
	s.dc.NewSubPath()
	s.dc.DrawArc(c.X, c.Y, oval.W*common.OneHalf, common.Rad(start), common.Rad(start+sweep))
	s.dc.Stroke()
}

func (s *Surface) Text(str string, x, y float64, p gauge.Paint) {
	face, err := s.fonts.Face(p.Size)
	if err != nil {
		log.Println("text face:", err)
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(p.Color)
	s.dc.DrawStringAnchored(str, x, y, anchor(p.Align), 0)
}

func (s *Surface) FontMetrics(size float64) (float64, float64) {
	return s.fonts.Metrics(size)
}

func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func anchor(a gauge.Align) float64 {
	switch a {
	case gauge.AlignCenter:
		return 0.5
	case gauge.AlignRight:
		return 1
	default:
		return 0
	}
}
