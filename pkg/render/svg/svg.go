// Package svg draws gauges as SVG documents.
package svg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svgo "github.com/ajstarks/svgo"
	"github.com/roffe/speedview/pkg/common"
	"github.com/roffe/speedview/pkg/fonts"
	"github.com/roffe/speedview/pkg/gauge"
)

var _ gauge.Surface = (*Surface)(nil)

// Surface collects SVG elements in memory; Encode wraps them in a document.
type Surface struct {
	width, height int
	fonts         *fonts.Source
	FontFamily    string

	body   bytes.Buffer
	canvas *svgo.SVG
}

// New returns a w by h surface. A nil source uses the bundled font for
// text metrics.
func New(w, h int, src *fonts.Source) *Surface {
	if src == nil {
		src = fonts.Bundled()
	}
	s := &Surface{width: w, height: h, fonts: src, FontFamily: "monospace"}
	s.canvas = svgo.New(&s.body)
	return s
}

func (s *Surface) Clear() {
	s.body.Reset()
}

func (s *Surface) Line(x1, y1, x2, y2 float64, p gauge.Paint) {
	s.canvas.Line(px(x1), px(y1), px(x2), px(y2), stroke(p))
}

func (s *Surface) Circle(cx, cy, r float64, p gauge.Paint) {
	style := stroke(p) + ";fill:none"
	if p.Fill {
		style = fill(p.Color)
	}
	s.canvas.Circle(px(cx), px(cy), px(r), style)
}

func (s *Surface) Arc(oval gauge.Rect, start, sweep float64, p gauge.Paint) {
	c := oval.Center()
	r := oval.W * common.OneHalf
	s.canvas.Path(arcPath(c.X, c.Y, r, start, sweep), stroke(p)+";fill:none")
}

func (s *Surface) Text(str string, x, y float64, p gauge.Paint) {
	style := fmt.Sprintf("%s;font-family:%s;font-size:%spx;text-anchor:%s",
		fill(p.Color), s.FontFamily, num(p.Size), anchor(p.Align))
	s.canvas.Text(px(x), px(y), str, style)
}

func (s *Surface) FontMetrics(size float64) (float64, float64) {
	return s.fonts.Metrics(size)
}

// Encode writes the complete document to w.
func (s *Surface) Encode(w io.Writer) error {
	doc := svgo.New(w)
	doc.Start(s.width, s.height)
	if _, err := w.Write(s.body.Bytes()); err != nil {
		return err
	}
	doc.End()
	return nil
}

// arcPath builds a path for an arc in the clockwise-from-east convention.
// Sweeps of a full turn or more are split in two so the end point differs
// from the start.
func arcPath(cx, cy, r, start, sweep float64) string {
	point := func(deg float64) (float64, float64) {
		s, c := math.Sincos(common.Rad(deg))
		return cx + c*r, cy + s*r
	}
	x0, y0 := point(start)
	d := "M" + num(x0) + "," + num(y0)
	remaining := sweep
	angle := start
	for remaining > 0 {
		seg := math.Min(remaining, 180)
		angle += seg
		x, y := point(angle)
		d += fmt.Sprintf(" A%s,%s 0 0 1 %s,%s", num(r), num(r), num(x), num(y))
		remaining -= seg
	}
	return d
}

func px(v float64) int {
	return int(math.Round(v))
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.RGBA) string {
	return strconv.FormatFloat(float64(c.A)/0xFF, 'f', 3, 64)
}

func stroke(p gauge.Paint) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%s", rgb(p.Color), opacity(p.Color), num(p.Width))
}

func fill(c color.RGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", rgb(c), opacity(c))
}

func anchor(a gauge.Align) string {
	switch a {
	case gauge.AlignCenter:
		return "middle"
	case gauge.AlignRight:
		return "end"
	default:
		return "start"
	}
}
