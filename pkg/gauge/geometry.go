package gauge

import (
	"math"

	"github.com/roffe/speedview/pkg/common"
	"github.com/roffe/speedview/pkg/dp"
)

// maxTicks bounds the number of tick marks produced for one frame.
const maxTicks = 4096

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W*common.OneHalf, Y: r.Y + r.H*common.OneHalf}
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

type Insets struct {
	Left, Top, Right, Bottom float64
}

// Frame is the area a gauge is drawn into, in device pixels.
type Frame struct {
	Width, Height float64
	Padding       Insets
	Density       float32
}

func (f Frame) density() float32 {
	if f.Density <= 0 {
		return 1
	}
	return f.Density
}

// Oval returns the bounding square scaled by factor, centered in the padded
// content area.
func (f Frame) Oval(factor float64) Rect {
	cw := f.Width - f.Padding.Left - f.Padding.Right
	ch := f.Height - f.Padding.Top - f.Padding.Bottom
	side := max(0, math.Min(cw, ch)) * factor
	return Rect{
		X: (cw-side)*common.OneHalf + f.Padding.Left,
		Y: (ch-side)*common.OneHalf + f.Padding.Top,
		W: side,
		H: side,
	}
}

type Tick struct {
	Major bool    `yaml:"major"`
	Angle float64 `yaml:"angle"`
	From  Point   `yaml:"from"`
	To    Point   `yaml:"to"`
}

type ArcSpec struct {
	Oval  Rect
	Start float64
	Sweep float64
}

// Layout is the geometry of one frame. It is recomputed on every draw.
type Layout struct {
	Square Rect
	Center Point
	Radius float64

	MajorStep   float64
	MinorStep   float64
	MajorLength float64
	MinorLength float64
	Ticks       []Tick

	Accent ArcSpec

	IndicatorAngle float64
	Indicator      Point

	TextOffset       float64
	SpeedTextSize    float64
	CategoryTextSize float64
	CategoryBaseline float64
}

// Polar returns the point at angle degrees clockwise from 12 o'clock and
// radius pixels from the center.
func (l *Layout) Polar(angle, radius float64) Point {
	s, c := math.Sincos(common.Rad(angle))
	return Point{X: l.Center.X + s*radius, Y: l.Center.Y - c*radius}
}

func (l *Layout) Majors() []float64 {
	var out []float64
	for _, t := range l.Ticks {
		if t.Major {
			out = append(out, t.Angle)
		}
	}
	return out
}

func (l *Layout) Minors() []float64 {
	var out []float64
	for _, t := range l.Ticks {
		if !t.Major {
			out = append(out, t.Angle)
		}
	}
	return out
}

// SpeedBaseline places the speed label so its glyphs are vertically centered
// on the square, lifted by the text offset.
func (l *Layout) SpeedBaseline(ascent, descent float64) float64 {
	return l.Center.Y + (ascent-descent)*common.OneHalf - l.TextOffset
}

// MajorStepAngle is the angular distance between two major ticks.
func MajorStepAngle(majorTickStep, maxSpeed float64) float64 {
	return majorTickStep / maxSpeed * common.SweepAngle
}

// Compute derives the geometry for st drawn into f.
func Compute(st State, f Frame, style Style) Layout {
	d := f.density()
	sq := f.Oval(1)
	l := Layout{
		Square:           sq,
		Center:           sq.Center(),
		Radius:           sq.W * common.RingFactor,
		MajorStep:        MajorStepAngle(st.MajorTickStep, st.MaxSpeed),
		MajorLength:      float64(dp.ToPx(d, style.MajorTickLengthDp)),
		IndicatorAngle:   common.IndicatorAngle,
		TextOffset:       float64(dp.ToPx(d, style.TextOffsetDp)),
		SpeedTextSize:    float64(dp.ToPx(d, style.SpeedTextSizeDp)),
		CategoryTextSize: float64(dp.ToPx(d, style.CategoryTextSizeDp)),
	}
	l.MinorStep = l.MajorStep / float64(1+max(0, st.MinorTicks))
	l.MinorLength = l.MajorLength * common.OneHalf
	l.CategoryBaseline = sq.Bottom() - l.CategoryTextSize - l.TextOffset

	l.Accent = ArcSpec{
		Oval:  f.Oval(common.AccentOvalScale),
		Start: common.AccentArcStart,
		Sweep: common.AccentArcSweep,
	}
	l.Indicator = l.Polar(l.IndicatorAngle, l.Radius)
	l.Ticks = l.ticks(st.MinorTicks)
	return l
}

func (l *Layout) ticks(minorTicks int) []Tick {
	if !finite(l.MajorStep) || l.MajorStep <= 0 {
		return nil
	}
	half := l.MajorLength * common.OneHalf
	minorLimit := common.MinorTickLimit + l.MinorStep*common.OneHalf

	var ticks []Tick
	for i := 0; len(ticks) < maxTicks; i++ {
		angle := common.SweepStart + float64(i)*l.MajorStep
		if angle > common.SweepEnd {
			break
		}
		ticks = append(ticks, Tick{
			Major: true,
			Angle: angle,
			From:  l.Polar(angle, l.Radius-half),
			To:    l.Polar(angle, l.Radius+half),
		})
		for j := 1; j <= minorTicks && len(ticks) < maxTicks; j++ {
			a := angle + float64(j)*l.MinorStep
			if a >= minorLimit {
				break
			}
			ticks = append(ticks, Tick{
				Angle: a,
				From:  l.Polar(a, l.Radius),
				To:    l.Polar(a, l.Radius+l.MinorLength),
			})
		}
	}
	return ticks
}
