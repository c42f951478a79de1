package gauge

import (
	"fmt"
	"image/color"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Align) UnmarshalText(b []byte) error {
	switch string(b) {
	case "left":
		*a = AlignLeft
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	default:
		return fmt.Errorf("%w: align %q", ErrInvalidArgument, b)
	}
	return nil
}

// Paint describes how a primitive is drawn. Width is the stroke width for
// outlines, Size the text size in pixels.
type Paint struct {
	Color color.RGBA `yaml:"color"`
	Width float64    `yaml:"width,omitempty"`
	Fill  bool       `yaml:"fill,omitempty"`
	Size  float64    `yaml:"size,omitempty"`
	Align Align      `yaml:"align,omitempty"`
}

// Surface is the set of drawing primitives a gauge needs. Coordinates are
// device pixels with the origin in the top left corner.
type Surface interface {
	// Clear resets the whole surface to fully transparent.
	Clear()
	Line(x1, y1, x2, y2 float64, p Paint)
	Circle(cx, cy, r float64, p Paint)
	// Arc strokes the arc inscribed in oval starting at start degrees,
	// measured clockwise from east, sweeping sweep degrees clockwise.
	Arc(oval Rect, start, sweep float64, p Paint)
	// Text draws s with its baseline at y, aligned horizontally on x.
	Text(s string, x, y float64, p Paint)
	// FontMetrics returns the ascent and descent, both positive, of the
	// display font at size pixels.
	FontMetrics(size float64) (ascent, descent float64)
}
