package gauge

import "image/color"

// Style holds the drawing constants that are not part of the gauge state.
// Sizes suffixed Dp are density independent, the rest are device pixels.
type Style struct {
	TickWidth       float64
	AccentWidth     float64
	IndicatorRadius float64

	IndicatorColor    color.RGBA
	SpeedTextColor    color.RGBA
	CategoryTextColor color.RGBA

	SpeedText    string
	CategoryText string

	MajorTickLengthDp  int
	SpeedTextSizeDp    int
	CategoryTextSizeDp int
	TextOffsetDp       int
}

func DefaultStyle() Style {
	return Style{
		TickWidth:       3,
		AccentWidth:     5,
		IndicatorRadius: 40,

		IndicatorColor:    color.RGBA{B: 0xFF, A: 0xFF},
		SpeedTextColor:    color.RGBA{R: 0xFF, A: 0xFF},
		CategoryTextColor: color.RGBA{A: 0xFF},

		// placeholders, not bound to state yet
		SpeedText:    "70",
		CategoryText: "HIGHWAY",

		MajorTickLengthDp:  20,
		SpeedTextSizeDp:    100,
		CategoryTextSizeDp: 20,
		TextOffsetDp:       10,
	}
}
