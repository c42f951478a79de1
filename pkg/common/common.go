package common

import "math"

const (
	PiDiv180 = math.Pi / 180

	// Gauge sweep, degrees clockwise from 12 o'clock.
	SweepAngle      = 240.0
	SweepStart      = -125.0
	SweepEnd        = 125.0
	MinorTickLimit  = 170.0
	IndicatorAngle  = -40.0
	AccentArcStart  = 135.0 // degrees clockwise from east
	AccentArcSweep  = 270.0
	RingFactor      = 0.35
	AccentOvalScale = 0.7

	OneHalf = 1.0 / 2.0 // 0.5
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * PiDiv180
}
