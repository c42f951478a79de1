package gauge

import (
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultMaxSpeed      = 200.0
	DefaultMajorTickStep = 10.0
	DefaultMinorTicks    = 4
)

var DefaultColor = color.RGBA{R: 180, G: 180, B: 180, A: 0xFF}

// State is everything a gauge needs to draw itself. Use the setters to
// mutate it; they keep 0 <= Speed <= MaxSpeed.
type State struct {
	Speed         float64
	MaxSpeed      float64
	MajorTickStep float64
	MinorTicks    int
	BaseColor     color.RGBA
}

func DefaultState() State {
	return State{
		MaxSpeed:      DefaultMaxSpeed,
		MajorTickStep: DefaultMajorTickStep,
		MinorTicks:    DefaultMinorTicks,
		BaseColor:     DefaultColor,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetMaxSpeed stores v. A current speed above v is clamped down to it.
func (s *State) SetMaxSpeed(v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: non-positive max speed %v", ErrInvalidArgument, v)
	}
	s.MaxSpeed = v
	if s.Speed > v {
		s.Speed = v
	}
	return nil
}

// SetSpeed stores v, clamped to MaxSpeed.
func (s *State) SetSpeed(v float64) error {
	if err := ValidateSpeed(v); err != nil {
		return err
	}
	s.Speed = s.ClampSpeed(v)
	return nil
}

// ValidateSpeed reports whether v is acceptable as a speed at all.
func ValidateSpeed(v float64) error {
	if math.IsNaN(v) || v < 0 {
		return fmt.Errorf("%w: negative speed %v", ErrInvalidArgument, v)
	}
	return nil
}

// ClampSpeed limits an already validated speed to MaxSpeed.
func (s *State) ClampSpeed(v float64) float64 {
	if v > s.MaxSpeed {
		return s.MaxSpeed
	}
	return v
}

func (s *State) SetMajorTickStep(v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: non-positive major tick step %v", ErrInvalidArgument, v)
	}
	s.MajorTickStep = v
	return nil
}

func (s *State) SetMinorTicks(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative minor tick count %d", ErrInvalidArgument, n)
	}
	s.MinorTicks = n
	return nil
}

func (s *State) SetBaseColor(c color.RGBA) {
	s.BaseColor = c
}

// Lerp interpolates linearly between from and to.
func Lerp(from, to float64, fraction float32) float64 {
	return from + float64(fraction)*(to-from)
}
