// Package speedview is a circular speedometer widget.
package speedview

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/speedview/pkg/colors"
	"github.com/roffe/speedview/pkg/fonts"
	"github.com/roffe/speedview/pkg/gauge"
)

type SpeedView struct {
	widget.BaseWidget

	cfg     *Config
	style   gauge.Style
	fonts   *fonts.Source
	minsize fyne.Size

	// animations tick on the driver's goroutine
	mu         sync.RWMutex
	state      gauge.State
	transition *Transition
	onChanged  func(gauge.State)
}

// New returns a gauge with the default state. It fails when the display font
// cannot be loaded or the attributes are invalid.
func New(cfg *Config) (*SpeedView, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	src, err := fonts.Open(cfg.FontDir)
	if err != nil {
		return nil, err
	}

	s := &SpeedView{
		cfg:     cfg,
		style:   gauge.DefaultStyle(),
		fonts:   src,
		minsize: fyne.NewSize(100, 100),
		state:   gauge.DefaultState(),
	}
	if cfg.Style != nil {
		s.style = *cfg.Style
	}
	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		s.minsize = cfg.MinSize
	}
	if cfg.Attributes != nil {
		if err := cfg.Attributes.Apply(&s.state); err != nil {
			return nil, err
		}
	}
	s.ExtendBaseWidget(s)
	return s, nil
}

func (s *SpeedView) GetConfig() *Config { return s.cfg }

// State returns a copy of the current gauge state.
func (s *SpeedView) State() gauge.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetOnChanged registers f to be called with the new state after every
// successful change, including animation frames. f may run on any goroutine.
func (s *SpeedView) SetOnChanged(f func(gauge.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChanged = f
}

func (s *SpeedView) update(fn func(*gauge.State) error) error {
	s.mu.Lock()
	err := fn(&s.state)
	st, onChanged := s.state, s.onChanged
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Refresh()
	if onChanged != nil {
		onChanged(st)
	}
	return nil
}

func (s *SpeedView) MaxSpeed() float64 { return s.State().MaxSpeed }

func (s *SpeedView) SetMaxSpeed(v float64) error {
	return s.update(func(st *gauge.State) error { return st.SetMaxSpeed(v) })
}

func (s *SpeedView) Speed() float64 { return s.State().Speed }

// SetSpeed sets the speed, clamping it to the max speed.
func (s *SpeedView) SetSpeed(v float64) error {
	return s.update(func(st *gauge.State) error { return st.SetSpeed(v) })
}

func (s *SpeedView) MajorTickStep() float64 { return s.State().MajorTickStep }

func (s *SpeedView) SetMajorTickStep(v float64) error {
	return s.update(func(st *gauge.State) error { return st.SetMajorTickStep(v) })
}

func (s *SpeedView) MinorTicks() int { return s.State().MinorTicks }

func (s *SpeedView) SetMinorTicks(n int) error {
	return s.update(func(st *gauge.State) error { return st.SetMinorTicks(n) })
}

func (s *SpeedView) DefaultColor() color.RGBA { return s.State().BaseColor }

func (s *SpeedView) SetDefaultColor(c color.Color) {
	s.update(func(st *gauge.State) error {
		st.SetBaseColor(colors.ToRGBA(c))
		return nil
	})
}

// ApplyAttributes sets all attributes or none of them.
func (s *SpeedView) ApplyAttributes(a *Attributes) error {
	return s.update(a.Apply)
}

// SetSpeedAnimated moves the speed linearly to target over duration, starting
// after delay. A transition already running is cancelled.
func (s *SpeedView) SetSpeedAnimated(target float64, duration, delay time.Duration) (*Transition, error) {
	if err := gauge.ValidateSpeed(target); err != nil {
		return nil, err
	}
	s.mu.Lock()
	t := newTransition(s, s.state.Speed, s.state.ClampSpeed(target), duration)
	prev := s.transition
	s.transition = t
	s.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
	t.start(delay)
	return t, nil
}

// AnimateSpeed is SetSpeedAnimated with the default timings.
func (s *SpeedView) AnimateSpeed(target float64) (*Transition, error) {
	return s.SetSpeedAnimated(target, DefaultTransitionDuration, DefaultTransitionDelay)
}

func (s *SpeedView) cancelTransition() {
	s.mu.Lock()
	t := s.transition
	s.transition = nil
	s.mu.Unlock()
	if t != nil {
		t.Cancel()
	}
}

func (s *SpeedView) transitionDone(t *Transition) {
	s.mu.Lock()
	if s.transition == t {
		s.transition = nil
	}
	s.mu.Unlock()
}

func (s *SpeedView) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(s)
}
