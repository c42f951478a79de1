package speedview

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"
	"github.com/roffe/speedview/pkg/gauge"
)

func newTestView(t *testing.T, cfg *Config) *SpeedView {
	t.Helper()
	test.NewApp()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func ptr(v float64) *float64 { return &v }

func TestNewDefaults(t *testing.T) {
	s := newTestView(t, nil)
	if diff := cmp.Diff(gauge.DefaultState(), s.State()); diff != "" {
		t.Errorf("State() mismatch (-want +got):\n%s", diff)
	}
	if got := s.DefaultColor(); got != (color.RGBA{R: 180, G: 180, B: 180, A: 255}) {
		t.Errorf("DefaultColor() = %v", got)
	}
	if s.GetConfig() == nil {
		t.Error("GetConfig() = nil")
	}
}

func TestNewMissingFont(t *testing.T) {
	test.NewApp()
	if _, err := New(&Config{FontDir: t.TempDir()}); err == nil {
		t.Fatal("New() succeeded without a display font")
	}
}

func TestNewAttributes(t *testing.T) {
	tests := []struct {
		name    string
		attrs   *Attributes
		want    gauge.State
		wantErr bool
	}{
		{
			name:  "speed clamped to max",
			attrs: &Attributes{MaxSpeed: ptr(120), Speed: ptr(150)},
			want: func() gauge.State {
				st := gauge.DefaultState()
				st.MaxSpeed, st.Speed = 120, 120
				return st
			}(),
		},
		{
			name:  "only speed",
			attrs: &Attributes{Speed: ptr(88)},
			want: func() gauge.State {
				st := gauge.DefaultState()
				st.Speed = 88
				return st
			}(),
		},
		{
			name:    "negative max",
			attrs:   &Attributes{MaxSpeed: ptr(-1)},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.NewApp()
			s, err := New(&Config{Attributes: tt.attrs})
			if err != nil {
				if !tt.wantErr {
					t.Errorf("New() failed: %v", err)
				}
				if !errors.Is(err, gauge.ErrInvalidArgument) {
					t.Errorf("New() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("New() succeeded unexpectedly")
			}
			if diff := cmp.Diff(tt.want, s.State()); diff != "" {
				t.Errorf("State() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettersRejectInvalid(t *testing.T) {
	s := newTestView(t, nil)
	before := s.State()
	tests := []struct {
		name string
		fn   func() error
	}{
		{"max zero", func() error { return s.SetMaxSpeed(0) }},
		{"speed negative", func() error { return s.SetSpeed(-5) }},
		{"step zero", func() error { return s.SetMajorTickStep(0) }},
		{"minor negative", func() error { return s.SetMinorTicks(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, gauge.ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
			if diff := cmp.Diff(before, s.State()); diff != "" {
				t.Errorf("state changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetters(t *testing.T) {
	s := newTestView(t, nil)
	if err := s.SetMaxSpeed(300); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSpeed(250); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMajorTickStep(20); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMinorTicks(1); err != nil {
		t.Fatal(err)
	}
	s.SetDefaultColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	if s.MaxSpeed() != 300 || s.Speed() != 250 || s.MajorTickStep() != 20 || s.MinorTicks() != 1 {
		t.Errorf("unexpected state %+v", s.State())
	}
	if got := s.DefaultColor(); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("DefaultColor() = %v", got)
	}
	if err := s.SetSpeed(1000); err != nil {
		t.Fatal(err)
	}
	if s.Speed() != 300 {
		t.Errorf("Speed() = %v, want clamped 300", s.Speed())
	}
}

func TestApplyAttributesAtomic(t *testing.T) {
	s := newTestView(t, nil)
	before := s.State()
	err := s.ApplyAttributes(&Attributes{MaxSpeed: ptr(50), Speed: ptr(-1)})
	if !errors.Is(err, gauge.ErrInvalidArgument) {
		t.Fatalf("ApplyAttributes() error = %v", err)
	}
	if diff := cmp.Diff(before, s.State()); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
}

func TestLoadAttributes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *Attributes
		wantErr bool
	}{
		{"empty", "", &Attributes{}, false},
		{"both", "maxSpeed: 240\nspeed: 60\n", &Attributes{MaxSpeed: ptr(240), Speed: ptr(60)}, false},
		{"speed only", "speed: 12.5\n", &Attributes{Speed: ptr(12.5)}, false},
		{"unknown field", "color: red\n", nil, true},
		{"bad value", "speed: fast\n", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadAttributes(strings.NewReader(tt.in))
			if err != nil {
				if !tt.wantErr {
					t.Errorf("LoadAttributes() failed: %v", err)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("LoadAttributes() succeeded unexpectedly")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadAttributes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransitionTick(t *testing.T) {
	s := newTestView(t, nil)
	tr := newTransition(s, 0, 100, time.Second)

	tr.tick(0.25)
	if s.Speed() != 25 {
		t.Errorf("Speed() = %v, want 25", s.Speed())
	}
	tr.tick(0.5)
	if s.Speed() != 50 {
		t.Errorf("Speed() = %v, want 50", s.Speed())
	}
	tr.tick(1)
	if s.Speed() != 100 {
		t.Errorf("Speed() = %v, want 100", s.Speed())
	}
	select {
	case <-tr.Done():
	default:
		t.Error("Done() not closed after final tick")
	}
}

func TestTransitionCancel(t *testing.T) {
	s := newTestView(t, nil)
	tr := newTransition(s, 0, 100, time.Second)
	tr.tick(0.5)
	tr.Cancel()
	tr.Cancel()
	if !tr.Cancelled() {
		t.Fatal("Cancelled() = false")
	}
	tr.tick(0.9)
	if s.Speed() != 50 {
		t.Errorf("Speed() = %v after cancel, want 50", s.Speed())
	}
	select {
	case <-tr.Done():
	default:
		t.Error("Done() not closed after Cancel")
	}
}

func TestSetSpeedAnimated(t *testing.T) {
	s := newTestView(t, nil)

	if _, err := s.SetSpeedAnimated(-1, time.Second, time.Hour); !errors.Is(err, gauge.ErrInvalidArgument) {
		t.Errorf("negative target error = %v", err)
	}

	first, err := s.SetSpeedAnimated(500, time.Second, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if first.From != 0 || first.To != 200 {
		t.Errorf("transition = %v -> %v, want 0 -> 200", first.From, first.To)
	}

	second, err := s.SetSpeedAnimated(30, time.Second, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Cancelled() {
		t.Error("previous transition not cancelled")
	}
	if second.Cancelled() {
		t.Error("new transition cancelled")
	}
	if s.Speed() != 0 {
		t.Errorf("Speed() = %v before the delay elapsed", s.Speed())
	}
	second.Cancel()
}

func TestRendererDestroyCancels(t *testing.T) {
	s := newTestView(t, nil)
	w := test.NewWindow(s)
	defer w.Close()

	tr, err := s.SetSpeedAnimated(100, time.Second, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	r := newRenderer(s)
	r.Destroy()
	if !tr.Cancelled() {
		t.Error("Destroy() did not cancel the transition")
	}
}

func TestRendererDraw(t *testing.T) {
	s := newTestView(t, nil)
	w := test.NewWindow(s)
	defer w.Close()
	w.Resize(fyne.NewSize(300, 300))

	r := newRenderer(s)
	if got := r.MinSize(); got != fyne.NewSize(100, 100) {
		t.Errorf("MinSize() = %v", got)
	}
	r.Layout(fyne.NewSize(300, 300))
	img := r.draw(300, 300)
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Fatalf("bounds = %v", b)
	}
	first := r.surface
	r.draw(300, 300)
	if r.surface != first {
		t.Error("surface not reused for equal size")
	}
	r.draw(200, 100)
	if w, h := r.surface.Size(); w != 200 || h != 100 {
		t.Errorf("surface size = %dx%d", w, h)
	}
	if len(r.Objects()) != 1 {
		t.Errorf("Objects() = %d", len(r.Objects()))
	}
}

func TestRendererFrame(t *testing.T) {
	s := newTestView(t, &Config{Padding: gauge.Insets{Left: 10, Top: 5}})
	w := test.NewWindow(s)
	defer w.Close()

	r := newRenderer(s)
	r.Layout(fyne.NewSize(100, 100))
	f := r.frame(200, 200)
	want := gauge.Frame{
		Width: 200, Height: 200,
		Padding: gauge.Insets{Left: 20, Top: 10},
		Density: 2,
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("frame() mismatch (-want +got):\n%s", diff)
	}
}

func TestOnChanged(t *testing.T) {
	s := newTestView(t, nil)
	var got []float64
	s.SetOnChanged(func(st gauge.State) { got = append(got, st.Speed) })

	if err := s.SetSpeed(40); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSpeed(-1); err == nil {
		t.Fatal("SetSpeed(-1) succeeded")
	}
	if err := s.SetMaxSpeed(30); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{40, 30}, got); diff != "" {
		t.Errorf("OnChanged speeds mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSpeedAnimatedCompletes(t *testing.T) {
	tests := []struct {
		name            string
		target          float64
		duration, delay time.Duration
		want            float64
	}{
		{"delayed", 100, 50 * time.Millisecond, 10 * time.Millisecond, 100},
		{"immediate", 60, 50 * time.Millisecond, 0, 60},
		{"zero duration", 120, 0, 0, 120},
		{"clamped", 500, 20 * time.Millisecond, 5 * time.Millisecond, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestView(t, nil)
			w := test.NewWindow(s)
			defer w.Close()

			tr, err := s.SetSpeedAnimated(tt.target, tt.duration, tt.delay)
			if err != nil {
				t.Fatal(err)
			}
			select {
			case <-tr.Done():
			case <-time.After(5 * time.Second):
				t.Fatal("transition did not finish")
			}
			if tr.Cancelled() {
				t.Error("completed transition reports cancelled")
			}
			if got := s.Speed(); got != tt.want {
				t.Errorf("Speed() = %v, want %v", got, tt.want)
			}
		})
	}
}
