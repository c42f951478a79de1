package gauge_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/roffe/speedview/pkg/common"
	"github.com/roffe/speedview/pkg/gauge"
)

func newHalfSpeedState(t *testing.T) gauge.State {
	t.Helper()
	st := gauge.DefaultState()
	if err := st.SetMaxSpeed(50); err != nil {
		t.Fatal(err)
	}
	if err := st.SetMajorTickStep(25); err != nil {
		t.Fatal(err)
	}
	if err := st.SetMinorTicks(1); err != nil {
		t.Fatal(err)
	}
	if err := st.SetSpeed(25); err != nil {
		t.Fatal(err)
	}
	return st
}

// The indicator stays at -40 degrees whatever the speed; this pins that down.
func TestRenderHalfSpeedBaseline(t *testing.T) {
	st := newHalfSpeedState(t)
	rec := gauge.NewRecorder()
	l := gauge.Render(rec, st, gauge.Frame{Width: 300, Height: 300, Density: 1}, gauge.DefaultStyle())

	if l.MajorStep != 120 {
		t.Errorf("MajorStep = %v, want 120", l.MajorStep)
	}
	if diff := cmp.Diff([]float64{-125, -5, 115}, l.Majors(), approx); diff != "" {
		t.Errorf("majors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-65, 55, 175}, l.Minors(), approx); diff != "" {
		t.Errorf("minors mismatch (-want +got):\n%s", diff)
	}

	ops := rec.Ops()
	if len(ops) == 0 || ops[0].Kind != gauge.OpClear {
		t.Fatalf("first op = %v, want clear", ops)
	}
	if got := len(rec.Kind(gauge.OpLine)); got != 6 {
		t.Errorf("got %d lines, want 6", got)
	}

	circles := rec.Kind(gauge.OpCircle)
	if len(circles) != 1 {
		t.Fatalf("got %d circles, want 1", len(circles))
	}
	s, c := math.Sincos(-40 * math.Pi / 180)
	want := gauge.Point{X: 150 + s*105, Y: 150 - c*105}
	if diff := cmp.Diff(want, circles[0].From, approx); diff != "" {
		t.Errorf("indicator mismatch (-want +got):\n%s", diff)
	}
	if circles[0].R != 40 || !circles[0].Paint.Fill {
		t.Errorf("indicator = r %v fill %v, want r 40 filled", circles[0].R, circles[0].Paint.Fill)
	}
	ratio := l.Polar(10+st.Speed/st.MaxSpeed*160, l.Radius)
	if cmp.Equal(ratio, circles[0].From, approx) {
		t.Error("indicator follows the speed ratio, want fixed position")
	}
}

func TestRenderAccentArc(t *testing.T) {
	rec := gauge.NewRecorder()
	st := gauge.DefaultState()
	gauge.Render(rec, st, gauge.Frame{Width: 300, Height: 300, Density: 1}, gauge.DefaultStyle())
	arcs := rec.Kind(gauge.OpArc)
	if len(arcs) != 1 {
		t.Fatalf("got %d arcs, want 1", len(arcs))
	}
	want := gauge.Op{
		Kind:  gauge.OpArc,
		Oval:  gauge.Rect{X: 45, Y: 45, W: 210, H: 210},
		Start: common.AccentArcStart,
		Sweep: common.AccentArcSweep,
		Paint: gauge.Paint{Color: st.BaseColor, Width: 5},
	}
	if diff := cmp.Diff(want, arcs[0], approx); diff != "" {
		t.Errorf("arc mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLabels(t *testing.T) {
	rec := gauge.NewRecorder()
	style := gauge.DefaultStyle()
	gauge.Render(rec, gauge.DefaultState(), gauge.Frame{Width: 300, Height: 300, Density: 1}, style)
	texts := rec.Kind(gauge.OpText)
	if len(texts) != 2 {
		t.Fatalf("got %d texts, want 2", len(texts))
	}
	// recorder metrics: ascent 80, descent 20 at size 100
	speed := texts[0]
	if speed.Text != style.SpeedText || speed.From != (gauge.Point{X: 150, Y: 170}) || speed.Paint.Size != 100 {
		t.Errorf("speed label = %+v", speed)
	}
	cat := texts[1]
	if cat.Text != style.CategoryText || cat.From != (gauge.Point{X: 150, Y: 270}) || cat.Paint.Size != 20 {
		t.Errorf("category label = %+v", cat)
	}
	for _, tx := range texts {
		if tx.Paint.Align != gauge.AlignCenter {
			t.Errorf("%q align = %v, want center", tx.Text, tx.Paint.Align)
		}
	}
}

func TestRenderUsesCurrentBaseColor(t *testing.T) {
	rec := gauge.NewRecorder()
	st := gauge.DefaultState()
	st.SetBaseColor(gaugeRed)
	gauge.Render(rec, st, gauge.Frame{Width: 100, Height: 100}, gauge.DefaultStyle())
	for _, op := range rec.Ops() {
		if (op.Kind == gauge.OpLine || op.Kind == gauge.OpArc) && op.Paint.Color != gaugeRed {
			t.Fatalf("%s drawn with %v, want %v", op.Kind, op.Paint.Color, gaugeRed)
		}
	}
}

func TestRecorderClearResets(t *testing.T) {
	rec := gauge.NewRecorder()
	gauge.Render(rec, gauge.DefaultState(), gauge.Frame{Width: 100, Height: 100}, gauge.DefaultStyle())
	n := len(rec.Ops())
	gauge.Render(rec, gauge.DefaultState(), gauge.Frame{Width: 100, Height: 100}, gauge.DefaultStyle())
	if got := len(rec.Ops()); got != n {
		t.Errorf("second frame recorded %d ops, want %d", got, n)
	}
}
