package gauge

// Render draws one frame of the gauge onto s and returns the geometry it used.
func Render(s Surface, st State, f Frame, style Style) Layout {
	l := Compute(st, f, style)

	s.Clear()

	tick := Paint{Color: st.BaseColor, Width: style.TickWidth}
	for _, t := range l.Ticks {
		s.Line(t.From.X, t.From.Y, t.To.X, t.To.Y, tick)
	}

	s.Arc(l.Accent.Oval, l.Accent.Start, l.Accent.Sweep, Paint{Color: st.BaseColor, Width: style.AccentWidth})

	s.Circle(l.Indicator.X, l.Indicator.Y, style.IndicatorRadius, Paint{Color: style.IndicatorColor, Fill: true})

	ascent, descent := s.FontMetrics(l.SpeedTextSize)
	s.Text(style.SpeedText, l.Center.X, l.SpeedBaseline(ascent, descent), Paint{
		Color: style.SpeedTextColor,
		Size:  l.SpeedTextSize,
		Fill:  true,
		Align: AlignCenter,
	})

	s.Text(style.CategoryText, l.Center.X, l.CategoryBaseline, Paint{
		Color: style.CategoryTextColor,
		Size:  l.CategoryTextSize,
		Fill:  true,
		Align: AlignCenter,
	})

	return l
}
