package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	sdialog "github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"github.com/roffe/speedview/pkg/colors"
	"github.com/roffe/speedview/pkg/ebus"
	"github.com/roffe/speedview/pkg/gauge"
	"github.com/roffe/speedview/pkg/render/raster"
	"github.com/roffe/speedview/pkg/widgets/speedview"
)

const (
	prefsMaxSpeed = "maxSpeed"
	prefsStep     = "majorTickStep"
	prefsMinor    = "minorTicks"
	prefsColor    = "defaultColor"
)

type mainWindow struct {
	fyne.Window
	app  fyne.App
	opts *options

	gauge  *speedview.SpeedView
	bus    *ebus.Bus
	slider *widget.Slider

	maxEntry   *widget.Entry
	stepEntry  *widget.Entry
	minorEntry *widget.Entry

	closers []func()
}

func newMainWindow(a fyne.App, o *options, st gauge.State) (*mainWindow, error) {
	st = restorePrefs(a.Preferences(), st, o)
	attrs := &speedview.Attributes{MaxSpeed: &st.MaxSpeed, Speed: &st.Speed}
	g, err := speedview.New(&speedview.Config{
		MinSize:    fyne.NewSize(float32(o.size), float32(o.size)),
		FontDir:    o.fontDir,
		Attributes: attrs,
	})
	if err != nil {
		return nil, err
	}
	if err := g.SetMajorTickStep(st.MajorTickStep); err != nil {
		return nil, err
	}
	if err := g.SetMinorTicks(st.MinorTicks); err != nil {
		return nil, err
	}
	g.SetDefaultColor(st.BaseColor)

	mw := &mainWindow{
		Window: a.NewWindow("SpeedView"),
		app:    a,
		opts:   o,
		gauge:  g,
		bus:    ebus.New(ebus.DefaultTTL),
	}
	mw.bus.RegisterAggregator(ebus.ScaleAggregator(ebus.TopicSpeedKmh, ebus.TopicSpeedMph, ebus.KmhToMph))
	mw.closers = append(mw.closers, mw.bus.SubscribeFunc(o.topic(), func(v float64) {
		if err := mw.gauge.SetSpeed(v); err != nil {
			fyne.LogError("speed sample", err)
		}
	}))

	if o.sim {
		stop := simulate(mw.bus, g.MaxSpeed())
		mw.closers = append(mw.closers, stop)
	}
	if o.watch && o.attrs != "" {
		stop, err := watchAttributes(o.attrs, mw.applyAttributes)
		if err != nil {
			return nil, err
		}
		mw.closers = append(mw.closers, stop)
	}

	mw.SetContent(mw.layout())
	mw.followGauge()
	mw.SetCloseIntercept(func() {
		mw.savePrefs()
		for _, c := range mw.closers {
			c()
		}
		mw.bus.Close()
		mw.Close()
	})
	return mw, nil
}

func (mw *mainWindow) layout() fyne.CanvasObject {
	mw.slider = widget.NewSlider(0, mw.gauge.MaxSpeed())
	mw.slider.Step = 1
	mw.slider.SetValue(mw.gauge.Speed())
	mw.slider.OnChanged = func(v float64) {
		if err := mw.gauge.SetSpeed(v); err != nil {
			mw.showError(err)
		}
	}

	mw.maxEntry = floatEntry(mw.gauge.MaxSpeed())
	mw.stepEntry = floatEntry(mw.gauge.MajorTickStep())
	mw.minorEntry = widget.NewEntry()
	mw.minorEntry.SetText(strconv.Itoa(mw.gauge.MinorTicks()))

	apply := widget.NewButton("Apply", mw.applyEntries)

	target := widget.NewEntry()
	target.SetPlaceHolder("target")
	animate := widget.NewButton("Animate", func() {
		v, err := strconv.ParseFloat(strings.TrimSpace(target.Text), 64)
		if err != nil {
			mw.showError(err)
			return
		}
		if _, err := mw.gauge.AnimateSpeed(v); err != nil {
			mw.showError(err)
		}
	})

	form := widget.NewForm(
		widget.NewFormItem("Max speed", mw.maxEntry),
		widget.NewFormItem("Major step", mw.stepEntry),
		widget.NewFormItem("Minor ticks", mw.minorEntry),
	)

	controls := container.NewVBox(
		form,
		apply,
		widget.NewSeparator(),
		widget.NewLabel("Speed"),
		mw.slider,
		container.NewBorder(nil, nil, nil, animate, target),
		widget.NewSeparator(),
		widget.NewButton("Color", mw.pickColor),
		widget.NewButton("Export", mw.export),
		widget.NewButton("Copy image", mw.copyImage),
	)

	split := container.NewHSplit(mw.gauge, container.NewVScroll(controls))
	split.Offset = 0.65
	return split
}

func floatEntry(v float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(v, 'f', -1, 64))
	return e
}

func (mw *mainWindow) applyEntries() {
	maxSpeed, err := strconv.ParseFloat(strings.TrimSpace(mw.maxEntry.Text), 64)
	if err != nil {
		mw.showError(fmt.Errorf("max speed: %w", err))
		return
	}
	step, err := strconv.ParseFloat(strings.TrimSpace(mw.stepEntry.Text), 64)
	if err != nil {
		mw.showError(fmt.Errorf("major step: %w", err))
		return
	}
	minor, err := strconv.Atoi(strings.TrimSpace(mw.minorEntry.Text))
	if err != nil {
		mw.showError(fmt.Errorf("minor ticks: %w", err))
		return
	}
	if err := mw.gauge.SetMaxSpeed(maxSpeed); err != nil {
		mw.showError(err)
		return
	}
	if err := mw.gauge.SetMajorTickStep(step); err != nil {
		mw.showError(err)
		return
	}
	if err := mw.gauge.SetMinorTicks(minor); err != nil {
		mw.showError(err)
		return
	}
	mw.syncSlider()
}

// followGauge keeps the slider on the gauge's speed, so bus samples and
// animation frames move it too.
func (mw *mainWindow) followGauge() {
	mw.gauge.SetOnChanged(func(gauge.State) { mw.syncSlider() })
}

func (mw *mainWindow) syncSlider() {
	mw.slider.Max = mw.gauge.MaxSpeed()
	mw.slider.Value = mw.gauge.Speed()
	mw.slider.Refresh()
}

func (mw *mainWindow) applyAttributes(a *speedview.Attributes) {
	if err := mw.gauge.ApplyAttributes(a); err != nil {
		log.Println("attributes:", err)
		return
	}
	mw.maxEntry.SetText(strconv.FormatFloat(mw.gauge.MaxSpeed(), 'f', -1, 64))
	mw.syncSlider()
}

func (mw *mainWindow) pickColor() {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		mw.gauge.SetDefaultColor(c)
	})
	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), mw.Canvas())
	modal.Show()
}

func (mw *mainWindow) export() {
	filename, err := sdialog.File().Filter("PNG image", "png").Filter("SVG image", "svg").Title("Export gauge").Save()
	if err != nil {
		if err.Error() == "Cancelled" {
			return
		}
		mw.showError(err)
		return
	}
	if err := renderFile(filename, nil, mw.gauge.State(), mw.opts.frame(), gauge.DefaultStyle()); err != nil {
		mw.showError(err)
	}
}

func (mw *mainWindow) copyImage() {
	if err := clipboard.Init(); err != nil {
		mw.showError(fmt.Errorf("clipboard unavailable: %w", err))
		return
	}
	frame := mw.opts.frame()
	s := raster.New(int(frame.Width), int(frame.Height), nil)
	gauge.Render(s, mw.gauge.State(), frame, gauge.DefaultStyle())
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		mw.showError(err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
}

func (mw *mainWindow) showError(err error) {
	dialog.ShowError(err, mw)
}

// restorePrefs applies the saved settings that were not given on the
// command line. The attribute file is applied again afterwards so it keeps
// precedence over saved settings.
func restorePrefs(p fyne.Preferences, st gauge.State, o *options) gauge.State {
	set := o.set
	next := st
	if !set["max"] {
		if err := next.SetMaxSpeed(p.FloatWithFallback(prefsMaxSpeed, st.MaxSpeed)); err != nil {
			log.Println("prefs:", err)
		}
	}
	if !set["step"] {
		if err := next.SetMajorTickStep(p.FloatWithFallback(prefsStep, st.MajorTickStep)); err != nil {
			log.Println("prefs:", err)
		}
	}
	if !set["minor"] {
		if err := next.SetMinorTicks(p.IntWithFallback(prefsMinor, st.MinorTicks)); err != nil {
			log.Println("prefs:", err)
		}
	}
	if s := p.String(prefsColor); s != "" && !set["color"] {
		if c, err := colors.Parse(s); err == nil {
			next.SetBaseColor(c)
		}
	}
	if o.attributes != nil {
		if err := o.attributes.Apply(&next); err != nil {
			log.Println("attributes:", err)
		}
	}
	return next
}

func (mw *mainWindow) savePrefs() {
	p := mw.app.Preferences()
	st := mw.gauge.State()
	p.SetFloat(prefsMaxSpeed, st.MaxSpeed)
	p.SetFloat(prefsStep, st.MajorTickStep)
	p.SetInt(prefsMinor, st.MinorTicks)
	p.SetString(prefsColor, colors.Hex(st.BaseColor))
}
