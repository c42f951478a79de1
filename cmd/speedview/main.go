// Command speedview shows the speedometer gauge, or renders it to files when
// -render or -dump is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/roffe/speedview/pkg/colors"
	"github.com/roffe/speedview/pkg/ebus"
	"github.com/roffe/speedview/pkg/fonts"
	"github.com/roffe/speedview/pkg/gauge"
	"github.com/roffe/speedview/pkg/theme"
	"github.com/roffe/speedview/pkg/widgets/speedview"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

type options struct {
	maxSpeed float64
	speed    float64
	step     float64
	minor    int
	color    string
	attrs    string
	fontDir  string
	size     int
	density  float64
	mph      bool
	sim      bool
	watch    bool
	render   string
	dump     bool
	open     bool

	// flags given on the command line
	set map[string]bool
	// contents of the -attrs file, once state has read it
	attributes *speedview.Attributes
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{}
	fs.Float64Var(&o.maxSpeed, "max", gauge.DefaultMaxSpeed, "max speed")
	fs.Float64Var(&o.speed, "speed", 0, "speed in km/h")
	fs.Float64Var(&o.step, "step", gauge.DefaultMajorTickStep, "speed between major ticks")
	fs.IntVar(&o.minor, "minor", gauge.DefaultMinorTicks, "minor ticks between major ticks")
	fs.StringVar(&o.color, "color", colors.Hex(gauge.DefaultColor), "tick and arc color")
	fs.StringVar(&o.attrs, "attrs", "", "YAML attribute file applied after the flags")
	fs.StringVar(&o.fontDir, "fonts", "", "directory holding "+fonts.DisplayFontName)
	fs.IntVar(&o.size, "size", 300, "output size in dp")
	fs.Float64Var(&o.density, "density", 1, "device pixels per dp")
	fs.BoolVar(&o.mph, "mph", false, "show miles per hour")
	fs.BoolVar(&o.sim, "sim", false, "drive the gauge from a simulated feed")
	fs.BoolVar(&o.watch, "watch", false, "reload -attrs when the file changes")
	fs.StringVar(&o.render, "render", "", "comma separated .png or .svg outputs")
	fs.BoolVar(&o.dump, "dump", false, "print the draw list as YAML")
	fs.BoolVar(&o.open, "open", false, "open rendered files")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: size %d", gauge.ErrInvalidArgument, o.size)
	}
	if o.density <= 0 {
		return nil, fmt.Errorf("%w: density %v", gauge.ErrInvalidArgument, o.density)
	}
	return o, nil
}

// state builds the gauge state from the flags and the attribute file.
func (o *options) state() (gauge.State, error) {
	st := gauge.DefaultState()
	if err := st.SetMaxSpeed(o.maxSpeed); err != nil {
		return st, fmt.Errorf("max: %w", err)
	}
	if err := st.SetMajorTickStep(o.step); err != nil {
		return st, fmt.Errorf("step: %w", err)
	}
	if err := st.SetMinorTicks(o.minor); err != nil {
		return st, fmt.Errorf("minor: %w", err)
	}
	c, err := colors.Parse(o.color)
	if err != nil {
		return st, fmt.Errorf("color: %w", err)
	}
	st.SetBaseColor(c)
	if err := st.SetSpeed(o.displaySpeed(o.speed)); err != nil {
		return st, fmt.Errorf("speed: %w", err)
	}
	if o.attrs != "" {
		a, err := readAttributes(o.attrs)
		if err != nil {
			return st, err
		}
		if err := a.Apply(&st); err != nil {
			return st, err
		}
		o.attributes = a
	}
	return st, nil
}

func (o *options) displaySpeed(kmh float64) float64 {
	if o.mph {
		return kmh * ebus.KmhToMph
	}
	return kmh
}

func (o *options) topic() string {
	if o.mph {
		return ebus.TopicSpeedMph
	}
	return ebus.TopicSpeedKmh
}

func readAttributes(filename string) (*speedview.Attributes, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open attributes: %w", err)
	}
	defer f.Close()
	return speedview.LoadAttributes(f)
}

func main() {
	o, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	st, err := o.state()
	if err != nil {
		log.Fatal(err)
	}

	if o.render != "" || o.dump {
		if err := headless(context.Background(), os.Stdout, o, st); err != nil {
			log.Fatal(err)
		}
		return
	}

	a := app.NewWithID("com.roffe.speedview")
	a.Settings().SetTheme(&theme.GaugeTheme{})
	mw, err := newMainWindow(a, o, st)
	if err != nil {
		log.Fatal(err)
	}
	mw.Resize(fyne.NewSize(720, 480))
	mw.ShowAndRun()
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
