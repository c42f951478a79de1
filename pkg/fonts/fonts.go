// Package fonts loads the display font used for the gauge labels.
package fonts

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// DisplayFontName is the file looked up in a font directory.
const DisplayFontName = "digital-7.ttf"

// Source is a parsed font that hands out faces by pixel size. Faces are not
// safe for concurrent drawing; give each goroutine its own Fork.
type Source struct {
	name string
	font *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

var bundled = sync.OnceValue(func() *Source {
	s, err := Parse("gomonobold.ttf", gomonobold.TTF)
	if err != nil {
		panic(err)
	}
	return s
})

// Bundled returns the font compiled into the binary.
func Bundled() *Source {
	return bundled()
}

func Parse(name string, data []byte) (*Source, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	return &Source{name: name, font: f, faces: make(map[float64]font.Face)}, nil
}

// Load reads and parses name from fsys.
func Load(fsys fs.FS, name string) (*Source, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return Parse(name, data)
}

// Open loads DisplayFontName from dir, or returns the bundled font when dir
// is empty.
func Open(dir string) (*Source, error) {
	if dir == "" {
		return Bundled(), nil
	}
	return Load(os.DirFS(dir), DisplayFontName)
}

// Fork returns a Source sharing the parsed font with its own face cache.
func (s *Source) Fork() *Source {
	return &Source{name: s.name, font: s.font, faces: make(map[float64]font.Face)}
}

func (s *Source) Name() string {
	return s.name
}

// Face returns a face rendering at size pixels. Faces are cached.
func (s *Source) Face(size float64) (font.Face, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

// Metrics returns ascent and descent in pixels at size.
func (s *Source) Metrics(size float64) (ascent, descent float64) {
	f, err := s.Face(size)
	if err != nil {
		return size * 0.8, size * 0.2
	}
	m := f.Metrics()
	return float64(m.Ascent) / 64, float64(m.Descent) / 64
}
