package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/roffe/speedview/pkg/fonts"
	"github.com/roffe/speedview/pkg/gauge"
	"github.com/roffe/speedview/pkg/render/raster"
	"github.com/roffe/speedview/pkg/render/svg"
)

func (o *options) frame() gauge.Frame {
	px := float64(o.size) * o.density
	return gauge.Frame{Width: px, Height: px, Density: float32(o.density)}
}

func headless(ctx context.Context, out io.Writer, o *options, st gauge.State) error {
	src, err := fonts.Open(o.fontDir)
	if err != nil {
		return err
	}
	style := gauge.DefaultStyle()
	frame := o.frame()

	if o.dump {
		if err := dump(out, st, frame, style); err != nil {
			return err
		}
	}

	files := splitList(o.render)
	if err := renderFiles(ctx, files, src, st, frame, style); err != nil {
		return err
	}
	if o.open {
		for _, f := range files {
			if err := open.Run(f); err != nil {
				return fmt.Errorf("failed to open %s: %w", f, err)
			}
		}
	}
	return nil
}

// renderFiles writes every file concurrently. Each worker gets its own font
// faces.
func renderFiles(ctx context.Context, files []string, src *fonts.Source, st gauge.State, frame gauge.Frame, style gauge.Style) error {
	errg, gctx := errgroup.WithContext(ctx)
	for _, filename := range files {
		f := src.Fork()
		errg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := renderFile(filename, f, st, frame, style); err != nil {
				return err
			}
			log.Println("wrote", filename)
			return nil
		})
	}
	return errg.Wait()
}

type encoder interface {
	gauge.Surface
	encode(io.Writer) error
}

type pngSurface struct{ *raster.Surface }

func (p pngSurface) encode(w io.Writer) error { return p.EncodePNG(w) }

type svgSurface struct{ *svg.Surface }

func (s svgSurface) encode(w io.Writer) error { return s.Encode(w) }

func newEncoder(filename string, src *fonts.Source, frame gauge.Frame) (encoder, error) {
	w, h := int(frame.Width), int(frame.Height)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return pngSurface{raster.New(w, h, src)}, nil
	case ".svg":
		return svgSurface{svg.New(w, h, src)}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output %q", gauge.ErrInvalidArgument, ext)
	}
}

func renderFile(filename string, src *fonts.Source, st gauge.State, frame gauge.Frame, style gauge.Style) error {
	enc, err := newEncoder(filename, src, frame)
	if err != nil {
		return err
	}
	gauge.Render(enc, st, frame, style)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := enc.encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return f.Close()
}

func dump(w io.Writer, st gauge.State, frame gauge.Frame, style gauge.Style) error {
	rec := gauge.NewRecorder()
	gauge.Render(rec, st, frame, style)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec.Ops()); err != nil {
		return fmt.Errorf("failed to dump draw list: %w", err)
	}
	return enc.Close()
}
