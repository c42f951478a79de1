package speedview

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/speedview/pkg/dp"
	"github.com/roffe/speedview/pkg/gauge"
	"github.com/roffe/speedview/pkg/render/raster"
)

type speedViewRenderer struct {
	*SpeedView

	raster  *canvas.Raster
	surface *raster.Surface
	objects []fyne.CanvasObject
}

func newRenderer(s *SpeedView) *speedViewRenderer {
	r := &speedViewRenderer{SpeedView: s}
	r.raster = canvas.NewRaster(r.draw)
	r.objects = []fyne.CanvasObject{r.raster}
	return r
}

// draw is called by the driver with the raster size in device pixels.
func (r *speedViewRenderer) draw(w, h int) image.Image {
	if r.surface == nil {
		r.surface = raster.New(w, h, r.fonts)
	} else if sw, sh := r.surface.Size(); sw != w || sh != h {
		r.surface = raster.New(w, h, r.fonts)
	}
	gauge.Render(r.surface, r.State(), r.frame(w, h), r.style)
	return r.surface.Image()
}

func (r *speedViewRenderer) frame(w, h int) gauge.Frame {
	density := dp.Density(r.SpeedView)
	if size := r.raster.Size(); size.Width > 0 {
		density = float32(w) / size.Width
	}
	pad := r.cfg.Padding
	d := float64(density)
	return gauge.Frame{
		Width:  float64(w),
		Height: float64(h),
		Padding: gauge.Insets{
			Left:   pad.Left * d,
			Top:    pad.Top * d,
			Right:  pad.Right * d,
			Bottom: pad.Bottom * d,
		},
		Density: density,
	}
}

func (r *speedViewRenderer) Layout(space fyne.Size) {
	r.raster.Resize(space)
}

func (r *speedViewRenderer) MinSize() fyne.Size { return r.minsize }

func (r *speedViewRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *speedViewRenderer) Destroy() {
	r.cancelTransition()
}

func (r *speedViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}
