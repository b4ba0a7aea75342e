package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/phanxgames/motion"
	"golang.org/x/image/vector"
)

// Raster draws frames offscreen into an RGBA image without a GPU. It is
// what the export command uses; Screen is its on-screen counterpart.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster returns a rasterizer for w by h frames.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Draw renders f and returns the raster's image. The image is reused by the
// next Draw; copy it (or encode it) before drawing again.
func (r *Raster) Draw(f Frame) *image.RGBA {
	b := r.img.Bounds()
	draw.Draw(r.img, b, image.NewUniform(f.Background.NRGBA()), image.Point{}, draw.Src)
	for i := range f.Items {
		r.drawItem(&f.Items[i])
	}
	return r.img
}

// Image returns a copy of the last drawn frame.
func (r *Raster) Image() *image.RGBA {
	out := image.NewRGBA(r.img.Bounds())
	copy(out.Pix, r.img.Pix)
	return out
}

func (r *Raster) drawItem(it *Item) {
	if it.Color.A <= 0 || len(it.Points) < 2 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	if it.Filled {
		if len(it.Points) < 3 {
			return
		}
		r.z.MoveTo(float32(it.Points[0].X), float32(it.Points[0].Y))
		for _, p := range it.Points[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	} else {
		width := it.Thickness
		if width <= 0 {
			width = 1
		}
		for i := 1; i < len(it.Points); i++ {
			r.strokeSegment(it.Points[i-1], it.Points[i], width)
		}
	}
	r.z.Draw(r.img, b, image.NewUniform(it.Color.NRGBA()), image.Point{})
}

// strokeSegment adds a segment of the given width as a quad. Quads of a
// polyline are accumulated into one path, so joints are filled by overlap.
func (r *Raster) strokeSegment(a, b motion.Vec2, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.z.ClosePath()
}
