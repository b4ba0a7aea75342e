package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/motion"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white image used as the
// source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(motion.ColorWhite.NRGBA())
	}
	return whitePixelImage
}

// Screen draws frames onto an ebiten image. Buffers are reused between
// frames, so keep one Screen per window.
type Screen struct {
	// Labels enables grid labels, drawn with the debug font.
	Labels bool

	verts []ebiten.Vertex
	inds  []uint16
}

// Draw renders f onto dst. The background is filled first.
func (s *Screen) Draw(dst *ebiten.Image, f Frame) {
	dst.Fill(f.Background.NRGBA())
	for i := range f.Items {
		it := &f.Items[i]
		if it.Color.A <= 0 {
			continue
		}
		if it.Filled {
			s.fill(dst, it.Points, it.Color)
		} else {
			s.stroke(dst, it)
		}
		if s.Labels && it.Label != "" {
			ebitenutil.DebugPrintAt(dst, it.Label, int(it.LabelAt.X), int(it.LabelAt.Y))
		}
	}
}

// fill draws a convex polygon as a triangle fan.
func (s *Screen) fill(dst *ebiten.Image, points []motion.Vec2, c motion.Color) {
	n := len(points)
	if n < 3 {
		return
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range points {
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		})
	}
	for i := 1; i < n-1; i++ {
		s.inds = append(s.inds, 0, uint16(i), uint16(i+1))
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &op)
}

func (s *Screen) stroke(dst *ebiten.Image, it *Item) {
	width := float32(it.Thickness)
	if width <= 0 {
		width = 1
	}
	clr := it.Color.NRGBA()
	for i := 1; i < len(it.Points); i++ {
		a, b := it.Points[i-1], it.Points[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}
