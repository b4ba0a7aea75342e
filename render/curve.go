package render

import (
	"math"
	"strconv"

	"github.com/phanxgames/motion"
)

// Curve plots y = Fn(x) for x in [Min.X, Max.X], dropping samples whose y
// falls outside [Min.Y, Max.Y]. Graph units are scaled by UnitSize pixels
// around the screen-space Origin, with y pointing up.
type Curve struct {
	Origin   motion.Vec2
	Min, Max motion.Vec2
	Fn       func(float64) float64
	UnitSize float64
	Segments int
}

// Polylines samples the curve and returns its visible runs in screen space.
// A sample outside the y bounds splits the curve. Runs of fewer than two
// points are dropped.
func (c Curve) Polylines() [][]motion.Vec2 {
	if c.Fn == nil || c.Max.X <= c.Min.X {
		return nil
	}
	segments := c.Segments
	if segments <= 0 {
		segments = 100
	}
	step := (c.Max.X - c.Min.X) / float64(segments)

	var runs [][]motion.Vec2
	var run []motion.Vec2
	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}
	for i := 0; i <= segments; i++ {
		x := c.Min.X + float64(i)*step
		y := c.Fn(x)
		if math.IsNaN(y) || y < c.Min.Y || y > c.Max.Y {
			flush()
			continue
		}
		run = append(run, motion.Vec2{
			X: c.Origin.X + x*c.UnitSize,
			Y: c.Origin.Y - y*c.UnitSize,
		})
	}
	flush()
	return runs
}

// Grid is a Cartesian grid centered on Origin with a line every Spacing
// pixels. Every LabelInterval-th line is major and labeled with its value in
// graph units (UnitSize pixels per unit).
type Grid struct {
	Origin        motion.Vec2
	Spacing       float64
	UnitSize      float64
	LabelInterval int
}

// GridLine is one line of a Grid.
type GridLine struct {
	From, To motion.Vec2
	Major    bool
	Axis     bool
	Label    string
	LabelAt  motion.Vec2
}

const (
	gridTickSize  = 5
	gridLabelGap  = 3
	gridCharWidth = 6
)

// Lines returns the grid lines covering a w by h screen: minor and major
// lines first, then the two axes on top.
func (g Grid) Lines(w, h float64) []GridLine {
	if g.Spacing <= 0 {
		return nil
	}
	interval := max(g.LabelInterval, 1)
	unit := g.UnitSize
	if unit <= 0 {
		unit = g.Spacing
	}
	o := g.Origin

	var lines []GridLine
	vertical := func(x float64, index int) {
		ln := GridLine{From: motion.Vec2{X: x}, To: motion.Vec2{X: x, Y: h}, Major: index%interval == 0}
		if ln.Major {
			ln.Label = formatLabel((x - o.X) / unit)
			ln.LabelAt = motion.Vec2{
				X: x - float64(len(ln.Label)*gridCharWidth)/2,
				Y: o.Y + gridTickSize + gridLabelGap,
			}
		}
		lines = append(lines, ln)
	}
	horizontal := func(y float64, index int) {
		ln := GridLine{From: motion.Vec2{Y: y}, To: motion.Vec2{X: w, Y: y}, Major: index%interval == 0}
		if ln.Major {
			ln.Label = formatLabel(-(y - o.Y) / unit)
			ln.LabelAt = motion.Vec2{
				X: o.X - float64(len(ln.Label)*gridCharWidth) - gridTickSize - gridLabelGap,
				Y: y - gridCharWidth,
			}
		}
		lines = append(lines, ln)
	}

	for i, x := 1, o.X+g.Spacing; x < w; i, x = i+1, x+g.Spacing {
		vertical(x, i)
	}
	for i, x := 1, o.X-g.Spacing; x > 0; i, x = i+1, x-g.Spacing {
		vertical(x, i)
	}
	for i, y := 1, o.Y+g.Spacing; y < h; i, y = i+1, y+g.Spacing {
		horizontal(y, i)
	}
	for i, y := 1, o.Y-g.Spacing; y > 0; i, y = i+1, y-g.Spacing {
		horizontal(y, i)
	}

	lines = append(lines,
		GridLine{From: motion.Vec2{Y: o.Y}, To: motion.Vec2{X: w, Y: o.Y}, Axis: true,
			Label: "0", LabelAt: motion.Vec2{X: o.X + gridTickSize + gridLabelGap, Y: o.Y + gridTickSize + gridLabelGap}},
		GridLine{From: motion.Vec2{X: o.X}, To: motion.Vec2{X: o.X, Y: h}, Axis: true},
	)
	return lines
}

// formatLabel prints v with trailing zeros removed.
func formatLabel(v float64) string {
	if math.Abs(v) < 1e-4 {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
