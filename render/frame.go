package render

import (
	"math"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/scenario"
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 48

// Item is one drawable element in screen space. Filled items are convex
// polygons; the others are polylines stroked with Thickness.
type Item struct {
	Name      string
	Color     motion.Color
	Points    []motion.Vec2
	Filled    bool
	Thickness float64

	// Label is optional text drawn at LabelAt by renderers that support it.
	Label   string
	LabelAt motion.Vec2
}

// Frame is a read-only snapshot of a scene's targets, ready to be drawn by
// any renderer.
type Frame struct {
	Index      int
	Width      int
	Height     int
	Background motion.Color
	Items      []Item
}

// Snapshot reads the current state of every target in s. It never writes to
// the targets, so it may be called at any point between Updates.
func Snapshot(s *scenario.Scene, index int) Frame {
	f := Frame{
		Index:      index,
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background,
	}
	for _, t := range s.Targets {
		f.Items = appendTarget(f.Items, t, s.Width, s.Height)
	}
	return f
}

func appendTarget(items []Item, t *scenario.Target, w, h int) []Item {
	c := t.Color()
	switch t.Shape {
	case scenario.ShapeRect:
		x, y := t.Value("x"), t.Value("y")
		rw, rh := t.Value("w"), t.Value("h")
		return append(items, Item{
			Name:   t.Name,
			Color:  c,
			Filled: true,
			Points: []motion.Vec2{{X: x, Y: y}, {X: x + rw, Y: y}, {X: x + rw, Y: y + rh}, {X: x, Y: y + rh}},
		})
	case scenario.ShapeCircle:
		return append(items, Item{
			Name:   t.Name,
			Color:  c,
			Filled: true,
			Points: circlePoints(motion.Vec2{X: t.Value("x"), Y: t.Value("y")}, t.Value("radius")),
		})
	case scenario.ShapeTriangle:
		return append(items, Item{
			Name:   t.Name,
			Color:  c,
			Filled: true,
			Points: []motion.Vec2{t.Point("a"), t.Point("b"), t.Point("c")},
		})
	case scenario.ShapeCurve:
		fn, ok := scenario.CurveFunc(t.Func)
		if !ok {
			return items
		}
		curve := Curve{
			Origin:   t.Point("origin"),
			Min:      t.Point("min"),
			Max:      t.Point("max"),
			Fn:       fn,
			UnitSize: t.Value("unit"),
			Segments: int(t.Value("segments")),
		}
		for _, run := range curve.Polylines() {
			items = append(items, Item{Name: t.Name, Color: c, Points: run, Thickness: t.Value("thickness")})
		}
		return items
	case scenario.ShapeGrid:
		grid := Grid{
			Origin:        t.Point("origin"),
			Spacing:       t.Value("spacing"),
			UnitSize:      t.Value("unit"),
			LabelInterval: int(t.Value("interval")),
		}
		for _, ln := range grid.Lines(float64(w), float64(h)) {
			lc := c
			thickness := 1.0
			switch {
			case ln.Axis:
				thickness = 2
			case ln.Major:
				lc.A *= 0.5
			default:
				lc.A *= 0.2
			}
			items = append(items, Item{
				Name:      t.Name,
				Color:     lc,
				Points:    []motion.Vec2{ln.From, ln.To},
				Thickness: thickness,
				Label:     ln.Label,
				LabelAt:   ln.LabelAt,
			})
		}
		return items
	}
	return items
}

func circlePoints(center motion.Vec2, r float64) []motion.Vec2 {
	pts := make([]motion.Vec2, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = motion.Vec2{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	return pts
}
