package host

import (
	"fmt"

	"github.com/phanxgames/motion"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 fields of a target simultaneously with gween
// tweens. It is the lightweight alternative to a Timeline for one-shot
// "move there now" animations: values start from whatever the fields hold
// when the group is created. Create one via the convenience constructors
// (TweenPosition, TweenColor, TweenAlpha) or NewTweenGroup and either call
// Update(dt) each frame or add it to a Host.
type TweenGroup struct {
	tweens [4]*gween.Tween
	paths  [4]motion.Path
	count  int
	target motion.Target
	Done   bool
}

// NewTweenGroup creates a group tweening each path of target from its
// current value to the matching entry of to. At most four paths are allowed.
func NewTweenGroup(target motion.Target, paths []string, to []float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	if len(paths) == 0 || len(paths) > 4 {
		return nil, fmt.Errorf("tween group: %d paths, want 1 to 4", len(paths))
	}
	if len(paths) != len(to) {
		return nil, fmt.Errorf("tween group: %d paths but %d targets", len(paths), len(to))
	}
	if duration <= 0 {
		return nil, fmt.Errorf("tween group: duration must be positive, got %v", duration)
	}
	fn = orLinear(fn)
	g := &TweenGroup{count: len(paths), target: target}
	for i, s := range paths {
		p, err := motion.ParsePath(s)
		if err != nil {
			return nil, err
		}
		from, err := motion.Read(target, p)
		if err != nil {
			return nil, err
		}
		g.paths[i] = p
		g.tweens[i] = gween.New(float32(from), float32(to[i]), duration, fn)
	}
	return g, nil
}

// Update advances all tweens by dt seconds and writes the values to the
// target. If a path no longer resolves, the group stops and the error is
// returned.
func (g *TweenGroup) Update(dt float64) error {
	if g.Done {
		return nil
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		if err := motion.Write(g.target, g.paths[i], float64(val)); err != nil {
			g.Done = true
			return err
		}
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	return nil
}

// Name implements Plugin.
func (g *TweenGroup) Name() string { return "tween group" }

// Register implements Plugin.
func (g *TweenGroup) Register() error { return nil }

// Unregister implements Plugin.
func (g *TweenGroup) Unregister() error { return nil }

// TweenPosition creates a TweenGroup that animates p.X and p.Y to the given
// coordinates over the specified duration using the easing function.
func TweenPosition(p *motion.Vec2, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	fn = orLinear(fn)
	g := &TweenGroup{count: 2, target: p}
	g.tweens[0] = gween.New(float32(p.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(toY), duration, fn)
	g.paths[0] = motion.MustParsePath("x")
	g.paths[1] = motion.MustParsePath("y")
	return g
}

// TweenColor creates a TweenGroup that animates all four components of c
// to the target color over the specified duration.
func TweenColor(c *motion.Color, to motion.Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	fn = orLinear(fn)
	g := &TweenGroup{count: 4, target: c}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.paths[0] = motion.MustParsePath("r")
	g.paths[1] = motion.MustParsePath("g")
	g.paths[2] = motion.MustParsePath("b")
	g.paths[3] = motion.MustParsePath("a")
	return g
}

// TweenAlpha creates a TweenGroup that animates only c.A.
func TweenAlpha(c *motion.Color, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	fn = orLinear(fn)
	g := &TweenGroup{count: 1, target: c}
	g.tweens[0] = gween.New(float32(c.A), float32(to), duration, fn)
	g.paths[0] = motion.MustParsePath("a")
	return g
}

func orLinear(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}
