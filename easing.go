package motion

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// EaseFunc reparameterizes normalized progress t in [0, 1] before it is used
// for interpolation. The output is not clamped: back and elastic curves
// overshoot on purpose.
type EaseFunc func(t float64) float64

// Linear is the identity curve and the default for every timeline.
func Linear(t float64) float64 { return t }

// FromTween adapts a gween easing function (begin, change, duration form) to
// an EaseFunc over normalized progress. gween computes in float32, so the
// result carries about 7 significant digits; over a range of 1e6 units the
// interpolated value moves in steps of roughly 0.1. Timelines still land
// exactly on their end values.
func FromTween(fn ease.TweenFunc) EaseFunc {
	if fn == nil {
		return Linear
	}
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Polynomial and sine curves are computed in float64.
var (
	InQuad    EaseFunc = func(t float64) float64 { return t * t }
	OutQuad   EaseFunc = func(t float64) float64 { return 1 - (1-t)*(1-t) }
	InOutQuad EaseFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	}
	InCubic    EaseFunc = func(t float64) float64 { return t * t * t }
	OutCubic   EaseFunc = func(t float64) float64 { return 1 - math.Pow(1-t, 3) }
	InOutCubic EaseFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}
	InQuart    EaseFunc = func(t float64) float64 { return t * t * t * t }
	OutQuart   EaseFunc = func(t float64) float64 { return 1 - math.Pow(1-t, 4) }
	InOutQuart EaseFunc = func(t float64) float64 {
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 4)/2
	}
	InSine    EaseFunc = func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }
	OutSine   EaseFunc = func(t float64) float64 { return math.Sin(t * math.Pi / 2) }
	InOutSine EaseFunc = func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }
)

// The remaining curves are backed by github.com/tanema/gween/ease.
var (
	InExpo       = FromTween(ease.InExpo)
	OutExpo      = FromTween(ease.OutExpo)
	InOutExpo    = FromTween(ease.InOutExpo)
	InCirc       = FromTween(ease.InCirc)
	OutCirc      = FromTween(ease.OutCirc)
	InOutCirc    = FromTween(ease.InOutCirc)
	InBack       = FromTween(ease.InBack)
	OutBack      = FromTween(ease.OutBack)
	InOutBack    = FromTween(ease.InOutBack)
	InElastic    = FromTween(ease.InElastic)
	OutElastic   = FromTween(ease.OutElastic)
	InOutElastic = FromTween(ease.InOutElastic)
	InBounce     = FromTween(ease.InBounce)
	OutBounce    = FromTween(ease.OutBounce)
	InOutBounce  = FromTween(ease.InOutBounce)
)

var easings = map[string]EaseFunc{
	"linear":       Linear,
	"inQuad":       InQuad,
	"outQuad":      OutQuad,
	"inOutQuad":    InOutQuad,
	"inCubic":      InCubic,
	"outCubic":     OutCubic,
	"inOutCubic":   InOutCubic,
	"inQuart":      InQuart,
	"outQuart":     OutQuart,
	"inOutQuart":   InOutQuart,
	"inSine":       InSine,
	"outSine":      OutSine,
	"inOutSine":    InOutSine,
	"inExpo":       InExpo,
	"outExpo":      OutExpo,
	"inOutExpo":    InOutExpo,
	"inCirc":       InCirc,
	"outCirc":      OutCirc,
	"inOutCirc":    InOutCirc,
	"inBack":       InBack,
	"outBack":      OutBack,
	"inOutBack":    InOutBack,
	"inElastic":    InElastic,
	"outElastic":   OutElastic,
	"inOutElastic": InOutElastic,
	"inBounce":     InBounce,
	"outBounce":    OutBounce,
	"inOutBounce":  InOutBounce,
}

// EaseByName looks up a named curve ("linear", "outBounce", ...). Used by
// declarative scenario files.
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// EaseNames returns every name EaseByName accepts, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
