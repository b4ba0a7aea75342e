package scenario

import (
	"maps"
	"math"
	"slices"
)

var curveFuncs = map[string]func(float64) float64{
	"sin":    math.Sin,
	"cos":    math.Cos,
	"tan":    math.Tan,
	"abs":    math.Abs,
	"sqrt":   math.Sqrt,
	"exp":    math.Exp,
	"line":   func(x float64) float64 { return x },
	"square": func(x float64) float64 { return x * x },
	"cube":   func(x float64) float64 { return x * x * x },
}

// CurveFunc returns the plotted function of a curve target by name.
func CurveFunc(name string) (func(float64) float64, bool) {
	fn, ok := curveFuncs[name]
	return fn, ok
}

// CurveFuncNames returns the registered curve function names, sorted.
func CurveFuncNames() []string {
	return slices.Sorted(maps.Keys(curveFuncs))
}
