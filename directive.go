package motion

import "math"

// DirectiveKind identifies the behavior of one program entry.
type DirectiveKind uint8

const (
	DirectiveTween      DirectiveKind = iota // interpolates one path
	DirectiveTweenMulti                      // interpolates several paths on one clock
	DirectiveWait                            // consumes time without writing
	DirectiveCustom                          // calls a user func with progress
	DirectiveManual                          // calls a user func until it reports done
	DirectiveParallel                        // runs cloned timelines side by side
	DirectiveChain                           // runs a cloned timeline to completion
	DirectiveRotate                          // rotates a 2D point about an origin
)

var directiveKindNames = [...]string{
	DirectiveTween:      "tween",
	DirectiveTweenMulti: "tweenMulti",
	DirectiveWait:       "wait",
	DirectiveCustom:     "custom",
	DirectiveManual:     "manual",
	DirectiveParallel:   "parallel",
	DirectiveChain:      "then",
	DirectiveRotate:     "rotate",
}

func (k DirectiveKind) String() string {
	if int(k) < len(directiveKindNames) {
		return directiveKindNames[k]
	}
	return "unknown"
}

// stepResult is what a directive reports after consuming one frame.
type stepResult uint8

const (
	stepRunning  stepResult = iota // needs more frames
	stepFinished                   // done; this frame's time was consumed
	stepSkipped                    // done without consuming any time
)

// directive is one immutable program entry. begin allocates the per-run state
// for a single pass of the owning timeline; the directive itself never holds
// progress, so clones and restarts cannot alias it.
type directive interface {
	kind() DirectiveKind
	begin(tl *Timeline) stepper
	// length reports the simulated time one pass takes, or false when the
	// directive can run forever.
	length() (float64, bool)
}

// stepper is the live state of one directive within one run.
type stepper interface {
	step(dt float64) (stepResult, error)
}

// timeEpsilon absorbs the rounding left over when a duration is delivered in
// several chunks, so deltas that sum to the duration finish on the last chunk.
const timeEpsilon = 1e-9

// advanceT moves normalized progress t forward by dt. Progress is recomputed
// from the previous t and the duration on every call rather than incremented
// by dt/duration.
func advanceT(t, duration, dt float64) float64 {
	t = (t*duration + dt) / duration
	return clamp01(t)
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t <= 0:
		return 0
	case t >= 1-timeEpsilon:
		return 1
	}
	return t
}

func validDuration(op string, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return configErrorf(op, "duration must be positive and finite, got %v", d)
	}
	return nil
}
