package motion

import "math"

type waitDirective struct {
	duration float64
}

func (d *waitDirective) kind() DirectiveKind { return DirectiveWait }

func (d *waitDirective) length() (float64, bool) { return math.Max(d.duration, 0), true }

func (d *waitDirective) begin(*Timeline) stepper {
	return &waitRun{duration: d.duration}
}

type waitRun struct {
	duration float64
	elapsed  float64
}

// step never touches the target. A non-positive wait completes on its first
// step without consuming the frame, letting the next directive run in the
// same update.
func (r *waitRun) step(dt float64) (stepResult, error) {
	if r.duration <= 0 {
		return stepSkipped, nil
	}
	r.elapsed += dt
	if r.elapsed >= r.duration-timeEpsilon {
		return stepFinished, nil
	}
	return stepRunning, nil
}
