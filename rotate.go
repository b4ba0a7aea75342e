package motion

import "math"

// rotateDirective turns the point stored at (xPath, yPath) about origin by
// degrees over duration. The starting coordinates are read on the first step
// of every run, so a repeated timeline keeps turning from wherever the point
// was left.
type rotateDirective struct {
	xPath, yPath Path
	origin       Vec2
	radians      float64
	duration     float64
}

func (d *rotateDirective) kind() DirectiveKind { return DirectiveRotate }

func (d *rotateDirective) length() (float64, bool) { return d.duration, true }

func (d *rotateDirective) begin(tl *Timeline) stepper {
	return &rotateRun{d: d, tl: tl}
}

type rotateRun struct {
	d              *rotateDirective
	tl             *Timeline
	captured       bool
	startX, startY float64
	t              float64
}

func (r *rotateRun) step(dt float64) (stepResult, error) {
	if !r.captured {
		x, err := Read(r.tl.target, r.d.xPath)
		if err != nil {
			return stepRunning, err
		}
		y, err := Read(r.tl.target, r.d.yPath)
		if err != nil {
			return stepRunning, err
		}
		r.startX, r.startY = x, y
		r.captured = true
	}

	r.t = advanceT(r.t, r.d.duration, dt)
	e := r.tl.ease(r.t)
	if r.t == 1 {
		e = 1
	}
	x, y := RotateAbout(r.startX, r.startY, r.d.origin, r.d.radians*e)
	if err := Write(r.tl.target, r.d.xPath, x); err != nil {
		return stepRunning, err
	}
	if err := Write(r.tl.target, r.d.yPath, y); err != nil {
		return stepRunning, err
	}
	if r.t < 1 {
		return stepRunning, nil
	}
	return stepFinished, nil
}

// RotateAbout rotates the point (x, y) about origin by angle radians.
func RotateAbout(x, y float64, origin Vec2, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx, dy := x-origin.X, y-origin.Y
	return origin.X + dx*cos - dy*sin, origin.Y + dx*sin + dy*cos
}
