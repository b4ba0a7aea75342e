package motion

// Field is one (path, from, to) entry of a TweenMulti directive.
type Field struct {
	Path     string
	From, To float64
}

type tweenField struct {
	path     Path
	from, to float64
}

// tweenDirective interpolates one or more paths on a shared clock. A single
// field tween is a tweenDirective with one field.
type tweenDirective struct {
	fields   []tweenField
	duration float64
	multi    bool
}

func (d *tweenDirective) kind() DirectiveKind {
	if d.multi {
		return DirectiveTweenMulti
	}
	return DirectiveTween
}

func (d *tweenDirective) length() (float64, bool) { return d.duration, true }

func (d *tweenDirective) begin(tl *Timeline) stepper {
	return &tweenRun{d: d, tl: tl}
}

type tweenRun struct {
	d  *tweenDirective
	tl *Timeline
	t  float64
}

// step advances the clock by dt and writes every field. The final step writes
// the exact "to" values at t == 1 before reporting completion.
func (r *tweenRun) step(dt float64) (stepResult, error) {
	r.t = advanceT(r.t, r.d.duration, dt)
	e := r.tl.ease(r.t)
	for i := range r.d.fields {
		f := &r.d.fields[i]
		v := f.from + (f.to-f.from)*e
		if r.t == 1 {
			// Land exactly on the target; from+(to-from)*1 can be off by an ulp.
			v = f.to
		}
		if err := Write(r.tl.target, f.path, v); err != nil {
			return stepRunning, err
		}
	}
	if r.t < 1 {
		return stepRunning, nil
	}
	return stepFinished, nil
}
