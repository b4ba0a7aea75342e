package motion

// CustomFunc is called once per frame by a Custom directive. progress is the
// eased, normalized position in [0, 1] (eased curves may overshoot) and dt is
// the frame delta in seconds. The func may mutate target freely.
type CustomFunc func(target Target, progress, dt float64)

type customDirective struct {
	fn       CustomFunc
	duration float64
}

func (d *customDirective) kind() DirectiveKind { return DirectiveCustom }

func (d *customDirective) length() (float64, bool) { return d.duration, true }

func (d *customDirective) begin(tl *Timeline) stepper {
	return &customRun{d: d, tl: tl}
}

type customRun struct {
	d       *customDirective
	tl      *Timeline
	elapsed float64
}

func (r *customRun) step(dt float64) (stepResult, error) {
	r.elapsed += dt
	p := clamp01(r.elapsed / r.d.duration)
	eased := r.tl.ease(p)
	if p == 1 {
		eased = 1
	}
	r.d.fn(r.tl.target, eased, dt)
	if p < 1 {
		return stepRunning, nil
	}
	return stepFinished, nil
}

// ManualFunc is called once per frame by a Manual directive until it reports
// done. It receives the timeline's target and the frame delta. A non-nil
// error aborts the Update that made the call.
type ManualFunc func(target Target, dt float64) (done bool, err error)

type manualDirective struct {
	fn ManualFunc
}

func (d *manualDirective) kind() DirectiveKind { return DirectiveManual }

func (d *manualDirective) length() (float64, bool) { return 0, false }

func (d *manualDirective) begin(tl *Timeline) stepper {
	return &manualRun{fn: d.fn, tl: tl}
}

type manualRun struct {
	fn ManualFunc
	tl *Timeline
}

func (r *manualRun) step(dt float64) (stepResult, error) {
	done, err := r.fn(r.tl.target, dt)
	switch {
	case err != nil:
		return stepRunning, err
	case done:
		return stepFinished, nil
	}
	return stepRunning, nil
}
