package motion

// RepeatPolicy decides what a Parallel directive does with children that were
// built with Repeat.
type RepeatPolicy uint8

const (
	// StripChildRepeat runs every child exactly once, ignoring its Repeat flag.
	// The group ends when the longest child ends.
	StripChildRepeat RepeatPolicy = iota
	// KeepChildRepeat lets repeating children loop. A group holding a
	// repeating child never ends on its own.
	KeepChildRepeat
)

type parallelDirective struct {
	templates []*Timeline
	policy    RepeatPolicy
}

func (d *parallelDirective) kind() DirectiveKind { return DirectiveParallel }

func (d *parallelDirective) length() (float64, bool) {
	longest := 0.0
	for _, tmpl := range d.templates {
		if d.policy == KeepChildRepeat && tmpl.repeat {
			return 0, false
		}
		n, ok := tmpl.length()
		if !ok {
			return 0, false
		}
		longest = max(longest, n)
	}
	return longest, true
}

func (d *parallelDirective) begin(*Timeline) stepper {
	return &parallelRun{d: d}
}

type parallelRun struct {
	d      *parallelDirective
	clones []*Timeline
}

// step clones and starts every template on first activation, then advances
// each unfinished clone exactly once per frame, in list order.
func (r *parallelRun) step(dt float64) (stepResult, error) {
	if r.clones == nil {
		r.clones = make([]*Timeline, len(r.d.templates))
		for i, tmpl := range r.d.templates {
			c := tmpl.Clone()
			if r.d.policy == StripChildRepeat {
				c.repeat = false
			}
			c.start()
			r.clones[i] = c
		}
	}

	consumed := false
	done := true
	for _, c := range r.clones {
		if c.finished() {
			continue
		}
		used, err := c.tick(dt)
		if err != nil {
			return stepRunning, err
		}
		consumed = consumed || used
		if !c.finished() {
			done = false
		}
	}

	switch {
	case !done:
		return stepRunning, nil
	case consumed:
		return stepFinished, nil
	default:
		return stepSkipped, nil
	}
}

type chainDirective struct {
	template *Timeline
}

func (d *chainDirective) kind() DirectiveKind { return DirectiveChain }

func (d *chainDirective) length() (float64, bool) {
	if d.template.repeat {
		return 0, false
	}
	return d.template.length()
}

func (d *chainDirective) begin(*Timeline) stepper {
	return &chainRun{template: d.template}
}

type chainRun struct {
	template *Timeline
	clone    *Timeline
}

// step runs a fresh clone of the chained timeline once per frame until it
// finishes. A chained timeline built with Repeat keeps looping.
func (r *chainRun) step(dt float64) (stepResult, error) {
	if r.clone == nil {
		r.clone = r.template.Clone()
		r.clone.start()
	}
	used, err := r.clone.tick(dt)
	if err != nil {
		return stepRunning, err
	}
	switch {
	case !r.clone.finished():
		return stepRunning, nil
	case used:
		return stepFinished, nil
	default:
		return stepSkipped, nil
	}
}
