package motion

import (
	"math"
	"slices"
)

// State is the lifecycle position of a Timeline.
type State uint8

const (
	NotStarted State = iota // built but never started
	Running                 // a run is in progress
	Terminated              // the last run went past its final directive
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Timeline is an ordered program of directives bound to one Target, plus the
// live state of its current run. Build it with chained calls, then call Update
// once per frame:
//
//	tl := motion.New(&pos).
//		Tween("x", 0, 300, 2).
//		Wait(1).
//		Tween("y", 0, 200, 2).
//		Repeat()
//
//	// every frame:
//	if err := tl.Update(dt); err != nil { ... }
//
// Builder calls cannot return errors, so the first invalid call is recorded
// and reported by Err, Start and Update. A Timeline is not safe for
// concurrent use; it is meant to be driven from a single game loop.
type Timeline struct {
	name    string
	target  Target
	program []directive
	easing  EaseFunc
	repeat  bool
	sink    EventSink
	err     error

	// Run state. Rebuilt from program on every start; never shared by clones.
	state   State
	cursor  int
	current stepper
	cycle   int
	locked  bool
}

// New returns an empty timeline bound to target. The timeline holds target
// but does not own it; several timelines may animate the same target.
func New(target Target) *Timeline {
	return &Timeline{target: target}
}

// Named sets the name reported in lifecycle events and log records.
func (tl *Timeline) Named(name string) *Timeline {
	tl.name = name
	return tl
}

// Name returns the timeline's name.
func (tl *Timeline) Name() string { return tl.name }

// Target returns the record the timeline animates.
func (tl *Timeline) Target() Target { return tl.target }

// WithEasing sets the curve applied to every Tween, TweenMulti, Custom and
// Rotate directive of this timeline. nil restores Linear.
func (tl *Timeline) WithEasing(fn EaseFunc) *Timeline {
	tl.easing = fn
	return tl
}

// Repeat makes the timeline start over from its first directive on the
// Update after it completes.
func (tl *Timeline) Repeat() *Timeline {
	tl.repeat = true
	return tl
}

// Repeating reports whether Repeat was called.
func (tl *Timeline) Repeating() bool { return tl.repeat }

// SetEventSink sets the optional lifecycle observer. nil disables events.
func (tl *Timeline) SetEventSink(sink EventSink) {
	tl.sink = sink
}

// Tween interpolates the numeric field at path from from to to over duration
// seconds. A non-positive duration is a configuration error.
func (tl *Timeline) Tween(path string, from, to, duration float64) *Timeline {
	const op = "tween"
	p, err := ParsePath(path)
	if err != nil {
		return tl.fail(err)
	}
	if err := validDuration(op, duration); err != nil {
		return tl.fail(err)
	}
	return tl.add(&tweenDirective{
		fields:   []tweenField{{path: p, from: from, to: to}},
		duration: duration,
	})
}

// TweenMulti interpolates every field on one shared clock. All fields are
// written in the same frame, in the order given, so they land together.
func (tl *Timeline) TweenMulti(duration float64, fields ...Field) *Timeline {
	const op = "tweenMulti"
	if err := validDuration(op, duration); err != nil {
		return tl.fail(err)
	}
	if len(fields) == 0 {
		return tl.fail(configErrorf(op, "no fields"))
	}
	tf := make([]tweenField, len(fields))
	for i, f := range fields {
		p, err := ParsePath(f.Path)
		if err != nil {
			return tl.fail(err)
		}
		tf[i] = tweenField{path: p, from: f.From, to: f.To}
	}
	return tl.add(&tweenDirective{fields: tf, duration: duration, multi: true})
}

// Wait pauses the program for duration seconds. A non-positive wait is legal
// and completes without consuming a frame.
func (tl *Timeline) Wait(duration float64) *Timeline {
	if math.IsNaN(duration) {
		return tl.fail(configErrorf("wait", "duration is NaN"))
	}
	return tl.add(&waitDirective{duration: duration})
}

// Custom calls fn once per frame for duration seconds, including a final call
// at progress 1.
func (tl *Timeline) Custom(fn CustomFunc, duration float64) *Timeline {
	const op = "custom"
	if fn == nil {
		return tl.fail(configErrorf(op, "nil func"))
	}
	if err := validDuration(op, duration); err != nil {
		return tl.fail(err)
	}
	return tl.add(&customDirective{fn: fn, duration: duration})
}

// Manual calls fn once per frame until it returns true. A Manual directive
// has no clock of its own and must be the last directive of the program;
// appending anything after it is a usage error.
func (tl *Timeline) Manual(fn ManualFunc) *Timeline {
	if fn == nil {
		return tl.fail(configErrorf("manual", "nil func"))
	}
	return tl.add(&manualDirective{fn: fn})
}

// Rotate turns the point stored at (xPath, yPath) about origin by degrees
// over duration seconds.
func (tl *Timeline) Rotate(xPath, yPath string, origin Vec2, degrees, duration float64) *Timeline {
	const op = "rotate"
	xp, err := ParsePath(xPath)
	if err != nil {
		return tl.fail(err)
	}
	yp, err := ParsePath(yPath)
	if err != nil {
		return tl.fail(err)
	}
	if err := validDuration(op, duration); err != nil {
		return tl.fail(err)
	}
	return tl.add(&rotateDirective{
		xPath:    xp,
		yPath:    yp,
		origin:   origin,
		radians:  degrees * math.Pi / 180,
		duration: duration,
	})
}

// Parallel runs a fresh clone of every timeline side by side and completes
// when all of them have completed. Children built with Repeat run once.
func (tl *Timeline) Parallel(timelines ...*Timeline) *Timeline {
	return tl.parallel(StripChildRepeat, timelines)
}

// ParallelKeepRepeat is like Parallel but lets children built with Repeat
// loop, in which case the group never completes.
func (tl *Timeline) ParallelKeepRepeat(timelines ...*Timeline) *Timeline {
	return tl.parallel(KeepChildRepeat, timelines)
}

func (tl *Timeline) parallel(policy RepeatPolicy, timelines []*Timeline) *Timeline {
	for _, child := range timelines {
		if child == nil {
			return tl.fail(configErrorf("parallel", "nil timeline"))
		}
	}
	return tl.add(&parallelDirective{
		templates: slices.Clone(timelines),
		policy:    policy,
	})
}

// Then runs a fresh clone of next to completion before the program moves on.
func (tl *Timeline) Then(next *Timeline) *Timeline {
	if next == nil {
		return tl.fail(configErrorf("then", "nil timeline"))
	}
	return tl.add(&chainDirective{template: next})
}

func (tl *Timeline) add(d directive) *Timeline {
	if tl.err != nil {
		return tl
	}
	if tl.locked {
		return tl.fail(&UsageError{Reason: "directive " + d.kind().String() + " appended after the timeline started"})
	}
	if n := len(tl.program); n > 0 && tl.program[n-1].kind() == DirectiveManual {
		err := &UsageError{Reason: "directive " + d.kind().String() + " follows a manual directive and would never run"}
		log().Warn("motion: unreachable directive", "timeline", tl.name, "kind", d.kind().String(), "index", n)
		return tl.fail(err)
	}
	tl.program = append(tl.program, d)
	return tl
}

func (tl *Timeline) fail(err error) *Timeline {
	if tl.err == nil {
		tl.err = err
	}
	return tl
}

// Err returns the first error recorded while building the timeline.
func (tl *Timeline) Err() error { return tl.err }

// Len returns the number of directives in the program.
func (tl *Timeline) Len() int { return len(tl.program) }

// Kinds returns the directive kinds of the program, in order.
func (tl *Timeline) Kinds() []DirectiveKind {
	kinds := make([]DirectiveKind, len(tl.program))
	for i, d := range tl.program {
		kinds[i] = d.kind()
	}
	return kinds
}

// State returns the lifecycle state of the current run.
func (tl *Timeline) State() State { return tl.state }

// Index returns the position of the active directive within the program.
func (tl *Timeline) Index() int { return tl.cursor }

// Cycle returns how many runs completed and were looped since the last Start.
func (tl *Timeline) Cycle() int { return tl.cycle }

// Duration returns the simulated seconds one run takes. It reports false when
// the program holds a Manual directive or a child that loops forever.
func (tl *Timeline) Duration() (float64, bool) {
	if tl.checkCycles() != nil {
		return 0, false
	}
	return tl.length()
}

func (tl *Timeline) length() (float64, bool) {
	total := 0.0
	for _, d := range tl.program {
		n, ok := d.length()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// Clone returns a timeline with the same target, program, easing, repeat flag
// and event sink, in the NotStarted state. The program is shared; progress is
// not, so the clone always begins at directive 0 with zero elapsed time no
// matter how far the original has run.
func (tl *Timeline) Clone() *Timeline {
	return &Timeline{
		name:    tl.name,
		target:  tl.target,
		program: slices.Clip(tl.program),
		easing:  tl.easing,
		repeat:  tl.repeat,
		sink:    tl.sink,
		err:     tl.err,
	}
}

// Start begins a fresh run at directive 0, discarding any run in progress.
// Update calls Start implicitly on a timeline that was never started. After
// Start the program can no longer be extended.
func (tl *Timeline) Start() error {
	if tl.err != nil {
		return tl.err
	}
	if err := tl.checkCycles(); err != nil {
		return tl.fail(err).err
	}
	tl.cycle = 0
	tl.start()
	return nil
}

func (tl *Timeline) start() {
	tl.locked = true
	tl.state = Running
	tl.cursor = 0
	tl.current = nil
	kind := EventStarted
	if tl.cycle > 0 {
		kind = EventLooped
		debugLog("motion: timeline looped", "timeline", tl.name, "cycle", tl.cycle)
	} else {
		debugLog("motion: timeline started", "timeline", tl.name, "directives", len(tl.program))
	}
	tl.emit(kind)
}

// Update advances the timeline by one frame of dt seconds. dt must not be
// negative; zero is legal and makes no time-based progress.
//
// Only one directive consumes the frame. When it completes, the next
// directive waits for the next Update, except that directives completing
// without consuming time (zero-length waits) hand the same frame on
// immediately. A completed timeline is restarted if it repeats; otherwise
// Update does nothing and the target keeps its last written values.
//
// Path, configuration and usage errors abort the call and are returned as is.
func (tl *Timeline) Update(dt float64) error {
	if tl.err != nil {
		return tl.err
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return configErrorf("update", "frame delta must be finite and non-negative, got %v", dt)
	}
	if tl.state == NotStarted {
		if err := tl.Start(); err != nil {
			return err
		}
	}
	_, err := tl.tick(dt)
	return err
}

// tick is Update without argument checks. It reports whether any simulated
// time was consumed.
func (tl *Timeline) tick(dt float64) (bool, error) {
	if tl.err != nil {
		return false, tl.err
	}
	switch tl.state {
	case NotStarted:
		tl.start()
	case Terminated:
		if !tl.repeat {
			return false, nil
		}
		tl.cycle++
		tl.start()
	}
	return tl.advance(dt)
}

// advance steps the active directive once, moving past directives that
// complete without consuming time.
func (tl *Timeline) advance(dt float64) (bool, error) {
	for tl.state == Running {
		if tl.cursor >= len(tl.program) {
			tl.complete()
			return false, nil
		}
		if tl.current == nil {
			tl.current = tl.program[tl.cursor].begin(tl)
		}
		res, err := tl.current.step(dt)
		if err != nil {
			return false, err
		}
		switch res {
		case stepRunning:
			return true, nil
		case stepFinished:
			tl.next()
			return true, nil
		case stepSkipped:
			tl.next()
		}
	}
	return false, nil
}

func (tl *Timeline) next() {
	tl.current = nil
	tl.cursor++
	if tl.cursor >= len(tl.program) {
		tl.complete()
	}
}

func (tl *Timeline) complete() {
	tl.current = nil
	tl.state = Terminated
	debugLog("motion: timeline completed", "timeline", tl.name, "cycle", tl.cycle)
	tl.emit(EventCompleted)
}

// finished reports whether the timeline is done for good: terminated and not
// about to loop.
func (tl *Timeline) finished() bool {
	return tl.state == Terminated && !tl.repeat
}

func (tl *Timeline) ease(t float64) float64 {
	if tl.easing == nil {
		return t
	}
	return tl.easing(t)
}

func (tl *Timeline) emit(kind EventKind) {
	if tl.sink == nil {
		return
	}
	tl.sink.EmitTimelineEvent(TimelineEvent{Kind: kind, Name: tl.name, Cycle: tl.cycle})
}

// checkCycles rejects programs that contain themselves through Parallel or
// Then, which would clone forever on activation.
func (tl *Timeline) checkCycles() error {
	var visit func(t *Timeline, path map[*Timeline]bool) error
	visit = func(t *Timeline, path map[*Timeline]bool) error {
		if path[t] {
			return &UsageError{Reason: "timeline " + quoteName(t.name) + " contains itself through parallel or then"}
		}
		path[t] = true
		defer delete(path, t)
		for _, d := range t.program {
			switch d := d.(type) {
			case *parallelDirective:
				for _, child := range d.templates {
					if err := visit(child, path); err != nil {
						return err
					}
				}
			case *chainDirective:
				if err := visit(d.template, path); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return visit(tl, make(map[*Timeline]bool))
}

func quoteName(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return `"` + name + `"`
}
