package motion

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTweenReachesTargetInTwoFrames(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 10, 2.0)
	if err := tl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := tl.Update(1.0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if math.Abs(pos.X-5) > 1e-9 {
		t.Errorf("X = %f after first frame, want 5", pos.X)
	}

	if err := tl.Update(1.0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if pos.X != 10 {
		t.Errorf("X = %f, want 10", pos.X)
	}
	if tl.State() != Terminated {
		t.Fatalf("State = %v, want terminated", tl.State())
	}

	// A third frame is a no-op.
	if err := tl.Update(1.0); err != nil {
		t.Fatalf("Update after completion: %v", err)
	}
	if pos.X != 10 {
		t.Errorf("X = %f after extra frame, want 10", pos.X)
	}
}

func TestTweenDeltaChunking(t *testing.T) {
	for _, chunks := range []int{1, 2, 4, 7, 10, 60} {
		pos := &Vec2{}
		tl := New(pos).Tween("x", 0, 10, 2.0)
		dt := 2.0 / float64(chunks)
		for i := 0; i < chunks; i++ {
			if err := tl.Update(dt); err != nil {
				t.Fatalf("chunks=%d: Update: %v", chunks, err)
			}
		}
		if math.Abs(pos.X-10) > 1e-9 {
			t.Errorf("chunks=%d: X = %.12f, want 10", chunks, pos.X)
		}
		if tl.State() != Terminated {
			t.Errorf("chunks=%d: State = %v, want terminated", chunks, tl.State())
		}
	}
}

func TestTerminatedTimelineIsIdempotent(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 1, 0.5).Wait(0.5)
	for i := 0; i < 2; i++ {
		if err := tl.Update(0.5); err != nil {
			t.Fatal(err)
		}
	}
	if tl.State() != Terminated {
		t.Fatalf("State = %v, want terminated", tl.State())
	}

	// The host may move the target afterwards; a finished timeline must not
	// write again.
	pos.X = 42
	for i := 0; i < 5; i++ {
		if err := tl.Update(0.25); err != nil {
			t.Fatalf("Update %d after completion: %v", i, err)
		}
	}
	if pos.X != 42 {
		t.Errorf("X = %f, want 42 (untouched)", pos.X)
	}
}

func TestRepeatRestartsFromFirstDirective(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Wait(1.0).Tween("y", 0, 5, 1.0).Repeat()
	if err := tl.Start(); err != nil {
		t.Fatal(err)
	}

	mustUpdate(t, tl, 1.0) // wait completes
	if pos.Y != 0 {
		t.Fatalf("Y = %f during wait, want 0", pos.Y)
	}
	mustUpdate(t, tl, 1.0) // tween completes
	if pos.Y != 5 {
		t.Fatalf("Y = %f after one cycle, want 5", pos.Y)
	}
	if tl.State() != Terminated {
		t.Fatalf("State = %v, want terminated before loop", tl.State())
	}

	// Next frame restarts at the wait; Y keeps its last value until the
	// tween runs again from 0.
	mustUpdate(t, tl, 0.5)
	if tl.State() != Running || tl.Index() != 0 {
		t.Fatalf("State = %v index %d, want running at 0", tl.State(), tl.Index())
	}
	if tl.Cycle() != 1 {
		t.Errorf("Cycle = %d, want 1", tl.Cycle())
	}
	mustUpdate(t, tl, 0.5) // wait completes
	mustUpdate(t, tl, 0.5)
	if math.Abs(pos.Y-2.5) > 1e-9 {
		t.Errorf("Y = %f halfway through second cycle, want 2.5", pos.Y)
	}
}

func TestCustomProgressSequence(t *testing.T) {
	var got []float64
	var deltas []float64
	tl := New(Empty{}).Custom(func(_ Target, progress, dt float64) {
		got = append(got, progress)
		deltas = append(deltas, dt)
	}, 2.0)

	for i := 0; i < 4; i++ {
		mustUpdate(t, tl, 0.5)
	}

	if diff := cmp.Diff([]float64{0.25, 0.5, 0.75, 1.0}, got); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5, 0.5, 0.5, 0.5}, deltas); diff != "" {
		t.Errorf("dt mismatch (-want +got):\n%s", diff)
	}
	if tl.State() != Terminated {
		t.Errorf("State = %v, want terminated", tl.State())
	}
}

func TestCustomReceivesTarget(t *testing.T) {
	pos := &Vec2{X: 1, Y: 1}
	tl := New(pos).Custom(func(target Target, progress, _ float64) {
		v := target.(*Vec2)
		v.X = 1 + progress
		v.Y = 1 - progress
	}, 1.0)
	mustUpdate(t, tl, 1.0)
	if pos.X != 2 || pos.Y != 0 {
		t.Errorf("pos = %+v, want {2 0}", *pos)
	}
}

func TestZeroWaitConsumesNoUpdate(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Wait(0).Wait(-1).Tween("x", 0, 10, 1.0)
	mustUpdate(t, tl, 0.5)
	if math.Abs(pos.X-5) > 1e-9 {
		t.Errorf("X = %f, want 5: zero waits should hand the frame on", pos.X)
	}

	only := New(Empty{}).Wait(0)
	mustUpdate(t, only, 0.016)
	if only.State() != Terminated {
		t.Errorf("State = %v, want terminated in the same call", only.State())
	}
}

func TestFinishedDirectiveDropsRemainingBudget(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Wait(0.5).Tween("x", 0, 10, 1.0)
	// 1.0s frame completes the 0.5s wait; the surplus is not carried over.
	mustUpdate(t, tl, 1.0)
	if pos.X != 0 {
		t.Errorf("X = %f, want 0: tween should start on the next update", pos.X)
	}
	mustUpdate(t, tl, 0.5)
	if math.Abs(pos.X-5) > 1e-9 {
		t.Errorf("X = %f, want 5", pos.X)
	}
}

func TestUpdateStartsImplicitly(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 4, 1.0)
	if tl.State() != NotStarted {
		t.Fatalf("State = %v, want not started", tl.State())
	}
	mustUpdate(t, tl, 0.25)
	if tl.State() != Running {
		t.Errorf("State = %v, want running", tl.State())
	}
	if math.Abs(pos.X-1) > 1e-9 {
		t.Errorf("X = %f, want 1", pos.X)
	}
}

func TestZeroDeltaMakesNoProgress(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 10, 1.0)
	mustUpdate(t, tl, 0.5)
	mustUpdate(t, tl, 0)
	if math.Abs(pos.X-5) > 1e-9 {
		t.Errorf("X = %f, want 5", pos.X)
	}
}

func TestNegativeDeltaRejected(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 10, 1.0)
	for _, dt := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		err := tl.Update(dt)
		if !errors.Is(err, ErrConfig) {
			t.Errorf("Update(%v) = %v, want ErrConfig", dt, err)
		}
	}
	if tl.State() != NotStarted {
		t.Errorf("State = %v, want not started after rejected deltas", tl.State())
	}
}

func TestStartRestartsRun(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 10, 2.0)
	mustUpdate(t, tl, 1.5)
	if err := tl.Start(); err != nil {
		t.Fatal(err)
	}
	mustUpdate(t, tl, 1.0)
	if math.Abs(pos.X-5) > 1e-9 {
		t.Errorf("X = %f, want 5 after restart", pos.X)
	}
}

func TestCloneStartsFresh(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 10, 2.0).Tween("y", 0, 10, 2.0)
	mustUpdate(t, tl, 2.0) // first tween done
	mustUpdate(t, tl, 1.0) // second tween halfway

	c := tl.Clone()
	if c.State() != NotStarted {
		t.Fatalf("clone State = %v, want not started", c.State())
	}
	mustUpdate(t, c, 0.5)
	if c.Index() != 0 {
		t.Errorf("clone Index = %d, want 0", c.Index())
	}
	if math.Abs(pos.X-2.5) > 1e-9 {
		t.Errorf("X = %f, want 2.5 from clone's first directive", pos.X)
	}

	// The original keeps its own progress.
	mustUpdate(t, tl, 1.0)
	if pos.Y != 10 || tl.State() != Terminated {
		t.Errorf("original: Y = %f state %v, want 10 terminated", pos.Y, tl.State())
	}
}

func TestCloneDoesNotAliasProgram(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 1, 1)
	c := tl.Clone()
	c.Wait(1)
	tl.Tween("y", 0, 1, 1)
	if diff := cmp.Diff([]DirectiveKind{DirectiveTween, DirectiveWait}, c.Kinds()); diff != "" {
		t.Errorf("clone kinds (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]DirectiveKind{DirectiveTween, DirectiveTween}, tl.Kinds()); diff != "" {
		t.Errorf("original kinds (-want +got):\n%s", diff)
	}
}

func TestConfigErrors(t *testing.T) {
	noop := func(Target, float64, float64) {}
	tests := []struct {
		name string
		tl   *Timeline
	}{
		{"zero tween", New(&Vec2{}).Tween("x", 0, 1, 0)},
		{"negative tween", New(&Vec2{}).Tween("x", 0, 1, -1)},
		{"nan tween", New(&Vec2{}).Tween("x", 0, 1, math.NaN())},
		{"empty path", New(&Vec2{}).Tween("", 0, 1, 1)},
		{"empty segment", New(&Vec2{}).Tween("a..b", 0, 1, 1)},
		{"multi no fields", New(&Vec2{}).TweenMulti(1)},
		{"multi zero duration", New(&Vec2{}).TweenMulti(0, Field{Path: "x", To: 1})},
		{"custom zero duration", New(&Vec2{}).Custom(noop, 0)},
		{"custom nil func", New(&Vec2{}).Custom(nil, 1)},
		{"manual nil func", New(&Vec2{}).Manual(nil)},
		{"rotate zero duration", New(&Vec2{}).Rotate("x", "y", Vec2{}, 90, 0)},
		{"nil parallel child", New(Empty{}).Parallel(nil)},
		{"nil then", New(Empty{}).Then(nil)},
		{"nan wait", New(Empty{}).Wait(math.NaN())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.tl.Err(), ErrConfig) {
				t.Fatalf("Err = %v, want ErrConfig", tt.tl.Err())
			}
			var ce *ConfigError
			if !errors.As(tt.tl.Err(), &ce) {
				t.Fatalf("Err = %T, want *ConfigError", tt.tl.Err())
			}
			if err := tt.tl.Start(); !errors.Is(err, ErrConfig) {
				t.Errorf("Start = %v, want ErrConfig", err)
			}
			if err := tt.tl.Update(0.1); !errors.Is(err, ErrConfig) {
				t.Errorf("Update = %v, want ErrConfig", err)
			}
		})
	}
}

func TestFirstBuilderErrorWins(t *testing.T) {
	tl := New(&Vec2{}).Tween("x", 0, 1, 0).Manual(func(Target, float64) (bool, error) { return true, nil }).Wait(1)
	var ce *ConfigError
	if !errors.As(tl.Err(), &ce) {
		t.Fatalf("Err = %v, want the first (config) error", tl.Err())
	}
	if ce.Op != "tween" {
		t.Errorf("Op = %q, want tween", ce.Op)
	}
}

func TestPathErrorAbortsUpdate(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("z", 0, 1, 1)
	err := tl.Update(0.5)
	if !errors.Is(err, ErrPath) {
		t.Fatalf("Update = %v, want ErrPath", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) {
		t.Fatalf("Update = %T, want *PathError", err)
	}
	if pe.Path != "z" || pe.TargetType != "*motion.Vec2" {
		t.Errorf("PathError = %+v", pe)
	}
	// No recovery: the same directive fails again.
	if err := tl.Update(0.5); !errors.Is(err, ErrPath) {
		t.Errorf("second Update = %v, want ErrPath", err)
	}
}

func TestManualMustBeLast(t *testing.T) {
	tl := New(Empty{}).Manual(func(Target, float64) (bool, error) { return false, nil }).Wait(1)
	if !errors.Is(tl.Err(), ErrUsage) {
		t.Fatalf("Err = %v, want ErrUsage", tl.Err())
	}
	var ue *UsageError
	if !errors.As(tl.Err(), &ue) {
		t.Fatalf("Err = %T, want *UsageError", tl.Err())
	}
	if err := tl.Update(0.1); !errors.Is(err, ErrUsage) {
		t.Errorf("Update = %v, want ErrUsage", err)
	}
}

func TestManualRunsUntilDone(t *testing.T) {
	calls := 0
	var total float64
	tl := New(Empty{}).Wait(0.1).Manual(func(_ Target, dt float64) (bool, error) {
		calls++
		total += dt
		return calls == 3, nil
	})
	mustUpdate(t, tl, 0.1) // wait
	for i := 0; i < 3; i++ {
		mustUpdate(t, tl, 0.1)
	}
	if tl.State() != Terminated {
		t.Errorf("State = %v, want terminated once the func reports done", tl.State())
	}
	mustUpdate(t, tl, 0.1)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if math.Abs(total-0.3) > 1e-9 {
		t.Errorf("total dt = %f, want 0.3", total)
	}
}

func TestManualErrorAbortsUpdate(t *testing.T) {
	boom := errors.New("boom")
	tl := New(Empty{}).Manual(func(Target, float64) (bool, error) { return false, boom })
	if err := tl.Update(0.1); !errors.Is(err, boom) {
		t.Errorf("Update = %v, want boom", err)
	}
}

func TestAppendAfterStartIsUsageError(t *testing.T) {
	tl := New(&Vec2{}).Tween("x", 0, 1, 1)
	if err := tl.Start(); err != nil {
		t.Fatal(err)
	}
	tl.Wait(1)
	if !errors.Is(tl.Err(), ErrUsage) {
		t.Errorf("Err = %v, want ErrUsage", tl.Err())
	}
}

func TestWithEasingAppliesToTweens(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 100, 1).WithEasing(func(t float64) float64 { return t * t })
	mustUpdate(t, tl, 0.5)
	if math.Abs(pos.X-25) > 1e-9 {
		t.Errorf("X = %f, want 25 with quadratic easing", pos.X)
	}
	mustUpdate(t, tl, 0.5)
	if pos.X != 100 {
		t.Errorf("X = %f, want 100", pos.X)
	}
}

func TestWithEasingOvershoot(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 100, 1).WithEasing(func(t float64) float64 { return t * 1.5 })
	mustUpdate(t, tl, 0.8)
	if pos.X <= 100 {
		t.Errorf("X = %f, want overshoot past 100", pos.X)
	}
	mustUpdate(t, tl, 0.2)
	if pos.X != 100 {
		t.Errorf("X = %f, want to land on 100", pos.X)
	}
}

func TestTweenMultiLockstep(t *testing.T) {
	var w, h, unrelated float64
	target := FieldMap{Floats: map[string]*float64{"w": &w, "h": &h, "other": &unrelated}}
	tl := New(target).TweenMulti(2,
		Field{Path: "w", From: 0, To: 100},
		Field{Path: "h", From: 50, To: 0},
	)
	mustUpdate(t, tl, 1)
	if math.Abs(w-50) > 1e-9 || math.Abs(h-25) > 1e-9 {
		t.Errorf("w, h = %f, %f, want 50, 25", w, h)
	}
	mustUpdate(t, tl, 1)
	if w != 100 || h != 0 {
		t.Errorf("w, h = %f, %f, want 100, 0", w, h)
	}
	if unrelated != 0 {
		t.Errorf("unlisted field changed to %f", unrelated)
	}
}

func TestLifecycleEvents(t *testing.T) {
	var got []TimelineEvent
	tl := New(&Vec2{}).Named("pulse").Tween("x", 0, 1, 1).Repeat()
	tl.SetEventSink(EventSinkFunc(func(e TimelineEvent) { got = append(got, e) }))

	mustUpdate(t, tl, 1) // start + complete
	mustUpdate(t, tl, 1) // loop + complete

	want := []TimelineEvent{
		{Kind: EventStarted, Name: "pulse", Cycle: 0},
		{Kind: EventCompleted, Name: "pulse", Cycle: 0},
		{Kind: EventLooped, Name: "pulse", Cycle: 1},
		{Kind: EventCompleted, Name: "pulse", Cycle: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestDuration(t *testing.T) {
	child := New(&Vec2{}).Tween("x", 0, 1, 3)
	tl := New(&Vec2{}).
		Tween("x", 0, 1, 1).
		Wait(0.5).
		Wait(-2).
		Parallel(child, New(&Vec2{}).Wait(1)).
		Then(New(&Vec2{}).Wait(2))
	d, ok := tl.Duration()
	if !ok {
		t.Fatal("Duration should be bounded")
	}
	if math.Abs(d-6.5) > 1e-9 {
		t.Errorf("Duration = %f, want 6.5", d)
	}

	manual := New(Empty{}).Manual(func(Target, float64) (bool, error) { return true, nil })
	if _, ok := manual.Duration(); ok {
		t.Error("manual timeline should be unbounded")
	}
	looping := New(Empty{}).ParallelKeepRepeat(New(Empty{}).Wait(1).Repeat())
	if _, ok := looping.Duration(); ok {
		t.Error("group keeping a repeating child should be unbounded")
	}
	stripped := New(Empty{}).Parallel(New(Empty{}).Wait(1).Repeat())
	if d, ok := stripped.Duration(); !ok || d != 1 {
		t.Errorf("stripped Duration = %f, %v, want 1, true", d, ok)
	}
}

func TestTimelineUpdateZeroAlloc(t *testing.T) {
	pos := &Vec2{}
	tl := New(pos).Tween("x", 0, 100, 1000)

	// Warm up: the first call starts the run and allocates its state.
	mustUpdate(t, tl, 0.01)

	result := testing.AllocsPerRun(100, func() {
		_ = tl.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Timeline.Update allocated %f times per run, want 0", result)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{NotStarted, "not started"},
		{Running, "running"},
		{Terminated, "terminated"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func mustUpdate(t *testing.T, tl *Timeline, dt float64) {
	t.Helper()
	if err := tl.Update(dt); err != nil {
		t.Fatalf("Update(%v): %v", dt, err)
	}
}
