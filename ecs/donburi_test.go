package ecs

import (
	"errors"
	"testing"

	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_LifecycleEvents(t *testing.T) {
	world := donburi.NewWorld()

	var received []motion.TimelineEvent
	TimelineEventType.Subscribe(world, func(w donburi.World, e motion.TimelineEvent) {
		received = append(received, e)
	})

	tl := motion.New(&motion.Vec2{}).Named("blink").Tween("x", 0, 1, 1).Repeat()
	tl.SetEventSink(NewDonburiSink(world))
	for i := 0; i < 2; i++ {
		if err := tl.Update(1); err != nil {
			t.Fatal(err)
		}
	}

	// Events are queued; process them.
	TimelineEventType.ProcessEvents(world)

	want := []motion.EventKind{motion.EventStarted, motion.EventCompleted, motion.EventLooped, motion.EventCompleted}
	if len(received) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(received), received)
	}
	for i, e := range received {
		if e.Kind != want[i] || e.Name != "blink" {
			t.Errorf("event %d: %+v, want kind %v", i, e, want[i])
		}
	}
	if received[2].Cycle != 1 {
		t.Errorf("looped cycle = %d, want 1", received[2].Cycle)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink motion.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TimelineEventType.Subscribe(world, func(w donburi.World, e motion.TimelineEvent) {
		count1++
	})
	TimelineEventType.Subscribe(world, func(w donburi.World, e motion.TimelineEvent) {
		count2++
	})

	sink.EmitTimelineEvent(motion.TimelineEvent{Kind: motion.EventStarted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestUpdateTimelines(t *testing.T) {
	world := donburi.NewWorld()
	a, b := &motion.Vec2{}, &motion.Vec2{}
	ea := world.Create()
	eb := world.Create()
	Attach(world, ea, motion.New(a).Tween("x", 0, 10, 1))
	Attach(world, eb, motion.New(b).Tween("y", 0, 20, 2))

	if err := UpdateTimelines(world, 1); err != nil {
		t.Fatal(err)
	}
	if a.X != 10 || b.Y != 10 {
		t.Errorf("after 1s: a.X = %f, b.Y = %f, want 10, 10", a.X, b.Y)
	}

	Detach(world, eb)
	if err := UpdateTimelines(world, 1); err != nil {
		t.Fatal(err)
	}
	if b.Y != 10 {
		t.Errorf("detached timeline advanced: b.Y = %f", b.Y)
	}
}

func TestUpdateTimelinesError(t *testing.T) {
	world := donburi.NewWorld()
	e := world.Create()
	Attach(world, e, motion.New(&motion.Vec2{}).Tween("z", 0, 1, 1))

	if err := UpdateTimelines(world, 0.5); !errors.Is(err, motion.ErrPath) {
		t.Errorf("UpdateTimelines = %v, want ErrPath", err)
	}
}
