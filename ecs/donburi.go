package ecs

import (
	"fmt"

	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TimelineEventType is the Donburi event type for timeline lifecycle events.
var TimelineEventType = events.NewEventType[motion.TimelineEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to TimelineEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) motion.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTimelineEvent(event motion.TimelineEvent) {
	TimelineEventType.Publish(s.world, event)
}

// TimelineData is the component value holding an entity's timeline.
type TimelineData struct {
	Timeline *motion.Timeline
}

// TimelineComponent marks entities animated by a timeline.
var TimelineComponent = donburi.NewComponentType[TimelineData]()

var timelineQuery = donburi.NewQuery(filter.Contains(TimelineComponent))

// Attach adds tl to entity, replacing any timeline already attached.
func Attach(world donburi.World, entity donburi.Entity, tl *motion.Timeline) {
	entry := world.Entry(entity)
	if !entry.HasComponent(TimelineComponent) {
		entry.AddComponent(TimelineComponent)
	}
	TimelineComponent.SetValue(entry, TimelineData{Timeline: tl})
}

// UpdateTimelines advances every attached timeline by dt. Entities whose
// timeline has terminated for good keep their component; remove it with
// Detach when the animation is no longer needed. The first error stops the
// pass and names the entity.
func UpdateTimelines(world donburi.World, dt float64) error {
	var firstErr error
	timelineQuery.Each(world, func(entry *donburi.Entry) {
		if firstErr != nil {
			return
		}
		data := TimelineComponent.Get(entry)
		if data.Timeline == nil {
			return
		}
		if err := data.Timeline.Update(dt); err != nil {
			firstErr = fmt.Errorf("entity %v: %w", entry.Entity(), err)
		}
	})
	return firstErr
}

// Detach removes the timeline component from entity.
func Detach(world donburi.World, entity donburi.Entity) {
	entry := world.Entry(entity)
	if entry.HasComponent(TimelineComponent) {
		entry.RemoveComponent(TimelineComponent)
	}
}
