// Package ecs connects motion timelines to a [Donburi] world.
//
// [NewDonburiSink] publishes timeline lifecycle events (started, completed,
// looped) as typed Donburi events; subscribe to [TimelineEventType] in your
// systems to react to them. [TimelineComponent] attaches a timeline to an
// entity and [UpdateTimelines] advances every attached timeline once per
// frame.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tl.SetEventSink(sink)
//	ecs.Attach(world, entity, tl)
//
//	// every frame:
//	if err := ecs.UpdateTimelines(world, dt); err != nil { ... }
//	ecs.TimelineEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
