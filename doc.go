// Package motion is a frame-driven animation timeline engine for Go game
// loops, built to sit next to [Ebitengine].
//
// A [Timeline] is an ordered program of directives (tween a field, wait, run
// custom per-frame logic, run other timelines in parallel, chain to another
// timeline) bound to one mutable target. The host calls [Timeline.Update]
// once per frame with the seconds elapsed since the previous frame; the
// timeline advances the active directive by exactly that much and writes the
// target's fields so the renderer can draw them.
//
// # Quick start
//
//	pos := &motion.Vec2{}
//	tl := motion.New(pos).
//		Tween("x", 0, 300, 2).
//		Wait(1).
//		Tween("y", 0, 200, 2).
//		WithEasing(motion.InOutCubic).
//		Repeat()
//
//	// In ebiten.Game.Update:
//	if err := tl.Update(1.0 / float64(ebiten.TPS())); err != nil {
//		return err
//	}
//
// # Targets and paths
//
// Directives address fields by dotted path ("curve.max.x"). Paths are resolved
// through the [Target] interface on every read and write, so targets may
// replace nested records between frames. [Vec2], [Color], [FieldMap] and
// [Record] implement Target; user types implement its two methods.
//
// # Scheduling
//
// Each Update steps one directive once. A directive that finishes ends the
// frame; the next directive starts on the next Update. Only directives that
// finish without consuming time (a zero-length [Timeline.Wait]) hand the same
// frame on. [Timeline.Parallel] and [Timeline.Then] clone their timelines on
// activation so a program can be repeated or reused without stale progress.
//
// No clock is read internally: given the same sequence of deltas, a timeline
// always produces the same sequence of writes.
//
// # Errors
//
// Builder calls record the first invalid argument ([ErrConfig]) or ordering
// mistake ([ErrUsage]); [Timeline.Err], [Timeline.Start] and [Timeline.Update]
// report it. Unresolvable paths fail the Update that hits them with a
// [*PathError] ([ErrPath]). The engine never retries or skips on its own.
//
// Host-side collaborators live in sub-packages: host (frame-delta sources,
// plugins, the ebiten game loop), scenario (YAML/TOML scene files), render
// (drawing target snapshots) and the motion command.
//
// [Ebitengine]: https://ebitengine.org
package motion
