// Package host drives motion timelines from a frame loop.
//
// A [Host] owns an ordered list of [Plugin]s and steps each of them once per
// frame with the seconds elapsed since the previous frame. The delta comes
// from a [DeltaSource]: [FixedStep] for steady headless runs, [Script] to
// replay a recorded sequence, or ebiten's tick rate when the host runs inside
// a window through [Run].
//
// Ready-made plugins wrap a single timeline ([TimelinePlugin]), play scenes
// back to back ([SceneManager]) and run one-shot gween tweens ([TweenGroup]).
package host
