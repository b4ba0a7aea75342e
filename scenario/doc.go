// Package scenario loads declarative animation scenes from YAML or TOML.
//
// A scenario names its targets (dynamic motion records with a shape for the
// renderer), its timelines (ordered steps bound to a target) and the main
// timelines to play together:
//
//	name: orbit
//	targets:
//	  - name: dot
//	    shape: circle
//	    color: [1, 0.3, 0.3]
//	    fields: {x: 100, y: 300, radius: 12}
//	timelines:
//	  - name: slide
//	    target: dot
//	    ease: inOutCubic
//	    repeat: true
//	    steps:
//	      - {op: tween, path: x, from: 100, to: 700, duration: 2}
//	      - {op: wait, duration: 0.5}
//	      - {op: tween, path: color.a, from: 1, to: 0, duration: 1}
//	main: [slide]
//
// Timelines reference each other by name through parallel and then steps;
// unknown names and reference cycles are reported by [File.Build].
package scenario
