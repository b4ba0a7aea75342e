package host

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single entry of a delta script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
	DT     float64 `json:"dt,omitempty"`
}

// script is the top-level JSON structure for a delta script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a recorded sequence of frame deltas. Use it for
// deterministic headless runs:
//
//	{"steps": [
//		{"action": "advance", "frames": 60, "dt": 0.016666},
//		{"action": "pause", "frames": 10},
//		{"action": "advance", "frames": 1, "dt": 0.5}
//	]}
//
// A pause step yields zero deltas.
type Script struct {
	steps  []scriptStep
	cursor int
	left   int
	done   bool
}

// LoadScript parses a JSON delta script.
func LoadScript(jsonData []byte) (*Script, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse delta script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse delta script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "advance", "pause":
		default:
			return nil, fmt.Errorf("parse delta script: step %d: unknown action %q", i, st.Action)
		}
		if st.Frames < 0 || st.DT < 0 {
			return nil, fmt.Errorf("parse delta script: step %d: negative frames or dt", i)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// Next implements DeltaSource.
func (r *Script) Next() (float64, bool) {
	for !r.done {
		if r.cursor >= len(r.steps) {
			r.done = true
			break
		}
		st := r.steps[r.cursor]
		if r.left == 0 {
			r.left = max(st.Frames, 1)
		}
		r.left--
		if r.left == 0 {
			r.cursor++
		}
		if st.Action == "pause" {
			return 0, true
		}
		return st.DT, true
	}
	return 0, false
}

// Done reports whether every step of the script has been served.
func (r *Script) Done() bool {
	return r.done || r.cursor >= len(r.steps)
}

// Label returns the label of the step that serves the next delta, or "".
func (r *Script) Label() string {
	if r.cursor >= len(r.steps) {
		return ""
	}
	return r.steps[r.cursor].Label
}

// Total returns the simulated seconds the whole script covers.
func (r *Script) Total() float64 {
	var sum float64
	for _, st := range r.steps {
		if st.Action == "advance" {
			sum += float64(max(st.Frames, 1)) * st.DT
		}
	}
	return sum
}
