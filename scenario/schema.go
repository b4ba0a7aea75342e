package scenario

// File is the decoded form of a scenario file. The same structure is read
// from YAML and TOML.
type File struct {
	Name       string         `yaml:"name" toml:"name"`
	Width      int            `yaml:"width" toml:"width"`
	Height     int            `yaml:"height" toml:"height"`
	Background []float64      `yaml:"background" toml:"background"`
	Repeat     bool           `yaml:"repeat" toml:"repeat"`
	Targets    []TargetSpec   `yaml:"targets" toml:"targets"`
	Timelines  []TimelineSpec `yaml:"timelines" toml:"timelines"`
	// Main lists the timelines started together when the scenario plays.
	Main []string `yaml:"main" toml:"main"`
}

// TargetSpec declares one animated record. Shape fields get defaults, so a
// rect only needs the fields that differ from zero.
type TargetSpec struct {
	Name     string             `yaml:"name" toml:"name"`
	Shape    string             `yaml:"shape" toml:"shape"`
	Func     string             `yaml:"func" toml:"func"`
	Color    []float64          `yaml:"color" toml:"color"`
	Fields   map[string]float64 `yaml:"fields" toml:"fields"`
	Children []TargetSpec       `yaml:"children" toml:"children"`
}

// TimelineSpec declares one timeline bound to a target.
type TimelineSpec struct {
	Name   string     `yaml:"name" toml:"name"`
	Target string     `yaml:"target" toml:"target"`
	Repeat bool       `yaml:"repeat" toml:"repeat"`
	Ease   string     `yaml:"ease" toml:"ease"`
	Steps  []StepSpec `yaml:"steps" toml:"steps"`
}

// StepSpec is one directive. Op selects which of the other fields apply:
//
//	tween        path, from, to, duration
//	tween_multi  fields, duration
//	wait         duration
//	rotate       x, y, origin, degrees, duration
//	parallel     timelines, keep_repeat
//	then         timeline
type StepSpec struct {
	Op       string      `yaml:"op" toml:"op"`
	Path     string      `yaml:"path" toml:"path"`
	From     float64     `yaml:"from" toml:"from"`
	To       float64     `yaml:"to" toml:"to"`
	Duration float64     `yaml:"duration" toml:"duration"`
	Fields   []FieldSpec `yaml:"fields" toml:"fields"`

	X       string    `yaml:"x" toml:"x"`
	Y       string    `yaml:"y" toml:"y"`
	Origin  []float64 `yaml:"origin" toml:"origin"`
	Degrees float64   `yaml:"degrees" toml:"degrees"`

	Timelines  []string `yaml:"timelines" toml:"timelines"`
	KeepRepeat bool     `yaml:"keep_repeat" toml:"keep_repeat"`
	Timeline   string   `yaml:"timeline" toml:"timeline"`
}

// FieldSpec is one entry of a tween_multi step.
type FieldSpec struct {
	Path string  `yaml:"path" toml:"path"`
	From float64 `yaml:"from" toml:"from"`
	To   float64 `yaml:"to" toml:"to"`
}
