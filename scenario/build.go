package scenario

import (
	"fmt"
	"maps"
	"slices"

	"github.com/phanxgames/motion"
)

// Shape is how a target is drawn.
type Shape string

const (
	ShapeNone     Shape = ""
	ShapeRect     Shape = "rect"
	ShapeCircle   Shape = "circle"
	ShapeTriangle Shape = "triangle"
	ShapeCurve    Shape = "curve"
	ShapeGrid     Shape = "grid"
)

// shapeDefaults lists the fields (and nested points) every shape starts with.
var shapeDefaults = map[Shape]struct {
	fields   map[string]float64
	children []string
}{
	ShapeNone:     {},
	ShapeRect:     {fields: map[string]float64{"x": 0, "y": 0, "w": 10, "h": 10}},
	ShapeCircle:   {fields: map[string]float64{"x": 0, "y": 0, "radius": 10}},
	ShapeTriangle: {children: []string{"a", "b", "c"}},
	ShapeCurve: {
		fields:   map[string]float64{"unit": 20, "thickness": 2, "segments": 100},
		children: []string{"origin", "min", "max"},
	},
	ShapeGrid: {
		fields:   map[string]float64{"spacing": 20, "unit": 20, "interval": 5},
		children: []string{"origin"},
	},
}

// Target is a built scenario target: a motion record plus how to draw it.
// Every target has a "color" child with r, g, b and a fields.
type Target struct {
	Name   string
	Shape  Shape
	Func   string
	Record *motion.Record
}

// Value reads a field of the target, returning 0 if it does not resolve.
func (t *Target) Value(path string) float64 {
	p, err := motion.ParsePath(path)
	if err != nil {
		return 0
	}
	v, err := motion.Read(t.Record, p)
	if err != nil {
		return 0
	}
	return v
}

// Point reads the x and y fields of the nested record called name.
func (t *Target) Point(name string) motion.Vec2 {
	return motion.Vec2{X: t.Value(name + ".x"), Y: t.Value(name + ".y")}
}

// Color returns the target's current color.
func (t *Target) Color() motion.Color {
	return motion.Color{
		R: t.Value("color.r"),
		G: t.Value("color.g"),
		B: t.Value("color.b"),
		A: t.Value("color.a"),
	}
}

// Scene is a built scenario: the targets in declaration order and the root
// timeline that plays the main timelines in parallel.
type Scene struct {
	Name       string
	Width      int
	Height     int
	Background motion.Color
	Targets    []*Target
	Timeline   *motion.Timeline

	byName    map[string]*Target
	timelines map[string]*motion.Timeline
}

// Target returns the target called name, or nil.
func (s *Scene) Target(name string) *Target { return s.byName[name] }

// TimelineNamed returns the built timeline called name, or nil.
func (s *Scene) TimelineNamed(name string) *motion.Timeline { return s.timelines[name] }

// builder resolves timeline references by name, building each once.
type builder struct {
	specs    map[string]*TimelineSpec
	targets  map[string]*Target
	built    map[string]*motion.Timeline
	visiting map[string]bool
}

// Build validates f and turns it into a playable scene.
func (f *File) Build() (*Scene, error) {
	s := &Scene{
		Name:       f.Name,
		Width:      f.Width,
		Height:     f.Height,
		Background: motion.Color{A: 1},
		byName:     make(map[string]*Target),
	}
	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
	if f.Background != nil {
		c, err := parseColor(f.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		s.Background = c
	}

	for i := range f.Targets {
		t, err := buildTarget(&f.Targets[i])
		if err != nil {
			return nil, err
		}
		if _, dup := s.byName[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate target %q", ErrInvalid, t.Name)
		}
		s.byName[t.Name] = t
		s.Targets = append(s.Targets, t)
	}

	b := &builder{
		specs:    make(map[string]*TimelineSpec, len(f.Timelines)),
		targets:  s.byName,
		built:    make(map[string]*motion.Timeline, len(f.Timelines)),
		visiting: make(map[string]bool),
	}
	for i := range f.Timelines {
		spec := &f.Timelines[i]
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: timeline %d has no name", ErrInvalid, i)
		}
		if _, dup := b.specs[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate timeline %q", ErrInvalid, spec.Name)
		}
		b.specs[spec.Name] = spec
	}
	for _, name := range slices.Sorted(maps.Keys(b.specs)) {
		if _, err := b.timeline(name); err != nil {
			return nil, err
		}
	}
	s.timelines = b.built

	main := f.Main
	if len(main) == 0 {
		for _, spec := range f.Timelines {
			main = append(main, spec.Name)
		}
	}
	roots := make([]*motion.Timeline, 0, len(main))
	for _, name := range main {
		tl, ok := b.built[name]
		if !ok {
			return nil, fmt.Errorf("%w: main references unknown timeline %q", ErrInvalid, name)
		}
		roots = append(roots, tl)
	}
	root := motion.New(motion.Empty{}).Named("main").ParallelKeepRepeat(roots...)
	if f.Repeat {
		root.Repeat()
	}
	if err := root.Err(); err != nil {
		return nil, err
	}
	s.Timeline = root
	return s, nil
}

func (b *builder) timeline(name string) (*motion.Timeline, error) {
	if tl, ok := b.built[name]; ok {
		return tl, nil
	}
	spec, ok := b.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown timeline %q", ErrInvalid, name)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("%w: timeline %q references itself", ErrInvalid, name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	var target motion.Target = motion.Empty{}
	if spec.Target != "" {
		t, ok := b.targets[spec.Target]
		if !ok {
			return nil, fmt.Errorf("%w: timeline %q: unknown target %q", ErrInvalid, name, spec.Target)
		}
		target = t.Record
	}

	tl := motion.New(target).Named(name)
	if spec.Ease != "" {
		fn, ok := motion.EaseByName(spec.Ease)
		if !ok {
			return nil, fmt.Errorf("%w: timeline %q: unknown easing %q", ErrInvalid, name, spec.Ease)
		}
		tl.WithEasing(fn)
	}
	if spec.Repeat {
		tl.Repeat()
	}
	for i, st := range spec.Steps {
		if err := b.step(tl, st); err != nil {
			return nil, fmt.Errorf("timeline %q step %d: %w", name, i, err)
		}
	}
	if err := tl.Err(); err != nil {
		return nil, fmt.Errorf("timeline %q: %w", name, err)
	}
	b.built[name] = tl
	return tl, nil
}

func (b *builder) step(tl *motion.Timeline, st StepSpec) error {
	switch st.Op {
	case "tween":
		tl.Tween(st.Path, st.From, st.To, st.Duration)
	case "tween_multi":
		fields := make([]motion.Field, 0, len(st.Fields))
		for _, f := range st.Fields {
			fields = append(fields, motion.Field{Path: f.Path, From: f.From, To: f.To})
		}
		tl.TweenMulti(st.Duration, fields...)
	case "wait":
		tl.Wait(st.Duration)
	case "rotate":
		origin, err := parseVec(st.Origin)
		if err != nil {
			return err
		}
		tl.Rotate(st.X, st.Y, origin, st.Degrees, st.Duration)
	case "parallel":
		children := make([]*motion.Timeline, 0, len(st.Timelines))
		for _, name := range st.Timelines {
			child, err := b.timeline(name)
			if err != nil {
				return err
			}
			children = append(children, child)
		}
		if st.KeepRepeat {
			tl.ParallelKeepRepeat(children...)
		} else {
			tl.Parallel(children...)
		}
	case "then":
		next, err := b.timeline(st.Timeline)
		if err != nil {
			return err
		}
		tl.Then(next)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalid, st.Op)
	}
	return tl.Err()
}

func buildTarget(spec *TargetSpec) (*Target, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%w: target without a name", ErrInvalid)
	}
	shape := Shape(spec.Shape)
	defaults, ok := shapeDefaults[shape]
	if !ok {
		return nil, fmt.Errorf("%w: target %q: unknown shape %q", ErrInvalid, spec.Name, spec.Shape)
	}
	if shape == ShapeCurve {
		if _, ok := CurveFunc(spec.Func); !ok {
			return nil, fmt.Errorf("%w: target %q: unknown curve func %q", ErrInvalid, spec.Name, spec.Func)
		}
	}

	rec := motion.NewRecord(spec.Name)
	for name, v := range defaults.fields {
		rec.Set(name, v)
	}
	for _, name := range defaults.children {
		point := motion.NewRecord(name)
		point.Set("x", 0)
		point.Set("y", 0)
		rec.SetChild(name, point)
	}

	color := motion.ColorWhite
	if spec.Color != nil {
		c, err := parseColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", spec.Name, err)
		}
		color = c
	}
	col := motion.NewRecord("color")
	col.Set("r", color.R)
	col.Set("g", color.G)
	col.Set("b", color.B)
	col.Set("a", color.A)
	rec.SetChild("color", col)

	if err := fill(rec, spec); err != nil {
		return nil, fmt.Errorf("target %q: %w", spec.Name, err)
	}
	return &Target{Name: spec.Name, Shape: shape, Func: spec.Func, Record: rec}, nil
}

// fill copies declared fields and children into rec, merging children that
// already exist.
func fill(rec *motion.Record, spec *TargetSpec) error {
	for name, v := range spec.Fields {
		rec.Set(name, v)
	}
	for i := range spec.Children {
		cs := &spec.Children[i]
		if cs.Name == "" {
			return fmt.Errorf("%w: child without a name", ErrInvalid)
		}
		child := rec.ChildRecord(cs.Name)
		if child == nil {
			child = motion.NewRecord(cs.Name)
			rec.SetChild(cs.Name, child)
		}
		if err := fill(child, cs); err != nil {
			return fmt.Errorf("child %q: %w", cs.Name, err)
		}
	}
	return nil
}

func parseColor(v []float64) (motion.Color, error) {
	switch len(v) {
	case 3:
		return motion.Color{R: v[0], G: v[1], B: v[2], A: 1}, nil
	case 4:
		return motion.Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	}
	return motion.Color{}, fmt.Errorf("%w: color needs 3 or 4 components, got %d", ErrInvalid, len(v))
}

func parseVec(v []float64) (motion.Vec2, error) {
	switch len(v) {
	case 0:
		return motion.Vec2{}, nil
	case 2:
		return motion.Vec2{X: v[0], Y: v[1]}, nil
	}
	return motion.Vec2{}, fmt.Errorf("%w: point needs 2 components, got %d", ErrInvalid, len(v))
}
