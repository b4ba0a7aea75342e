package motion

import (
	"image/color"
	"sort"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// A *Color is a Target with the fields "r", "g", "b" and "a".
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint for drawn shapes.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts c to an 8-bit straight-alpha color, clamping each component
// to [0, 1].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}
}

func unit8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// Float implements Target. A nil *Color has no fields.
func (c *Color) Float(name string) *float64 {
	if c == nil {
		return nil
	}
	switch name {
	case "r":
		return &c.R
	case "g":
		return &c.G
	case "b":
		return &c.B
	case "a":
		return &c.A
	}
	return nil
}

// Child implements Target. Colors have no nested records.
func (c *Color) Child(string) Target { return nil }

// Vec2 is a 2D vector used for positions, offsets and bounds.
// A *Vec2 is a Target with the fields "x" and "y".
type Vec2 struct {
	X, Y float64
}

// Float implements Target. A nil *Vec2 has no fields.
func (v *Vec2) Float(name string) *float64 {
	if v == nil {
		return nil
	}
	switch name {
	case "x":
		return &v.X
	case "y":
		return &v.Y
	}
	return nil
}

// Child implements Target. Vectors have no nested records.
func (v *Vec2) Child(string) Target { return nil }

// Empty is a Target with no fields. Use it for timelines that only compose
// other timelines (Parallel, Then) and never interpolate a path themselves.
type Empty struct{}

// Float implements Target.
func (Empty) Float(string) *float64 { return nil }

// Child implements Target.
func (Empty) Child(string) Target { return nil }

// FieldMap declares the settable paths of a user-defined record. Floats point
// directly at struct fields; Children are looked up through a func on every
// access so a record may replace its nested objects at any time.
//
//	type Curve struct{ Min, Max motion.Vec2; Width float64 }
//
//	func (c *Curve) fields() motion.FieldMap {
//		return motion.FieldMap{
//			Floats:   map[string]*float64{"width": &c.Width},
//			Children: map[string]func() motion.Target{
//				"min": func() motion.Target { return &c.Min },
//				"max": func() motion.Target { return &c.Max },
//			},
//		}
//	}
type FieldMap struct {
	Floats   map[string]*float64
	Children map[string]func() Target
}

// Float implements Target.
func (m FieldMap) Float(name string) *float64 {
	return m.Floats[name]
}

// Child implements Target.
func (m FieldMap) Child(name string) Target {
	fn, ok := m.Children[name]
	if !ok || fn == nil {
		return nil
	}
	return fn()
}

// Record is a dynamic Target holding named floats and nested records. It is
// what declarative scenarios animate, since their field set is only known at
// load time. The zero value is not usable; call NewRecord.
type Record struct {
	Name     string
	floats   map[string]*float64
	children map[string]*Record
}

// NewRecord returns an empty record.
func NewRecord(name string) *Record {
	return &Record{
		Name:     name,
		floats:   make(map[string]*float64),
		children: make(map[string]*Record),
	}
}

// Set assigns the field called name, creating it if needed.
func (r *Record) Set(name string, v float64) {
	if f, ok := r.floats[name]; ok {
		*f = v
		return
	}
	r.floats[name] = &v
}

// Get returns the field called name and whether it exists.
func (r *Record) Get(name string) (float64, bool) {
	f, ok := r.floats[name]
	if !ok {
		return 0, false
	}
	return *f, true
}

// SetChild attaches (or replaces) the nested record called name.
func (r *Record) SetChild(name string, child *Record) {
	r.children[name] = child
}

// ChildRecord returns the nested record called name, or nil.
func (r *Record) ChildRecord(name string) *Record {
	return r.children[name]
}

// FieldNames returns the record's numeric field names in sorted order.
func (r *Record) FieldNames() []string {
	names := make([]string, 0, len(r.floats))
	for name := range r.floats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChildNames returns the record's nested record names in sorted order.
func (r *Record) ChildNames() []string {
	names := make([]string, 0, len(r.children))
	for name := range r.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Float implements Target.
func (r *Record) Float(name string) *float64 {
	if r == nil {
		return nil
	}
	return r.floats[name]
}

// Child implements Target. A missing child returns a nil interface, not a
// typed nil pointer, so path resolution fails cleanly.
func (r *Record) Child(name string) Target {
	if r == nil {
		return nil
	}
	c, ok := r.children[name]
	if !ok || c == nil {
		return nil
	}
	return c
}
