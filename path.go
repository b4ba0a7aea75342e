package motion

import (
	"fmt"
	"strings"
)

// Target is the accessor capability a timeline needs from the record it
// animates. Implementations expose numeric fields and nested records by name;
// a timeline never inspects the record any other way.
//
// Lookups happen on every read and write, so a Target may swap out its nested
// records between frames without invalidating any path.
type Target interface {
	// Float returns a pointer to the numeric field called name, or nil if the
	// target has no such field.
	Float(name string) *float64
	// Child returns the nested record called name, or nil if the target has no
	// such record.
	Child(name string) Target
}

// Path is a parsed, immutable dotted property path such as "curve.max.x".
type Path struct {
	raw      string
	segments []string
}

// ParsePath splits s on '.' and validates every segment. An empty path or an
// empty segment ("a..b", ".x") is rejected with a *ConfigError.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, configErrorf("path", "empty property path")
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if seg == "" {
			return Path{}, configErrorf("path", "empty segment in property path %q", s)
		}
	}
	return Path{raw: s, segments: segs}, nil
}

// MustParsePath is like ParsePath but panics on error. Intended for package
// level path constants.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the dotted form of the path.
func (p Path) String() string { return p.raw }

// Segments returns the number of segments in the path.
func (p Path) Segments() int { return len(p.segments) }

// resolve walks every segment but the last through Child lookups and returns
// the leaf field pointer.
func (p Path) resolve(target Target) (*float64, error) {
	if isNil(target) || len(p.segments) == 0 {
		return nil, p.errorFor(target)
	}
	cur := target
	last := len(p.segments) - 1
	for _, seg := range p.segments[:last] {
		cur = cur.Child(seg)
		if isNil(cur) {
			return nil, p.errorFor(target)
		}
	}
	f := cur.Float(p.segments[last])
	if f == nil {
		return nil, p.errorFor(target)
	}
	return f, nil
}

// isNil reports whether t is a nil interface or a nil pointer to one of the
// built-in target types.
func isNil(t Target) bool {
	switch v := t.(type) {
	case nil:
		return true
	case *Vec2:
		return v == nil
	case *Color:
		return v == nil
	case *Record:
		return v == nil
	}
	return false
}

func (p Path) errorFor(target Target) error {
	return &PathError{Path: p.raw, TargetType: fmt.Sprintf("%T", target)}
}

// Read returns the current value of path on target.
func Read(target Target, path Path) (float64, error) {
	f, err := path.resolve(target)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// Write stores v into the field named by path, in place.
func Write(target Target, path Path, v float64) error {
	f, err := path.resolve(target)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
