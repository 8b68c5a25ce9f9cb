package yamlpatch

import (
	"fmt"
	"strings"
)

// Path is a key path split into segments: "a.b.c" is {"a", "b", "c"}.
type Path []string

// ParsePath splits a dotted key path. Empty paths and empty segments are
// rejected with ErrInvalidPath.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, s)
		}
	}
	return Path(segs), nil
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Resolve returns the index of the line declaring p.
//
// The first segment matches only keys at indentation zero. Once a segment
// matches, the next one is looked up among that key's direct children: the
// declarations that follow it, at the indentation of its first child, up
// to the next declaration at or left of the parent's own indentation. The
// first match at each level is final; a later failure does not retry with
// another candidate.
func (d *Document) Resolve(p Path) (int, error) {
	if len(p) == 0 {
		return -1, fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	found := -1
	depth := 0
	parentIndent := -1
	childIndent := 0
	d.declarations(func(i int, l Line) bool {
		if depth > 0 {
			if l.Indent <= parentIndent {
				return false
			}
			if childIndent < 0 {
				childIndent = l.Indent
			}
		}
		if l.Indent != childIndent || l.Key != p[depth] {
			return true
		}
		if depth == len(p)-1 {
			found = i
			return false
		}
		depth++
		parentIndent = l.Indent
		childIndent = -1
		return true
	})

	if found < 0 {
		return -1, fmt.Errorf("%w: %s", ErrPathNotResolved, p)
	}
	return found, nil
}

// Get resolves p and returns its value with surrounding quotes removed.
func (d *Document) Get(p Path) (string, error) {
	i, err := d.Resolve(p)
	if err != nil {
		return "", err
	}
	return Unquote(ParseLine(d.lines[i]).Value), nil
}

// Walk calls fn for every declaration with its full key path, in document
// order, until fn returns false.
func (d *Document) Walk(fn func(p Path, i int, l Line) bool) {
	type frame struct {
		indent int
		key    string
	}
	var stack []frame
	d.declarations(func(i int, l Line) bool {
		for len(stack) > 0 && stack[len(stack)-1].indent >= l.Indent {
			stack = stack[:len(stack)-1]
		}
		p := make(Path, 0, len(stack)+1)
		for _, f := range stack {
			p = append(p, f.key)
		}
		p = append(p, l.Key)
		if !fn(p, i, l) {
			return false
		}
		stack = append(stack, frame{indent: l.Indent, key: l.Key})
		return true
	})
}
