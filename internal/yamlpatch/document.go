// Package yamlpatch edits scalar values in YAML-like configuration files
// without reformatting them.
//
// A Document is the file as an ordered list of raw lines. Key paths such
// as "ssl.enabled" are resolved against the indentation structure of those
// lines, and an edit rewrites only the value token of the one matching
// line. Comments, blank lines, quoting and block scalars elsewhere in the
// file are left byte-for-byte intact. Edits are computed in memory and
// committed with a single atomic write.
package yamlpatch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// Document is an ordered sequence of raw text lines.
// Documents are never modified in place; edits return a new Document.
type Document struct {
	lines []string
}

// Parse splits data into lines on '\n'. A trailing newline yields an empty
// final line, so Bytes reproduces data exactly.
func Parse(data []byte) *Document {
	return &Document{lines: strings.Split(string(data), "\n")}
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data), nil
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the raw text of line i (0-based).
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of the raw lines.
func (d *Document) Lines() []string {
	return slices.Clone(d.lines)
}

// Bytes joins the lines back into file content.
func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// withLine returns a copy of d with line i replaced.
func (d *Document) withLine(i int, s string) *Document {
	lines := slices.Clone(d.lines)
	lines[i] = s
	return &Document{lines: lines}
}

// declarations calls fn for every declarative line in order, skipping
// blank lines, comments, non-key lines and the bodies of block scalars.
// Iteration stops when fn returns false.
func (d *Document) declarations(fn func(i int, l Line) bool) {
	blockIndent := -1
	for i, raw := range d.lines {
		l := ParseLine(raw)
		if blockIndent >= 0 {
			if blankLine(raw) || l.Indent > blockIndent {
				continue
			}
			blockIndent = -1
		}
		if !l.Declarative() {
			continue
		}
		if !fn(i, l) {
			return
		}
		if l.BlockScalar() {
			blockIndent = l.Indent
		}
	}
}

// hasNested reports whether the declaration on line i opens a nested
// mapping or sequence, judged by the first significant line after it.
func (d *Document) hasNested(i int) bool {
	indent := ParseLine(d.lines[i]).Indent
	for _, raw := range d.lines[i+1:] {
		t := strings.TrimSpace(raw)
		if t == "" || t[0] == '#' {
			continue
		}
		next := ParseLine(raw).Indent
		if next > indent {
			return true
		}
		return next == indent && (t == "-" || strings.HasPrefix(t, "- "))
	}
	return false
}
