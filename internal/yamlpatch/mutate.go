package yamlpatch

import (
	"fmt"
	"strings"
)

// Mutate replaces the value on line index with value and reports whether
// the document changed.
//
// The value is written as given. A value that would read back differently,
// such as one with surrounding blanks or a " #" that starts a comment, is
// refused with ErrInvalidValue.
//
// Indentation, key quoting, spacing and any trailing comment are kept as
// they were. Values are compared with quotes removed, so setting "8000"
// over 8000 is a no-op. Block scalar headers and mapping parents are
// refused with ErrBlockScalar or ErrNotScalar and the document is returned
// unchanged.
func Mutate(doc *Document, index int, value string) (*Document, bool, error) {
	if index < 0 || index >= doc.Len() {
		return doc, false, fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}
	if strings.ContainsAny(value, "\r\n") {
		return doc, false, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}

	raw := doc.lines[index]
	l := ParseLine(raw)
	if !l.Declarative() {
		return doc, false, fmt.Errorf("%w: line %d", ErrNoKey, index+1)
	}

	if Unquote(l.Value) == Unquote(value) {
		return doc, false, nil
	}
	if l.BlockScalar() {
		return doc, false, ErrBlockScalar
	}
	if l.Value == "" && doc.hasNested(index) {
		return doc, false, ErrNotScalar
	}

	prefix := raw[:l.valueStart]
	suffix := raw[l.valueEnd:]
	if value != "" {
		if !strings.HasSuffix(prefix, " ") && !strings.HasSuffix(prefix, "\t") {
			prefix += " "
		}
		if strings.HasPrefix(suffix, "#") {
			suffix = " " + suffix
		}
	}
	line := prefix + value + suffix
	if ParseLine(line).Value != value {
		return doc, false, fmt.Errorf("%w: %q would not read back unchanged", ErrInvalidValue, value)
	}
	return doc.withLine(index, line), true, nil
}
