package yamlpatch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is the tokenized form of one document line.
//
// Only lines that declare a key (Key != "") carry a Value and Comment.
// Blank lines, comments, sequence items and block scalar content are
// non-declarative and have only Indent set.
type Line struct {
	Indent  int    // leading spaces
	Key     string // declared key, quotes removed
	Value   string // raw value text, trimmed, quotes kept
	Comment string // trailing comment starting at '#', if any

	// Byte offsets of Value within the raw line.
	valueStart int
	valueEnd   int
}

// Declarative reports whether the line declares a key.
func (l Line) Declarative() bool {
	return l.Key != ""
}

// BlockScalar reports whether the value is a block scalar header such as
// "|", ">", "|-" or ">+2". Its content lives on the following lines and
// cannot be replaced by a single-line edit.
func (l Line) BlockScalar() bool {
	v := l.Value
	if v == "" {
		return false
	}
	if strings.HasSuffix(v, "|") || strings.HasSuffix(v, ">") {
		return true
	}
	if v[0] != '|' && v[0] != '>' {
		return false
	}
	return strings.Trim(v[1:], "+-0123456789") == ""
}

// ParseLine tokenizes a single raw line.
//
// A '#' starts a comment only at the beginning of the value or after a
// space or tab, and never inside a value that opens with a quote, so
// "http://host/#frag" and "'a # b'" are kept whole.
func ParseLine(s string) Line {
	var l Line
	for l.Indent < len(s) && s[l.Indent] == ' ' {
		l.Indent++
	}

	trimmed := strings.TrimSpace(s[l.Indent:])
	if trimmed == "" || trimmed[0] == '#' {
		return l
	}

	key, n := scanKey(s[l.Indent:])
	if n == 0 {
		return l
	}
	l.Key = key

	// A trailing CR belongs to the line ending, not the value or comment.
	end := len(s)
	if strings.HasSuffix(s, "\r") {
		end--
	}

	start := l.Indent + n
	for start < end && isBlank(s[start]) {
		start++
	}
	comment := findComment(s, start, end)
	stop := comment
	for stop > start && isBlank(s[stop-1]) {
		stop--
	}

	l.valueStart, l.valueEnd = start, stop
	l.Value = s[start:stop]
	if comment < end {
		l.Comment = strings.TrimRight(s[comment:end], " \t")
	}
	return l
}

// Unquote strips one matching pair of surrounding single or double quotes.
func Unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// scanKey matches an optionally quoted identifier immediately followed by
// ':' at the start of s. It returns the key and the number of bytes
// consumed including the colon, or 0 if s does not declare a key.
func scanKey(s string) (string, int) {
	i := 0
	var quote byte
	if i < len(s) && (s[i] == '"' || s[i] == '\'') {
		quote = s[i]
		i++
	}

	begin := i
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isKeyRune(r) {
			break
		}
		i += size
	}
	if i == begin {
		return "", 0
	}
	key := s[begin:i]

	if quote != 0 {
		if i >= len(s) || s[i] != quote {
			return "", 0
		}
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return "", 0
	}
	return key, i + 1
}

// findComment returns the offset of the comment marker in s[from:end], or
// end if there is none.
func findComment(s string, from, end int) int {
	i := from
	if i < end && (s[i] == '"' || s[i] == '\'') {
		i = skipQuoted(s, i, end)
	}
	for ; i < end; i++ {
		if s[i] == '#' && (i == from || isBlank(s[i-1])) {
			return i
		}
	}
	return end
}

// skipQuoted returns the offset just past the quoted span opening at
// s[i]. An unterminated span runs to end.
func skipQuoted(s string, i, end int) int {
	q := s[i]
	for j := i + 1; j < end; j++ {
		switch {
		case q == '"' && s[j] == '\\':
			j++
		case s[j] == q:
			if q == '\'' && j+1 < end && s[j+1] == '\'' {
				j++
				continue
			}
			return j + 1
		}
	}
	return end
}

func isKeyRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func blankLine(s string) bool {
	return strings.TrimSpace(s) == ""
}
