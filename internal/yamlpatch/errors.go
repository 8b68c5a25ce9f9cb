package yamlpatch

import "errors"

var (
	// ErrFileNotFound is returned when the target document does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrPathNotResolved is returned when a key path matches no line.
	ErrPathNotResolved = errors.New("key not found")

	// ErrInvalidPath is returned for empty key paths or empty segments.
	ErrInvalidPath = errors.New("invalid key path")

	// ErrBlockScalar is returned when an edit targets a block scalar header
	// (a value introduced by | or >). The edit is dropped.
	ErrBlockScalar = errors.New("value is a multi-line block scalar")

	// ErrNotScalar is returned when an edit targets a key whose value is a
	// nested mapping. The edit is dropped.
	ErrNotScalar = errors.New("value is a nested mapping")

	// ErrInvalidValue is returned when a new value spans more than one line.
	ErrInvalidValue = errors.New("value must be a single line")

	// ErrNoKey is returned when an edit targets a line that declares no key.
	ErrNoKey = errors.New("line declares no key")

	// ErrLineOutOfRange is returned when a line index is outside the document.
	ErrLineOutOfRange = errors.New("line index out of range")

	// ErrInvalidPayload is returned when a batch payload is not a flat JSON
	// object of scalar values.
	ErrInvalidPayload = errors.New("invalid batch payload")

	// ErrInvalidResult is returned when an edit would turn a parseable
	// document into one that no longer parses.
	ErrInvalidResult = errors.New("edit would produce an unparseable document")

	// ErrWrite is returned when committing the document to disk fails.
	ErrWrite = errors.New("writing config file")
)
