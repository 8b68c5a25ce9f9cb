package yamlpatch

import (
	"errors"
	"io"
	"log/slog"
)

// Options configures an Engine.
type Options struct {
	Path   string       // target file
	Logger *slog.Logger // nil discards
	Verify bool         // refuse edits that break a parseable document (off by default)
}

// Engine runs get/set operations against one configuration file. Every
// call reads the file once and writes it at most once.
type Engine struct {
	path   string
	log    *slog.Logger
	verify bool
}

// Result describes what a set operation did.
type Result struct {
	Changed    bool     // at least one value differs
	Written    bool     // the file was replaced
	Applied    []string // keys whose value changed
	Skipped    []Skip   // keys refused (block scalars, mappings)
	Unresolved []string // keys that matched no line (batches only)
}

// Entry is one key listed by Engine.List.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Line  int    `json:"line"`
}

// New creates an Engine for opts.Path.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		path:   opts.Path,
		log:    logger,
		verify: opts.Verify,
	}
}

// Path returns the target file.
func (e *Engine) Path() string {
	return e.path
}

// Get returns the unquoted value at key.
func (e *Engine) Get(key string) (string, error) {
	p, err := ParsePath(key)
	if err != nil {
		return "", err
	}
	doc, err := e.load()
	if err != nil {
		return "", err
	}
	return doc.Get(p)
}

// Set replaces the value at key. An unresolved key is an error and nothing
// is written. A refused edit is reported in Result.Skipped and is not an
// error.
func (e *Engine) Set(key, value string) (Result, error) {
	p, err := ParsePath(key)
	if err != nil {
		return Result{}, err
	}
	doc, err := e.load()
	if err != nil {
		return Result{}, err
	}

	i, err := doc.Resolve(p)
	if err != nil {
		return Result{}, err
	}
	e.log.Debug("resolved key", "key", key, "line", i+1)

	next, changed, err := Mutate(doc, i, value)
	var res Result
	switch {
	case errors.Is(err, ErrBlockScalar), errors.Is(err, ErrNotScalar):
		res.Skipped = []Skip{{Key: key, Err: err}}
	case err != nil:
		return Result{}, err
	case changed:
		res.Changed = true
		res.Applied = []string{key}
	}
	return e.commit(doc, next, res)
}

// SetBatch applies edits in order and writes once. Keys that do not
// resolve are listed in Result.Unresolved and otherwise ignored.
func (e *Engine) SetBatch(edits []Edit) (Result, error) {
	doc, err := e.load()
	if err != nil {
		return Result{}, err
	}

	br := ApplyBatch(doc, edits)
	for _, key := range br.Unresolved {
		e.log.Debug("key not found, skipping", "key", key)
	}
	res := Result{
		Changed:    br.Changed,
		Applied:    br.Applied,
		Skipped:    br.Skipped,
		Unresolved: br.Unresolved,
	}
	return e.commit(doc, br.Doc, res)
}

// List returns every scalar key in document order. Keys that open a nested
// mapping or sequence are omitted.
func (e *Engine) List() ([]Entry, error) {
	doc, err := e.load()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	doc.Walk(func(p Path, i int, l Line) bool {
		if l.Value == "" && doc.hasNested(i) {
			return true
		}
		entries = append(entries, Entry{
			Key:   p.String(),
			Value: Unquote(l.Value),
			Line:  i + 1,
		})
		return true
	})
	return entries, nil
}

func (e *Engine) load() (*Document, error) {
	doc, err := Load(e.path)
	if err != nil {
		return nil, err
	}
	e.log.Debug("loaded config", "path", e.path, "lines", doc.Len())
	return doc, nil
}

// commit writes after to disk when res reports a change.
func (e *Engine) commit(before, after *Document, res Result) (Result, error) {
	if !res.Changed {
		e.log.Debug("no changes, skipping write", "path", e.path)
		return res, nil
	}
	if e.verify {
		if err := checkStructure(before, after); err != nil {
			return Result{}, err
		}
	}
	if err := WriteFile(e.path, after); err != nil {
		return Result{}, err
	}
	e.log.Debug("wrote config", "path", e.path, "keys", len(res.Applied))
	res.Written = true
	return res, nil
}
