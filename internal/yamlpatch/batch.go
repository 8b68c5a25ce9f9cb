package yamlpatch

// Edit is one key path and its replacement value.
type Edit struct {
	Path  Path
	Value string
}

// Skip records an edit that resolved but was refused.
type Skip struct {
	Key string
	Err error
}

// BatchResult is the outcome of ApplyBatch.
type BatchResult struct {
	Doc        *Document
	Changed    bool
	Applied    []string // keys whose line changed
	Skipped    []Skip   // keys refused by Mutate
	Unresolved []string // keys that matched no line
}

// ApplyBatch applies edits in order against one in-memory document. Each
// edit sees the result of the ones before it. Keys that do not resolve are
// recorded and otherwise ignored.
func ApplyBatch(doc *Document, edits []Edit) BatchResult {
	res := BatchResult{Doc: doc}
	for _, e := range edits {
		key := e.Path.String()
		i, err := res.Doc.Resolve(e.Path)
		if err != nil {
			res.Unresolved = append(res.Unresolved, key)
			continue
		}
		next, changed, err := Mutate(res.Doc, i, e.Value)
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Key: key, Err: err})
			continue
		}
		res.Doc = next
		if changed {
			res.Changed = true
			res.Applied = append(res.Applied, key)
		}
	}
	return res
}
