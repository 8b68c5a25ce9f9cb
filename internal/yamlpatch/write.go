package yamlpatch

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WriteFile commits doc to path atomically: the content goes to a temporary
// file in the same directory, is synced, and is renamed over path. On
// failure the temporary file is removed and path keeps its old content.
// The permission bits of an existing file are carried over.
//
// If path is a symlink, the file it points to is replaced and the link is
// kept.
func WriteFile(path string, doc *Document) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
		target = path
	}

	if err := atomic.WriteFile(target, bytes.NewReader(doc.Bytes())); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
