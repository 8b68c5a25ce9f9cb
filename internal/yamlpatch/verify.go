package yamlpatch

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// checkStructure refuses an edit that turns a document yaml.v3 can parse
// into one it cannot. Documents that did not parse to begin with are not
// checked.
func checkStructure(before, after *Document) error {
	var n yaml.Node
	if err := yaml.Unmarshal(before.Bytes(), &n); err != nil {
		return nil
	}
	var m yaml.Node
	if err := yaml.Unmarshal(after.Bytes(), &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return nil
}
