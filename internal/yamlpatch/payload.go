package yamlpatch

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseBatch decodes a batch payload: a flat JSON object mapping key paths
// to scalar values. Edits are returned in the object's key order.
//
// String values contribute their decoded text. Numbers, booleans and null
// contribute their JSON spelling, so {"port": 9000} sets port to 9000.
func ParseBatch(payload []byte) ([]Edit, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidPayload)
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}

	var edits []Edit
	var perr error
	root.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		p, err := ParsePath(key)
		if err != nil {
			perr = fmt.Errorf("%w: %v", ErrInvalidPayload, err)
			return false
		}

		var value string
		switch v.Type {
		case gjson.String:
			value = v.Str
		case gjson.Number, gjson.True, gjson.False, gjson.Null:
			value = v.Raw
		default:
			perr = fmt.Errorf("%w: value for %q is not a scalar", ErrInvalidPayload, key)
			return false
		}
		if strings.ContainsAny(value, "\r\n") {
			perr = fmt.Errorf("%w: value for %q spans multiple lines", ErrInvalidPayload, key)
			return false
		}

		edits = append(edits, Edit{Path: p, Value: value})
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return edits, nil
}
