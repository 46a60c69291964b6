package http

import (
	"reflect"

	json "github.com/goccy/go-json"
)

// EncodeBody serializes a request body. A nil body yields no payload. Object fields
// whose value is Undefined are dropped at any depth; nil values are kept as null.
func EncodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(body); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, nil
	}

	return json.Marshal(prune(body))
}

// prune removes Undefined from maps and turns it into null inside arrays
func prune(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if _, ok := val.(undefined); ok {
				continue
			}
			out[k] = prune(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			if _, ok := val.(undefined); ok {
				continue
			}
			out[i] = prune(val)
		}
		return out
	default:
		return v
	}
}
