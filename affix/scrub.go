package affix

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/reshape/core"
)

// DropDunders removes entries whose name begins with two leading
// underscores: mapping entries by key, sequence and tuple entries by
// the element's resolved name. Unlike the affixers, scrubbing never
// degrades: an unsupported value or an unnameable element always
// errors, wrapping core.ErrUnsupportedType.
func DropDunders(item any) (any, error) {
	return scrub(item, "__")
}

// DropPrivates removes entries whose name begins with at least one
// leading underscore. Dunder-named entries are private too, so
// DropPrivates removes a superset of what DropDunders removes.
func DropPrivates(item any) (any, error) {
	return scrub(item, "_")
}

func scrub(item any, marker string) (any, error) {
	switch v := item.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if !strings.HasPrefix(k, marker) {
				out[k] = val
			}
		}

		return out, nil
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			if !strings.HasPrefix(k, marker) {
				out[k] = val
			}
		}

		return out, nil
	case []string:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if !strings.HasPrefix(e, marker) {
				out = append(out, e)
			}
		}

		return out, nil
	case []any:
		out := make([]any, 0, len(v))
		for _, e := range v {
			name, err := nameOf(e)
			if err != nil {
				return nil, err
			}
			if !strings.HasPrefix(name, marker) {
				out = append(out, e)
			}
		}

		return out, nil
	case core.Tuple:
		inner, err := scrub([]any(v), marker)
		if err != nil {
			return nil, err
		}

		return core.Tuple(inner.([]any)), nil
	default:
		return nil, fmt.Errorf("%w: cannot scrub %T", core.ErrUnsupportedType, item)
	}
}

// nameOf resolves the filtering name of a sequence element: the string
// itself, then a core.Named implementation, then the element's type
// name. Unnamed types (literals of anonymous type) cannot be filtered.
func nameOf(e any) (string, error) {
	switch v := e.(type) {
	case string:
		return v, nil
	case core.Named:
		return v.Name(), nil
	}
	if t := reflect.TypeOf(e); t != nil && t.Name() != "" {
		return t.Name(), nil
	}

	return "", fmt.Errorf("%w: no name resolvable for %T", core.ErrUnsupportedType, e)
}
