package convert

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/reshape/core"
)

// Mapify normalizes item into a map[string]any: mappings pass through
// or get boxed, a sequence of two-element tuples with text heads is
// folded into key/value pairs, and nil becomes an empty map.
func Mapify(item any) (map[string]any, error) {
	switch v := item.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}

		return out, nil
	case []any:
		return pairsToMap(v)
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to a mapping", core.ErrUnsupportedType, item)
	}
}

// pairsToMap folds [(k1, v1), (k2, v2), ...] into a mapping.
func pairsToMap(items []any) (map[string]any, error) {
	out := make(map[string]any, len(items))
	for _, e := range items {
		pair, ok := e.(core.Tuple)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf(
				"%w: element %v is not a two-element tuple", core.ErrConversionFailed, e)
		}
		key, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf(
				"%w: key %v is not text", core.ErrConversionFailed, pair[0])
		}
		out[key] = pair[1]
	}

	return out, nil
}

// FieldMap zips positional values to the field names of a struct type,
// in declaration order, the route from plain arguments to a keyword
// mapping. proto may be a struct value or a pointer to one; fields not
// covered by args are simply absent from the result.
func FieldMap(proto any, args ...any) (map[string]any, error) {
	t := reflect.TypeOf(proto)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf(
			"%w: field mapping needs a struct, got %T", core.ErrUnsupportedType, proto)
	}
	if len(args) > t.NumField() {
		return nil, fmt.Errorf(
			"%w: %d values for %d fields of %s",
			core.ErrInvalidArgument, len(args), t.NumField(), t.Name())
	}

	out := make(map[string]any, len(args))
	for i, a := range args {
		out[t.Field(i).Name] = a
	}

	return out, nil
}
