package convert

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reshape/core"
)

// Slicify returns item as a []any: a sequence is returned as-is or
// boxed, a tuple is unwrapped, a set is enumerated in sorted order, a
// mapping contributes its sorted keys, nil becomes empty, and any other
// value comes back wrapped as a single element. Slicify is total.
func Slicify(item any) []any {
	switch v := item.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	case []string:
		return box(v)
	case core.Tuple:
		return []any(v)
	case mapset.Set[string]:
		return box(sortedElems(v))
	case map[string]any:
		return box(sortedKeys(v))
	case map[string]string:
		return box(sortedKeys(v))
	default:
		return []any{item}
	}
}

// Tuplify is Slicify rewrapped as a core.Tuple.
func Tuplify(item any) core.Tuple {
	if t, ok := item.(core.Tuple); ok {
		return t
	}

	return core.Tuple(Slicify(item))
}

// Setify converts item into a set of strings: a set passes through,
// sequences and tuples must hold only text, a mapping contributes its
// keys, text becomes a single-element set, and nil an empty one.
func Setify(item any) (mapset.Set[string], error) {
	switch v := item.(type) {
	case nil:
		return mapset.NewThreadUnsafeSet[string](), nil
	case mapset.Set[string]:
		return v, nil
	case string:
		return mapset.NewThreadUnsafeSet(v), nil
	case []string:
		return mapset.NewThreadUnsafeSet(v...), nil
	case []any:
		return setOfStrings(v)
	case core.Tuple:
		return setOfStrings(v)
	case map[string]any:
		return mapset.NewThreadUnsafeSet(sortedKeys(v)...), nil
	case map[string]string:
		return mapset.NewThreadUnsafeSet(sortedKeys(v)...), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to a set", core.ErrUnsupportedType, item)
	}
}

func setOfStrings(items []any) (mapset.Set[string], error) {
	out := mapset.NewThreadUnsafeSet[string]()
	for _, e := range items {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf(
				"%w: set element %T is not text", core.ErrConversionFailed, e)
		}
		out.Add(s)
	}

	return out, nil
}

func box(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}

	return out
}

func sortedElems(s mapset.Set[string]) []string {
	elems := s.ToSlice()
	slices.Sort(elems)

	return elems
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
