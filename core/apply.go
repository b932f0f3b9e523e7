package core

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Apply rewrites every string reachable in item with fn, dispatching on
// the item's kind. Text is rewritten directly; sequences, tuples and
// sets have each element rewritten; mappings have each key rewritten.
// The concrete container type is preserved: a Tuple comes back a Tuple,
// a thread-safe set comes back thread-safe.
//
// Without recursion, every affected element must itself be text; with
// recursion, nested containers are descended until text leaves are
// reached. Either way, a value that resolves to no kind handler yields
// an error wrapping ErrUnsupportedType.
//
// Complexity: O(total elements) for flat input, O(total leaves) when
// recursive.
func Apply(item any, fn func(string) string, recursive bool) (any, error) {
	switch v := item.(type) {
	case string:
		return fn(v), nil
	case []string:
		out := make([]string, len(v))
		for i, e := range v {
			out[i] = fn(e)
		}

		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			r, err := applyElem(e, fn, recursive)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}

		return out, nil
	case Tuple:
		inner, err := Apply([]any(v), fn, recursive)
		if err != nil {
			return nil, err
		}

		return Tuple(inner.([]any)), nil
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[fn(k)] = val
		}

		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fn(k)] = val
		}

		return out, nil
	case mapset.Set[string]:
		return applySet(v, fn), nil
	default:
		return nil, fmt.Errorf("%w: cannot apply to %T", ErrUnsupportedType, item)
	}
}

// ApplyValues is the mapping value-side counterpart of Apply: keys are
// left alone and each value is rewritten. Only mappings are accepted.
func ApplyValues(item any, fn func(string) string, recursive bool) (any, error) {
	switch v := item.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = fn(val)
		}

		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			r, err := applyElem(val, fn, recursive)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: cannot apply to values of %T", ErrUnsupportedType, item)
	}
}

// applyElem rewrites a single container element: text directly, nested
// containers through Apply when recursion is on.
func applyElem(e any, fn func(string) string, recursive bool) (any, error) {
	if s, ok := e.(string); ok {
		return fn(s), nil
	}
	if recursive {
		return Apply(e, fn, recursive)
	}

	return nil, fmt.Errorf("%w: element %T is not text", ErrUnsupportedType, e)
}

// applySet rebuilds a set through Clone+Clear so the input's concrete
// implementation (thread-safe or not) is preserved.
func applySet(v mapset.Set[string], fn func(string) string) mapset.Set[string] {
	out := v.Clone()
	out.Clear()
	v.Each(func(e string) bool {
		out.Add(fn(e))

		return false
	})

	return out
}
