package dedupe

import (
	"fmt"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reshape/core"
)

// Slice returns items without later duplicates, preserving
// first-occurrence order. The input is never modified.
func Slice[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, e := range items {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// String returns item without later duplicate runes, preserving
// first-occurrence order.
func String(item string) string {
	return string(Slice([]rune(item)))
}

// Tuple deduplicates a core.Tuple. Elements are compared by value
// equality; an element whose dynamic type is not comparable (a slice, a
// map, a function) cannot be deduplicated and errors.
func Tuple(item core.Tuple) (core.Tuple, error) {
	out, err := anySlice(item)
	if err != nil {
		return nil, err
	}

	return core.Tuple(out), nil
}

// Dedupe dispatches on the kind of item: text, sequences and tuples are
// deduplicated; sets come back unchanged since their elements are
// already unique. Anything else errors, wrapping core.ErrUnsupportedType.
func Dedupe(item any) (any, error) {
	switch v := item.(type) {
	case string:
		return String(v), nil
	case []string:
		return Slice(v), nil
	case []any:
		return anySlice(v)
	case core.Tuple:
		return Tuple(v)
	case mapset.Set[string]:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: cannot deduplicate %T", core.ErrUnsupportedType, item)
	}
}

// anySlice deduplicates a []any with a runtime comparability guard, so
// an unhashable element reports an error instead of panicking.
func anySlice(items []any) ([]any, error) {
	seen := make(map[any]struct{}, len(items))
	out := make([]any, 0, len(items))
	for _, e := range items {
		if e != nil && !reflect.TypeOf(e).Comparable() {
			return nil, fmt.Errorf(
				"%w: element %T is not comparable", core.ErrUnsupportedType, e)
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out, nil
}
