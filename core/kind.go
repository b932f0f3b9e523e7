package core

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Kind names a recognized value category used for dispatch and
// default-value lookup.
type Kind string

// Built-in kinds. Int and Float are separate kinds because their default
// fallback values differ.
const (
	KindText     Kind = "text"
	KindMapping  Kind = "mapping"
	KindSequence Kind = "sequence"
	KindFloat    Kind = "float"
	KindInt      Kind = "int"
	KindPath     Kind = "path"
	KindTuple    Kind = "tuple"
	KindSet      Kind = "set"
)

// Matcher reports whether a sample value belongs to a Kind.
type Matcher func(any) bool

// kindEntry pairs a Kind with its matcher. The registry is an ordered
// slice: KindOf returns the first entry whose matcher accepts the
// sample, so inference is registration-order dependent. That ordering
// is part of the documented contract and is pinned by tests.
type kindEntry struct {
	kind  Kind
	match Matcher
}

// registry holds the kind matchers in registration order. The built-in
// order below is deliberate and must not be reshuffled.
var registry = []kindEntry{
	{KindText, func(v any) bool { _, ok := v.(string); return ok }},
	{KindMapping, isMapping},
	{KindSequence, isSequence},
	{KindFloat, isFloat},
	{KindInt, isInt},
	{KindPath, func(v any) bool { _, ok := v.(Path); return ok }},
	{KindTuple, func(v any) bool { _, ok := v.(Tuple); return ok }},
	{KindSet, func(v any) bool { _, ok := v.(mapset.Set[string]); return ok }},
}

func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, map[string]string:
		return true
	default:
		return false
	}
}

func isSequence(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	default:
		return false
	}
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

func isInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// KindOf infers the Kind of sample by walking the registry in
// registration order and returning the first match.
// Complexity: O(len(registry)).
func KindOf(sample any) (Kind, bool) {
	for _, e := range registry {
		if e.match(sample) {
			return e.kind, true
		}
	}

	return "", false
}

// Register appends kind to the inference registry and records def as its
// default value on the process-wide Settings. Registration order is
// load-bearing: a matcher registered later never shadows an earlier one.
func Register(kind Kind, match Matcher, def any) {
	registry = append(registry, kindEntry{kind: kind, match: match})
	Defaults().SetDefault(kind, def)
}
