package affix

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reshape/core"
)

// prependOp builds the per-string operation for AddPrefix:
// prefix + divider + base.
func prependOp(prefix, divider string) func(string) string {
	head := prefix + divider

	return func(s string) string { return head + s }
}

// appendOp builds the per-string operation for AddSuffix:
// base + divider + suffix.
func appendOp(suffix, divider string) func(string) string {
	tail := divider + suffix

	return func(s string) string { return s + tail }
}

// AddPrefix attaches prefix (with the Options divider in between) to
// item: directly for text, to every element for sequences, sets and
// tuples, and to every key for mappings. Recursive mode descends nested
// containers down to text leaves.
//
// An unsupported value raises or degrades to the default for its
// inferred kind, per the raise-on-failure policy.
func AddPrefix(item any, prefix string, opts *Options) (any, error) {
	return dispatch(item, prependOp(prefix, opts.divider()), opts, core.Apply)
}

// AddSuffix is the suffix counterpart of AddPrefix.
func AddSuffix(item any, suffix string, opts *Options) (any, error) {
	return dispatch(item, appendOp(suffix, opts.divider()), opts, core.Apply)
}

// AddPrefixToValues attaches prefix to every value of a mapping,
// leaving the keys alone. Only mappings are supported.
func AddPrefixToValues(item any, prefix string, opts *Options) (any, error) {
	return dispatch(item, prependOp(prefix, opts.divider()), opts, core.ApplyValues)
}

// AddSuffixToValues is the suffix counterpart of AddPrefixToValues.
func AddSuffixToValues(item any, suffix string, opts *Options) (any, error) {
	return dispatch(item, appendOp(suffix, opts.divider()), opts, core.ApplyValues)
}

// walker is the shape shared by core.Apply and core.ApplyValues.
type walker func(any, func(string) string, bool) (any, error)

// dispatch runs walk over item and routes any unsupported-type failure
// through the fallback policy: raise, or return the default for the
// kind inferred from item.
func dispatch(item any, fn func(string) string, opts *Options, walk walker) (any, error) {
	set := opts.settings()
	out, err := walk(item, fn, opts.recursive().Resolve(set.Recursive()))
	if err != nil {
		return core.Fallback(
			fmt.Sprintf("cannot affix %T", item), opts.raise(), "", item, set)
	}

	return out, nil
}

// Typed helpers: the same operations with compile-time types. None of
// them can fail, so none return an error.

// PrefixString returns prefix + divider + item.
func PrefixString(item, prefix, divider string) string {
	return prependOp(prefix, divider)(item)
}

// SuffixString returns item + divider + suffix.
func SuffixString(item, suffix, divider string) string {
	return appendOp(suffix, divider)(item)
}

// PrefixSlice prefixes every element of items.
func PrefixSlice(items []string, prefix, divider string) []string {
	return eachString(items, prependOp(prefix, divider))
}

// SuffixSlice suffixes every element of items.
func SuffixSlice(items []string, suffix, divider string) []string {
	return eachString(items, appendOp(suffix, divider))
}

// PrefixMapKeys prefixes every key of m.
func PrefixMapKeys[V any](m map[string]V, prefix, divider string) map[string]V {
	return mapKeys(m, prependOp(prefix, divider))
}

// SuffixMapKeys suffixes every key of m.
func SuffixMapKeys[V any](m map[string]V, suffix, divider string) map[string]V {
	return mapKeys(m, appendOp(suffix, divider))
}

// PrefixMapValues prefixes every value of m.
func PrefixMapValues(m map[string]string, prefix, divider string) map[string]string {
	return mapVals(m, prependOp(prefix, divider))
}

// SuffixMapValues suffixes every value of m.
func SuffixMapValues(m map[string]string, suffix, divider string) map[string]string {
	return mapVals(m, appendOp(suffix, divider))
}

// PrefixSet prefixes every element of s, preserving its concrete
// implementation.
func PrefixSet(s mapset.Set[string], prefix, divider string) mapset.Set[string] {
	return eachSet(s, prependOp(prefix, divider))
}

// SuffixSet suffixes every element of s, preserving its concrete
// implementation.
func SuffixSet(s mapset.Set[string], suffix, divider string) mapset.Set[string] {
	return eachSet(s, appendOp(suffix, divider))
}

// eachString maps fn over a fresh copy of items.
func eachString(items []string, fn func(string) string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fn(s)
	}

	return out
}

// mapKeys rebuilds m with every key passed through fn.
func mapKeys[V any](m map[string]V, fn func(string) string) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[fn(k)] = v
	}

	return out
}

// mapVals rebuilds m with every value passed through fn.
func mapVals(m map[string]string, fn func(string) string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}

	return out
}

// eachSet rebuilds s through Clone+Clear so the input's concrete
// implementation is preserved.
func eachSet(s mapset.Set[string], fn func(string) string) mapset.Set[string] {
	out := s.Clone()
	out.Clear()
	s.Each(func(e string) bool {
		out.Add(fn(e))

		return false
	})

	return out
}
