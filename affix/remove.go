package affix

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reshape/core"
)

// dropPrefixOp strips prefix + divider from the front of a string when
// present; otherwise the string is returned unchanged.
func dropPrefixOp(prefix, divider string) func(string) string {
	head := prefix + divider

	return func(s string) string { return strings.TrimPrefix(s, head) }
}

// dropSuffixOp strips divider + suffix from the end of a string when
// present. The order mirrors AddSuffix (base + divider + suffix), so
// DropSuffix(AddSuffix(x, s, d), s, d) round-trips to x.
func dropSuffixOp(suffix, divider string) func(string) string {
	tail := divider + suffix

	return func(s string) string { return strings.TrimSuffix(s, tail) }
}

// dropSubstringOp removes every occurrence of sub from a string.
func dropSubstringOp(sub string) func(string) string {
	return func(s string) string { return strings.ReplaceAll(s, sub, "") }
}

// DropPrefix removes prefix (with the Options divider in between) from
// item: from the text itself, from every element of a sequence, set or
// tuple, or from every key of a mapping. A string that does not carry
// the prefix is left unchanged; no-match is never an error.
func DropPrefix(item any, prefix string, opts *Options) (any, error) {
	return dispatch(item, dropPrefixOp(prefix, opts.divider()), opts, core.Apply)
}

// DropSuffix is the suffix counterpart of DropPrefix.
func DropSuffix(item any, suffix string, opts *Options) (any, error) {
	return dispatch(item, dropSuffixOp(suffix, opts.divider()), opts, core.Apply)
}

// DropSubstring removes every occurrence of sub from the strings of
// item. The divider plays no part here.
func DropSubstring(item any, sub string, opts *Options) (any, error) {
	return dispatch(item, dropSubstringOp(sub), opts, core.Apply)
}

// DropPrefixFromValues removes prefix from every value of a mapping.
func DropPrefixFromValues(item any, prefix string, opts *Options) (any, error) {
	return dispatch(item, dropPrefixOp(prefix, opts.divider()), opts, core.ApplyValues)
}

// DropSuffixFromValues removes suffix from every value of a mapping.
func DropSuffixFromValues(item any, suffix string, opts *Options) (any, error) {
	return dispatch(item, dropSuffixOp(suffix, opts.divider()), opts, core.ApplyValues)
}

// Typed helpers.

// DropPrefixString strips prefix + divider from the front of item.
func DropPrefixString(item, prefix, divider string) string {
	return dropPrefixOp(prefix, divider)(item)
}

// DropSuffixString strips divider + suffix from the end of item.
func DropSuffixString(item, suffix, divider string) string {
	return dropSuffixOp(suffix, divider)(item)
}

// DropSubstringString removes every occurrence of sub from item.
func DropSubstringString(item, sub string) string {
	return dropSubstringOp(sub)(item)
}

// DropPrefixSlice strips the prefix from every element of items.
func DropPrefixSlice(items []string, prefix, divider string) []string {
	return eachString(items, dropPrefixOp(prefix, divider))
}

// DropSuffixSlice strips the suffix from every element of items.
func DropSuffixSlice(items []string, suffix, divider string) []string {
	return eachString(items, dropSuffixOp(suffix, divider))
}

// DropPrefixMapKeys strips the prefix from every key of m.
func DropPrefixMapKeys[V any](m map[string]V, prefix, divider string) map[string]V {
	return mapKeys(m, dropPrefixOp(prefix, divider))
}

// DropSuffixMapKeys strips the suffix from every key of m.
func DropSuffixMapKeys[V any](m map[string]V, suffix, divider string) map[string]V {
	return mapKeys(m, dropSuffixOp(suffix, divider))
}

// DropPrefixSet strips the prefix from every element of s.
func DropPrefixSet(s mapset.Set[string], prefix, divider string) mapset.Set[string] {
	return eachSet(s, dropPrefixOp(prefix, divider))
}

// DropSuffixSet strips the suffix from every element of s.
func DropSuffixSet(s mapset.Set[string], suffix, divider string) mapset.Set[string] {
	return eachSet(s, dropSuffixOp(suffix, divider))
}
