// Package affix adds and removes string affixes (prefixes, suffixes,
// and substrings) across every recognized kind, and scrubs entries
// with "private" or "dunder" names.
//
// What:
//
//   - AddPrefix / AddSuffix attach an affix to text, to every element of
//     a sequence, set, or tuple, or to every key of a mapping, with an
//     optional divider between affix and base.
//   - AddPrefixToValues / AddSuffixToValues are the mapping value-side
//     variants.
//   - DropPrefix / DropSuffix / DropSubstring mirror the adders; an
//     absent affix is never an error; the value comes back unchanged.
//   - DropDunders / DropPrivates remove entries whose name starts with
//     two, respectively one, leading underscores. Sequence elements
//     resolve their name as: the string itself, then a core.Named
//     implementation, then the element's type name.
//   - Typed helpers (PrefixString, SuffixSlice, DropPrefixMapKeys, ...)
//     expose the same operations with compile-time types and no error
//     return.
//
// Why:
//
//   - Key namespacing: prefix configuration maps before merging.
//   - Loop ergonomics: the divider argument saves concatenation at every
//     call site.
//   - API hygiene: strip internal "_" entries before handing data out.
//
// Behavior:
//
//   - Recursive mode (per call via Options.Recursive, or globally via
//     Settings) descends nested containers down to text leaves.
//   - The concrete container type is preserved: Tuple in, Tuple out.
//   - On an unsupported value the call raises (wrapping
//     core.ErrUnsupportedType) or degrades to the configured default for
//     the value's inferred kind, per the raise-on-failure policy.
//
// Complexity: O(total elements), O(total leaves) when recursive.
package affix
