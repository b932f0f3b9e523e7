// Package convert holds one-directional coercers between kinds. Each
// converter is independent: it either totally succeeds or reports a
// typed error, and none of them share state.
//
// What:
//
//   - Numify / Number / Integerify / Floatify — text and numeric
//     cross-conversions. Numify prefers int over float and can degrade
//     to the unmodified input instead of erroring.
//   - Stringify / TimeString — collection-to-text joining and scalar or
//     datetime formatting.
//   - Slicify / Tuplify / Setify — wrap-or-convert into sequence kinds.
//   - Mapify — mapping normalization.
//   - Structify — parse a textual literal ("[1, 2]", "{a: 1}") into Go
//     values.
//   - Pathify — text or Path into core.Path.
//   - FieldMap — zip positional values to a struct's field names, the
//     declared-annotation route from arguments to a keyword mapping.
//
// Errors:
//
//   - core.ErrConversionFailed  — the value cannot be coerced
//     (e.g. non-numeric text).
//   - core.ErrUnsupportedType   — the input type has no conversion rule.
//   - core.ErrInvalidArgument   — malformed call (e.g. more FieldMap
//     values than struct fields).
//
// Complexity: O(n) in the size of the input value.
package convert
