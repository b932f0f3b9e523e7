// Package dedupe removes duplicate elements while preserving
// first-occurrence order.
//
// What:
//
//   - Slice is the generic workhorse for any comparable element type.
//   - String drops repeated runes from text.
//   - Tuple deduplicates a core.Tuple, guarding against elements whose
//     dynamic type is not comparable.
//   - Dedupe dispatches on kind: text, sequences and tuples are
//     deduplicated, sets pass through unchanged (they are already
//     unique).
//
// Properties:
//
//   - Idempotent: Dedupe(Dedupe(x)) == Dedupe(x).
//   - Order-preserving: the first occurrence of each element survives in
//     its original position.
//
// Errors:
//
//   - core.ErrUnsupportedType — value outside the dedupable kinds, or a
//     tuple element whose type cannot be compared.
//
// Complexity: O(n) time, O(n) memory.
package dedupe
