// Package window produces lazy, finite, restartable sliding windows of
// fixed length over a sequence.
//
// What:
//
//   - Slide yields core.Tuple windows over a []any.
//   - Windows is the generic, compile-time-typed equivalent.
//
// Behavior:
//
//   - Windows advance by Step elements; Step below Length overlaps,
//     Step above Length skips.
//   - A final window cut short by the end of the input is padded with
//     the Fill value to the full Length.
//   - Length 0 yields exactly one empty window.
//   - The returned iter.Seq restarts from scratch on every range loop.
//
// Errors:
//
//   - ErrBadLength — Length is negative.
//   - ErrBadStep   — Step is below 1.
//
// Both wrap core.ErrInvalidArgument.
//
// Complexity: O(len(seq) × Length) time across a full iteration,
// O(Length) memory.
package window
