// Package split divides text around a divider.
//
// What:
//
//   - Cleave splits text into exactly two parts at the first (default)
//     or last occurrence of a divider.
//   - Separate splits text into all parts around every occurrence.
//
// Behavior:
//
//	An absent divider is handled by the RaiseErrors option: raising
//	yields an error wrapping core.ErrInvalidArgument; otherwise Cleave
//	returns the original text in both slots and Separate returns a
//	single-element result. Unlike the kind-dispatching packages, the
//	default here is to degrade; splitting does not consult the global
//	Settings raise flag.
//
// Properties:
//
//   - Cleave("a_b_c", "_") == ("a", "b_c"); with Last, ("a_b", "c").
//   - Joining Separate's parts with the divider restores the input.
//
// Complexity: O(len(text)).
package split
