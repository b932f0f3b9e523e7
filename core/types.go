package core

// This file declares the tagged container variants that have no direct
// Go counterpart: Tuple (fixed-size sequence) and Path. The set kind is
// mapset.Set[string] from deckarep/golang-set; no local set type exists.

// Tuple is a fixed-size ordered sequence. It is a distinct named type so
// kind inference can tell it apart from an ordinary []any: operations
// that receive a Tuple rebuild a Tuple, never a plain slice.
type Tuple []any

// Path is a filesystem-style path value. Like Tuple, it exists so the
// path kind stays distinguishable from plain text during dispatch.
type Path string

// Named is implemented by values that expose an identifier. Scrubbing
// operations consult it when filtering non-string sequence elements.
type Named interface {
	Name() string
}
