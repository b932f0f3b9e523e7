package core

import mapset "github.com/deckarep/golang-set/v2"

// Settings is the configuration record consulted by every dispatching
// call: whether failures raise, whether operations recurse into nested
// containers, and the per-kind default values returned when a call
// degrades instead of failing.
//
// Settings carries no locks. The instance behind Defaults() lives for
// the process lifetime; callers mutating it from multiple goroutines
// must serialize those calls themselves.
type Settings struct {
	raiseErrors bool
	recursive   bool
	defaults    map[Kind]any
}

// NewSettings returns a Settings with the hard-coded defaults:
// raise errors on, recursion off, and zero-ish values for every
// built-in kind.
func NewSettings() *Settings {
	return &Settings{
		raiseErrors: true,
		recursive:   false,
		defaults: map[Kind]any{
			KindText:     "",
			KindMapping:  map[string]any{},
			KindSequence: []any{},
			KindFloat:    0.0,
			KindInt:      0,
			KindPath:     Path("."),
			KindTuple:    Tuple{},
			KindSet:      mapset.NewThreadUnsafeSet[string](),
		},
	}
}

// defaults is the process-wide Settings instance behind Defaults().
var processDefaults = NewSettings()

// Defaults returns the process-wide Settings used whenever an operation
// is called without an explicit Settings.
func Defaults() *Settings { return processDefaults }

// RaiseErrors reports whether failed dispatches raise instead of
// degrading to a default value.
func (s *Settings) RaiseErrors() bool { return s.raiseErrors }

// Recursive reports whether operations descend into nested containers.
func (s *Settings) Recursive() bool { return s.recursive }

// SetRaiseErrors sets whether failed dispatches raise (true) or return
// the configured default for the value's kind (false).
func (s *Settings) SetRaiseErrors(raise bool) { s.raiseErrors = raise }

// SetRecursive sets whether operations apply to nested containers (true)
// or only the outermost level (false).
func (s *Settings) SetRecursive(recursive bool) { s.recursive = recursive }

// SetDefault records value as the fallback returned for kind when a
// call degrades instead of failing.
func (s *Settings) SetDefault(kind Kind, value any) {
	s.defaults[kind] = value
}

// Default returns the fallback value configured for kind.
func (s *Settings) Default(kind Kind) (any, bool) {
	v, ok := s.defaults[kind]

	return v, ok
}

// or returns s, or the process-wide Settings when s is nil.
func (s *Settings) or() *Settings {
	if s == nil {
		return Defaults()
	}

	return s
}
