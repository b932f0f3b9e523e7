package core

import "fmt"

// Fallback resolves a failed dispatch into either an error or the
// configured default value.
//
// The effective raise decision is the explicit flag when set, otherwise
// the Settings raise-on-failure default. When raising, the returned
// error wraps ErrUnsupportedType and carries msg. When degrading, the
// default for kind is returned; an empty kind is inferred from sample
// via KindOf. Supplying neither a kind nor a sample is an
// ErrInvalidArgument. A sample whose kind cannot be inferred fails
// regardless of the raise decision, since no default can be resolved.
//
// A nil s falls back to the process-wide Defaults().
func Fallback(msg string, raise Flag, kind Kind, sample any, s *Settings) (any, error) {
	s = s.or()
	if raise.Resolve(s.RaiseErrors()) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, msg)
	}
	if kind == "" {
		if sample == nil {
			return nil, fmt.Errorf(
				"%w: either a kind or a sample value must be supplied",
				ErrInvalidArgument)
		}
		inferred, ok := KindOf(sample)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, msg)
		}
		kind = inferred
	}
	def, ok := s.Default(kind)
	if !ok {
		return nil, fmt.Errorf("%w: no default value stored for %q", ErrUnknownKind, kind)
	}

	return def, nil
}
