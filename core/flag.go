package core

// Flag is a tri-state boolean override: unset, explicitly off, or
// explicitly on. It replaces the "missing value" sentinel pattern:
// FlagUnset means "defer to the Settings default", while FlagOff and
// FlagOn force the behavior for a single call.
type Flag uint8

const (
	// FlagUnset defers to the Settings default.
	FlagUnset Flag = iota

	// FlagOff forces the behavior off for this call.
	FlagOff

	// FlagOn forces the behavior on for this call.
	FlagOn
)

// Resolve returns the effective boolean: the explicit value when the
// flag is set, otherwise fallback.
func (f Flag) Resolve(fallback bool) bool {
	switch f {
	case FlagOn:
		return true
	case FlagOff:
		return false
	default:
		return fallback
	}
}

// FlagOf converts a plain boolean into an explicit Flag.
func FlagOf(on bool) Flag {
	if on {
		return FlagOn
	}

	return FlagOff
}
