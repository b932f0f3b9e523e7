package affix

import "github.com/katalvlaran/reshape/core"

// Options configures a single affixing call. The zero value (or a nil
// pointer) means: no divider, defer recursion and raising to the
// Settings, use the process-wide Settings.
type Options struct {
	// Divider is inserted between the affix and the base text.
	Divider string

	// Recursive overrides the Settings recursion default for this call.
	Recursive core.Flag

	// RaiseErrors overrides the Settings raise default for this call.
	RaiseErrors core.Flag

	// Settings supplies the configuration record; nil uses Defaults().
	Settings *core.Settings
}

// The accessors below are nil-receiver safe so dispatchers can take a
// nil *Options without sprinkling checks at every call site.

func (o *Options) divider() string {
	if o == nil {
		return ""
	}

	return o.Divider
}

func (o *Options) recursive() core.Flag {
	if o == nil {
		return core.FlagUnset
	}

	return o.Recursive
}

func (o *Options) raise() core.Flag {
	if o == nil {
		return core.FlagUnset
	}

	return o.RaiseErrors
}

func (o *Options) settings() *core.Settings {
	if o == nil || o.Settings == nil {
		return core.Defaults()
	}

	return o.Settings
}
