package split

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/reshape/core"
)

// Options configures Cleave and Separate.
//
// Fields:
//   - Last        — split at the last occurrence instead of the first
//     (Cleave only).
//   - RaiseErrors — error on an absent divider instead of degrading.
type Options struct {
	Last        bool
	RaiseErrors bool
}

// DefaultOptions returns the Options zero state: split at the first
// occurrence, degrade on an absent divider.
func DefaultOptions() Options {
	return Options{}
}

// Cleave splits item into exactly two parts at the first occurrence of
// divider, or the last when opts.Last is set. The divider itself is
// consumed: Cleave("a_b_c", "_") yields ("a", "b_c"), and with Last,
// ("a_b", "c").
//
// When divider is absent, Cleave errors if opts.RaiseErrors is set and
// otherwise returns item in both slots.
func Cleave(item, divider string, opts *Options) (head, tail string, err error) {
	o := orDefault(opts)

	idx := strings.Index(item, divider)
	if o.Last {
		idx = strings.LastIndex(item, divider)
	}
	if divider == "" || idx < 0 {
		if o.RaiseErrors {
			return "", "", absentErr(divider, item)
		}

		return item, item, nil
	}

	return item[:idx], item[idx+len(divider):], nil
}

// Separate splits item into all parts around every occurrence of
// divider. When divider is absent, Separate errors if opts.RaiseErrors
// is set and otherwise returns a single-element result holding item.
func Separate(item, divider string, opts *Options) ([]string, error) {
	o := orDefault(opts)

	if divider == "" || !strings.Contains(item, divider) {
		if o.RaiseErrors {
			return nil, absentErr(divider, item)
		}

		return []string{item}, nil
	}

	return strings.Split(item, divider), nil
}

func orDefault(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

func absentErr(divider, item string) error {
	return fmt.Errorf("%w: divider %q is not in %q", core.ErrInvalidArgument, divider, item)
}
