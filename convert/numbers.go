package convert

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/reshape/core"
)

// Numify converts text to a number, preferring int over float64:
// "42" → 42, "3.5" → 3.5. When the text is not numeric, Numify raises
// (wrapping core.ErrConversionFailed) or, when the raise decision
// resolves to off, returns the text unchanged.
func Numify(item string, raise core.Flag, s *core.Settings) (any, error) {
	if n, err := strconv.Atoi(item); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(item, 64); err == nil {
		return f, nil
	}
	if s == nil {
		s = core.Defaults()
	}
	if raise.Resolve(s.RaiseErrors()) {
		return nil, notNumeric(item)
	}

	return item, nil
}

// Number parses text into any integer or float type. Fractional text
// coerced to an integer type truncates toward zero.
func Number[T constraints.Integer | constraints.Float](item string) (T, error) {
	var zero T
	f, err := strconv.ParseFloat(item, 64)
	if err != nil {
		return zero, notNumeric(item)
	}

	return T(f), nil
}

// Integerify converts a numeric or textual value to an int, truncating
// floats toward zero.
func Integerify(item any) (int, error) {
	switch v := item.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case float32:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, notNumeric(v)
		}

		return n, nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %T to int", core.ErrUnsupportedType, item)
	}
}

// Floatify converts a numeric or textual value to a float64.
func Floatify(item any) (float64, error) {
	switch v := item.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, notNumeric(v)
		}

		return f, nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %T to float", core.ErrUnsupportedType, item)
	}
}

func notNumeric(item string) error {
	return fmt.Errorf("%w: %q is not numeric", core.ErrConversionFailed, item)
}
