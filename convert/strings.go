package convert

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reshape/core"
)

// DefaultTimeLayout is the layout TimeString uses when none is given.
const DefaultTimeLayout = "2006-01-02_15-04"

// Options configures Stringify.
//
// Fields:
//   - Separator  — joins collection elements.
//   - TimeLayout — formats time.Time values; empty means
//     DefaultTimeLayout.
type Options struct {
	Separator  string
	TimeLayout string
}

// DefaultOptions returns ", " joining and the default time layout.
func DefaultOptions() Options {
	return Options{Separator: ", ", TimeLayout: DefaultTimeLayout}
}

// Stringify renders item as text: scalars are formatted, collections
// have their elements stringified and joined with the separator, set
// elements are joined in sorted order so output is deterministic, and
// nil becomes the empty string. Mappings have no text rendering and
// error, wrapping core.ErrUnsupportedType.
func Stringify(item any, opts *Options) (string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.TimeLayout == "" {
			o.TimeLayout = DefaultTimeLayout
		}
	}

	return stringify(item, o)
}

func stringify(item any, o Options) (string, error) {
	switch v := item.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case core.Path:
		return string(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case time.Time:
		return v.Format(o.TimeLayout), nil
	case []string:
		return strings.Join(v, o.Separator), nil
	case []any:
		return joinAny(v, o)
	case core.Tuple:
		return joinAny(v, o)
	case mapset.Set[string]:
		elems := v.ToSlice()
		slices.Sort(elems)

		return strings.Join(elems, o.Separator), nil
	default:
		return "", fmt.Errorf("%w: cannot stringify %T", core.ErrUnsupportedType, item)
	}
}

// joinAny stringifies each element and joins the results.
func joinAny(items []any, o Options) (string, error) {
	parts := make([]string, len(items))
	for i, e := range items {
		s, err := stringify(e, o)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	return strings.Join(parts, o.Separator), nil
}

// TimeString formats t with layout, falling back to DefaultTimeLayout
// when layout is empty.
func TimeString(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimeLayout
	}

	return t.Format(layout)
}
