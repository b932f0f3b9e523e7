package convert

import (
	"fmt"

	"github.com/katalvlaran/reshape/core"
)

// Pathify converts text into a core.Path; a Path passes through
// untouched. No normalization is applied; the textual value is kept
// verbatim.
func Pathify(item any) (core.Path, error) {
	switch v := item.(type) {
	case core.Path:
		return v, nil
	case string:
		return core.Path(v), nil
	default:
		return "", fmt.Errorf("%w: cannot convert %T to a path", core.ErrUnsupportedType, item)
	}
}
