package convert

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reshape/core"
)

// Structify parses a textual collection or scalar literal, such as
// "[1, 2]", "{a: 1, b: 2}", "3.5" or "true", into Go values: sequences
// become []any, mappings map[string]any, scalars their natural type.
// YAML is the literal grammar, so both flow-style and plain JSON-ish
// text parse.
func Structify(text string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConversionFailed, err)
	}

	return v, nil
}
