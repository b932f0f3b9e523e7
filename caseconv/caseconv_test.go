package caseconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reshape/caseconv"
	"github.com/katalvlaran/reshape/core"
)

// TestToCapital verifies snake_case to CapitalCase conversion.
func TestToCapital(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello_world", "HelloWorld"},
		{"already", "Already"},
		{"a_b_c", "ABC"},
		{"", ""},
		{"trailing_", "Trailing"},
		{"double__under", "DoubleUnder"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, caseconv.ToCapital(tc.in), "ToCapital(%q)", tc.in)
	}
}

// TestToSnake verifies CapitalCase and camelCase to snake_case
// conversion, including acronym runs and digits.
func TestToSnake(t *testing.T) {
	cases := []struct{ in, want string }{
		{"HelloWorld", "hello_world"},
		{"helloWorld", "hello_world"},
		{"HTTPServer", "http_server"},
		{"already_snake", "already_snake"},
		{"Vec2Point", "vec2_point"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, caseconv.ToSnake(tc.in), "ToSnake(%q)", tc.in)
	}
}

// TestRoundTrip verifies ToSnake inverts ToCapital for simple
// single-letter-boundary words.
func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"alpha_beta", "one_two_three", "word"} {
		assert.Equal(t, s, caseconv.ToSnake(caseconv.ToCapital(s)))
	}
}

// TestCapitalify_Containers verifies the kind dispatch and recursion.
func TestCapitalify_Containers(t *testing.T) {
	got, err := caseconv.Capitalify([]string{"foo_bar", "baz"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"FooBar", "Baz"}, got)

	got, err = caseconv.Snakify(map[string]any{"FooBar": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"foo_bar": 1}, got)

	got, err = caseconv.Snakify([]any{"TopLevel", []any{"NestedName"}}, &caseconv.Options{
		Recursive: core.FlagOn,
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"top_level", []any{"nested_name"}}, got)
}

// TestCapitalify_UnsupportedType verifies the shared raise-or-degrade
// policy applies here too.
func TestCapitalify_UnsupportedType(t *testing.T) {
	_, err := caseconv.Capitalify(42, &caseconv.Options{RaiseErrors: core.FlagOn})
	assert.ErrorIs(t, err, core.ErrUnsupportedType)

	s := core.NewSettings()
	s.SetRaiseErrors(false)
	got, err := caseconv.Capitalify(42, &caseconv.Options{Settings: s})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
