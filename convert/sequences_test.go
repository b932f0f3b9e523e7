package convert_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reshape/convert"
	"github.com/katalvlaran/reshape/core"
)

// TestSlicify verifies the total wrap-or-convert behavior across kinds.
func TestSlicify(t *testing.T) {
	assert.Equal(t, []any{}, convert.Slicify(nil))
	assert.Equal(t, []any{1, 2}, convert.Slicify([]any{1, 2}))
	assert.Equal(t, []any{"a", "b"}, convert.Slicify([]string{"a", "b"}))
	assert.Equal(t, []any{1, "x"}, convert.Slicify(core.Tuple{1, "x"}))
	assert.Equal(t, []any{"a", "b"}, convert.Slicify(mapset.NewThreadUnsafeSet("b", "a")))
	assert.Equal(t, []any{"k1", "k2"}, convert.Slicify(map[string]any{"k2": 2, "k1": 1}))
	assert.Equal(t, []any{"solo"}, convert.Slicify("solo"), "text wraps as a single element")
	assert.Equal(t, []any{42}, convert.Slicify(42))
}

// TestTuplify verifies tuples pass through and everything else routes
// through Slicify.
func TestTuplify(t *testing.T) {
	in := core.Tuple{1, 2}
	assert.Equal(t, in, convert.Tuplify(in))
	assert.Equal(t, core.Tuple{}, convert.Tuplify(nil))
	assert.Equal(t, core.Tuple{"a"}, convert.Tuplify("a"))
	assert.Equal(t, core.Tuple{"x", "y"}, convert.Tuplify([]string{"x", "y"}))
}

// TestSetify verifies conversion into a set and the text-only element
// constraint for untyped sequences.
func TestSetify(t *testing.T) {
	got, err := convert.Setify([]string{"a", "b", "a"})
	require.NoError(t, err)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet("a", "b")))

	got, err = convert.Setify("solo")
	require.NoError(t, err)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet("solo")))

	got, err = convert.Setify(map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet("k")))

	got, err = convert.Setify(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cardinality())

	_, err = convert.Setify([]any{"a", 1})
	assert.ErrorIs(t, err, core.ErrConversionFailed)

	_, err = convert.Setify(42)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
}

// TestPathify verifies the text and pass-through routes.
func TestPathify(t *testing.T) {
	got, err := convert.Pathify("/var/log")
	require.NoError(t, err)
	assert.Equal(t, core.Path("/var/log"), got)

	got, err = convert.Pathify(core.Path("rel/dir"))
	require.NoError(t, err)
	assert.Equal(t, core.Path("rel/dir"), got)

	_, err = convert.Pathify(42)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
}
