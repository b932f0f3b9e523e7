package core_test

import (
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reshape/core"
)

func upper(s string) string { return strings.ToUpper(s) }

// TestApply_FlatKinds verifies one-level rewriting for every container
// kind, including concrete-type preservation.
func TestApply_FlatKinds(t *testing.T) {
	got, err := core.Apply("ab", upper, false)
	require.NoError(t, err)
	assert.Equal(t, "AB", got)

	got, err = core.Apply([]string{"a", "b"}, upper, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)

	got, err = core.Apply([]any{"a", "b"}, upper, false)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, got)

	got, err = core.Apply(core.Tuple{"a", "b"}, upper, false)
	require.NoError(t, err)
	assert.IsType(t, core.Tuple{}, got, "tuple input must rebuild a tuple")
	assert.Equal(t, core.Tuple{"A", "B"}, got)

	got, err = core.Apply(map[string]any{"a": 1}, upper, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"A": 1}, got)

	got, err = core.Apply(mapset.NewThreadUnsafeSet("a", "b"), upper, false)
	require.NoError(t, err)
	assert.True(t, got.(mapset.Set[string]).Equal(mapset.NewThreadUnsafeSet("A", "B")))
}

// TestApply_NonRecursiveRejectsNestedElements verifies that without
// recursion a non-text element is an unsupported-type failure.
func TestApply_NonRecursiveRejectsNestedElements(t *testing.T) {
	_, err := core.Apply([]any{"a", []any{"b"}}, upper, false)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
}

// TestApply_RecursiveDescends verifies full descent through nested
// containers down to text leaves.
func TestApply_RecursiveDescends(t *testing.T) {
	in := []any{"a", []any{"b", core.Tuple{"c"}}, map[string]any{"k": 1}}

	got, err := core.Apply(in, upper, true)
	require.NoError(t, err)
	assert.Equal(t,
		[]any{"A", []any{"B", core.Tuple{"C"}}, map[string]any{"K": 1}},
		got)
}

// TestApply_RecursiveNonTextLeaf verifies that recursion still fails on
// a leaf that is neither text nor a container.
func TestApply_RecursiveNonTextLeaf(t *testing.T) {
	_, err := core.Apply([]any{"a", 7}, upper, true)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
}

// TestApplyValues_Mappings verifies value-side rewriting, leaving keys
// untouched, with recursion into nested values.
func TestApplyValues_Mappings(t *testing.T) {
	got, err := core.ApplyValues(map[string]string{"k": "v"}, upper, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "V"}, got)

	got, err = core.ApplyValues(map[string]any{"k": []any{"v"}}, upper, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": []any{"V"}}, got)

	_, err = core.ApplyValues([]string{"not a map"}, upper, false)
	assert.ErrorIs(t, err, core.ErrUnsupportedType)
}

// TestApply_InputNotMutated verifies that rewriting builds fresh
// containers instead of editing the input in place.
func TestApply_InputNotMutated(t *testing.T) {
	in := []string{"a", "b"}
	_, err := core.Apply(in, upper, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, in)
}
