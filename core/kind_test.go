package core_test

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reshape/core"
)

// TestKindOf_BuiltinKinds verifies inference for every built-in kind.
func TestKindOf_BuiltinKinds(t *testing.T) {
	cases := []struct {
		name   string
		sample any
		want   core.Kind
	}{
		{"text", "hello", core.KindText},
		{"mapping_any", map[string]any{"a": 1}, core.KindMapping},
		{"mapping_string", map[string]string{"a": "b"}, core.KindMapping},
		{"sequence_any", []any{1, 2}, core.KindSequence},
		{"sequence_string", []string{"a"}, core.KindSequence},
		{"float", 3.14, core.KindFloat},
		{"int", 42, core.KindInt},
		{"path", core.Path("/tmp"), core.KindPath},
		{"tuple", core.Tuple{1, "a"}, core.KindTuple},
		{"set", mapset.NewThreadUnsafeSet("a"), core.KindSet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := core.KindOf(tc.sample)
			require.True(t, ok, "sample must resolve to a kind")
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestKindOf_Unregistered verifies that a value outside the closed set
// resolves to no kind.
func TestKindOf_Unregistered(t *testing.T) {
	_, ok := core.KindOf(struct{}{})
	assert.False(t, ok, "anonymous struct must not resolve")

	_, ok = core.KindOf(make(chan int))
	assert.False(t, ok, "channel must not resolve")
}

// TestKindOf_ResolutionOrder pins the registration-order dependence of
// inference: named variants (Path, Tuple) must not collapse into their
// underlying text/sequence kinds, and earlier entries win.
func TestKindOf_ResolutionOrder(t *testing.T) {
	// Path is a named string type; text is registered first but must not
	// capture it, because the text matcher uses exact type identity.
	k, ok := core.KindOf(core.Path("x"))
	require.True(t, ok)
	assert.Equal(t, core.KindPath, k, "Path must not resolve as text")

	// Tuple is a named []any; the sequence matcher is registered earlier
	// but must not capture it.
	k, ok = core.KindOf(core.Tuple{1})
	require.True(t, ok)
	assert.Equal(t, core.KindTuple, k, "Tuple must not resolve as sequence")
}

// TestRegister_ExtendsInference verifies that a registered kind becomes
// inferable and carries its default value, and that registration never
// shadows a built-in matcher.
func TestRegister_ExtendsInference(t *testing.T) {
	type token struct{ v string }

	core.Register("token", func(v any) bool {
		_, ok := v.(token)

		return ok
	}, token{v: "default"})

	k, ok := core.KindOf(token{v: "x"})
	require.True(t, ok)
	assert.Equal(t, core.Kind("token"), k)

	def, ok := core.Defaults().Default("token")
	require.True(t, ok)
	assert.Equal(t, token{v: "default"}, def)

	// A later matcher for an already-covered type must not shadow the
	// earlier entry.
	core.Register("text2", func(v any) bool {
		_, ok := v.(string)

		return ok
	}, "")
	k, ok = core.KindOf("still text")
	require.True(t, ok)
	assert.Equal(t, core.KindText, k, "built-in text entry must still win")
}
