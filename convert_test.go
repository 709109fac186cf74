package foldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryConvertNonMap(t *testing.T) {
	for _, candidate := range []any{"not a map", 42, 3.14, true, nil, []string{"a"}, []any{1}} {
		m, ok := TryConvert(candidate)
		assert.False(t, ok, "candidate %#v", candidate)
		assert.Nil(t, m, "candidate %#v", candidate)
	}
}

func TestTryConvertRawMapInjectsInPlace(t *testing.T) {
	raw := map[string]any{"Foo": "bar"}

	m, ok := TryConvert(raw)
	require.True(t, ok)
	require.NotNil(t, m)

	v, ok := m.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)

	// The view shares raw's storage: the key was canonicalized in place.
	_, hasOriginal := raw["Foo"]
	_, hasCanonical := raw["foo"]
	assert.False(t, hasOriginal)
	assert.True(t, hasCanonical)
}

func TestTryConvertMapReturnsItself(t *testing.T) {
	m := New()
	got, ok := TryConvert(m)
	require.True(t, ok)
	assert.Same(t, m, got)
}

func TestTryConvertFoldedContainer(t *testing.T) {
	rec := &recordContainer{entries: map[string]any{"token": "abc"}}

	m, ok := TryConvert(rec)
	require.True(t, ok)

	v, ok := m.Get("TOKEN")
	require.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestTryConvertReflectedMapCopies(t *testing.T) {
	src := map[string]int{"Port": 5432}

	m, ok := TryConvert(src)
	require.True(t, ok)

	v, ok := m.Get("PORT")
	require.True(t, ok)
	assert.Equal(t, 5432, v)

	// Typed maps cannot share storage; the original stays untouched.
	_, stillThere := src["Port"]
	assert.True(t, stillThere)
}

func TestInjectIdempotent(t *testing.T) {
	raw := map[string]any{"K": "v"}

	first := Inject(raw)
	second := Inject(first)
	assert.Same(t, first, second)
}

func TestInjectNonStructuredValue(t *testing.T) {
	assert.Equal(t, "scalar", Inject("scalar"))
	assert.Nil(t, Inject(nil))
}

func TestInjectCopyLeavesOriginalKeys(t *testing.T) {
	raw := map[string]any{"Foo": "bar"}

	out := InjectCopy(raw)
	m, ok := out.(*Map)
	require.True(t, ok)

	v, ok := m.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)

	// The original's top-level keys are untouched.
	_, stillThere := raw["Foo"]
	assert.True(t, stillThere)
}

func TestInjectCopySlice(t *testing.T) {
	seq := []any{"a", "b"}

	out := InjectCopy(seq).([]any)
	out[0] = "changed"
	assert.Equal(t, "a", seq[0])
}

func TestInjectCopyMapClones(t *testing.T) {
	m := New()
	m.Set("a", 1)

	out := InjectCopy(m).(*Map)
	out.Set("b", 2)
	assert.False(t, m.Has("b"))
}

func TestCapable(t *testing.T) {
	assert.True(t, Capable(New()))
	assert.True(t, Capable(&recordContainer{}))
	assert.False(t, Capable(map[string]any{}))
	assert.False(t, Capable("text"))
	assert.False(t, Capable(nil))
}

func TestFrom(t *testing.T) {
	m := From(map[string]any{
		"Host":   "localhost",
		"Nested": map[string]any{"Port": 5432},
	})

	v, ok := m.Get("HOST")
	require.True(t, ok)
	assert.Equal(t, "localhost", v)

	nested, ok := m.Get("nested")
	require.True(t, ok)
	port, ok := nested.(*Map).Get("PORT")
	require.True(t, ok)
	assert.Equal(t, 5432, port)
}

func TestFromPairsOrder(t *testing.T) {
	m := FromPairs([]Pair{
		{Key: "B", Value: 2},
		{Key: "a", Value: 1},
		{Key: "B", Value: 3},
	})

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, _ := m.Get("b")
	assert.Equal(t, 3, v)
}

func TestOf(t *testing.T) {
	m := Of("Host", "localhost", "PORT", 5432)

	assert.Equal(t, []string{"host", "port"}, m.Keys())
	v, _ := m.Get("port")
	assert.Equal(t, 5432, v)
}

func TestOfPanics(t *testing.T) {
	assert.Panics(t, func() { Of("odd") })
	assert.Panics(t, func() { Of(1, "value") })
}

func TestRegisterConverter(t *testing.T) {
	type record struct{ fields map[string]any }

	RegisterConverter("test-record", func(v any) (*Map, bool) {
		r, ok := v.(record)
		if !ok {
			return nil, false
		}
		return From(r.fields), true
	})
	defer UnregisterConverter("test-record")

	m, ok := TryConvert(record{fields: map[string]any{"Key": "v"}})
	require.True(t, ok)

	v, ok := m.Get("KEY")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	// Unrecognized values still fall through to the built-in handling.
	_, ok = TryConvert("still not a map")
	assert.False(t, ok)
}

func TestUnregisterConverter(t *testing.T) {
	type record struct{}

	RegisterConverter("gone", func(v any) (*Map, bool) {
		_, ok := v.(record)
		if !ok {
			return nil, false
		}
		return New(), true
	})

	_, ok := TryConvert(record{})
	require.True(t, ok)

	UnregisterConverter("gone")
	_, ok = TryConvert(record{})
	assert.False(t, ok)

	// Unknown names are ignored.
	UnregisterConverter("never-registered")
}

func TestRegisterConverterReplaces(t *testing.T) {
	type record struct{}

	RegisterConverter("replaced", func(any) (*Map, bool) { return nil, false })
	RegisterConverter("replaced", func(v any) (*Map, bool) {
		if _, ok := v.(record); !ok {
			return nil, false
		}
		return Of("source", "second"), true
	})
	defer UnregisterConverter("replaced")

	m, ok := TryConvert(record{})
	require.True(t, ok)
	v, _ := m.Get("SOURCE")
	assert.Equal(t, "second", v)
}

func TestRegisterConverterNilIgnored(t *testing.T) {
	RegisterConverter("nil-fn", nil)
	UnregisterConverter("nil-fn")
}
