package foldmap

import (
	"fmt"
	"slices"
	"sync"
)

// Capable reports whether v supports insensitive access: true for a *Map,
// for any Folded container reporting SupportsInsensitiveAccess, and false
// for an untouched plain map or any other value.
func Capable(v any) bool {
	f, ok := v.(Folded)
	return ok && f.SupportsInsensitiveAccess()
}

// Inject retrofits insensitive access onto value in place and returns it.
//
// A plain map[string]any comes back as a *Map sharing its backing storage; a
// []any comes back as the same slice with its elements processed. Inject is
// idempotent: a value that already supports insensitive access is returned
// as is, without re-processing its entries. Anything else is returned
// unchanged.
func Inject(value any, opts ...Option) any {
	if Capable(value) {
		return value
	}
	return New(opts...).inject(value)
}

// InjectCopy duplicates value shallowly and injects the duplicate, leaving
// the original's own keys and elements untouched. Nested values are shared
// with the original and are still injected in place; only the top-level
// structure is detached. A *Map is cloned.
func InjectCopy(value any, opts ...Option) any {
	switch v := value.(type) {
	case *Map:
		return v.Clone()
	case map[string]any:
		dup := make(map[string]any, len(v))
		for k, val := range v {
			dup[k] = val
		}
		return Inject(dup, opts...)
	case []any:
		return Inject(slices.Clone(v), opts...)
	default:
		return Inject(value, opts...)
	}
}

// TryConvert returns a capable view of candidate. It never panics; the
// second result is false when candidate is not map-like.
//
// Resolution order: a *Map is returned as is; registered converters run
// next; a raw map[string]any is injected in place; another Folded container
// is materialized into a new Map through the fast path; any other
// string-keyed map is copied into a new Map entry by entry. Everything else
// is not convertible.
func TryConvert(candidate any, opts ...Option) (*Map, bool) {
	if m, ok := candidate.(*Map); ok {
		return m, true
	}
	if m, ok := runConverters(candidate); ok {
		return m, true
	}
	switch v := candidate.(type) {
	case map[string]any:
		return Inject(v, opts...).(*Map), true
	case Folded:
		return New(opts...).Update(v), true
	}
	if pairs := reflectPairs(candidate); pairs != nil {
		m := New(append([]Option{WithCapacity(len(pairs))}, opts...)...)
		for _, p := range pairs {
			m.Set(p.Key, p.Value)
		}
		return m, true
	}
	return nil, false
}

// From builds a Map from the entries of src. Every entry is normalized and
// injected, so nested plain structures inside src acquire insensitive
// access in place; src's own top-level keys are left untouched.
func From(src map[string]any, opts ...Option) *Map {
	m := New(append([]Option{WithCapacity(len(src))}, opts...)...)
	for k, v := range src {
		m.Set(k, v)
	}
	return m
}

// FromPairs builds a Map from a pair list, applying the pairs in order.
func FromPairs(pairs []Pair, opts ...Option) *Map {
	m := New(append([]Option{WithCapacity(len(pairs))}, opts...)...)
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Of builds a Map from alternating key/value arguments:
//
//	m := foldmap.Of("Host", "localhost", "Port", 5432)
//
// Of panics if the argument count is odd or a key is not a string; both are
// programmer errors, not runtime conditions.
func Of(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("foldmap: Of requires an even number of arguments")
	}
	m := New(WithCapacity(len(kv) / 2))
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("foldmap: Of key at argument %d is %T, want string", i, kv[i]))
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// ConverterFunc attempts to build a capable Map from an external container
// type. It returns false when it does not recognize v; it must not panic.
type ConverterFunc func(v any) (*Map, bool)

// The converter registry lets external container types (for example a
// schema-validated record store) plug into TryConvert with an explicit
// registration call. Converters run in registration order.
var (
	convMu    sync.RWMutex
	convFns   = make(map[string]ConverterFunc)
	convOrder []string
)

// RegisterConverter registers fn under name. TryConvert consults registered
// converters, in registration order, before its built-in map handling.
// Registering an existing name replaces the function but keeps its position.
// A nil fn is ignored.
func RegisterConverter(name string, fn ConverterFunc) {
	if fn == nil {
		return
	}
	convMu.Lock()
	defer convMu.Unlock()
	if _, ok := convFns[name]; !ok {
		convOrder = append(convOrder, name)
	}
	convFns[name] = fn
}

// UnregisterConverter removes the converter registered under name.
// Unknown names are ignored.
func UnregisterConverter(name string) {
	convMu.Lock()
	defer convMu.Unlock()
	if _, ok := convFns[name]; !ok {
		return
	}
	delete(convFns, name)
	if i := slices.Index(convOrder, name); i >= 0 {
		convOrder = slices.Delete(convOrder, i, i+1)
	}
}

func runConverters(v any) (*Map, bool) {
	convMu.RLock()
	defer convMu.RUnlock()
	for _, name := range convOrder {
		if m, ok := convFns[name](v); ok {
			return m, true
		}
	}
	return nil, false
}
