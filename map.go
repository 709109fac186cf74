package foldmap

import (
	"log/slog"
	"reflect"
	"slices"
)

// Folded is implemented by containers that guarantee canonical keys and
// already-injected values. Map.Update and Map.Replace take a fast path for
// sources reporting SupportsInsensitiveAccess, writing their entries through
// without re-processing the values.
//
// External container types (for example a schema-validated record store)
// implement Folded to interoperate with Map; see also RegisterConverter for
// making such types recognizable by TryConvert.
type Folded interface {
	// SupportsInsensitiveAccess reports whether the container's entries are
	// keyed canonically and its values have been through injection.
	SupportsInsensitiveAccess() bool

	// Range visits every entry until fn returns false. Containers that
	// preserve insertion order must visit entries in that order.
	Range(fn func(key string, value any) bool)
}

// Pair is a single key/value entry, used by pair-list construction.
type Pair struct {
	Key   string
	Value any
}

// Map is a key/value container whose lookups ignore letter case.
//
// Every stored key is held in canonical form, as produced by the map's
// Normalizer; no two entries can coexist whose spellings normalize to the
// same canonical key, and the later write wins. Insertion order is
// preserved: Keys, Values, and Range visit entries in the order their
// canonical keys first appeared, and re-assigning an existing entry keeps
// its position.
//
// Values are passed through recursive injection when stored, so plain
// nested structures come out supporting insensitive access themselves; see
// the package documentation for the exact rules.
//
// The zero value is ready to use with the default Fold normalizer. Map is
// not safe for concurrent use.
type Map struct {
	entries      map[string]any
	order        []string
	norm         Normalizer
	defaultValue any
	defaultFunc  func(m *Map, key string) any
}

var _ Folded = (*Map)(nil)

// New creates an empty Map with the given options.
func New(opts ...Option) *Map {
	m := &Map{
		entries: make(map[string]any),
		norm:    Fold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// normalizer returns the map's normalization policy, defaulting to Fold so
// the zero value works.
func (m *Map) normalizer() Normalizer {
	if m.norm == nil {
		return Fold
	}
	return m.norm
}

// storeSet writes value at canonical key ck, appending ck to the insertion
// order on first write.
func (m *Map) storeSet(ck string, value any) {
	if m.entries == nil {
		m.entries = make(map[string]any)
	}
	if _, ok := m.entries[ck]; !ok {
		m.order = append(m.order, ck)
	}
	m.entries[ck] = value
}

// storeDelete removes canonical key ck, reporting whether it was present.
func (m *Map) storeDelete(ck string) (any, bool) {
	v, ok := m.entries[ck]
	if !ok {
		return nil, false
	}
	delete(m.entries, ck)
	if i := slices.Index(m.order, ck); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return v, true
}

// Set stores value under the canonical form of key, overwriting any prior
// entry whose spelling normalizes the same way.
//
// The value is passed through recursive injection first, so storing a plain
// map[string]any or []any retrofits insensitive access onto it (and onto
// everything map-like reachable through it) in place. Set returns the stored
// value: the same reference that was passed in, except that a plain
// map[string]any comes back as the *Map now wrapping it.
func (m *Map) Set(key string, value any) any {
	v := m.inject(value)
	m.storeSet(m.normalizer().Normalize(key), v)
	return v
}

// Get retrieves the value stored under any spelling of key.
// The second result is false if no entry matches.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.entries[m.normalizer().Normalize(key)]
	return v, ok
}

// Fetch retrieves the value stored under any spelling of key. On a miss it
// returns a *KeyError wrapping ErrKeyNotFound; the error carries the key
// exactly as requested, before normalization.
//
// Use FetchDefault or FetchFunc when a miss should produce a fallback
// instead of an error.
func (m *Map) Fetch(key string) (any, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}
	return nil, newKeyNotFound("Map.Fetch", key)
}

// FetchDefault retrieves the value stored under any spelling of key,
// returning def if no entry matches.
func (m *Map) FetchDefault(key string, def any) any {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// FetchFunc retrieves the value stored under any spelling of key. On a miss
// it invokes onMissing with the key exactly as requested, before
// normalization, and returns its result.
func (m *Map) FetchFunc(key string, onMissing func(key string) any) any {
	if v, ok := m.Get(key); ok {
		return v
	}
	return onMissing(key)
}

// Delete removes the entry stored under any spelling of key and returns the
// removed value. The second result is false, never an error, if nothing
// matched.
func (m *Map) Delete(key string) (any, bool) {
	return m.storeDelete(m.normalizer().Normalize(key))
}

// Has reports whether any spelling of key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.entries[m.normalizer().Normalize(key)]
	return ok
}

// Include is an alias for Has.
func (m *Map) Include(key string) bool { return m.Has(key) }

// Member is an alias for Has.
func (m *Map) Member(key string) bool { return m.Has(key) }

// HasKey is an alias for Has.
func (m *Map) HasKey(key string) bool { return m.Has(key) }

// ValuesAt performs a bulk lookup, returning one result per requested key in
// request order. Absent keys yield nil; duplicate requested keys are
// resolved independently.
func (m *Map) ValuesAt(keys ...string) []any {
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i], _ = m.Get(k)
	}
	return out
}

// DefaultFor resolves key through the container's fallback mechanism: if any
// spelling of key is present its value is returned, otherwise the fallback
// generator bound via WithDefaultFunc runs, otherwise the static value set
// via WithDefault (nil when neither is configured) is returned.
func (m *Map) DefaultFor(key string) any {
	if v, ok := m.Get(key); ok {
		return v
	}
	if m.defaultFunc != nil {
		return m.defaultFunc(m, key)
	}
	return m.defaultValue
}

// Update merges other into m and returns m.
//
// Capable sources (a *Map or any Folded container) take a fast path: their
// values went through injection when first stored, so they are written
// through without re-processing. Keys are still re-normalized, which is a
// no-op when both sides share a policy and keeps the merge correct when they
// do not.
//
// A raw map[string]any, or any other string-keyed map via reflection, goes
// through Set pair by pair, normalizing and injecting every entry. Sources
// that are not map-like leave m unchanged. Pairs apply in the source's
// iteration order: insertion order for capable sources, unspecified for raw
// Go maps.
func (m *Map) Update(other any) *Map {
	norm := m.normalizer()
	if Capable(other) {
		forEachPair(other, func(k string, v any) {
			m.storeSet(norm.Normalize(k), v)
		})
		return m
	}
	forEachPair(other, func(k string, v any) {
		m.Set(k, v)
	})
	return m
}

// Replace makes m's entries exactly those of other: every currently-stored
// key whose canonical form is absent from other's key set is deleted first,
// then every pair of other is merged as in Update. Returns m for chaining.
func (m *Map) Replace(other any) *Map {
	norm := m.normalizer()
	keep := make(map[string]struct{})
	forEachPair(other, func(k string, _ any) {
		keep[norm.Normalize(k)] = struct{}{}
	})
	for _, ck := range slices.Clone(m.order) {
		if _, ok := keep[ck]; !ok {
			m.storeDelete(ck)
		}
	}
	return m.Update(other)
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Keys returns the canonical keys in insertion order.
func (m *Map) Keys() []string { return slices.Clone(m.order) }

// Values returns the values in insertion order.
func (m *Map) Values() []any {
	out := make([]any, 0, len(m.order))
	for _, ck := range m.order {
		out = append(out, m.entries[ck])
	}
	return out
}

// Range visits entries in insertion order until fn returns false.
// fn may delete the entry it is visiting; other mutations during iteration
// have unspecified effect.
func (m *Map) Range(fn func(key string, value any) bool) {
	for _, ck := range slices.Clone(m.order) {
		v, ok := m.entries[ck]
		if !ok {
			continue
		}
		if !fn(ck, v) {
			return
		}
	}
}

// Clear removes every entry. The normalizer and default mechanism are kept.
func (m *Map) Clear() {
	m.entries = make(map[string]any)
	m.order = m.order[:0]
}

// Clone returns a shallow copy: the store is duplicated but values are
// shared with the original. The normalizer and default mechanism carry over.
func (m *Map) Clone() *Map {
	c := &Map{
		entries:      make(map[string]any, len(m.entries)),
		order:        slices.Clone(m.order),
		norm:         m.norm,
		defaultValue: m.defaultValue,
		defaultFunc:  m.defaultFunc,
	}
	for k, v := range m.entries {
		c.entries[k] = v
	}
	return c
}

// Raw returns the backing store. For a map created by injecting a raw
// map[string]any this is that same map. Writing to it directly bypasses
// normalization, injection, and the insertion-order index.
func (m *Map) Raw() map[string]any { return m.entries }

// ToMap returns a detached shallow copy of the entries, keyed canonically.
// Mutating the result does not affect m.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// SupportsInsensitiveAccess reports that m participates in insensitive
// access. It is always true for a *Map and is part of the Folded interface
// checked by Update's fast path and by injection's skip-if-capable rule.
func (m *Map) SupportsInsensitiveAccess() bool { return true }

// LogValue implements slog.LogValuer, summarizing the container without
// dumping its values.
func (m *Map) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", m.Len()),
		slog.Any("keys", m.Keys()),
	)
}

// forEachPair visits every entry of a map-like value in its iteration order.
// Values that are not map-like are visited zero times.
func forEachPair(v any, fn func(key string, value any)) {
	switch src := v.(type) {
	case *Map:
		for _, ck := range slices.Clone(src.order) {
			fn(ck, src.entries[ck])
		}
	case Folded:
		src.Range(func(k string, val any) bool {
			fn(k, val)
			return true
		})
	case map[string]any:
		for k, val := range src {
			fn(k, val)
		}
	default:
		for _, p := range reflectPairs(v) {
			fn(p.Key, p.Value)
		}
	}
}

// reflectPairs extracts the entries of any string-keyed map value.
// It returns nil for anything that is not such a map.
func reflectPairs(v any) []Pair {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	pairs := make([]Pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, Pair{Key: iter.Key().String(), Value: iter.Value().Interface()})
	}
	return pairs
}
