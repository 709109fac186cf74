package foldmap

// Option configures a Map at construction time.
type Option func(*Map)

// WithNormalizer sets the key normalization policy.
// If not provided, Fold (plain lowercasing) is used. A nil normalizer is
// ignored.
func WithNormalizer(n Normalizer) Option {
	return func(m *Map) {
		if n != nil {
			m.norm = n
		}
	}
}

// WithDefault sets a static fallback value returned by DefaultFor when the
// requested key is absent. It clears any previously configured fallback
// generator.
func WithDefault(value any) Option {
	return func(m *Map) {
		m.defaultValue = value
		m.defaultFunc = nil
	}
}

// WithDefaultFunc binds a fallback generator invoked by DefaultFor when the
// requested key is absent. The generator receives the map itself and the
// requested key, and takes precedence over a static default value.
func WithDefaultFunc(fn func(m *Map, key string) any) Option {
	return func(m *Map) {
		m.defaultFunc = fn
	}
}

// WithCapacity pre-sizes the store for an expected number of entries.
// It has no effect on a map that already holds entries.
func WithCapacity(n int) Option {
	return func(m *Map) {
		if n > 0 && len(m.entries) == 0 {
			m.entries = make(map[string]any, n)
			m.order = make([]string, 0, n)
		}
	}
}
