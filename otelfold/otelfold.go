package otelfold

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/zero-day-ai/foldmap"
)

// scopeName identifies this instrumentation scope to the meter provider.
const scopeName = "github.com/zero-day-ai/foldmap/otelfold"

// Map wraps a foldmap.Map, recording OpenTelemetry metrics around its
// operations. All container semantics (normalization, injection, fast-path
// merging) are those of the wrapped map; Unwrap exposes it for operations
// not covered here.
type Map struct {
	inner *foldmap.Map

	// lookups counts Get/Fetch/Has calls, partitioned by hit or miss.
	lookups metric.Int64Counter

	// mutations counts Set/Delete/Update/Replace calls, partitioned by op.
	mutations metric.Int64Counter

	hitOpt  metric.MeasurementOption
	missOpt metric.MeasurementOption
	attrs   []attribute.KeyValue
}

// Wrap instruments m, creating the metric instruments once up front.
// The global meter provider is used unless WithMeterProvider overrides it.
func Wrap(m *foldmap.Map, opts ...Option) (*Map, error) {
	cfg := &config{
		provider: otel.GetMeterProvider(),
		name:     "foldmap",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	meter := cfg.provider.Meter(scopeName)

	w := &Map{
		inner: m,
		attrs: []attribute.KeyValue{attribute.String("container", cfg.name)},
	}

	var err error
	w.lookups, err = meter.Int64Counter(
		"foldmap.lookups",
		metric.WithDescription("Number of key lookups, partitioned by hit or miss"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create lookups counter: %w", err)
	}

	w.mutations, err = meter.Int64Counter(
		"foldmap.mutations",
		metric.WithDescription("Number of mutating operations, partitioned by operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create mutations counter: %w", err)
	}

	w.hitOpt = w.measurement(attribute.String("result", "hit"))
	w.missOpt = w.measurement(attribute.String("result", "miss"))
	return w, nil
}

func (w *Map) measurement(extra ...attribute.KeyValue) metric.MeasurementOption {
	attrs := make([]attribute.KeyValue, 0, len(w.attrs)+len(extra))
	attrs = append(attrs, w.attrs...)
	attrs = append(attrs, extra...)
	return metric.WithAttributes(attrs...)
}

func (w *Map) recordLookup(ctx context.Context, hit bool) {
	opt := w.missOpt
	if hit {
		opt = w.hitOpt
	}
	w.lookups.Add(ctx, 1, opt)
}

func (w *Map) recordMutation(ctx context.Context, op string) {
	w.mutations.Add(ctx, 1, w.measurement(attribute.String("op", op)))
}

// Unwrap returns the underlying container.
func (w *Map) Unwrap() *foldmap.Map { return w.inner }

// Set stores value under the canonical form of key.
func (w *Map) Set(ctx context.Context, key string, value any) any {
	v := w.inner.Set(key, value)
	w.recordMutation(ctx, "set")
	return v
}

// Get retrieves the value stored under any spelling of key.
func (w *Map) Get(ctx context.Context, key string) (any, bool) {
	v, ok := w.inner.Get(key)
	w.recordLookup(ctx, ok)
	return v, ok
}

// Fetch retrieves the value stored under any spelling of key, returning an
// error carrying the originally requested key on a miss.
func (w *Map) Fetch(ctx context.Context, key string) (any, error) {
	v, err := w.inner.Fetch(key)
	w.recordLookup(ctx, err == nil)
	return v, err
}

// Has reports whether any spelling of key is present.
func (w *Map) Has(ctx context.Context, key string) bool {
	ok := w.inner.Has(key)
	w.recordLookup(ctx, ok)
	return ok
}

// Delete removes the entry stored under any spelling of key.
func (w *Map) Delete(ctx context.Context, key string) (any, bool) {
	v, ok := w.inner.Delete(key)
	w.recordMutation(ctx, "delete")
	return v, ok
}

// Update merges other into the wrapped map.
func (w *Map) Update(ctx context.Context, other any) *Map {
	w.inner.Update(other)
	w.recordMutation(ctx, "update")
	return w
}

// Replace makes the wrapped map's entries exactly those of other.
func (w *Map) Replace(ctx context.Context, other any) *Map {
	w.inner.Replace(other)
	w.recordMutation(ctx, "replace")
	return w
}

// Len returns the number of entries in the wrapped map.
func (w *Map) Len() int { return w.inner.Len() }
