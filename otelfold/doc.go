// Package otelfold instruments a foldmap.Map with OpenTelemetry metrics.
//
// Wrap returns a Map that delegates every operation to the underlying
// container while recording lookup and mutation counters:
//
//   - foldmap.lookups: one increment per Get/Fetch/Has, partitioned by a
//     "result" attribute of "hit" or "miss".
//   - foldmap.mutations: one increment per Set/Delete/Update/Replace,
//     partitioned by an "op" attribute.
//
// Instruments are created once during Wrap and reused for every operation.
//
//	reader := sdkmetric.NewManualReader()
//	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//
//	session, err := otelfold.Wrap(foldmap.New(),
//		otelfold.WithMeterProvider(provider),
//		otelfold.WithName("session"),
//	)
//	if err != nil {
//		return err
//	}
//	session.Set(ctx, "Token", token)
//
// The wrapper adds no locking; it is exactly as concurrency-unsafe as the
// container it wraps.
package otelfold
