// Package foldmap provides a case-insensitive key/value container.
//
// A Map behaves like an ordinary string-keyed associative store except that
// key spellings differing only by letter case address the same entry. Every
// key passes through a Normalizer before touching the store, so "Token",
// "TOKEN", and "token" all resolve to one canonical entry. The original
// spelling is not retained.
//
// # Core Concepts
//
// The package is organized around four pieces:
//
//   - Normalizer: the policy turning a key into its canonical form. The
//     default lowercases; Unicode-aware and accent-stripping variants are
//     provided and any policy can be substituted via WithNormalizer.
//   - Map: the container, with the full insensitive operation set (Set, Get,
//     Fetch with defaults, Delete, membership under four names, ordered bulk
//     lookup, merge, destructive replace, fallback resolution).
//   - Injection: when a value is stored, plain nested structures reachable
//     through it (map[string]any directly or via []any elements) are
//     retrofitted in place so they exhibit the same insensitive access.
//   - Conversion: Inject, InjectCopy, and TryConvert turn existing plain
//     structures into capable ones; TryConvert never panics and signals
//     non-convertible input with a false result instead.
//
// # Injection
//
// Injection augments, it does not copy. A stored map[string]any keeps its
// backing storage: its keys are rewritten to canonical form in place and each
// nested value is processed recursively, so any other holder of the same map
// observes the canonicalized content. Slices have their elements replaced in
// place and the slice itself is returned unchanged. Scalars, strings, opaque
// values, and containers that already support insensitive access pass through
// with their identity preserved exactly. Self-referential and aliased
// structures are handled: within one injection pass each backing map gets a
// single wrapper, so recursion terminates and aliases stay aliased.
//
// # Interop
//
// Containers outside this package participate by implementing the Folded
// interface. Map.Update takes a fast path for any source reporting
// SupportsInsensitiveAccess, writing its entries through without
// re-processing them. External container types can also register a
// ConverterFunc so TryConvert recognizes them.
//
// # Construction
//
//	m := foldmap.New()
//	m.Set("Content-Type", "application/json")
//
//	cfg := foldmap.From(map[string]any{
//		"Database": map[string]any{"Host": "localhost"},
//	})
//	db, _ := cfg.Get("DATABASE")
//
// Maps marshal to and from JSON and YAML; decoding a document yields a
// capable map with canonical keys, and encoding emits entries in insertion
// order.
//
// # Concurrency
//
// Map is not safe for concurrent use. Every operation runs synchronously on
// the caller's goroutine, compound operations (Update, Replace, recursive
// injection) touch multiple entries without any atomicity guarantee, and
// callers sharing a Map across goroutines must serialize access themselves.
package foldmap
