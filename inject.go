package foldmap

import "reflect"

// inject prepares value for storage, retrofitting insensitive access onto
// plain nested structures in place. See injectPass.process for the rules.
func (m *Map) inject(value any) any {
	p := &injectPass{owner: m}
	return p.process(value)
}

// injectPass tracks structures already handled during one injection so that
// aliased and self-referential values terminate and keep a single wrapper.
// The memo lives only for the pass; wrapping the same raw map in a later
// pass produces a new wrapper over the same shared storage.
type injectPass struct {
	owner *Map
	maps  map[uintptr]*Map
	seqs  map[uintptr]bool
}

// process applies the injection rules to a single value:
//
//   - A plain map[string]any is wrapped in place (no copy) and its entries
//     are normalized and processed recursively.
//   - A []any has its elements replaced, in place, with their processed
//     forms; the slice itself is returned unchanged.
//   - Everything else, including values that already support insensitive
//     access, is returned untouched with its identity preserved exactly.
func (p *injectPass) process(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case *Map:
		return v
	case map[string]any:
		return p.wrap(v)
	case []any:
		return p.walkSeq(v)
	default:
		// Scalars, strings, opaque values, and foreign capable containers.
		return value
	}
}

// wrap retrofits insensitive access onto raw, sharing its backing storage.
// Keys are rewritten to canonical form in place and every value is processed
// recursively, so any other holder of raw observes the canonicalized
// content. When two original spellings collide on one canonical key, the
// survivor follows Go's unspecified map iteration order.
func (p *injectPass) wrap(raw map[string]any) *Map {
	ptr := reflect.ValueOf(raw).Pointer()
	if p.maps == nil {
		p.maps = make(map[uintptr]*Map)
	}
	if w, ok := p.maps[ptr]; ok {
		return w
	}

	w := &Map{entries: raw, norm: p.owner.normalizer()}
	// Memoize before recursing so a self-referential map resolves to its
	// own wrapper instead of recursing forever.
	p.maps[ptr] = w

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			// Displaced by an earlier canonical rewrite.
			continue
		}
		pv := p.process(v)
		ck := w.norm.Normalize(k)
		if ck != k {
			delete(raw, k)
		}
		raw[ck] = pv
		if !seen[ck] {
			seen[ck] = true
			w.order = append(w.order, ck)
		}
	}
	return w
}

// walkSeq rewrites the elements of seq in place and returns the same slice.
func (p *injectPass) walkSeq(seq []any) []any {
	if seq == nil {
		return seq
	}
	ptr := reflect.ValueOf(seq).Pointer()
	if p.seqs == nil {
		p.seqs = make(map[uintptr]bool)
	}
	if p.seqs[ptr] {
		return seq
	}
	p.seqs[ptr] = true
	for i := range seq {
		seq[i] = p.process(seq[i])
	}
	return seq
}
