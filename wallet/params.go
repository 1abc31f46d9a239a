package wallet

import "reflect"

// Params is the parameter mapping for a single RPC call. An entry whose
// value is nil (an untyped nil or a typed nil pointer, slice or map) is
// treated as unset and dropped before serialization. Zero values that
// are actually set - 0, "", false, an empty non-nil slice - are kept and
// sent to the daemon.
type Params map[string]any

// filterParams builds the mapping that goes on the wire. Returns nil
// when nothing survives so the params key is omitted from the envelope.
func filterParams(p Params) Params {
	if len(p) == 0 {
		return nil
	}
	out := make(Params, len(p))
	for key, value := range p {
		if isUnset(value) {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// isUnset reports whether value marks an absent parameter. The check is
// deliberately not a truthiness test: explicitly-set falsy values must
// survive filtering.
func isUnset(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
