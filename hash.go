package circstack

import (
	"encoding/gob"
	"fmt"
	"hash/maphash"
	"reflect"
)

// Hasher is implemented by payloads that provide their own hash.
type Hasher interface {
	Hash(seed maphash.Seed) uint64
}

func hashValue[V any](seed maphash.Seed, v V) uint64 {
	if hv, ok := any(v).(Hasher); ok {
		return hv.Hash(seed)
	}

	var h maphash.Hash
	h.SetSeed(seed)

	x := canonical(v)

	enc := gob.NewEncoder(&h)
	if err := enc.Encode(x); err != nil {
		// Types gob cannot encode fall back to their Go syntax representation.
		h.Reset()
		fmt.Fprintf(&h, "%#v", x)
	}

	return h.Sum64()
}

// canonical maps values that compare equal with == but encode differently
// to a single representation. Negative zero becomes positive zero.
func canonical(v any) any {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if rv.Float() == 0 {
			return reflect.Zero(rv.Type()).Interface()
		}
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		re, im := real(c), imag(c)
		if re == 0 || im == 0 {
			if re == 0 {
				re = 0
			}
			if im == 0 {
				im = 0
			}
			n := reflect.New(rv.Type()).Elem()
			n.SetComplex(complex(re, im))
			return n.Interface()
		}
	}

	return v
}

// chainHash mixes b into a. The result depends on the order of arguments.
func chainHash(a, b uint64) uint64 {
	return a*31 + b
}
