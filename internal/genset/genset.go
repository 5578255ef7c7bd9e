// Package genset adapts plain Go collections to riblt.SetSource, the
// re-iterable traversal interface the managed encoder needs. It uses
// golang.org/x/exp/constraints for its Ordered convenience constructor,
// grounded on SnellerInc-sneller's dependency on golang.org/x/exp for
// generics-era helpers.
package genset

import (
	"golang.org/x/exp/constraints"

	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// Slice adapts a plain slice to riblt.SetSource. The slice must not be
// mutated while an Encoder built over it is in use.
type Slice[T symbol.Symbol] []T

// Each implements riblt.SetSource.
func (s Slice[T]) Each(f func(T)) {
	for _, v := range s {
		f(v)
	}
}

// Ordered builds a Slice from a variadic list of ordered values via conv,
// useful for constructing deterministic test fixtures from plain numeric or
// string keys. The constraints.Ordered bound comes from golang.org/x/exp.
func Ordered[K constraints.Ordered, T symbol.Symbol](conv func(K) T, keys ...K) Slice[T] {
	out := make(Slice[T], len(keys))
	for i, k := range keys {
		out[i] = conv(k)
	}
	return out
}

// Keys adapts the keys of a map[K]struct{} to a Slice, useful when the
// caller already tracks set membership as a map.
func Keys[K comparable, T symbol.Symbol](m map[K]struct{}, conv func(K) T) Slice[T] {
	out := make(Slice[T], 0, len(m))
	for k := range m {
		out = append(out, conv(k))
	}
	return out
}
