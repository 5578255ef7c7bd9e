// Package riblt provides the managed encoder, unmanaged holder, and peeling
// decoder that together implement set reconciliation over the
// codedsymbol/mapping algebra.
package riblt

import (
	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/mapping"
	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// BLOCK is the minimum number of fresh coded-symbol positions an Encoder
// materialises whenever Extend has to grow its cached prefix: the prefix
// grows to the requested index plus one or to its old length plus BLOCK,
// whichever is larger. Larger
// values amortise set-traversal cost over more positions at the expense of
// peak memory; it affects only when a position is computed, never what it
// contains.
const BLOCK = 1024

// SetSource is a re-iterable source of symbols: the abstraction an Encoder
// uses instead of baking in a specific container. Each call to Each must
// yield the same multiset of symbols, in any order; the encoder traverses
// the source once per Extend call.
type SetSource[T symbol.Symbol] interface {
	Each(func(T))
}

// Encoder is the managed side of a rateless IBLT: it owns a re-iterable set
// handle and lazily grows a cached prefix of the coded-symbol stream as
// callers request further positions.
type Encoder[T symbol.Symbol] struct {
	codec  symbol.Codec[T]
	source SetSource[T]
	cs     []codedsymbol.CodedSymbol[T]
}

// NewEncoder constructs an Encoder over source, using codec to determine
// the fixed symbol width, and eagerly materialises the first block of the
// stream.
func NewEncoder[T symbol.Symbol](codec symbol.Codec[T], source SetSource[T]) *Encoder[T] {
	e := &Encoder[T]{codec: codec, source: source}
	e.Extend(0)
	return e
}

func (e *Encoder[T]) newSymbols(n int) []codedsymbol.CodedSymbol[T] {
	out := make([]codedsymbol.CodedSymbol[T], n)
	for i := range out {
		out[i] = codedsymbol.New[T](e.codec.Len())
	}
	return out
}

// Extend ensures the cached prefix has more than toIndex entries. If it
// already does, Extend is a no-op. Otherwise it grows the prefix to
// max(toIndex+1, len(cs)+BLOCK) and performs exactly one traversal of the
// set, applying every symbol at every newly-materialised position its
// mapping lands on.
func (e *Encoder[T]) Extend(toIndex int) {
	if len(e.cs) > toIndex {
		return
	}

	oldLen := len(e.cs)
	newLen := toIndex + 1
	if grown := oldLen + BLOCK; grown > newLen {
		newLen = grown
	}
	e.cs = append(e.cs, e.newSymbols(newLen-oldLen)...)

	bound := uint64(newLen)
	lo := uint64(oldLen)

	e.source.Each(func(s T) {
		m := mapping.New(s.Hash())
		for {
			p := m.Next()
			if p >= bound {
				return
			}
			if p >= lo {
				e.cs[p].Apply(s, codedsymbol.Add)
			}
		}
	})
}

// Get ensures the prefix covers index i and returns a clone of cs[i], safe
// for a caller to mutate or hand to a Holder without aliasing e's cached
// state. cs[i] is guaranteed to be the same value regardless of how many
// prior Extend calls were made or with what arguments.
func (e *Encoder[T]) Get(i int) codedsymbol.CodedSymbol[T] {
	e.Extend(i)
	return e.cs[i].Clone()
}

func minLen[T symbol.Symbol](a, b []codedsymbol.CodedSymbol[T]) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

// CombineWith extends e to cover other's full length, then returns the
// position-wise Combine of the two streams as a Holder.
func (e *Encoder[T]) CombineWith(other *Encoder[T]) *Holder[T] {
	if len(other.cs) > 0 {
		e.Extend(len(other.cs) - 1)
	}
	n := minLen(e.cs, other.cs)
	out := make([]codedsymbol.CodedSymbol[T], n)
	for i := 0; i < n; i++ {
		out[i] = e.cs[i].Combine(other.cs[i])
	}
	return &Holder[T]{codec: e.codec, cs: out}
}

// CollapseWith extends e to cover other's full length, then returns the
// position-wise Collapse of e (local) against other (remote) as a Holder.
func (e *Encoder[T]) CollapseWith(other *Holder[T]) *Holder[T] {
	if len(other.cs) > 0 {
		e.Extend(len(other.cs) - 1)
	}
	n := minLen(e.cs, other.cs)
	out := make([]codedsymbol.CodedSymbol[T], n)
	for i := 0; i < n; i++ {
		out[i] = e.cs[i].Collapse(other.cs[i])
	}
	return &Holder[T]{codec: e.codec, cs: out}
}

// PeelOne attempts a single peel against e's cached prefix.
func (e *Encoder[T]) PeelOne() codedsymbol.PeelResult[T] {
	return peelOne(e.codec, e.cs)
}

// PeelAll repeatedly peels e's cached prefix until no further position is
// peelable.
func (e *Encoder[T]) PeelAll() []codedsymbol.PeelResult[T] {
	return peelAll(e.codec, e.cs)
}

// IsEmpty ensures at least the initial block has been materialised, then
// reports whether every cached coded symbol is empty.
func (e *Encoder[T]) IsEmpty() bool {
	e.Extend(0)
	return isEmpty(e.cs)
}
