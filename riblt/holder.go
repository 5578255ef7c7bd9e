package riblt

import (
	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// Holder is the unmanaged side of a rateless IBLT: it owns only the coded
// symbols it has received (or derived via Combine/Collapse), with no set
// handle of its own. All knowledge of which symbols contributed where is
// carried inside the coded symbols it holds.
type Holder[T symbol.Symbol] struct {
	codec symbol.Codec[T]
	cs    []codedsymbol.CodedSymbol[T]
}

// NewHolder constructs an empty Holder using codec to decode peeled
// symbols.
func NewHolder[T symbol.Symbol](codec symbol.Codec[T]) *Holder[T] {
	return &Holder[T]{codec: codec}
}

// Append adds one received coded symbol to the end of the holder's stream.
func (h *Holder[T]) Append(cs codedsymbol.CodedSymbol[T]) {
	h.cs = append(h.cs, cs)
}

// Len reports how many coded symbols the holder currently has.
func (h *Holder[T]) Len() int { return len(h.cs) }

// At returns a clone of the coded symbol at position i, safe for a caller
// to mutate or hand to another Holder without aliasing h's internal state.
func (h *Holder[T]) At(i int) codedsymbol.CodedSymbol[T] { return h.cs[i].Clone() }

// Combine returns the position-wise Combine of h and other, truncated to
// the shorter of the two lengths.
func (h *Holder[T]) Combine(other *Holder[T]) *Holder[T] {
	n := minLen(h.cs, other.cs)
	out := make([]codedsymbol.CodedSymbol[T], n)
	for i := 0; i < n; i++ {
		out[i] = h.cs[i].Combine(other.cs[i])
	}
	return &Holder[T]{codec: h.codec, cs: out}
}

// Collapse returns the position-wise Collapse of h (local) against other
// (remote), truncated to the shorter of the two lengths.
func (h *Holder[T]) Collapse(other *Holder[T]) *Holder[T] {
	n := minLen(h.cs, other.cs)
	out := make([]codedsymbol.CodedSymbol[T], n)
	for i := 0; i < n; i++ {
		out[i] = h.cs[i].Collapse(other.cs[i])
	}
	return &Holder[T]{codec: h.codec, cs: out}
}

// PeelOne attempts a single peel against h's stream.
func (h *Holder[T]) PeelOne() codedsymbol.PeelResult[T] {
	return peelOne(h.codec, h.cs)
}

// PeelAll repeatedly peels h's stream until no further position is
// peelable.
func (h *Holder[T]) PeelAll() []codedsymbol.PeelResult[T] {
	return peelAll(h.codec, h.cs)
}

// IsEmpty reports whether every coded symbol held is empty.
func (h *Holder[T]) IsEmpty() bool {
	return isEmpty(h.cs)
}
