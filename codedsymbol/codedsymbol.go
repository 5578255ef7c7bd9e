// Package codedsymbol implements the algebraic core of a rateless IBLT: the
// (sum, hash, count) triple that accumulates contributions from many
// symbols at a single stream position, and the apply/combine/collapse/peel
// operations defined over it.
package codedsymbol

import (
	"fmt"

	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// Direction tags whether a symbol is being folded into a coded symbol
// (Add) or removed from one (Remove).
type Direction int

const (
	Add Direction = iota
	Remove
)

// Kind discriminates the three possible outcomes of a peel attempt.
type Kind int

const (
	NotPeelable Kind = iota
	Local
	Remote
)

// PeelResult is the tagged outcome of peeling a CodedSymbol. A Kind of
// NotPeelable carries no meaningful Value and is a routine outcome, not an
// error: most scan positions in a partially-decoded stream are not
// peelable.
type PeelResult[T symbol.Symbol] struct {
	Kind  Kind
	Value T
}

// CodedSymbol is one position in a (conceptually infinite) coded-symbol
// stream. sum is the XOR of the fixed-width encodings of every symbol
// folded in so far; hash is the XOR of their 64-bit hashes; count is the
// number of local contributions minus the number of remote contributions.
//
// A CodedSymbol is a small value type, but a plain assignment copy shares
// its sum buffer with the original; Clone returns an independent copy. The
// wire package knows how to serialize it without reaching into this
// package's internals.
type CodedSymbol[T symbol.Symbol] struct {
	sum   []byte
	hash  uint64
	count int64
}

// New returns a zeroed CodedSymbol whose sum buffer has the given width.
// width must equal the Len() of the Codec used for every symbol folded into
// this CodedSymbol.
func New[T symbol.Symbol](width int) CodedSymbol[T] {
	return CodedSymbol[T]{sum: make([]byte, width)}
}

// Sum returns the accumulated XOR buffer. The returned slice aliases the
// CodedSymbol's internal state and must not be mutated by the caller.
func (c CodedSymbol[T]) Sum() []byte { return c.sum }

// Hash returns the accumulated XOR of folded symbols' hashes.
func (c CodedSymbol[T]) Hash() uint64 { return c.hash }

// Count returns the signed local-minus-remote contribution count.
func (c CodedSymbol[T]) Count() int64 { return c.count }

// FromParts reconstructs a CodedSymbol from its three wire fields. Used by
// the wire package when decoding a received coded symbol; sum is not
// copied, callers must pass an owned buffer.
func FromParts[T symbol.Symbol](sum []byte, hash uint64, count int64) CodedSymbol[T] {
	return CodedSymbol[T]{sum: sum, hash: hash, count: count}
}

// Clone returns a CodedSymbol with its own copy of sum. Any caller that
// hands a CodedSymbol across an ownership boundary — out of an Encoder's or
// Holder's cached prefix, into another container that may later Apply or
// Peel it — must clone first, or the two containers will silently alias and
// corrupt each other's state.
func (c CodedSymbol[T]) Clone() CodedSymbol[T] {
	return CodedSymbol[T]{sum: append([]byte(nil), c.sum...), hash: c.hash, count: c.count}
}

func assertLen(got, want int) {
	if got != want {
		panic(fmt.Sprintf("codedsymbol: buffer length %d does not match declared width %d", got, want))
	}
}

// Apply folds a single symbol into c, in the given direction. s must encode
// to exactly len(c.sum) bytes; a mismatch indicates a buggy Symbol
// implementation and panics rather than returning an error, per the
// contract in symbol.Symbol.
func (c *CodedSymbol[T]) Apply(s T, dir Direction) {
	encoded := s.Encode()
	assertLen(len(encoded), len(c.sum))

	for i, b := range encoded {
		c.sum[i] ^= b
	}
	c.hash ^= s.Hash()

	switch dir {
	case Add:
		c.count++
	case Remove:
		c.count--
	}
}

func xorBytes(a, b []byte) []byte {
	assertLen(len(b), len(a))
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Combine returns the union of c and other, treating both as local streams
// produced from disjoint sets. It is only meaningful when the originating
// sets shared no elements; combining streams with shared elements produces
// a coded symbol whose counts no longer reflect either set's true makeup.
func (c CodedSymbol[T]) Combine(other CodedSymbol[T]) CodedSymbol[T] {
	return CodedSymbol[T]{
		sum:   xorBytes(c.sum, other.sum),
		hash:  c.hash ^ other.hash,
		count: c.count + other.count,
	}
}

// Collapse treats c as local and other as remote, returning a coded symbol
// encoding their symmetric difference with the sign convention "+1 per
// local-only symbol, -1 per remote-only symbol".
func (c CodedSymbol[T]) Collapse(other CodedSymbol[T]) CodedSymbol[T] {
	return CodedSymbol[T]{
		sum:   xorBytes(c.sum, other.sum),
		hash:  c.hash ^ other.hash,
		count: c.count - other.count,
	}
}

// IsPeelable reports whether c's count is +-1 and its hash matches the hash
// of decode(sum), i.e. whether sum can be trusted to be the encoding of a
// single genuine symbol rather than the XOR of several.
func (c CodedSymbol[T]) IsPeelable(codec symbol.Codec[T]) bool {
	if c.count != 1 && c.count != -1 {
		return false
	}
	decoded := codec.Decode(c.sum)
	return c.hash == decoded.Hash()
}

func (c CodedSymbol[T]) peelResult(codec symbol.Codec[T]) PeelResult[T] {
	decoded := codec.Decode(c.sum)
	if c.count == 1 {
		return PeelResult[T]{Kind: Local, Value: decoded}
	}
	return PeelResult[T]{Kind: Remote, Value: decoded}
}

// PeelPeek reports the peel outcome without mutating c.
func (c CodedSymbol[T]) PeelPeek(codec symbol.Codec[T]) PeelResult[T] {
	if !c.IsPeelable(codec) {
		return PeelResult[T]{Kind: NotPeelable}
	}
	return c.peelResult(codec)
}

// Peel reports the peel outcome and, on success, resets c to its zero
// (New) state.
func (c *CodedSymbol[T]) Peel(codec symbol.Codec[T]) PeelResult[T] {
	if !c.IsPeelable(codec) {
		return PeelResult[T]{Kind: NotPeelable}
	}
	r := c.peelResult(codec)
	width := len(c.sum)
	*c = New[T](width)
	return r
}

// IsEmpty reports whether c carries no net contribution. Only count and
// hash are authoritative; sum is not inspected, matching the robustness
// stance against pathological hash collisions documented in spec.md.
func (c CodedSymbol[T]) IsEmpty() bool {
	return c.count == 0 && c.hash == 0
}
