// Package sipsym provides sipsym.Keyed, a symbol.Symbol implementation that
// demonstrates the contract's "hash is overridable" clause: it computes its
// hash with a keyed SipHash instead of hashing its own encoding, grounded
// on the siphash usage in SnellerInc-sneller's vm package.
package sipsym

import (
	"github.com/dchest/siphash"
)

// Keyed wraps a fixed-width payload, hashing it with a caller-supplied
// SipHash key pair instead of a content-derived hash. Two Keyed symbols
// with the same payload but different keys hash differently, which is the
// point: the hash override is independent of the canonical encoding.
type Keyed struct {
	Payload [16]byte
	K0, K1  uint64
}

// Encode returns the raw 16-byte payload, unkeyed: the wire encoding must
// stay canonical regardless of which key a particular peer uses locally.
func (k Keyed) Encode() []byte {
	out := make([]byte, 16)
	copy(out, k.Payload[:])
	return out
}

// Hash returns SipHash-2-4 of the payload keyed by K0, K1.
func (k Keyed) Hash() uint64 {
	return siphash.Hash(k.K0, k.K1, k.Payload[:])
}

// Codec implements symbol.Codec[Keyed]. Decoded values carry the codec's
// own K0, K1, not a key read from the bytes: the encoding holds no key, so
// the codec's key pair must be the one the symbols were hashed with for a
// decoded symbol's hash to match.
type Codec struct {
	K0, K1 uint64
}

// Len reports the fixed encoded width of a Keyed symbol.
func (Codec) Len() int { return 16 }

// Decode reconstructs a Keyed symbol from its payload bytes, attaching the
// codec's configured key.
func (c Codec) Decode(b []byte) Keyed {
	var k Keyed
	copy(k.Payload[:], b)
	k.K0, k.K1 = c.K0, c.K1
	return k
}
