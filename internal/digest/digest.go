// Package digest provides digest.Chunk, a concrete symbol.Symbol
// representing a fixed-size, content-addressed piece of data: a SHA-256
// digest of a chunk's payload plus the chunk's length. It is the reference
// Symbol type used by this repository's tests and cmd/riblt-sync, standing
// in for "a block of a Filecoin piece" the way the teacher package treats
// 127-byte commP leaves.
package digest

import (
	"encoding/binary"
	"hash"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// Width is the fixed encoded length of a Chunk: 32 bytes of SHA-256 digest
// followed by an 8-byte little-endian length.
const Width = 32 + 8

var shaPool = sync.Pool{New: func() interface{} { return sha256simd.New() }}

// Chunk is a symbol.Symbol wrapping a content digest and a declared length.
type Chunk struct {
	Sum    [32]byte
	Length uint64
}

// Sum256 hashes payload with a pooled sha256-simd hasher and returns the
// Chunk representing it.
func Sum256(payload []byte) Chunk {
	h := shaPool.Get().(hash.Hash)
	h.Reset()
	h.Write(payload)
	var c Chunk
	copy(c.Sum[:], h.Sum(nil))
	c.Length = uint64(len(payload))
	shaPool.Put(h)
	return c
}

// Encode implements symbol.Symbol: 32 bytes of digest followed by 8 bytes
// little-endian length, canonical by construction.
func (c Chunk) Encode() []byte {
	out := make([]byte, Width)
	copy(out, c.Sum[:])
	binary.LittleEndian.PutUint64(out[32:], c.Length)
	return out
}

// Hash implements symbol.Symbol by SHA-256'ing the canonical encoding with
// a pooled sha256-simd hasher and reading the first 8 bytes little-endian.
// Hashing the encoding rather than returning the digest bytes verbatim is
// what keeps this hash non-homomorphic over XOR of encodings: SHA-256 is
// not XOR-linear.
func (c Chunk) Hash() uint64 {
	h := shaPool.Get().(hash.Hash)
	h.Reset()
	h.Write(c.Encode())
	sum := h.Sum(nil)
	shaPool.Put(h)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Codec implements symbol.Codec[Chunk].
type Codec struct{}

// Len reports the fixed encoded width of a Chunk.
func (Codec) Len() int { return Width }

// Decode reconstructs a Chunk from its canonical encoding. b is not
// validated against any original payload; a Chunk decoded from corrupted
// bytes is still a total, cheap value, with correctness re-checked by the
// coded-symbol hash comparison.
func (Codec) Decode(b []byte) Chunk {
	var c Chunk
	copy(c.Sum[:], b[:32])
	c.Length = binary.LittleEndian.Uint64(b[32:40])
	return c
}
