// Package wire implements the per-symbol wire layout of a CodedSymbol
// (spec.md §6): L(T) bytes of sum, 8 bytes little-endian hash, 8 bytes
// little-endian two's-complement count. No length prefix is needed because
// both sides agree on L(T) from the Codec they share.
package wire

import (
	"encoding/binary"
	"io"

	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// Len returns the total wire length of a coded symbol over a T with the
// given codec: L(T) + 16 bytes.
func Len[T symbol.Symbol](codec symbol.Codec[T]) int {
	return codec.Len() + 16
}

// Encode writes cs to w in the wire layout of spec.md §6.
func Encode[T symbol.Symbol](w io.Writer, cs codedsymbol.CodedSymbol[T]) error {
	if _, err := w.Write(cs.Sum()); err != nil {
		return xerrors.Errorf("wire: writing sum: %w", err)
	}

	var tail [16]byte
	binary.LittleEndian.PutUint64(tail[0:8], cs.Hash())
	binary.LittleEndian.PutUint64(tail[8:16], uint64(cs.Count()))
	if _, err := w.Write(tail[:]); err != nil {
		return xerrors.Errorf("wire: writing hash/count: %w", err)
	}
	return nil
}

// Decode reads one coded symbol from r in the wire layout of spec.md §6,
// using codec to determine L(T).
func Decode[T symbol.Symbol](r io.Reader, codec symbol.Codec[T]) (codedsymbol.CodedSymbol[T], error) {
	sum := make([]byte, codec.Len())
	if _, err := io.ReadFull(r, sum); err != nil {
		return codedsymbol.CodedSymbol[T]{}, xerrors.Errorf("wire: reading sum: %w", err)
	}

	var tail [16]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return codedsymbol.CodedSymbol[T]{}, xerrors.Errorf("wire: reading hash/count: %w", err)
	}

	hash := binary.LittleEndian.Uint64(tail[0:8])
	count := int64(binary.LittleEndian.Uint64(tail[8:16]))

	return codedsymbol.FromParts[T](sum, hash, count), nil
}
