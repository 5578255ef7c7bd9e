package wire

import (
	"encoding/binary"
	"io"

	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// maxBatch caps a single batch read to guard against a corrupt or hostile
// length prefix causing an unbounded allocation.
const maxBatch = 1 << 20

// WriteBatch frames a slice of coded symbols as a uint32 little-endian
// count followed by that many wire-encoded symbols. This batching, not an
// individual symbol's layout, is the "serialisation framing beyond the
// per-symbol wire layout" spec.md §1 treats as an external collaborator —
// it lives in this package rather than in codedsymbol or riblt.
func WriteBatch[T symbol.Symbol](w io.Writer, batch []codedsymbol.CodedSymbol[T]) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(batch)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return xerrors.Errorf("wire: writing batch length: %w", err)
	}
	for i, cs := range batch {
		if err := Encode(w, cs); err != nil {
			return xerrors.Errorf("wire: writing batch element %d: %w", i, err)
		}
	}
	return nil
}

// ReadBatch reads a batch framed by WriteBatch.
func ReadBatch[T symbol.Symbol](r io.Reader, codec symbol.Codec[T]) ([]codedsymbol.CodedSymbol[T], error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, xerrors.Errorf("wire: reading batch length: %w", err)
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	if n > maxBatch {
		return nil, xerrors.Errorf("wire: batch length %d exceeds maximum %d", n, maxBatch)
	}

	out := make([]codedsymbol.CodedSymbol[T], n)
	for i := range out {
		cs, err := Decode(r, codec)
		if err != nil {
			return nil, xerrors.Errorf("wire: reading batch element %d: %w", i, err)
		}
		out[i] = cs
	}
	return out, nil
}
