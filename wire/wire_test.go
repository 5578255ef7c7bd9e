package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/symbol"
)

type u64 uint64

func (s u64) Encode() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(s))
	return b
}
func (s u64) Hash() uint64 { return symbol.DefaultHash(s.Encode()) }

type u64Codec struct{}

func (u64Codec) Len() int            { return 8 }
func (u64Codec) Decode(b []byte) u64 { return u64(binary.LittleEndian.Uint64(b)) }

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cs := codedsymbol.New[u64](8)
	cs.Apply(u64(7), codedsymbol.Add)
	cs.Apply(u64(15), codedsymbol.Add)
	cs.Apply(u64(3), codedsymbol.Remove)

	var buf bytes.Buffer
	if err := Encode(&buf, cs); err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if buf.Len() != Len[u64](u64Codec{}) {
		t.Fatalf("encoded length = %d, want %d", buf.Len(), Len[u64](u64Codec{}))
	}

	got, err := Decode(&buf, u64Codec{})
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}

	if got.Hash() != cs.Hash() || got.Count() != cs.Count() || !bytes.Equal(got.Sum(), cs.Sum()) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, cs)
	}
}

func TestEncodeDecodeNegativeCount(t *testing.T) {
	cs := codedsymbol.New[u64](8)
	cs.Apply(u64(1), codedsymbol.Remove)
	cs.Apply(u64(2), codedsymbol.Remove)

	var buf bytes.Buffer
	if err := Encode(&buf, cs); err != nil {
		t.Fatalf("Encode: %s", err)
	}
	got, err := Decode(&buf, u64Codec{})
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if got.Count() != -2 {
		t.Fatalf("count = %d, want -2", got.Count())
	}
}

func TestDecodeShortReadErrors(t *testing.T) {
	buf := bytes.NewBuffer([]byte{1, 2, 3})
	if _, err := Decode(buf, u64Codec{}); err == nil {
		t.Fatalf("expected an error decoding a truncated buffer")
	}
}

func TestBatchRoundTrip(t *testing.T) {
	a := codedsymbol.New[u64](8)
	a.Apply(u64(1), codedsymbol.Add)
	b := codedsymbol.New[u64](8)
	b.Apply(u64(2), codedsymbol.Remove)

	batch := []codedsymbol.CodedSymbol[u64]{a, b}

	var buf bytes.Buffer
	if err := WriteBatch(&buf, batch); err != nil {
		t.Fatalf("WriteBatch: %s", err)
	}

	got, err := ReadBatch[u64](&buf, u64Codec{})
	if err != nil {
		t.Fatalf("ReadBatch: %s", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2", len(got))
	}
	if got[0].Count() != 1 || got[1].Count() != -1 {
		t.Fatalf("unexpected batch contents: %+v", got)
	}
}

func TestReadBatchRejectsOversizedLength(t *testing.T) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], maxBatch+1)
	buf := bytes.NewBuffer(lenBuf[:])

	if _, err := ReadBatch[u64](buf, u64Codec{}); err == nil {
		t.Fatalf("expected an error for an oversized batch length")
	}
}
