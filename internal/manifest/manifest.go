// Package manifest describes the small CBOR-encoded run descriptor that
// cmd/riblt-sync's serve side builds at the start of a run, identified by a
// CID over its own bytes. serve logs that CID; the descriptor itself is not
// sent to the peer or stored.
// Grounded directly on the teacher's own cmd/stream-commp/main.go
// dependency set (go-cid, go-ipld-cbor were already one hop away in the
// teacher's cmd/ go.mod, used there to sniff CAR headers).
package manifest

import (
	cbornode "github.com/ipfs/go-ipld-cbor"
	"github.com/multiformats/go-multihash"
	"golang.org/x/xerrors"
)

// Session describes one serve run: the symbol codec and sizing constants it
// streams with, and the run identifier its log lines are tagged with.
type Session struct {
	Codec       string `json:"codec"`
	SymbolWidth int    `json:"symbolWidth"`
	BlockSize   int    `json:"blockSize"`
	RunID       string `json:"runId"`
}

// RootCID CBOR-encodes the session and returns a CIDv1 over the resulting
// bytes, using the same WrapObject call teacher's cmd reaches for when
// decoding CAR headers (cbor.DecodeInto / cbor.RegisterCborType).
func (s Session) RootCID() (string, error) {
	nd, err := cbornode.WrapObject(s, multihash.SHA2_256, -1)
	if err != nil {
		return "", xerrors.Errorf("manifest: encoding session: %w", err)
	}
	return nd.Cid().String(), nil
}
