package sipsym

import "testing"

func TestHashDependsOnKey(t *testing.T) {
	var payload [16]byte
	copy(payload[:], []byte("0123456789abcdef"))

	a := Keyed{Payload: payload, K0: 1, K1: 2}
	b := Keyed{Payload: payload, K0: 3, K1: 4}

	if a.Hash() == b.Hash() {
		t.Fatalf("identical payloads with different keys hashed identically")
	}
}

func TestEncodeIsKeyIndependent(t *testing.T) {
	var payload [16]byte
	copy(payload[:], []byte("0123456789abcdef"))

	a := Keyed{Payload: payload, K0: 1, K1: 2}
	b := Keyed{Payload: payload, K0: 9, K1: 9}

	if string(a.Encode()) != string(b.Encode()) {
		t.Fatalf("Encode must be canonical regardless of the local hash key")
	}
}

func TestDecodeAttachesCodecKey(t *testing.T) {
	c := Codec{K0: 10, K1: 20}
	k := c.Decode(make([]byte, 16))
	if k.K0 != 10 || k.K1 != 20 {
		t.Fatalf("Decode did not attach the codec's key pair: %+v", k)
	}
}

func TestRoundTrip(t *testing.T) {
	c := Codec{K0: 1, K1: 2}
	orig := Keyed{K0: 1, K1: 2}
	copy(orig.Payload[:], []byte("fedcba9876543210"))

	decoded := c.Decode(orig.Encode())
	if decoded.Hash() != orig.Hash() {
		t.Fatalf("round trip changed the hash: %d != %d", decoded.Hash(), orig.Hash())
	}
}
