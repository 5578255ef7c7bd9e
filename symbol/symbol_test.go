package symbol

import "testing"

func TestDefaultHashDeterministic(t *testing.T) {
	a := []byte("the quick brown fox")
	b := append([]byte(nil), a...)

	if DefaultHash(a) != DefaultHash(b) {
		t.Fatalf("DefaultHash not deterministic across equal byte slices")
	}
}

func TestDefaultHashDiffersOnDifferentInput(t *testing.T) {
	h1 := DefaultHash([]byte("alpha"))
	h2 := DefaultHash([]byte("beta"))

	if h1 == h2 {
		t.Fatalf("DefaultHash collided on distinct short inputs: %d", h1)
	}
}

func TestDefaultHashEmpty(t *testing.T) {
	if DefaultHash(nil) != DefaultHash([]byte{}) {
		t.Fatalf("DefaultHash(nil) should equal DefaultHash of an empty slice")
	}
}
