package riblt

import (
	"github.com/filecoin-project/go-fil-ribl/codedsymbol"
	"github.com/filecoin-project/go-fil-ribl/mapping"
	"github.com/filecoin-project/go-fil-ribl/symbol"
)

// peelOne implements the shared peeling-decoder scan used by both Encoder
// and Holder: linear scan for the first peelable position, then remove that
// symbol's contribution from every position it touches across the whole
// stream.
func peelOne[T symbol.Symbol](codec symbol.Codec[T], cs []codedsymbol.CodedSymbol[T]) codedsymbol.PeelResult[T] {
	for i := range cs {
		r := cs[i].PeelPeek(codec)
		if r.Kind == codedsymbol.NotPeelable {
			continue
		}

		cs[i].Peel(codec)

		dir := codedsymbol.Add
		if r.Kind == codedsymbol.Local {
			dir = codedsymbol.Remove
		}

		m := mapping.New(r.Value.Hash())
		bound := uint64(len(cs))
		for {
			p := m.Next()
			if p >= bound {
				break
			}
			// the peeled position itself was already reset by Peel above.
			if p == uint64(i) {
				continue
			}
			cs[p].Apply(r.Value, dir)
		}

		return r
	}

	return codedsymbol.PeelResult[T]{Kind: codedsymbol.NotPeelable}
}

// peelAll repeatedly peels cs until no further position is peelable,
// returning the successful results in peel order.
func peelAll[T symbol.Symbol](codec symbol.Codec[T], cs []codedsymbol.CodedSymbol[T]) []codedsymbol.PeelResult[T] {
	var out []codedsymbol.PeelResult[T]
	for {
		r := peelOne(codec, cs)
		if r.Kind == codedsymbol.NotPeelable {
			return out
		}
		out = append(out, r)
	}
}

// isEmpty reports whether every coded symbol in cs is empty.
func isEmpty[T symbol.Symbol](cs []codedsymbol.CodedSymbol[T]) bool {
	for i := range cs {
		if !cs[i].IsEmpty() {
			return false
		}
	}
	return true
}

// MissingFromLocal filters a slice of peel results down to the symbols the
// local side is missing, i.e. the Remote results. This is the typical
// downstream use of PeelAll's output: a caller reconciling sets usually
// wants to know what to request from its peer, not the full symmetric
// difference.
func MissingFromLocal[T symbol.Symbol](results []codedsymbol.PeelResult[T]) []T {
	var out []T
	for _, r := range results {
		if r.Kind == codedsymbol.Remote {
			out = append(out, r.Value)
		}
	}
	return out
}
