package algotables

import (
	"github.com/samber/lo"

	"github.com/vlarn/fastmatmul/bilinear"
	"github.com/vlarn/fastmatmul/matrix"
)

// ids lists every identifier Lookup accepts. Lookup itself has to stay
// generic (Descriptor is generic over scalar type), so this is the one
// place the registry can be enumerated without picking a type parameter.
var ids = []string{
	"strassen222",
	"grey243_20_144",
	"classical222",
	"grey322_11_50",
	"fast333",
}

// IDs returns the registered algorithm identifiers.
func IDs() []string {
	return lo.Uniq(ids)
}

// Lookup resolves id to its bilinear.Descriptor. grey322_11_50 (rank-11
// ⟨3,2,2⟩) and fast333 (rank-23 ⟨3,3,3⟩) have no coefficient table in this
// package — their upstream definitions weren't available to transcribe —
// and resolve to the classical, non-rank-reduced decomposition of the same
// shape instead of a fabricated table.
func Lookup[S matrix.Scalar](id string) (bilinear.Descriptor[S], bool) {
	switch id {
	case "strassen222":
		return Strassen222[S](), true
	case "grey243_20_144":
		return Grey243Rank20[S](), true
	case "classical222":
		return Classical[S](2, 2, 2), true
	case "grey322_11_50":
		return Classical[S](3, 2, 2), true
	case "fast333":
		return Classical[S](3, 3, 3), true
	default:
		return bilinear.Descriptor[S]{}, false
	}
}
