package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"
)

// Pair computes the bilinear pairing e(a, b) in GT.
func Pair(a G1, b G2) (GT, error) {
	z, err := bn254.Pair([]bn254.G1Affine{a.inner}, []bn254.G2Affine{b.inner})
	if err != nil {
		return GT{}, errors.Wrap(err, "pairing: e(a, b)")
	}
	return GT{inner: z}, nil
}
