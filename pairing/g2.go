package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"
)

// G2 is an element of the second source group of the pairing.
type G2 struct {
	inner bn254.G2Affine
}

// hashToG2 deterministically maps an ASCII label to a G2 point, per the
// fixed-label generator contract of spec §6.1.
func hashToG2(label string) (G2, error) {
	p, err := bn254.HashToG2([]byte(label), []byte("LHE_BN254G2_XMD:SHA-256_SSWU_RO_"))
	if err != nil {
		return G2{}, errors.Wrapf(err, "pairing: hash %q to G2", label)
	}
	return G2{inner: p}, nil
}

// Add returns p + o.
func (p G2) Add(o G2) G2 {
	var r bn254.G2Affine
	r.Add(&p.inner, &o.inner)
	return G2{inner: r}
}

// Neg returns -p.
func (p G2) Neg() G2 {
	var r bn254.G2Affine
	r.Neg(&p.inner)
	return G2{inner: r}
}

// ScalarMul returns p scaled by s, using the backend's native scalar
// multiplication (never repeated addition).
func (p G2) ScalarMul(s Scalar) G2 {
	var r bn254.G2Affine
	r.ScalarMultiplication(&p.inner, s.BigInt())
	return G2{inner: r}
}

// Equal reports whether p and o are the same point.
func (p G2) Equal(o G2) bool {
	return p.inner.Equal(&o.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p G2) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IdentityG2 returns the point at infinity, the additive identity of G2.
func IdentityG2() G2 {
	var r bn254.G2Affine
	r.SetInfinity()
	return G2{inner: r}
}
