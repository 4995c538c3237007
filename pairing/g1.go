package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/pkg/errors"
)

// G1 is an element of the first source group of the pairing.
type G1 struct {
	inner bn254.G1Affine
}

// hashToG1 deterministically maps an ASCII label to a G1 point, per the
// fixed-label generator contract of spec §6.1.
func hashToG1(label string) (G1, error) {
	p, err := bn254.HashToG1([]byte(label), []byte("LHE_BN254G1_XMD:SHA-256_SSWU_RO_"))
	if err != nil {
		return G1{}, errors.Wrapf(err, "pairing: hash %q to G1", label)
	}
	return G1{inner: p}, nil
}

// Add returns p + o.
func (p G1) Add(o G1) G1 {
	var r bn254.G1Affine
	r.Add(&p.inner, &o.inner)
	return G1{inner: r}
}

// Neg returns -p.
func (p G1) Neg() G1 {
	var r bn254.G1Affine
	r.Neg(&p.inner)
	return G1{inner: r}
}

// ScalarMul returns p scaled by s, using the backend's native scalar
// multiplication (never repeated addition).
func (p G1) ScalarMul(s Scalar) G1 {
	var r bn254.G1Affine
	r.ScalarMultiplication(&p.inner, s.BigInt())
	return G1{inner: r}
}

// Equal reports whether p and o are the same point.
func (p G1) Equal(o G1) bool {
	return p.inner.Equal(&o.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p G1) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// IdentityG1 returns the point at infinity, the additive identity of G1.
func IdentityG1() G1 {
	var r bn254.G1Affine
	r.SetInfinity()
	return G1{inner: r}
}
