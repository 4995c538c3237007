package pairing

import "github.com/consensys/gnark-crypto/ecc/bn254"

// GT is an element of the target group, written multiplicatively.
type GT struct {
	inner bn254.GT
}

// Mul returns z * o.
func (z GT) Mul(o GT) GT {
	var r bn254.GT
	r.Mul(&z.inner, &o.inner)
	return GT{inner: r}
}

// Exp returns z raised to the scalar power s.
func (z GT) Exp(s Scalar) GT {
	var r bn254.GT
	r.Exp(z.inner, s.BigInt())
	return GT{inner: r}
}

// Inverse returns z^-1.
func (z GT) Inverse() GT {
	var r bn254.GT
	r.Inverse(&z.inner)
	return GT{inner: r}
}

// Equal reports whether z and o are the same target-group element.
func (z GT) Equal(o GT) bool {
	return z.inner.Equal(&o.inner)
}

// IdentityGT returns 1, the multiplicative identity of GT.
func IdentityGT() GT {
	var r bn254.GT
	r.SetOne()
	return GT{inner: r}
}
