package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// Scalar is an element of Fr = Z/qZ, the scalar field of the bn254 pairing
// group triple.
type Scalar struct {
	inner fr.Element
}

// RandomScalar draws a uniformly random scalar from the backend CSPRNG.
func RandomScalar() (Scalar, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return Scalar{}, errors.Wrap(err, "pairing: sample random scalar")
	}
	return Scalar{inner: e}, nil
}

// ScalarFromInt64 embeds a small signed integer into Fr.
func ScalarFromInt64(v int64) Scalar {
	var e fr.Element
	e.SetInt64(v)
	return Scalar{inner: e}
}

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	var r fr.Element
	r.Add(&s.inner, &o.inner)
	return Scalar{inner: r}
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar {
	var r fr.Element
	r.Sub(&s.inner, &o.inner)
	return Scalar{inner: r}
}

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar {
	var r fr.Element
	r.Mul(&s.inner, &o.inner)
	return Scalar{inner: r}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var r fr.Element
	r.Neg(&s.inner)
	return Scalar{inner: r}
}

// Equal reports whether s and o represent the same field element.
func (s Scalar) Equal(o Scalar) bool {
	return s.inner.Equal(&o.inner)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// BigInt returns the canonical non-negative big.Int representative of s.
func (s Scalar) BigInt() *big.Int {
	out := new(big.Int)
	s.inner.BigInt(out)
	return out
}
