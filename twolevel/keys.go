// Package twolevel implements the two_level namespace of spec §6.2: plain
// ElGamal-style encryption in G1 and G2 (level 1), the pairing-induced
// product ciphertext in GT (level 2), and the homomorphic operators that
// connect them. This is the BGN-style two-level primitive that the
// recursive many_level construction is built from.
package twolevel

import (
	"github.com/nthparty/lhe/pairing"
)

// SecretKey is the dual secret key SK = (s1, s2) of spec §3.
type SecretKey struct {
	S1 pairing.Scalar
	S2 pairing.Scalar
}

// PublicKey is the dual public key PK = (p1, p2) of spec §3.
type PublicKey struct {
	P1 pairing.G1
	P2 pairing.G2
}

// KeygenG1 draws s1 and derives p1 = g1 * s1.
func KeygenG1() (pairing.Scalar, pairing.G1, error) {
	params, err := pairing.GlobalParams()
	if err != nil {
		return pairing.Scalar{}, pairing.G1{}, err
	}
	s1, err := pairing.RandomScalar()
	if err != nil {
		return pairing.Scalar{}, pairing.G1{}, err
	}
	return s1, params.G1.ScalarMul(s1), nil
}

// KeygenG2 draws s2 and derives p2 = g2 * s2.
func KeygenG2() (pairing.Scalar, pairing.G2, error) {
	params, err := pairing.GlobalParams()
	if err != nil {
		return pairing.Scalar{}, pairing.G2{}, err
	}
	s2, err := pairing.RandomScalar()
	if err != nil {
		return pairing.Scalar{}, pairing.G2{}, err
	}
	return s2, params.G2.ScalarMul(s2), nil
}

// Keygen draws both halves independently and returns the dual keypair.
func Keygen() (SecretKey, PublicKey, error) {
	s1, p1, err := KeygenG1()
	if err != nil {
		return SecretKey{}, PublicKey{}, err
	}
	s2, p2, err := KeygenG2()
	if err != nil {
		return SecretKey{}, PublicKey{}, err
	}
	return SecretKey{S1: s1, S2: s2}, PublicKey{P1: p1, P2: p2}, nil
}
