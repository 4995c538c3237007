// Package manylevel implements the many_level namespace of spec §6.2: the
// recursive "nested mask" construction that lifts two_level's single free
// multiplication to a configurable budget of d multiplications (and, past
// d, a further bounded stretch up to 2d via an unevaluated-product
// representation).
package manylevel

import "github.com/nthparty/lhe/twolevel"

// Ciphertext is the exhaustive tagged union of spec §9's redesign note:
// Ciphertext = G1 | G2 | GT | Dual1 | Dual2 | Recursive | Quadratic,
// specialized to the two kinds many_level actually produces (Dual1/Dual2)
// plus the two recursive shapes (Recursive/Quadratic).
type Ciphertext interface {
	// Level reports the ciphertext's level: 1 for a fresh dual ElGamal
	// ciphertext, and the sum of the operands' levels for a product.
	Level() int
	isCiphertext()
}

// Level1 is CT_D(1) = CT_1, the dual ElGamal ciphertext of two_level.
type Level1 struct {
	CT twolevel.Ciphertext1
}

func (Level1) Level() int { return 1 }
func (Level1) isCiphertext() {}

// Level2 is the atomic level-2 ciphertext: the direct pairing-induced
// product in GT. It is "atomic" in the sense that, unlike Recursive, it
// carries no cleartext masked component — a single pairing already buys
// one multiplication for free, so no masking is needed to reach level 2.
type Level2 struct {
	CT twolevel.Ciphertext2
}

func (Level2) Level() int { return 2 }
func (Level2) isCiphertext() {}

// Recursive is CT_D(ℓ) for 3 ≤ ℓ ≤ d: a plaintext produced by
// Encrypt directly at level ℓ, represented as a cleartext residue
// `Masked` plus an encrypted `Mask` of level ℓ-1 such that the plaintext
// equals (Masked + Decrypt(Mask)) mod p.
type Recursive struct {
	Lvl    int
	Masked uint64
	Mask   Ciphertext
}

func (r Recursive) Level() int { return r.Lvl }
func (Recursive) isCiphertext() {}

// Pair is one unevaluated bilinear cross term of a Quadratic ciphertext.
type Pair struct {
	A Ciphertext
	B Ciphertext
}

// Quadratic is the output of multiplying two Ciphertexts whose levels sum
// past 2 (spec's CT_2D): a cleartext base residue plus a list of
// unevaluated (A, B) pairs, each resolved only at decryption as
// Decrypt(A) * Decrypt(B).
type Quadratic struct {
	Lvl        int
	BaseMasked uint64
	Pairs      []Pair
}

func (q Quadratic) Level() int { return q.Lvl }
func (Quadratic) isCiphertext() {}

// split decomposes any Ciphertext into a cleartext residue and a
// sub-ciphertext such that Decrypt(x) == (residue + Decrypt(sub)) mod p.
// Non-Recursive kinds have no revealed residue: they split as (0, x)
// itself, treating the whole ciphertext as opaque.
func split(x Ciphertext) (uint64, Ciphertext) {
	if r, ok := x.(Recursive); ok {
		return r.Masked, r.Mask
	}
	return 0, x
}
