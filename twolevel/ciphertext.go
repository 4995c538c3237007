package twolevel

import "github.com/nthparty/lhe/pairing"

// Ciphertext is the exhaustive tagged union of the two_level ciphertext
// kinds, per the redesign note in spec §9 (a tagged sum replaces the
// reference source's runtime type-tag dispatch).
type Ciphertext interface {
	isCiphertext()
}

// CiphertextG1 is an ElGamal-style ciphertext in G1: A = g1*r, B = g1*m + p1*r.
type CiphertextG1 struct {
	A pairing.G1
	B pairing.G1
}

func (CiphertextG1) isCiphertext() {}

// CiphertextG2 mirrors CiphertextG1 in G2.
type CiphertextG2 struct {
	A pairing.G2
	B pairing.G2
}

func (CiphertextG2) isCiphertext() {}

// CiphertextGT is the four-element GT ciphertext of spec §3/§4.D.
type CiphertextGT struct {
	C0 pairing.GT
	C1 pairing.GT
	C2 pairing.GT
	C3 pairing.GT
}

func (CiphertextGT) isCiphertext() {}

// Ciphertext1 is the dual level-1 ciphertext: a CiphertextG1 and a
// CiphertextG2 both encrypting the same plaintext under the same PublicKey.
type Ciphertext1 struct {
	G1 CiphertextG1
	G2 CiphertextG2
}

func (Ciphertext1) isCiphertext() {}

// Ciphertext2 wraps a single CiphertextGT.
type Ciphertext2 struct {
	GT CiphertextGT
}

func (Ciphertext2) isCiphertext() {}
