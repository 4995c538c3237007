package twolevel

import "github.com/nthparty/lhe/pairing"

// EncryptG1 encrypts the plaintext m under the G1-side public key p1.
func EncryptG1(p1 pairing.G1, m int64) (CiphertextG1, error) {
	params, err := pairing.GlobalParams()
	if err != nil {
		return CiphertextG1{}, err
	}
	r, err := pairing.RandomScalar()
	if err != nil {
		return CiphertextG1{}, err
	}
	a := params.G1.ScalarMul(r)
	b := params.G1.ScalarMul(pairing.ScalarFromInt64(m)).Add(p1.ScalarMul(r))
	return CiphertextG1{A: a, B: b}, nil
}

// EncryptG2 encrypts the plaintext m under the G2-side public key p2.
func EncryptG2(p2 pairing.G2, m int64) (CiphertextG2, error) {
	params, err := pairing.GlobalParams()
	if err != nil {
		return CiphertextG2{}, err
	}
	r, err := pairing.RandomScalar()
	if err != nil {
		return CiphertextG2{}, err
	}
	a := params.G2.ScalarMul(r)
	b := params.G2.ScalarMul(pairing.ScalarFromInt64(m)).Add(p2.ScalarMul(r))
	return CiphertextG2{A: a, B: b}, nil
}

// EncryptGT directly encrypts m as a level-2 ciphertext (spec §4.D),
// equivalent to the output of a cross-group multiplication but drawing its
// own three independent blinding scalars.
func EncryptGT(p1 pairing.G1, p2 pairing.G2, m int64) (CiphertextGT, error) {
	params, err := pairing.GlobalParams()
	if err != nil {
		return CiphertextGT{}, err
	}

	r, err := pairing.RandomScalar()
	if err != nil {
		return CiphertextGT{}, err
	}
	s, err := pairing.RandomScalar()
	if err != nil {
		return CiphertextGT{}, err
	}
	t, err := pairing.RandomScalar()
	if err != nil {
		return CiphertextGT{}, err
	}

	zS2, err := pairing.Pair(params.G1, p2) // z^s2
	if err != nil {
		return CiphertextGT{}, err
	}
	zS1, err := pairing.Pair(p1, params.G2) // z^s1
	if err != nil {
		return CiphertextGT{}, err
	}
	zS1S2, err := pairing.Pair(p1, p2) // z^(s1*s2)
	if err != nil {
		return CiphertextGT{}, err
	}

	c0 := params.Z.Exp(r.Add(s).Sub(t))
	c1 := zS2.Exp(r)
	c2 := zS1.Exp(s)
	c3 := zS1S2.Exp(t).Mul(params.Z.Exp(pairing.ScalarFromInt64(m)))

	return CiphertextGT{C0: c0, C1: c1, C2: c2, C3: c3}, nil
}

// EncryptLevel1 encrypts m as a dual level-1 ciphertext, using independent
// fresh randomness for each half.
func EncryptLevel1(pk PublicKey, m int64) (Ciphertext1, error) {
	ctg1, err := EncryptG1(pk.P1, m)
	if err != nil {
		return Ciphertext1{}, err
	}
	ctg2, err := EncryptG2(pk.P2, m)
	if err != nil {
		return Ciphertext1{}, err
	}
	return Ciphertext1{G1: ctg1, G2: ctg2}, nil
}

// EncryptLevel2 encrypts m directly as a level-2 ciphertext.
func EncryptLevel2(pk PublicKey, m int64) (Ciphertext2, error) {
	ct, err := EncryptGT(pk.P1, pk.P2, m)
	if err != nil {
		return Ciphertext2{}, err
	}
	return Ciphertext2{GT: ct}, nil
}

// Encrypt is the 'dumb' alias for EncryptLevel1 (mirrors
// original_source/lhe/level_d.py's `encrypt = encrypt_lvl_1`).
func Encrypt(pk PublicKey, m int64) (Ciphertext1, error) {
	return EncryptLevel1(pk, m)
}
