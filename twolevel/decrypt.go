package twolevel

import (
	"github.com/nthparty/lhe/dlog"
	"github.com/nthparty/lhe/errs"
	"github.com/nthparty/lhe/pairing"
)

// DefaultDlogBound is spec §6.3's DLOG_BOUND default, 2^20.
const DefaultDlogBound = 1 << 20

// DecryptG1 recovers the plaintext of a G1 ciphertext: T = B - A*s1, then
// m = dlog_g1(T).
func DecryptG1(s1 pairing.Scalar, ct CiphertextG1, bound int, signed bool) (int64, error) {
	t := ct.B.Add(ct.A.ScalarMul(s1).Neg())
	params, err := pairing.GlobalParams()
	if err != nil {
		return 0, err
	}
	return dlog.SearchG1(params.G1, t, bound, signed)
}

// DecryptG2 is DecryptG1 over G2.
func DecryptG2(s2 pairing.Scalar, ct CiphertextG2, bound int, signed bool) (int64, error) {
	t := ct.B.Add(ct.A.ScalarMul(s2).Neg())
	params, err := pairing.GlobalParams()
	if err != nil {
		return 0, err
	}
	return dlog.SearchG2(params.G2, t, bound, signed)
}

// DecryptGT recovers the plaintext of a level-2 ciphertext:
// W = c0^(s1*s2) * c1^(-s1) * c2^(-s2) * c3, then m = dlog_z(W).
func DecryptGT(s1, s2 pairing.Scalar, ct CiphertextGT, bound int, signed bool) (int64, error) {
	w := ct.C0.Exp(s1.Mul(s2)).
		Mul(ct.C1.Exp(s1.Neg())).
		Mul(ct.C2.Exp(s2.Neg())).
		Mul(ct.C3)
	params, err := pairing.GlobalParams()
	if err != nil {
		return 0, err
	}
	return dlog.SearchGT(params.Z, w, bound, signed)
}

// Decrypt is the type-dispatching decryption entry point of spec §4.G. A
// Ciphertext1 tries its G1 half first and falls back to the G2 half only
// if the G1 search fails, mirroring the reference source's corruption
// tolerance.
func Decrypt(sk SecretKey, ct Ciphertext, bound int, signed bool) (int64, error) {
	switch v := ct.(type) {
	case Ciphertext2:
		return DecryptGT(sk.S1, sk.S2, v.GT, bound, signed)
	case CiphertextGT:
		return DecryptGT(sk.S1, sk.S2, v, bound, signed)
	case Ciphertext1:
		m, err := DecryptG1(sk.S1, v.G1, bound, signed)
		if err == nil {
			return m, nil
		}
		if !errs.Is(err, errs.DecryptionFailed) {
			return 0, err
		}
		return DecryptG2(sk.S2, v.G2, bound, signed)
	case CiphertextG1:
		return DecryptG1(sk.S1, v, bound, signed)
	case CiphertextG2:
		return DecryptG2(sk.S2, v, bound, signed)
	default:
		return 0, errs.New(errs.TypeMismatch, "decrypt: unsupported ciphertext kind")
	}
}
