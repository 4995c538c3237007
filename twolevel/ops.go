package twolevel

import (
	"github.com/nthparty/lhe/errs"
	"github.com/nthparty/lhe/pairing"
)

// AddG1 homomorphically adds two level-1 G1 ciphertexts.
func AddG1(a, b CiphertextG1) CiphertextG1 {
	return CiphertextG1{A: a.A.Add(b.A), B: a.B.Add(b.B)}
}

// AddG2 homomorphically adds two level-1 G2 ciphertexts.
func AddG2(a, b CiphertextG2) CiphertextG2 {
	return CiphertextG2{A: a.A.Add(b.A), B: a.B.Add(b.B)}
}

// AddGT homomorphically adds two level-2 ciphertexts. Addition in the
// exponent becomes the GT group operation.
func AddGT(a, b CiphertextGT) CiphertextGT {
	return CiphertextGT{
		C0: a.C0.Mul(b.C0),
		C1: a.C1.Mul(b.C1),
		C2: a.C2.Mul(b.C2),
		C3: a.C3.Mul(b.C3),
	}
}

// MulG1G2 is the sole cross-group multiplication primitive: it lifts a
// complementary pair of level-1 ciphertexts to a level-2 ciphertext of
// their product. The reference source's mirror-product fallback (using
// ct2.ctg1/ct1.ctg2 if this direction fails) is dropped per spec §9 — it
// is unreachable under a correct backend.
func MulG1G2(a CiphertextG1, b CiphertextG2) (CiphertextGT, error) {
	c0, err := pairing.Pair(a.A, b.A)
	if err != nil {
		return CiphertextGT{}, err
	}
	c1, err := pairing.Pair(a.A, b.B)
	if err != nil {
		return CiphertextGT{}, err
	}
	c2, err := pairing.Pair(a.B, b.A)
	if err != nil {
		return CiphertextGT{}, err
	}
	c3, err := pairing.Pair(a.B, b.B)
	if err != nil {
		return CiphertextGT{}, err
	}
	return CiphertextGT{C0: c0, C1: c1, C2: c2, C3: c3}, nil
}

// ScalarMulG1 scales a level-1 G1 ciphertext by k, using the backend's
// native scalar multiplication rather than k-fold addition.
func ScalarMulG1(ct CiphertextG1, k int64) CiphertextG1 {
	s := pairing.ScalarFromInt64(k)
	return CiphertextG1{A: ct.A.ScalarMul(s), B: ct.B.ScalarMul(s)}
}

// ScalarMulG2 scales a level-1 G2 ciphertext by k.
func ScalarMulG2(ct CiphertextG2, k int64) CiphertextG2 {
	s := pairing.ScalarFromInt64(k)
	return CiphertextG2{A: ct.A.ScalarMul(s), B: ct.B.ScalarMul(s)}
}

// ScalarMulGT scales a level-2 ciphertext by k (exponentiation in GT).
func ScalarMulGT(ct CiphertextGT, k int64) CiphertextGT {
	s := pairing.ScalarFromInt64(k)
	return CiphertextGT{
		C0: ct.C0.Exp(s),
		C1: ct.C1.Exp(s),
		C2: ct.C2.Exp(s),
		C3: ct.C3.Exp(s),
	}
}

// Add homomorphically adds two dual level-1 ciphertexts componentwise.
func (c Ciphertext1) Add(o Ciphertext1) Ciphertext1 {
	return Ciphertext1{G1: AddG1(c.G1, o.G1), G2: AddG2(c.G2, o.G2)}
}

// Neg returns the additive inverse of c.
func (c Ciphertext1) Neg() Ciphertext1 {
	return Ciphertext1{
		G1: CiphertextG1{A: c.G1.A.Neg(), B: c.G1.B.Neg()},
		G2: CiphertextG2{A: c.G2.A.Neg(), B: c.G2.B.Neg()},
	}
}

// ScalarMul scales c by k.
func (c Ciphertext1) ScalarMul(k int64) Ciphertext1 {
	return Ciphertext1{G1: ScalarMulG1(c.G1, k), G2: ScalarMulG2(c.G2, k)}
}

// Mul homomorphically multiplies two dual level-1 ciphertexts, producing a
// level-2 ciphertext of their product.
func (c Ciphertext1) Mul(o Ciphertext1) (Ciphertext2, error) {
	gt, err := MulG1G2(c.G1, o.G2)
	if err != nil {
		return Ciphertext2{}, err
	}
	return Ciphertext2{GT: gt}, nil
}

// Add homomorphically adds two level-2 ciphertexts.
func (c Ciphertext2) Add(o Ciphertext2) Ciphertext2 {
	return Ciphertext2{GT: AddGT(c.GT, o.GT)}
}

// ScalarMul scales c by k.
func (c Ciphertext2) ScalarMul(k int64) Ciphertext2 {
	return Ciphertext2{GT: ScalarMulGT(c.GT, k)}
}

// Add is the type-dispatching addition entry point for callers holding
// ciphertexts as the Ciphertext interface (spec §4.E's type-dispatch
// rule). Mismatched kinds are a caller error, surfaced as TypeMismatch.
func Add(a, b Ciphertext) (Ciphertext, error) {
	switch av := a.(type) {
	case CiphertextG1:
		bv, ok := b.(CiphertextG1)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be CiphertextG1")
		}
		return AddG1(av, bv), nil
	case CiphertextG2:
		bv, ok := b.(CiphertextG2)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be CiphertextG2")
		}
		return AddG2(av, bv), nil
	case CiphertextGT:
		bv, ok := b.(CiphertextGT)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be CiphertextGT")
		}
		return AddGT(av, bv), nil
	case Ciphertext1:
		bv, ok := b.(Ciphertext1)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be Ciphertext1")
		}
		return av.Add(bv), nil
	case Ciphertext2:
		bv, ok := b.(Ciphertext2)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be Ciphertext2")
		}
		return av.Add(bv), nil
	default:
		return nil, errs.New(errs.TypeMismatch, "add: unsupported ciphertext kind")
	}
}

// Mul is the type-dispatching multiplication entry point. Per spec §4.E,
// mul is defined only for (CiphertextG1, CiphertextG2) and
// (Ciphertext1, Ciphertext1); any other pairing is a caller error.
func Mul(a, b Ciphertext) (Ciphertext, error) {
	switch av := a.(type) {
	case CiphertextG1:
		bv, ok := b.(CiphertextG2)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "mul: CiphertextG1 may only multiply a CiphertextG2")
		}
		return MulG1G2(av, bv)
	case Ciphertext1:
		bv, ok := b.(Ciphertext1)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "mul: Ciphertext1 may only multiply a Ciphertext1")
		}
		return av.Mul(bv)
	default:
		return nil, errs.New(errs.TypeMismatch, "mul: unsupported ciphertext kind combination")
	}
}

// ScalarMul is the type-dispatching scalar-multiplication entry point.
func ScalarMul(ct Ciphertext, k int64) (Ciphertext, error) {
	switch v := ct.(type) {
	case CiphertextG1:
		return ScalarMulG1(v, k), nil
	case CiphertextG2:
		return ScalarMulG2(v, k), nil
	case CiphertextGT:
		return ScalarMulGT(v, k), nil
	case Ciphertext1:
		return v.ScalarMul(k), nil
	case Ciphertext2:
		return v.ScalarMul(k), nil
	default:
		return nil, errs.New(errs.TypeMismatch, "scalar mul: unsupported ciphertext kind")
	}
}
