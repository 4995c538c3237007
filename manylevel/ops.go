package manylevel

import (
	"github.com/nthparty/lhe/config"
	"github.com/nthparty/lhe/errs"
	"github.com/nthparty/lhe/twolevel"
)

// Add homomorphically adds two ciphertexts of the same level and kind. Spec
// §4.F's masked-addition rule is implemented bug-for-bug-corrected per §9:
// the combined residue is (a.Masked + b.Masked) mod p, never the reference
// source's doubled-left-operand typo.
func Add(cfg config.Config, a, b Ciphertext) (Ciphertext, error) {
	if a.Level() != b.Level() {
		return nil, errs.New(errs.LevelMismatch, "add: operands are at different levels")
	}
	switch av := a.(type) {
	case Level1:
		bv, ok := b.(Level1)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be Level1")
		}
		return Level1{CT: av.CT.Add(bv.CT)}, nil
	case Level2:
		bv, ok := b.(Level2)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be Level2")
		}
		return Level2{CT: av.CT.Add(bv.CT)}, nil
	case Recursive:
		bv, ok := b.(Recursive)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be Recursive")
		}
		mask, err := Add(cfg, av.Mask, bv.Mask)
		if err != nil {
			return nil, err
		}
		return Recursive{
			Lvl:    av.Lvl,
			Masked: (av.Masked + bv.Masked) % cfg.P(),
			Mask:   mask,
		}, nil
	case Quadratic:
		bv, ok := b.(Quadratic)
		if !ok {
			return nil, errs.New(errs.TypeMismatch, "add: both operands must be Quadratic")
		}
		pairs := make([]Pair, 0, len(av.Pairs)+len(bv.Pairs))
		pairs = append(pairs, av.Pairs...)
		pairs = append(pairs, bv.Pairs...)
		return Quadratic{
			Lvl:        av.Lvl,
			BaseMasked: (av.BaseMasked + bv.BaseMasked) % cfg.P(),
			Pairs:      pairs,
		}, nil
	default:
		return nil, errs.New(errs.TypeMismatch, "add: unsupported ciphertext kind")
	}
}

// AddPlain homomorphically adds a known plaintext k to ct, by encrypting k
// fresh at ct's level and adding. k == 0 is a no-op: ct itself is returned
// unchanged, with no fresh encryption and no re-randomization.
func AddPlain(cfg config.Config, pk twolevel.PublicKey, ct Ciphertext, k int64) (Ciphertext, error) {
	if k == 0 {
		return ct, nil
	}
	encK, err := Encrypt(pk, cfg, ct.Level(), modP(k, cfg.P()))
	if err != nil {
		return nil, err
	}
	return Add(cfg, ct, encK)
}

// ScalarMul scales ct by the known integer k.
func ScalarMul(cfg config.Config, ct Ciphertext, k int64) (Ciphertext, error) {
	switch v := ct.(type) {
	case Level1:
		return Level1{CT: v.CT.ScalarMul(k)}, nil
	case Level2:
		return Level2{CT: v.CT.ScalarMul(k)}, nil
	case Recursive:
		mask, err := ScalarMul(cfg, v.Mask, k)
		if err != nil {
			return nil, err
		}
		return Recursive{
			Lvl:    v.Lvl,
			Masked: modP(int64(v.Masked)*k, cfg.P()),
			Mask:   mask,
		}, nil
	case Quadratic:
		pairs := make([]Pair, len(v.Pairs))
		for i, p := range v.Pairs {
			scaledA, err := ScalarMul(cfg, p.A, k)
			if err != nil {
				return nil, err
			}
			pairs[i] = Pair{A: scaledA, B: p.B}
		}
		return Quadratic{
			Lvl:        v.Lvl,
			BaseMasked: modP(int64(v.BaseMasked)*k, cfg.P()),
			Pairs:      pairs,
		}, nil
	default:
		return nil, errs.New(errs.TypeMismatch, "scalar mul: unsupported ciphertext kind")
	}
}

// Mul homomorphically multiplies two ciphertexts of any levels whose sum
// does not exceed 2*cfg.D, returning LevelExceeded otherwise.
//
// Two level-1 operands take the base pairing primitive directly (spec
// §4.E), landing on the atomic Level2 representation. Every other
// combination is resolved via the unevaluated-pair representation used by
// CT_2D: split() decomposes each operand into a cleartext residue and an
// opaque sub-ciphertext, the residues' product becomes the result's
// cleartext base, and the bilinear cross term plus the two residue
// corrections are carried forward as unresolved pairs rather than being
// folded into a single result ciphertext of one well-defined level — the
// nested formula in the source material for that fold does not close
// (see DESIGN.md's multiplication entry for the full derivation). This
// keeps Mul fully composable: a Quadratic result can itself be multiplied
// again, right up to the 2*cfg.D ceiling.
func Mul(cfg config.Config, pk twolevel.PublicKey, a, b Ciphertext) (Ciphertext, error) {
	la, lb := a.Level(), b.Level()
	sum := la + lb
	if sum > 2*cfg.D {
		return nil, errs.Newf(errs.LevelExceeded, "mul: result level %d exceeds budget %d", sum, 2*cfg.D)
	}

	if la == 1 && lb == 1 {
		av, aok := a.(Level1)
		bv, bok := b.(Level1)
		if !aok || !bok {
			return nil, errs.New(errs.TypeMismatch, "mul: expected Level1 operands")
		}
		gt, err := av.CT.Mul(bv.CT)
		if err != nil {
			return nil, err
		}
		return Level2{CT: gt}, nil
	}

	p := cfg.P()
	ma, enca := split(a)
	mb, encb := split(b)
	base := (ma * mb) % p

	pairs := []Pair{{A: enca, B: encb}}
	if ma != 0 {
		encMa, err := twolevel.EncryptLevel1(pk, int64(ma))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{A: encb, B: Level1{CT: encMa}})
	}
	if mb != 0 {
		encMb, err := twolevel.EncryptLevel1(pk, int64(mb))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{A: enca, B: Level1{CT: encMb}})
	}

	return Quadratic{Lvl: sum, BaseMasked: base, Pairs: pairs}, nil
}
