// Package dlog implements the bounded discrete-log search of spec §4.H: a
// baby-step linear search, accumulated by repeated group operation rather
// than by repeated scalar multiplication, over a configured exponent
// bound.
package dlog

import (
	"github.com/nthparty/lhe/errs"
	"github.com/nthparty/lhe/pairing"
)

// SearchG1 finds e in [0, bound) (or the signed window) such that
// base.ScalarMul(e) == target, written additively.
func SearchG1(base, target pairing.G1, bound int, signed bool) (int64, error) {
	if target.Equal(pairing.IdentityG1()) {
		return 0, nil
	}

	pos := pairing.IdentityG1()
	if pos.Equal(target) {
		return 0, nil
	}
	if !signed {
		for e := int64(1); e < int64(bound); e++ {
			pos = pos.Add(base)
			if pos.Equal(target) {
				return e, nil
			}
		}
		return 0, errs.New(errs.DecryptionFailed, "dlog: G1 search exhausted bound")
	}

	neg := pairing.IdentityG1()
	negBase := base.Neg()
	for e := int64(1); e < int64(bound); e++ {
		pos = pos.Add(base)
		if pos.Equal(target) {
			return e, nil
		}
		neg = neg.Add(negBase)
		if neg.Equal(target) {
			return -e, nil
		}
	}
	return 0, errs.New(errs.DecryptionFailed, "dlog: G1 search exhausted bound")
}

// SearchG2 is SearchG1 over G2.
func SearchG2(base, target pairing.G2, bound int, signed bool) (int64, error) {
	if target.Equal(pairing.IdentityG2()) {
		return 0, nil
	}

	pos := pairing.IdentityG2()
	if !signed {
		for e := int64(1); e < int64(bound); e++ {
			pos = pos.Add(base)
			if pos.Equal(target) {
				return e, nil
			}
		}
		return 0, errs.New(errs.DecryptionFailed, "dlog: G2 search exhausted bound")
	}

	neg := pairing.IdentityG2()
	negBase := base.Neg()
	for e := int64(1); e < int64(bound); e++ {
		pos = pos.Add(base)
		if pos.Equal(target) {
			return e, nil
		}
		neg = neg.Add(negBase)
		if neg.Equal(target) {
			return -e, nil
		}
	}
	return 0, errs.New(errs.DecryptionFailed, "dlog: G2 search exhausted bound")
}

// SearchGT finds e such that base.Exp(e) == target, written
// multiplicatively (GT's natural notation).
func SearchGT(base, target pairing.GT, bound int, signed bool) (int64, error) {
	identity := pairing.IdentityGT()
	if target.Equal(identity) {
		return 0, nil
	}

	pos := identity
	if !signed {
		for e := int64(1); e < int64(bound); e++ {
			pos = pos.Mul(base)
			if pos.Equal(target) {
				return e, nil
			}
		}
		return 0, errs.New(errs.DecryptionFailed, "dlog: GT search exhausted bound")
	}

	neg := identity
	negBase := base.Inverse()
	for e := int64(1); e < int64(bound); e++ {
		pos = pos.Mul(base)
		if pos.Equal(target) {
			return e, nil
		}
		neg = neg.Mul(negBase)
		if neg.Equal(target) {
			return -e, nil
		}
	}
	return 0, errs.New(errs.DecryptionFailed, "dlog: GT search exhausted bound")
}
