package manylevel

import (
	"crypto/rand"
	"math/big"

	"github.com/nthparty/lhe/config"
	"github.com/nthparty/lhe/errs"
	"github.com/nthparty/lhe/twolevel"
)

// Encrypt builds CT_D(level) for a fresh plaintext m < cfg.P(), per spec
// §4.F's encrypt_D: level 1 is the dual ElGamal ciphertext, level 2 is the
// direct GT ciphertext (a single pairing already buys this multiplication
// for free), and every level from 3 up through cfg.D is built by sampling a
// random mask b, revealing (m-b) mod p in the clear, and recursively
// encrypting b one level down.
//
// Encrypting directly beyond cfg.D is not defined here — levels past D are
// only ever reached as the output of Mul (see Quadratic).
func Encrypt(pk twolevel.PublicKey, cfg config.Config, level int, m uint64) (Ciphertext, error) {
	if level < 1 || level > cfg.D {
		return nil, errs.Newf(errs.LevelExceeded, "encrypt: level %d outside configured range [1,%d]", level, cfg.D)
	}
	switch level {
	case 1:
		ct, err := twolevel.EncryptLevel1(pk, int64(m))
		if err != nil {
			return nil, err
		}
		return Level1{CT: ct}, nil
	case 2:
		ct, err := twolevel.EncryptLevel2(pk, int64(m))
		if err != nil {
			return nil, err
		}
		return Level2{CT: ct}, nil
	default:
		b, err := randMod(cfg.P())
		if err != nil {
			return nil, err
		}
		masked := modP(int64(m)-int64(b), cfg.P())
		mask, err := Encrypt(pk, cfg, level-1, b)
		if err != nil {
			return nil, err
		}
		return Recursive{Lvl: level, Masked: masked, Mask: mask}, nil
	}
}

// randMod draws a uniform value in [0, p) using a cryptographic RNG.
func randMod(p uint64) (uint64, error) {
	n, err := rand.Int(rand.Reader, new(big.Int).SetUint64(p))
	if err != nil {
		return 0, errs.Wrap(errs.BackendFailure, err, "manylevel: reading randomness")
	}
	return n.Uint64(), nil
}

// modP reduces a signed residue into [0, p).
func modP(v int64, p uint64) uint64 {
	m := v % int64(p)
	if m < 0 {
		m += int64(p)
	}
	return uint64(m)
}
