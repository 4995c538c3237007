package manylevel

import (
	"github.com/nthparty/lhe/config"
	"github.com/nthparty/lhe/errs"
	"github.com/nthparty/lhe/twolevel"
)

// Decrypt is the type-dispatching decryption entry point for the many_level
// namespace (spec §4.G). Recursive unwinds its Mask one level at a time;
// Quadratic resolves every unevaluated pair by decrypting both sides and
// multiplying in the clear.
func Decrypt(cfg config.Config, sk twolevel.SecretKey, ct Ciphertext) (int64, error) {
	p := int64(cfg.P())
	switch v := ct.(type) {
	case Level1:
		m, err := twolevel.Decrypt(sk, v.CT, cfg.DlogBound, false)
		if err != nil {
			return 0, err
		}
		return reduce(m, p), nil
	case Level2:
		m, err := twolevel.Decrypt(sk, v.CT, cfg.DlogBound, false)
		if err != nil {
			return 0, err
		}
		return reduce(m, p), nil
	case Recursive:
		inner, err := Decrypt(cfg, sk, v.Mask)
		if err != nil {
			return 0, err
		}
		return reduce(int64(v.Masked)+inner, p), nil
	case Quadratic:
		total := int64(v.BaseMasked)
		for _, pr := range v.Pairs {
			da, err := Decrypt(cfg, sk, pr.A)
			if err != nil {
				return 0, err
			}
			db, err := Decrypt(cfg, sk, pr.B)
			if err != nil {
				return 0, err
			}
			total += da * db
		}
		return reduce(total, p), nil
	default:
		return 0, errs.New(errs.TypeMismatch, "decrypt: unsupported ciphertext kind")
	}
}

func reduce(v, p int64) int64 {
	m := v % p
	if m < 0 {
		m += p
	}
	return m
}
