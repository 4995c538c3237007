package pairing

import (
	"sync"

	"github.com/pkg/errors"
)

// fixed public labels hashed to curve to derive the process-wide generators,
// per spec §6.1. Any backend hashing these same ASCII bytes to the same
// curve with the same suite interoperates with this one.
const (
	g1Label = "Fixed public point in Group 1"
	g2Label = "Fixed public point in Group 2"
)

// Params bundles the fixed public generators g1, g2 and z = e(g1, g2). It is
// computed once, on the first GlobalParams call, from deterministic
// hash-to-curve and is held immutably for the process lifetime; callers
// obtain it through GlobalParams or MustGlobalParams.
type Params struct {
	G1 G1
	G2 G2
	Z  GT
}

var (
	globalParams     *Params
	globalParamsErr  error
	globalParamsOnce sync.Once
)

func computeParams() (*Params, error) {
	g1, err := hashToG1(g1Label)
	if err != nil {
		return nil, errors.Wrap(err, "pairing: derive g1 generator")
	}
	g2, err := hashToG2(g2Label)
	if err != nil {
		return nil, errors.Wrap(err, "pairing: derive g2 generator")
	}
	z, err := Pair(g1, g2)
	if err != nil {
		return nil, errors.Wrap(err, "pairing: derive z = e(g1, g2)")
	}
	return &Params{G1: g1, G2: g2, Z: z}, nil
}

// GlobalParams returns the process-wide generators, computing them on first
// use and caching the result for every subsequent call.
func GlobalParams() (*Params, error) {
	globalParamsOnce.Do(func() {
		globalParams, globalParamsErr = computeParams()
	})
	return globalParams, globalParamsErr
}

// MustGlobalParams is GlobalParams for call sites that treat a backend
// failure here as fatal, per spec §4.B ("fails only if the backend's RNG
// [or deterministic setup] fails; treat as fatal").
func MustGlobalParams() *Params {
	p, err := GlobalParams()
	if err != nil {
		panic(err)
	}
	return p
}
