package manylevel

import "github.com/nthparty/lhe/twolevel"

// Keygen generates a fresh key pair. The recursive construction shares its
// key material with two_level: masking never changes the underlying group
// elements, only how plaintexts are packaged around them.
func Keygen() (twolevel.SecretKey, twolevel.PublicKey, error) {
	return twolevel.Keygen()
}
