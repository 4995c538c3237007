// Package pairing is the thin backend adapter over a Type-3 asymmetric
// bilinear pairing (G1, G2, GT) of prime order, backed by
// github.com/consensys/gnark-crypto's bn254 curve. It exposes exactly the
// algebraic surface the rest of this module needs: a scalar field Fr, the
// two source groups G1/G2, the target group GT, and the pairing e(.,.).
//
// Everything below this package (curve selection, field arithmetic,
// hash-to-curve, the pairing itself) is out of scope for the encryption
// scheme; this package only wraps it in a stable, curve-agnostic shape.
package pairing
