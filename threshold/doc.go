// Package threshold implements identity-based 2-of-2 sharing of a BLS
// secret key together with blind partial signing and restoration.
//
// # Sharing
//
// The owner of a master secret x samples a blinding factor ρ and defines
// the degree-1 polynomial f(t) = ρ·t + x. Each shareholder receives the
// evaluation at its identity tag:
//
//	x_1 = ρ + x      P_1 = g^x_1
//	x_2 = 2ρ + x     P_2 = g^x_2
//
// Both shares must be derived with the same ρ. Shares derived with
// different blinding factors do not recombine to x.
//
// # Blind Partial Signing
//
// To sign a message m, each shareholder weights its share with the
// Lagrange coefficient for interpolation at zero,
//
//	λ_self = (0 - other) / (self - other)
//
// which gives λ_1 = 2 and λ_2 = -1. A shareholder hashes m to H, raises
// it to λ_self and then to its share secret, yielding the partial
// signature H^(λ_self·x_self). [Combine] multiplies the two partials:
//
//	H^(2·x_1) · H^(-x_2) = H^(2ρ + 2x - 2ρ - x) = H^x
//
// which is exactly the signature of m under the master key and verifies
// against (g, g^x) with the bls package.
//
// # Restoration
//
// [Restore] adds the two weighted secrets λ_1·x_1 + λ_2·x_2 and returns
// the master secret. Only use it when reconstructing the key is intended.
//
// # Example
//
//	blind, _ := threshold.NewBlindingFactor(rand.Reader)
//	s1, _ := threshold.Derive(g, blind, threshold.TagOne, x)
//	s2, _ := threshold.Derive(g, blind, threshold.TagTwo, x)
//	blind.Zeroize()
//
//	c1, _ := threshold.BlindSign(scheme, msg, threshold.TagTwo, s1)
//	c2, _ := threshold.BlindSign(scheme, msg, threshold.TagOne, s2)
//	sig, _ := threshold.Combine(scheme, c1, c2)
//
// The session package wraps this flow in single-use types that enforce
// the ordering rules above.
package threshold
