// Package pairing wraps the BLS12-381 pairing-friendly curve from
// gnark-crypto with the small set of operations the signature protocol
// needs.
//
// It exposes four element types:
//
//   - [Scalar]: elements of the scalar field Zr (integers modulo the group order r)
//   - [G1]: points of the signature group; message digests and signatures live here
//   - [G2]: points of the key group; generators and public keys live here
//   - [GT]: elements of the pairing target group
//
// # Design Philosophy
//
// Arithmetic methods use a mutable receiver pattern. Operations like Add,
// Mul and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := pairing.NewScalar().Mul(b, c)
//	result = pairing.NewScalar().Add(a, result)
//
// Every decoding method checks the exact input length before parsing and
// rejects points that are not on the curve or not in the prime-order
// subgroup. Failures are reported as [ErrInvalidLength] or wrap
// [ErrInvalidEncoding]; nothing in this package panics on untrusted input.
//
// # Encodings
//
// Scalars encode to 32 big-endian bytes. Points have a compressed form
// (x coordinate plus flag bits) and an uncompressed form (both
// coordinates):
//
//	G1: 48 bytes compressed, 96 bytes uncompressed
//	G2: 96 bytes compressed, 192 bytes uncompressed
//
// # Parameters
//
// [Params] carries the immutable curve description and the hash-to-curve
// domain separation tag. [Default] returns a process-wide instance built
// once on first use.
//
// # Security Considerations
//
//   - Scalar arithmetic is performed modulo r
//   - Random scalars must come from a cryptographically secure reader
//   - Secret scalars should be released with [Scalar.Zeroize] once no longer
//     needed; Go does not guarantee that copies made by the runtime are wiped
package pairing
