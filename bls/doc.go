// Package bls implements a pairing-based (BLS-style) signature scheme with
// signatures in G1 and keys in G2.
//
// A keypair consists of a generator g sampled freshly from G2, a secret
// scalar x and the public key g^x. The generator travels with the public
// key; verification needs both.
//
// # Signing and Verification
//
// A message m is hashed into G1 with the parameter set's domain separation
// tag, H(m), and the signature is H(m)^x. Verification accepts exactly when
//
//	e(signature, g) == e(H(m), g^x)
//
// which by bilinearity holds if and only if the signature was produced with
// the secret behind the public key.
//
// [Scheme.SignDigest] exponentiates an already hashed G1 element. It is the
// building block of blind partial signing in the threshold package, where
// the digest has been re-weighted before it reaches the signer.
//
// # Aggregation
//
// [Scheme.Aggregate] multiplies two G1 elements. The product is only a
// meaningful signature when both inputs are contributions over the same
// digest raised to complementary secret weights, as produced by the
// threshold package. No multi-key verification equation is provided, so
// aggregating signatures from unrelated keys or messages yields a value
// that verifies against nothing. Prefer threshold.Combine, which checks
// that its inputs belong together.
//
// # Example
//
//	s := bls.Default()
//	kp, _ := s.GenerateKey(rand.Reader)
//	sig, _ := s.Sign(kp.SecretKey, message)
//	ok := s.Verify(message, sig, kp.Generator, kp.PublicKey)
//
// Every operation also has a byte-level form (KeyGen, SignBytes,
// VerifyBytes, ...) that exchanges the fixed-length encodings used on
// chain.
package bls
