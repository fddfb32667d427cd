package bls

import (
	"github.com/f3rmion/pairlock/pairing"
)

// Digest hashes msg into G1 under the scheme's domain separation tag.
func (s *Scheme) Digest(msg []byte) (*pairing.G1, error) {
	return s.params.HashToG1(msg)
}

// Sign returns H(msg)^sk.
func (s *Scheme) Sign(sk *pairing.Scalar, msg []byte) (*pairing.G1, error) {
	if sk.IsZero() {
		return nil, ErrZeroSecret
	}
	h, err := s.Digest(msg)
	if err != nil {
		return nil, err
	}
	return s.SignDigest(sk, h), nil
}

// SignDigest returns digest^sk for a digest that was already mapped into G1
// by an earlier protocol step.
func (s *Scheme) SignDigest(sk *pairing.Scalar, digest *pairing.G1) *pairing.G1 {
	return pairing.NewG1().ScalarMult(sk, digest)
}

// Verify reports whether sig is a valid signature on msg for the public
// key pk under generator g, i.e. whether e(sig, g) == e(H(msg), pk).
func (s *Scheme) Verify(msg []byte, sig *pairing.G1, g, pk *pairing.G2) bool {
	if g.IsIdentity() || pk.IsIdentity() {
		return false
	}
	h, err := s.Digest(msg)
	if err != nil {
		return false
	}

	// e(sig, g) * e(-H(msg), pk) == 1
	negH := pairing.NewG1().Neg(h)
	ok, err := pairing.PairingCheck([]*pairing.G1{sig, negH}, []*pairing.G2{g, pk})
	if err != nil {
		return false
	}
	return ok
}

// Aggregate returns the group product a*b.
//
// The result is a valid signature only when a and b are complementary
// partial contributions over the same digest; see the package
// documentation.
func (s *Scheme) Aggregate(a, b *pairing.G1) *pairing.G1 {
	return pairing.NewG1().Add(a, b)
}
