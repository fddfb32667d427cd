package threshold

import (
	"fmt"
	"io"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/pairing"
)

// Share is one shareholder's derived keypair: the evaluation of the
// sharing polynomial at Tag and the matching public key.
type Share struct {
	Tag       Tag
	SecretKey *pairing.Scalar
	PublicKey *pairing.G2
}

// NewBlindingFactor samples the random slope of the sharing polynomial.
// The same factor must be used for both tags of one sharing.
func NewBlindingFactor(rng io.Reader) (*pairing.Scalar, error) {
	return pairing.RandomScalar(rng)
}

// Derive computes the share for tag: x_tag = blind·tag + master and
// P_tag = g^x_tag.
func Derive(g *pairing.G2, blind *pairing.Scalar, tag Tag, master *pairing.Scalar) (*Share, error) {
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTag, uint64(tag))
	}
	if g.IsIdentity() {
		return nil, bls.ErrIdentityKey
	}
	if master.IsZero() {
		return nil, bls.ErrZeroSecret
	}

	x := pairing.NewScalar().Mul(blind, tag.Scalar())
	x.Add(x, master)

	return &Share{
		Tag:       tag,
		SecretKey: x,
		PublicKey: bls.PublicKey(g, x),
	}, nil
}

// Check reports whether PublicKey == g^SecretKey.
func (s *Share) Check(g *pairing.G2) bool {
	return bls.PublicKey(g, s.SecretKey).Equal(s.PublicKey)
}

// Zeroize overwrites the share secret.
func (s *Share) Zeroize() {
	s.SecretKey.Zeroize()
}
