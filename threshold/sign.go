package threshold

import (
	"errors"
	"fmt"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/pairing"
)

var (
	// ErrDigestMismatch is returned when two contributions were computed
	// over different messages.
	ErrDigestMismatch = errors.New("threshold: contributions sign different digests")
	// ErrDuplicateTag is returned when both contributions carry the same tag.
	ErrDuplicateTag = errors.New("threshold: contributions from the same shareholder")
)

// Contribution is one shareholder's output of blind partial signing.
type Contribution struct {
	// Tag identifies the shareholder that produced the contribution.
	Tag Tag

	// WeightedSecret is λ·x_tag. It is secret; adding both shareholders'
	// values restores the master key.
	WeightedSecret *pairing.Scalar

	// WeightedDigest is H(m)^λ.
	WeightedDigest *pairing.G1

	// Digest is H(m).
	Digest *pairing.G1

	// Partial is WeightedDigest^x_tag, the value combined into the final
	// signature.
	Partial *pairing.G1
}

// Zeroize overwrites the weighted secret.
func (c *Contribution) Zeroize() {
	c.WeightedSecret.Zeroize()
}

// Lagrange returns the coefficient that interpolates the sharing
// polynomial at zero from the points self and other:
//
//	λ = (0 - other) / (self - other) mod r
func Lagrange(self, other Tag) (*pairing.Scalar, error) {
	if err := checkPair(self, other); err != nil {
		return nil, err
	}

	num := pairing.NewScalar().Negate(other.Scalar())
	den := pairing.NewScalar().Sub(self.Scalar(), other.Scalar())
	return pairing.NewScalar().Div(num, den)
}

// BlindSign hashes msg, weights the digest with the Lagrange coefficient
// of share.Tag against other and signs the weighted digest with the share
// secret.
func BlindSign(scheme *bls.Scheme, msg []byte, other Tag, share *Share) (*Contribution, error) {
	lambda, err := Lagrange(share.Tag, other)
	if err != nil {
		return nil, err
	}
	defer lambda.Zeroize()

	h, err := scheme.Digest(msg)
	if err != nil {
		return nil, err
	}

	weighted := scheme.SignDigest(lambda, h)
	return &Contribution{
		Tag:            share.Tag,
		WeightedSecret: pairing.NewScalar().Mul(lambda, share.SecretKey),
		WeightedDigest: weighted,
		Digest:         h,
		Partial:        scheme.SignDigest(share.SecretKey, weighted),
	}, nil
}

// Combine aggregates the partial signatures of both shareholders into the
// signature of the master key. The contributions must come from distinct
// shareholders and cover the same digest.
func Combine(scheme *bls.Scheme, a, b *Contribution) (*pairing.G1, error) {
	if err := checkPair(a.Tag, b.Tag); err != nil {
		if errors.Is(err, ErrSameTag) {
			return nil, ErrDuplicateTag
		}
		return nil, err
	}
	if !a.Digest.Equal(b.Digest) {
		return nil, ErrDigestMismatch
	}
	return scheme.Aggregate(a.Partial, b.Partial), nil
}

// Restore returns a + b mod r. Applied to both weighted secrets of one
// sharing it yields the master secret key.
func Restore(a, b *pairing.Scalar) *pairing.Scalar {
	return pairing.NewScalar().Add(a, b)
}

// RestoreContributions restores the master secret from two contributions
// of distinct shareholders.
func RestoreContributions(a, b *Contribution) (*pairing.Scalar, error) {
	if a.Tag == b.Tag {
		return nil, fmt.Errorf("%w: both are %s", ErrDuplicateTag, a.Tag)
	}
	return Restore(a.WeightedSecret, b.WeightedSecret), nil
}
