package threshold

import (
	"fmt"
	"io"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/pairing"
)

// RandBytes returns the encoding of a fresh blinding factor.
func RandBytes(rng io.Reader) ([]byte, error) {
	r, err := NewBlindingFactor(rng)
	if err != nil {
		return nil, err
	}
	defer r.Zeroize()
	return r.Bytes(), nil
}

// DeriveBytes is the byte-level form of [Derive]. g is a compressed G2
// generator, blind and sk are 32-byte scalars and id is an 8-byte
// big-endian tag. It returns the share secret and the compressed share
// public key.
func DeriveBytes(g, blind, id, sk []byte) (shareSK, sharePK []byte, err error) {
	gen, err := bls.DecodeGenerator(g)
	if err != nil {
		return nil, nil, err
	}
	tag, err := ParseTag(id)
	if err != nil {
		return nil, nil, err
	}
	rho, err := pairing.NewScalar().SetBytes(blind)
	if err != nil {
		return nil, nil, fmt.Errorf("threshold: decode blinding factor: %w", err)
	}
	defer rho.Zeroize()
	master, err := bls.DecodeSecretKey(sk)
	if err != nil {
		return nil, nil, err
	}
	defer master.Zeroize()

	share, err := Derive(gen, rho, tag, master)
	if err != nil {
		return nil, nil, err
	}
	defer share.Zeroize()
	return share.SecretKey.Bytes(), share.PublicKey.Bytes(), nil
}

// BlindBytes is the byte-level form of the weighting step of
// [BlindSign]. It returns the uncompressed weighted digest H(msg)^λ, the
// weighted secret λ·sk and the uncompressed digest H(msg). The partial
// signature is obtained by passing the weighted digest and the share
// secret to [bls.Scheme.SignDigestBytes].
func BlindBytes(scheme *bls.Scheme, msg, selfID, otherID, sk []byte) (weightedDigest, weightedSecret, digest []byte, err error) {
	self, err := ParseTag(selfID)
	if err != nil {
		return nil, nil, nil, err
	}
	other, err := ParseTag(otherID)
	if err != nil {
		return nil, nil, nil, err
	}
	x, err := bls.DecodeSecretKey(sk)
	if err != nil {
		return nil, nil, nil, err
	}
	defer x.Zeroize()

	c, err := BlindSign(scheme, msg, other, &Share{Tag: self, SecretKey: x})
	if err != nil {
		return nil, nil, nil, err
	}
	defer c.Zeroize()
	return c.WeightedDigest.RawBytes(), c.WeightedSecret.Bytes(), c.Digest.RawBytes(), nil
}

// RestoreBytes adds two encoded scalars modulo r.
func RestoreBytes(a, b []byte) ([]byte, error) {
	sa, err := pairing.NewScalar().SetBytes(a)
	if err != nil {
		return nil, fmt.Errorf("threshold: decode first secret: %w", err)
	}
	defer sa.Zeroize()
	sb, err := pairing.NewScalar().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("threshold: decode second secret: %w", err)
	}
	defer sb.Zeroize()

	out := Restore(sa, sb)
	defer out.Zeroize()
	return out.Bytes(), nil
}
