package bls

import (
	"fmt"
	"io"

	"github.com/f3rmion/pairlock/pairing"
)

// KeyGen generates a keypair and returns its encodings: the secret key as
// a 32-byte scalar, the public key and generator compressed.
func (s *Scheme) KeyGen(r io.Reader) (sk, pk, g []byte, err error) {
	kp, err := s.GenerateKey(r)
	if err != nil {
		return nil, nil, nil, err
	}
	defer kp.Zeroize()
	sk, pk, g = kp.Encode()
	return sk, pk, g, nil
}

// SignBytes signs msg with the encoded secret key and returns the
// compressed signature.
func (s *Scheme) SignBytes(sk, msg []byte) ([]byte, error) {
	x, err := DecodeSecretKey(sk)
	if err != nil {
		return nil, err
	}
	defer x.Zeroize()

	sig, err := s.Sign(x, msg)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

// SignDigestBytes exponentiates an uncompressed G1 digest by the encoded
// secret key and returns the compressed result.
func (s *Scheme) SignDigestBytes(sk, digest []byte) ([]byte, error) {
	x, err := DecodeSecretKey(sk)
	if err != nil {
		return nil, err
	}
	defer x.Zeroize()

	h, err := pairing.NewG1().SetRawBytes(digest)
	if err != nil {
		return nil, fmt.Errorf("bls: decode digest: %w", err)
	}
	return s.SignDigest(x, h).Bytes(), nil
}

// VerifyBytes decodes a compressed signature, generator and public key and
// verifies the signature on msg. Malformed encodings verify as false.
func (s *Scheme) VerifyBytes(msg, sig, g, pk []byte) bool {
	sigma, err := DecodeSignature(sig)
	if err != nil {
		return false
	}
	gen, err := DecodeGenerator(g)
	if err != nil {
		return false
	}
	pub, err := DecodePublicKey(pk)
	if err != nil {
		return false
	}
	return s.Verify(msg, sigma, gen, pub)
}

// AggregateBytes multiplies two compressed G1 elements.
func (s *Scheme) AggregateBytes(a, b []byte) ([]byte, error) {
	sa, err := DecodeSignature(a)
	if err != nil {
		return nil, err
	}
	sb, err := DecodeSignature(b)
	if err != nil {
		return nil, err
	}
	return s.Aggregate(sa, sb).Bytes(), nil
}

// DecodeSecretKey decodes a 32-byte secret key. Zero is rejected.
func DecodeSecretKey(data []byte) (*pairing.Scalar, error) {
	x, err := pairing.NewScalar().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: decode secret key: %w", err)
	}
	if x.IsZero() {
		return nil, ErrZeroSecret
	}
	return x, nil
}

// DecodePublicKey decodes a compressed G2 public key. The identity is
// rejected.
func DecodePublicKey(data []byte) (*pairing.G2, error) {
	return decodeKeyPoint("public key", data)
}

// DecodeGenerator decodes a compressed G2 generator. The identity is
// rejected.
func DecodeGenerator(data []byte) (*pairing.G2, error) {
	return decodeKeyPoint("generator", data)
}

// DecodeSignature decodes a compressed G1 signature.
func DecodeSignature(data []byte) (*pairing.G1, error) {
	sig, err := pairing.NewG1().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: decode signature: %w", err)
	}
	return sig, nil
}

func decodeKeyPoint(what string, data []byte) (*pairing.G2, error) {
	p, err := pairing.NewG2().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("bls: decode %s: %w", what, err)
	}
	if p.IsIdentity() {
		return nil, fmt.Errorf("bls: decode %s: %w", what, ErrIdentityKey)
	}
	return p, nil
}
