package bls

import (
	"errors"
	"io"

	"github.com/f3rmion/pairlock/pairing"
)

var (
	// ErrZeroSecret is returned when a secret key is zero.
	ErrZeroSecret = errors.New("bls: secret key is zero")
	// ErrIdentityKey is returned when a generator or public key is the
	// identity element.
	ErrIdentityKey = errors.New("bls: generator or public key is the identity")
)

// Scheme holds the public parameters shared by every operation.
type Scheme struct {
	params *pairing.Params
}

// KeyPair is a master keypair: a per-keypair generator of G2, the secret
// scalar and the matching public key g^SecretKey.
type KeyPair struct {
	Generator *pairing.G2
	SecretKey *pairing.Scalar
	PublicKey *pairing.G2
}

// New creates a Scheme over the given parameters.
// A nil params uses [pairing.Default].
func New(params *pairing.Params) *Scheme {
	if params == nil {
		params = pairing.Default()
	}
	return &Scheme{params: params}
}

var defaultScheme = New(nil)

// Default returns the Scheme over [pairing.Default].
func Default() *Scheme {
	return defaultScheme
}

// Params returns the scheme's public parameters.
func (s *Scheme) Params() *pairing.Params {
	return s.params
}

// GenerateKey samples a generator g from G2 and a secret x from Zr, and
// returns them together with the public key g^x.
func (s *Scheme) GenerateKey(r io.Reader) (*KeyPair, error) {
	g, err := pairing.RandomG2(r)
	if err != nil {
		return nil, err
	}
	x, err := pairing.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		Generator: g,
		SecretKey: x,
		PublicKey: PublicKey(g, x),
	}, nil
}

// PublicKey returns g^x.
func PublicKey(g *pairing.G2, x *pairing.Scalar) *pairing.G2 {
	return pairing.NewG2().ScalarMult(x, g)
}

// Encode returns the secret key as a scalar encoding and the public key
// and generator in compressed form.
func (kp *KeyPair) Encode() (sk, pk, g []byte) {
	return kp.SecretKey.Bytes(), kp.PublicKey.Bytes(), kp.Generator.Bytes()
}

// Check reports whether PublicKey == Generator^SecretKey.
func (kp *KeyPair) Check() bool {
	return PublicKey(kp.Generator, kp.SecretKey).Equal(kp.PublicKey)
}

// Zeroize overwrites the secret key.
func (kp *KeyPair) Zeroize() {
	kp.SecretKey.Zeroize()
}
