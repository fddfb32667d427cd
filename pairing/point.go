package pairing

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1 is a point of the first pairing group. Message digests and
// signatures are G1 points. The zero value is the identity.
type G1 struct {
	inner bls12381.G1Affine
}

// G2 is a point of the second pairing group. Generators and public keys
// are G2 points. The zero value is the identity.
type G2 struct {
	inner bls12381.G2Affine
}

// GT is an element of the pairing target group.
type GT struct {
	inner bls12381.GT
}

// NewG1 returns a new identity point in G1.
func NewG1() *G1 {
	return &G1{}
}

// NewG2 returns a new identity point in G2.
func NewG2() *G2 {
	return &G2{}
}

// G1Generator returns the standard base point of G1.
func G1Generator() *G1 {
	_, _, g1, _ := bls12381.Generators()
	return &G1{inner: g1}
}

// G2Generator returns the standard base point of G2.
func G2Generator() *G2 {
	_, _, _, g2 := bls12381.Generators()
	return &G2{inner: g2}
}

// RandomG2 returns a uniformly random non-identity point of G2.
func RandomG2(r io.Reader) (*G2, error) {
	k, err := RandomScalar(r)
	if err != nil {
		return nil, err
	}
	defer k.Zeroize()
	return NewG2().ScalarMult(k, G2Generator()), nil
}

// HashToG1 maps msg to a point of G1 using the RFC 9380 hash-to-curve
// construction under the domain separation tag dst.
func HashToG1(msg, dst []byte) (*G1, error) {
	h, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, fmt.Errorf("pairing: hash to G1: %w", err)
	}
	return &G1{inner: h}, nil
}

// Add sets p to a + b and returns p.
func (p *G1) Add(a, b *G1) *G1 {
	p.inner.Add(&a.inner, &b.inner)
	return p
}

// Neg sets p to -a and returns p.
func (p *G1) Neg(a *G1) *G1 {
	p.inner.Neg(&a.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G1) ScalarMult(s *Scalar, q *G1) *G1 {
	p.inner.ScalarMultiplication(&q.inner, s.bigInt())
	return p
}

// Set copies a into p and returns p.
func (p *G1) Set(a *G1) *G1 {
	p.inner.Set(&a.inner)
	return p
}

// Equal reports whether p and b are the same point.
func (p *G1) Equal(b *G1) bool {
	return p.inner.Equal(&b.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// Bytes returns the 48-byte compressed encoding of p.
func (p *G1) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// RawBytes returns the 96-byte uncompressed encoding of p.
func (p *G1) RawBytes() []byte {
	b := p.inner.RawBytes()
	return b[:]
}

// SetBytes sets p from a 48-byte compressed encoding and returns p.
func (p *G1) SetBytes(data []byte) (*G1, error) {
	if err := p.decode(data, G1CompressedSize); err != nil {
		return nil, err
	}
	return p, nil
}

// SetRawBytes sets p from a 96-byte uncompressed encoding and returns p.
func (p *G1) SetRawBytes(data []byte) (*G1, error) {
	if err := p.decode(data, G1UncompressedSize); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *G1) decode(data []byte, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: G1 point needs %d bytes, got %d", ErrInvalidLength, size, len(data))
	}
	var q bls12381.G1Affine
	n, err := q.SetBytes(data)
	if err != nil {
		return fmt.Errorf("%w: G1 point: %v", ErrInvalidEncoding, err)
	}
	if n != size {
		return fmt.Errorf("%w: G1 point: consumed %d of %d bytes", ErrInvalidEncoding, n, size)
	}
	p.inner = q
	return nil
}

// Add sets p to a + b and returns p.
func (p *G2) Add(a, b *G2) *G2 {
	p.inner.Add(&a.inner, &b.inner)
	return p
}

// Neg sets p to -a and returns p.
func (p *G2) Neg(a *G2) *G2 {
	p.inner.Neg(&a.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *G2) ScalarMult(s *Scalar, q *G2) *G2 {
	p.inner.ScalarMultiplication(&q.inner, s.bigInt())
	return p
}

// Set copies a into p and returns p.
func (p *G2) Set(a *G2) *G2 {
	p.inner.Set(&a.inner)
	return p
}

// Equal reports whether p and b are the same point.
func (p *G2) Equal(b *G2) bool {
	return p.inner.Equal(&b.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// Bytes returns the 96-byte compressed encoding of p.
func (p *G2) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// RawBytes returns the 192-byte uncompressed encoding of p.
func (p *G2) RawBytes() []byte {
	b := p.inner.RawBytes()
	return b[:]
}

// SetBytes sets p from a 96-byte compressed encoding and returns p.
func (p *G2) SetBytes(data []byte) (*G2, error) {
	if err := p.decode(data, G2CompressedSize); err != nil {
		return nil, err
	}
	return p, nil
}

// SetRawBytes sets p from a 192-byte uncompressed encoding and returns p.
func (p *G2) SetRawBytes(data []byte) (*G2, error) {
	if err := p.decode(data, G2UncompressedSize); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *G2) decode(data []byte, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: G2 point needs %d bytes, got %d", ErrInvalidLength, size, len(data))
	}
	var q bls12381.G2Affine
	n, err := q.SetBytes(data)
	if err != nil {
		return fmt.Errorf("%w: G2 point: %v", ErrInvalidEncoding, err)
	}
	if n != size {
		return fmt.Errorf("%w: G2 point: consumed %d of %d bytes", ErrInvalidEncoding, n, size)
	}
	p.inner = q
	return nil
}

// Pair evaluates the bilinear map e(p, q).
func Pair(p *G1, q *G2) (*GT, error) {
	t, err := bls12381.Pair([]bls12381.G1Affine{p.inner}, []bls12381.G2Affine{q.inner})
	if err != nil {
		return nil, fmt.Errorf("pairing: pair: %w", err)
	}
	return &GT{inner: t}, nil
}

// PairingCheck reports whether the product of e(ps[i], qs[i]) is the
// identity of GT.
func PairingCheck(ps []*G1, qs []*G2) (bool, error) {
	if len(ps) != len(qs) {
		return false, fmt.Errorf("pairing: %d G1 points but %d G2 points", len(ps), len(qs))
	}
	p := make([]bls12381.G1Affine, len(ps))
	q := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		p[i] = ps[i].inner
		q[i] = qs[i].inner
	}
	ok, err := bls12381.PairingCheck(p, q)
	if err != nil {
		return false, fmt.Errorf("pairing: pairing check: %w", err)
	}
	return ok, nil
}

// Equal reports whether t and b are the same target group element.
func (t *GT) Equal(b *GT) bool {
	return t.inner.Equal(&b.inner)
}
