package pairing

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var (
	// ErrInvalidLength is returned when an encoding has the wrong size.
	ErrInvalidLength = errors.New("pairing: invalid encoding length")
	// ErrInvalidEncoding is returned when bytes do not represent a valid
	// field or group element.
	ErrInvalidEncoding = errors.New("pairing: invalid encoding")
	// ErrZeroDivisor is returned when inverting or dividing by zero.
	ErrZeroDivisor = errors.New("pairing: division by zero scalar")
)

// randomBytes is the number of bytes drawn per random scalar. Reducing 48
// bytes modulo the 255-bit order leaves a bias below 2^-128.
const randomBytes = 48

// Scalar is an element of Zr. The zero value is the scalar 0.
//
// All arithmetic operations reduce modulo the group order r.
type Scalar struct {
	inner fr.Element
}

// NewScalar returns a new zero scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// ScalarFromUint64 returns the scalar v mod r.
func ScalarFromUint64(v uint64) *Scalar {
	s := NewScalar()
	s.inner.SetUint64(v)
	return s
}

// RandomScalar returns a uniformly random non-zero scalar read from r.
func RandomScalar(r io.Reader) (*Scalar, error) {
	var buf [randomBytes]byte
	defer clear(buf[:])
	s := NewScalar()
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("pairing: read randomness: %w", err)
		}
		s.inner.SetBytes(buf[:])
		if !s.inner.IsZero() {
			return s, nil
		}
	}
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.inner.Add(&a.inner, &b.inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.inner.Sub(&a.inner, &b.inner)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.inner.Mul(&a.inner, &b.inner)
	return s
}

// Div sets s to a / b and returns s.
// Returns an error if b is zero.
func (s *Scalar) Div(a, b *Scalar) (*Scalar, error) {
	if b.IsZero() {
		return nil, ErrZeroDivisor
	}
	s.inner.Div(&a.inner, &b.inner)
	return s, nil
}

// Negate sets s to -a and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.inner.Neg(&a.inner)
	return s
}

// Invert sets s to a^(-1) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, ErrZeroDivisor
	}
	s.inner.Inverse(&a.inner)
	return s, nil
}

// Set copies a into s and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.inner.Set(&a.inner)
	return s
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a 32-byte big-endian encoding and returns s.
// The value must be canonical, i.e. strictly less than r.
func (s *Scalar) SetBytes(data []byte) (*Scalar, error) {
	if len(data) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar needs %d bytes, got %d", ErrInvalidLength, ScalarSize, len(data))
	}
	var e fr.Element
	if err := e.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("%w: scalar: %v", ErrInvalidEncoding, err)
	}
	s.inner = e
	return s, nil
}

// Equal reports whether s and b are the same scalar.
func (s *Scalar) Equal(b *Scalar) bool {
	return s.inner.Equal(&b.inner)
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize overwrites s with zero.
func (s *Scalar) Zeroize() {
	if s == nil {
		return
	}
	s.inner.SetZero()
}

// String returns the decimal representation of s.
func (s *Scalar) String() string {
	return s.bigInt().String()
}

func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}
