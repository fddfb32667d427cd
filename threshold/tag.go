package threshold

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/f3rmion/pairlock/pairing"
)

// TagSize is the length of an encoded identity tag.
const TagSize = 8

var (
	// ErrInvalidTag is returned for identity tags other than 1 and 2.
	ErrInvalidTag = errors.New("threshold: identity tag must be 1 or 2")
	// ErrSameTag is returned when a shareholder names itself as counterpart.
	ErrSameTag = errors.New("threshold: self and counterpart tags are equal")
)

// Tag identifies one of the two shareholders. It is the x-coordinate at
// which the sharing polynomial is evaluated.
type Tag uint64

const (
	TagOne Tag = 1
	TagTwo Tag = 2
)

// Valid reports whether t is TagOne or TagTwo.
func (t Tag) Valid() bool {
	return t == TagOne || t == TagTwo
}

// Counterpart returns the other shareholder's tag.
func (t Tag) Counterpart() (Tag, error) {
	switch t {
	case TagOne:
		return TagTwo, nil
	case TagTwo:
		return TagOne, nil
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidTag, uint64(t))
}

// Scalar returns t as an element of Zr.
func (t Tag) Scalar() *pairing.Scalar {
	return pairing.ScalarFromUint64(uint64(t))
}

// Bytes returns the 8-byte big-endian encoding of t.
func (t Tag) Bytes() []byte {
	b := make([]byte, TagSize)
	binary.BigEndian.PutUint64(b, uint64(t))
	return b
}

func (t Tag) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// ParseTag decodes an 8-byte big-endian identity tag. Only 1 and 2 are
// accepted.
func ParseTag(data []byte) (Tag, error) {
	if len(data) != TagSize {
		return 0, fmt.Errorf("%w: tag needs %d bytes, got %d", pairing.ErrInvalidLength, TagSize, len(data))
	}
	t := Tag(binary.BigEndian.Uint64(data))
	if !t.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTag, uint64(t))
	}
	return t, nil
}

func checkPair(self, other Tag) error {
	if !self.Valid() {
		return fmt.Errorf("%w: self is %d", ErrInvalidTag, uint64(self))
	}
	if !other.Valid() {
		return fmt.Errorf("%w: counterpart is %d", ErrInvalidTag, uint64(other))
	}
	if self == other {
		return ErrSameTag
	}
	return nil
}
