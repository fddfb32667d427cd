package pairing

import (
	"errors"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Encoding sizes in bytes.
const (
	ScalarSize         = fr.Bytes
	G1CompressedSize   = bls12381.SizeOfG1AffineCompressed
	G1UncompressedSize = bls12381.SizeOfG1AffineUncompressed
	G2CompressedSize   = bls12381.SizeOfG2AffineCompressed
	G2UncompressedSize = bls12381.SizeOfG2AffineUncompressed
)

// DefaultDST is the hash-to-curve domain separation tag used by [Default].
const DefaultDST = "PAIRLOCK-V01-CS01-with-BLS12381G1_XMD:SHA-256_SSWU_RO_"

// CurveName identifies the curve behind every Params value.
const CurveName = "BLS12-381"

// Params is the immutable public parameter set shared by all participants:
// the curve description, the scalar field order r and the domain
// separation tag used to hash messages into G1.
//
// Params values are safe for concurrent use. Create them with [NewParams]
// or use the shared instance returned by [Default].
type Params struct {
	dst     []byte
	order   *big.Int
	modulus *big.Int
}

var (
	defaultOnce   sync.Once
	defaultParams *Params
)

// Default returns the process-wide parameter set using [DefaultDST].
// It is constructed once on first use.
func Default() *Params {
	defaultOnce.Do(func() {
		p, err := NewParams([]byte(DefaultDST))
		if err != nil {
			panic("pairing: default parameters: " + err.Error())
		}
		defaultParams = p
	})
	return defaultParams
}

// NewParams returns a parameter set that hashes messages under dst.
// The tag must be non-empty and at most 255 bytes (RFC 9380).
func NewParams(dst []byte) (*Params, error) {
	if len(dst) == 0 {
		return nil, errors.New("pairing: empty domain separation tag")
	}
	if len(dst) > 255 {
		return nil, errors.New("pairing: domain separation tag longer than 255 bytes")
	}
	d := make([]byte, len(dst))
	copy(d, dst)
	return &Params{
		dst:     d,
		order:   fr.Modulus(),
		modulus: fp.Modulus(),
	}, nil
}

// Name returns the curve name.
func (p *Params) Name() string {
	return CurveName
}

// DST returns a copy of the domain separation tag.
func (p *Params) DST() []byte {
	d := make([]byte, len(p.dst))
	copy(d, p.dst)
	return d
}

// Order returns a copy of the scalar field order r.
func (p *Params) Order() *big.Int {
	return new(big.Int).Set(p.order)
}

// Modulus returns a copy of the base field modulus q.
func (p *Params) Modulus() *big.Int {
	return new(big.Int).Set(p.modulus)
}

// HashToG1 maps msg to a G1 point under this parameter set's tag.
func (p *Params) HashToG1(msg []byte) (*G1, error) {
	return HashToG1(msg, p.dst)
}
