package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/pairing"
	"github.com/f3rmion/pairlock/threshold"
)

// Dealer owns a master keypair and splits it into shares. Create instances
// using [NewDealer].
type Dealer struct {
	scheme  *bls.Scheme
	keyPair *bls.KeyPair
}

// NewDealer creates a dealer for the given master keypair. A nil scheme
// uses [bls.Default].
func NewDealer(scheme *bls.Scheme, kp *bls.KeyPair) (*Dealer, error) {
	if scheme == nil {
		scheme = bls.Default()
	}
	if kp == nil || kp.SecretKey == nil || kp.Generator == nil || kp.PublicKey == nil {
		return nil, errors.New("session: incomplete master keypair")
	}
	if kp.SecretKey.IsZero() {
		return nil, bls.ErrZeroSecret
	}
	if !kp.Check() {
		return nil, errors.New("session: public key does not match generator and secret")
	}
	return &Dealer{scheme: scheme, keyPair: kp}, nil
}

// Scheme returns the signature scheme shared by all shareholders.
func (d *Dealer) Scheme() *bls.Scheme {
	return d.scheme
}

// Generator returns the master generator.
func (d *Dealer) Generator() *pairing.G2 {
	return d.keyPair.Generator
}

// PublicKey returns the master public key. Combined signatures verify
// against it.
func (d *Dealer) PublicKey() *pairing.G2 {
	return d.keyPair.PublicKey
}

// Round is one sharing of the master key. It samples a single blinding
// factor and hands out each identity tag at most once, so both shares are
// guaranteed to lie on the same polynomial.
//
// The blinding factor is zeroed as soon as both tags have been derived.
type Round struct {
	mu      sync.Mutex
	dealer  *Dealer
	blind   *pairing.Scalar
	master  *pairing.Scalar
	derived map[threshold.Tag]bool
}

// NewRound starts a sharing round with a fresh blinding factor.
func (d *Dealer) NewRound(rng io.Reader) (*Round, error) {
	blind, err := threshold.NewBlindingFactor(rng)
	if err != nil {
		return nil, fmt.Errorf("session: sample blinding factor: %w", err)
	}
	return &Round{
		dealer:  d,
		blind:   blind,
		master:  pairing.NewScalar().Set(d.keyPair.SecretKey),
		derived: make(map[threshold.Tag]bool, 2),
	}, nil
}

// Derive returns the shareholder for tag. Each tag can be derived once
// per round.
func (r *Round) Derive(tag threshold.Tag) (*Shareholder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !tag.Valid() {
		return nil, fmt.Errorf("%w: got %d", threshold.ErrInvalidTag, uint64(tag))
	}
	if r.derived[tag] {
		return nil, fmt.Errorf("session: tag %s already derived in this round", tag)
	}
	if r.blind == nil {
		return nil, errors.New("session: round already closed")
	}

	share, err := threshold.Derive(r.dealer.keyPair.Generator, r.blind, tag, r.master)
	if err != nil {
		return nil, err
	}
	r.derived[tag] = true
	if len(r.derived) == 2 {
		r.close()
	}

	return &Shareholder{
		scheme:    r.dealer.scheme,
		generator: r.dealer.keyPair.Generator,
		share:     share,
	}, nil
}

// Split derives both shareholders and closes the round.
func (r *Round) Split() (*Shareholder, *Shareholder, error) {
	one, err := r.Derive(threshold.TagOne)
	if err != nil {
		return nil, nil, err
	}
	two, err := r.Derive(threshold.TagTwo)
	if err != nil {
		one.Zeroize()
		return nil, nil, err
	}
	return one, two, nil
}

// Close zeroes the round's secrets. Tags not yet derived can no longer be
// obtained.
func (r *Round) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.close()
}

// IsClosed returns true once the round's secrets have been released.
func (r *Round) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blind == nil
}

func (r *Round) close() {
	r.blind.Zeroize()
	r.master.Zeroize()
	r.blind = nil
	r.master = nil
}

// Shareholder holds one share of the master key.
type Shareholder struct {
	scheme    *bls.Scheme
	generator *pairing.G2
	share     *threshold.Share
}

// NewShareholder restores a shareholder from a previously saved share.
// The share is checked against the generator.
func NewShareholder(scheme *bls.Scheme, g *pairing.G2, share *threshold.Share) (*Shareholder, error) {
	if scheme == nil {
		scheme = bls.Default()
	}
	if !share.Tag.Valid() {
		return nil, fmt.Errorf("%w: got %d", threshold.ErrInvalidTag, uint64(share.Tag))
	}
	if !share.Check(g) {
		return nil, errors.New("session: share public key does not match generator and secret")
	}
	return &Shareholder{scheme: scheme, generator: g, share: share}, nil
}

// Tag returns this shareholder's identity tag.
func (s *Shareholder) Tag() threshold.Tag {
	return s.share.Tag
}

// Share returns the underlying share. Store it securely.
func (s *Shareholder) Share() *threshold.Share {
	return s.share
}

// PublicKey returns the share public key g^x_tag.
func (s *Shareholder) PublicKey() *pairing.G2 {
	return s.share.PublicKey
}

// Zeroize overwrites the share secret.
func (s *Shareholder) Zeroize() {
	s.share.Zeroize()
}
