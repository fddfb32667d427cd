package session

import (
	"errors"
	"io"
	"sync"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/pairing"
	"github.com/f3rmion/pairlock/threshold"
)

// SigningSession produces one blind partial signature. Each session can
// only be used once; attempting to sign twice returns an error.
//
// Create sessions using [Shareholder.NewSigningSession].
type SigningSession struct {
	mu       sync.Mutex
	scheme   *bls.Scheme
	share    *threshold.Share
	other    threshold.Tag
	message  []byte
	consumed bool
}

// NewSigningSession creates a signing session for message. The counterpart
// tag is implied by the shareholder's own tag.
func (s *Shareholder) NewSigningSession(message []byte) (*SigningSession, error) {
	other, err := s.share.Tag.Counterpart()
	if err != nil {
		return nil, err
	}

	// Copy message to prevent external modification
	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	share := &threshold.Share{
		Tag:       s.share.Tag,
		SecretKey: pairing.NewScalar().Set(s.share.SecretKey),
		PublicKey: s.share.PublicKey,
	}

	return &SigningSession{
		scheme:  s.scheme,
		share:   share,
		other:   other,
		message: msgCopy,
	}, nil
}

// Message returns the message being signed.
func (s *SigningSession) Message() []byte {
	return s.message
}

// Sign produces this shareholder's contribution.
//
// This method consumes the session. After Sign returns (successfully or
// not), the session's copy of the share secret is zeroed.
func (s *SigningSession) Sign() (*threshold.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return nil, errors.New("session: already consumed")
	}
	s.consumed = true
	defer s.share.Zeroize()

	return threshold.BlindSign(s.scheme, s.message, s.other, s.share)
}

// IsConsumed returns true if this session has already been used for signing.
func (s *SigningSession) IsConsumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}

// Combine joins both shareholders' contributions into the master
// signature.
//
// This is typically called by a coordinator after collecting the
// contributions.
func Combine(scheme *bls.Scheme, a, b *threshold.Contribution) (*pairing.G1, error) {
	if a == nil || b == nil {
		return nil, errors.New("session: missing contribution")
	}
	return threshold.Combine(scheme, a, b)
}

// Verify checks whether sig is valid for message under the master
// generator and public key.
//
// Returns nil if the signature is valid, or an error describing why it's invalid.
func Verify(scheme *bls.Scheme, message []byte, sig *pairing.G1, g, pk *pairing.G2) error {
	if !scheme.Verify(message, sig, g, pk) {
		return errors.New("session: signature verification failed")
	}
	return nil
}

// RestoreSecret recovers the master secret from both contributions.
func RestoreSecret(a, b *threshold.Contribution) (*pairing.Scalar, error) {
	if a == nil || b == nil {
		return nil, errors.New("session: missing contribution")
	}
	return threshold.RestoreContributions(a, b)
}

// QuickSign runs a full sharing round and both signing sessions in
// process, returning the combined signature. Intended for tests and tools
// where both shares live in one place.
func QuickSign(rng io.Reader, d *Dealer, message []byte) (*pairing.G1, error) {
	round, err := d.NewRound(rng)
	if err != nil {
		return nil, err
	}
	defer round.Close()

	one, two, err := round.Split()
	if err != nil {
		return nil, err
	}
	defer one.Zeroize()
	defer two.Zeroize()

	s1, err := one.NewSigningSession(message)
	if err != nil {
		return nil, err
	}
	s2, err := two.NewSigningSession(message)
	if err != nil {
		return nil, err
	}

	c1, err := s1.Sign()
	if err != nil {
		return nil, err
	}
	defer c1.Zeroize()
	c2, err := s2.Sign()
	if err != nil {
		return nil, err
	}
	defer c2.Zeroize()

	return Combine(d.scheme, c1, c2)
}
