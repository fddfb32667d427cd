// Package session provides a high-level API for 2-of-2 blind signing
// ceremonies. It wraps the primitives in the [threshold] package with
// single-use types that enforce the protocol's ordering rules.
//
// For full control over the protocol, use the [threshold] package directly.
//
// # Sharing
//
// The owner of a master keypair creates a [Dealer] and runs one [Round]
// per sharing. A round samples a single blinding factor and derives each
// identity tag at most once:
//
//	d, err := session.NewDealer(scheme, keyPair)
//	if err != nil {
//		return err
//	}
//
//	round, err := d.NewRound(rand.Reader)
//	if err != nil {
//		return err
//	}
//
//	one, two, err := round.Split()
//
//	// Hand one.Share() and two.Share() to their holders
//
// Deriving a tag twice returns an error. Once both tags are derived the
// round zeroes its blinding factor.
//
// # Signing
//
// Each shareholder signs in a [SigningSession]. The counterpart tag is
// implied by the holder's own tag:
//
//	sess, err := one.NewSigningSession(message)
//	if err != nil {
//		return err
//	}
//
//	// Produce a contribution (consumes the session)
//	c1, err := sess.Sign()
//
//	// Coordinator combines both contributions
//	sig, err := session.Combine(scheme, c1, c2)
//	err = session.Verify(scheme, message, sig, d.Generator(), d.PublicKey())
//
// The SigningSession is designed to be used exactly once. Calling Sign a
// second time returns an error.
//
// # Transport Agnostic
//
// This package does not handle network communication or key storage.
// Moving shares and contributions between holders is up to the caller.
package session
