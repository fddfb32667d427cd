// Package lockscript implements the verification side of a blockchain lock
// script authorized by a pairing-based signature.
//
// A cell locked by this script carries the master public key and generator
// in its script args:
//
//	args = pubkey (96 bytes, compressed G2) || generator (96 bytes, compressed G2)
//
// To spend it, the first witness of the script group must be a WitnessArgs
// molecule whose lock field holds a 48-byte compressed G1 signature over
// the 32-byte transaction hash. [Verifier.Run] loads these values through a
// [Loader], checks every length and returns nil only when the signature
// verifies. Failures map to the script's integer exit codes through [Code].
//
// The signature is usually produced by combining two blind partial
// signatures (see the session package), but any signature under the master
// key is accepted.
package lockscript
