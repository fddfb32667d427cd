package lockscript

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/pairing"
)

// Size limits and layout of the script inputs.
const (
	PublicKeySize  = pairing.G2CompressedSize
	GeneratorSize  = pairing.G2CompressedSize
	ArgsSize       = PublicKeySize + GeneratorSize
	SignatureSize  = pairing.G1CompressedSize
	MaxScriptSize  = 32768
	MaxWitnessSize = 32768
)

// Verifier runs the lock script against a Loader.
type Verifier struct {
	scheme *bls.Scheme
	logger *zap.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used to report rejections.
func WithLogger(l *zap.Logger) Option {
	return func(v *Verifier) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewVerifier returns a verifier for signatures under scheme. A nil scheme
// uses [bls.Default].
func NewVerifier(scheme *bls.Scheme, opts ...Option) *Verifier {
	if scheme == nil {
		scheme = bls.Default()
	}
	v := &Verifier{scheme: scheme, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run loads the script args, the first group witness and the transaction
// hash, and verifies the witness signature. It returns nil when the
// transaction is authorized; otherwise the error maps to an exit code with
// [Code].
func (v *Verifier) Run(l Loader) error {
	args, err := l.LoadScriptArgs()
	if err != nil {
		return v.reject("load script args", fmt.Errorf("%w: %v", ErrSyscall, err))
	}
	if len(args) > MaxScriptSize {
		return v.reject("script args", ErrScriptTooLong, zap.Int("size", len(args)))
	}
	if len(args) != ArgsSize {
		return v.reject("script args", ErrArgumentsLen, zap.Int("size", len(args)), zap.Int("want", ArgsSize))
	}

	witness, err := l.LoadWitness(0)
	if err != nil {
		return v.reject("load witness", fmt.Errorf("%w: %v", ErrSyscall, err))
	}
	if len(witness) > MaxWitnessSize {
		return v.reject("witness", ErrWitnessSize, zap.Int("size", len(witness)))
	}
	wa, err := ParseWitnessArgs(witness)
	if err != nil {
		return v.reject("parse witness", err)
	}
	if len(wa.Lock) != SignatureSize {
		return v.reject("witness lock", ErrArgumentsLen, zap.Int("size", len(wa.Lock)), zap.Int("want", SignatureSize))
	}

	txHash, err := l.LoadTxHash()
	if err != nil {
		return v.reject("load tx hash", fmt.Errorf("%w: %v", ErrSyscall, err))
	}
	if len(txHash) != TxHashSize {
		return v.reject("tx hash", ErrSyscall, zap.Int("size", len(txHash)))
	}

	pk, err := bls.DecodePublicKey(args[:PublicKeySize])
	if err != nil {
		return v.reject("decode public key", fmt.Errorf("%w: %v", ErrEncoding, err))
	}
	g, err := bls.DecodeGenerator(args[PublicKeySize:])
	if err != nil {
		return v.reject("decode generator", fmt.Errorf("%w: %v", ErrEncoding, err))
	}
	sig, err := bls.DecodeSignature(wa.Lock)
	if err != nil {
		return v.reject("decode signature", fmt.Errorf("%w: %v", ErrEncoding, err))
	}

	if !v.scheme.Verify(txHash, sig, g, pk) {
		return v.reject("verify", ErrVerification)
	}
	v.logger.Debug("transaction authorized", zap.Binary("tx_hash", txHash))
	return nil
}

func (v *Verifier) reject(stage string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("stage", stage), zap.Int("code", Code(err)), zap.Error(err))
	v.logger.Debug("lock script rejected transaction", fields...)
	return err
}

// Args encodes the script args for a master public key and generator.
func Args(pk, g *pairing.G2) []byte {
	out := make([]byte, 0, ArgsSize)
	out = append(out, pk.Bytes()...)
	return append(out, g.Bytes()...)
}

// LockWitness returns a serialized WitnessArgs whose lock field is sig.
func LockWitness(sig *pairing.G1) []byte {
	w := &WitnessArgs{Lock: sig.Bytes()}
	return w.Serialize()
}
