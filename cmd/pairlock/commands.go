package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/config"
	"github.com/f3rmion/pairlock/lockscript"
	"github.com/f3rmion/pairlock/session"
	"github.com/f3rmion/pairlock/threshold"
)

var randReader io.Reader = rand.Reader

// codec converts byte values from and to their printed form.
type codec string

func (c codec) encode(b []byte) string {
	if c == config.EncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

func (c codec) decode(name, s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: -%s is required", errUsage, name)
	}
	var (
		b   []byte
		err error
	)
	if c == config.EncodingBase64 {
		b, err = base64.StdEncoding.DecodeString(s)
	} else {
		b, err = hex.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: -%s: %v", errUsage, name, err)
	}
	return b, nil
}

// flags wraps a FlagSet with encoded byte flags.
type flags struct {
	*flag.FlagSet
	codec  codec
	values map[string]*string
}

func newFlags(e *env, name string) *flags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &flags{FlagSet: fs, codec: e.codec, values: map[string]*string{}}
}

func (f *flags) bytes(name, usage string) {
	f.values[name] = f.String(name, "", usage)
}

// message registers -msg (encoded) and -text (literal) flags.
func (f *flags) message() {
	f.bytes("msg", "message bytes")
	f.String("text", "", "message as a literal string")
}

func (f *flags) parse(args []string) error {
	if err := f.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if f.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, f.Arg(0))
	}
	return nil
}

func (f *flags) get(name string) ([]byte, error) {
	return f.codec.decode(name, *f.values[name])
}

func (f *flags) getMessage() ([]byte, error) {
	text := f.Lookup("text").Value.String()
	raw := *f.values["msg"]
	switch {
	case text != "" && raw != "":
		return nil, fmt.Errorf("%w: -msg and -text are exclusive", errUsage)
	case text != "":
		return []byte(text), nil
	case raw != "":
		return f.get("msg")
	}
	return []byte{}, nil
}

func (f *flags) tag(name string) (threshold.Tag, error) {
	v, err := strconv.ParseUint(f.Lookup(name).Value.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: -%s: %v", errUsage, name, err)
	}
	t := threshold.Tag(v)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: -%s: %v", errUsage, name, threshold.ErrInvalidTag)
	}
	return t, nil
}

// getAll decodes the named byte flags in order.
func (f *flags) getAll(names ...string) ([][]byte, error) {
	out := make([][]byte, len(names))
	for i, name := range names {
		b, err := f.get(name)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func runKeygen(e *env, args []string) error {
	f := newFlags(e, "keygen")
	if err := f.parse(args); err != nil {
		return err
	}
	sk, pk, g, err := e.scheme.KeyGen(e.rng)
	if err != nil {
		return err
	}
	e.print("sk", e.codec.encode(sk), "pk", e.codec.encode(pk), "g", e.codec.encode(g))
	return nil
}

func runSign(e *env, args []string) error {
	f := newFlags(e, "sign")
	f.bytes("sk", "secret key")
	f.message()
	if err := f.parse(args); err != nil {
		return err
	}
	sk, err := f.get("sk")
	if err != nil {
		return err
	}
	msg, err := f.getMessage()
	if err != nil {
		return err
	}
	sig, err := e.scheme.SignBytes(sk, msg)
	if err != nil {
		return err
	}
	e.print("sig", e.codec.encode(sig))
	return nil
}

func runSignDigest(e *env, args []string) error {
	f := newFlags(e, "sign-digest")
	f.bytes("sk", "secret key")
	f.bytes("digest", "uncompressed G1 digest")
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("sk", "digest")
	if err != nil {
		return err
	}
	sig, err := e.scheme.SignDigestBytes(v[0], v[1])
	if err != nil {
		return err
	}
	e.print("sig", e.codec.encode(sig))
	return nil
}

func runVerify(e *env, args []string) error {
	f := newFlags(e, "verify")
	f.bytes("sig", "signature")
	f.bytes("g", "generator")
	f.bytes("pk", "public key")
	f.message()
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("sig", "g", "pk")
	if err != nil {
		return err
	}
	msg, err := f.getMessage()
	if err != nil {
		return err
	}
	ok := e.scheme.VerifyBytes(msg, v[0], v[1], v[2])
	e.print("valid", strconv.FormatBool(ok))
	if !ok {
		return errors.New("signature verification failed")
	}
	return nil
}

func runAggregate(e *env, args []string) error {
	f := newFlags(e, "aggregate")
	f.bytes("a", "first signature")
	f.bytes("b", "second signature")
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("a", "b")
	if err != nil {
		return err
	}
	sig, err := e.scheme.AggregateBytes(v[0], v[1])
	if err != nil {
		return err
	}
	e.print("sig", e.codec.encode(sig))
	return nil
}

func runRand(e *env, args []string) error {
	f := newFlags(e, "rand")
	if err := f.parse(args); err != nil {
		return err
	}
	r, err := threshold.RandBytes(e.rng)
	if err != nil {
		return err
	}
	e.print("rand", e.codec.encode(r))
	return nil
}

func runDerive(e *env, args []string) error {
	f := newFlags(e, "derive")
	f.bytes("g", "generator")
	f.bytes("rand", "blinding factor shared by both tags")
	f.bytes("sk", "master secret key")
	f.Uint64("id", 0, "identity tag (1 or 2)")
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("g", "rand", "sk")
	if err != nil {
		return err
	}
	tag, err := f.tag("id")
	if err != nil {
		return err
	}
	sk, pk, err := threshold.DeriveBytes(v[0], v[1], tag.Bytes(), v[2])
	if err != nil {
		return err
	}
	e.print("sk", e.codec.encode(sk), "pk", e.codec.encode(pk))
	return nil
}

func runBlind(e *env, args []string) error {
	f := newFlags(e, "blind")
	f.bytes("sk", "share secret key")
	f.Uint64("id", 0, "own identity tag (1 or 2)")
	f.Uint64("other", 0, "counterpart identity tag (defaults to the other tag)")
	f.message()
	if err := f.parse(args); err != nil {
		return err
	}
	sk, err := f.get("sk")
	if err != nil {
		return err
	}
	msg, err := f.getMessage()
	if err != nil {
		return err
	}
	self, err := f.tag("id")
	if err != nil {
		return err
	}
	other, err := self.Counterpart()
	if err != nil {
		return err
	}
	if f.Lookup("other").Value.String() != "0" {
		if other, err = f.tag("other"); err != nil {
			return err
		}
	}

	wd, ws, d, err := threshold.BlindBytes(e.scheme, msg, self.Bytes(), other.Bytes(), sk)
	if err != nil {
		return err
	}
	partial, err := e.scheme.SignDigestBytes(sk, wd)
	if err != nil {
		return err
	}
	e.print(
		"weighted_digest", e.codec.encode(wd),
		"weighted_secret", e.codec.encode(ws),
		"digest", e.codec.encode(d),
		"partial", e.codec.encode(partial),
	)
	return nil
}

func runCombine(e *env, args []string) error {
	f := newFlags(e, "combine")
	f.bytes("sk", "master secret key")
	f.bytes("g", "generator")
	f.message()
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("sk", "g")
	if err != nil {
		return err
	}
	msg, err := f.getMessage()
	if err != nil {
		return err
	}
	d, err := newDealer(e, v[0], v[1])
	if err != nil {
		return err
	}
	sig, err := session.QuickSign(e.rng, d, msg)
	if err != nil {
		return err
	}
	e.print("sig", e.codec.encode(sig.Bytes()), "pk", e.codec.encode(d.PublicKey().Bytes()))
	return nil
}

func runRestore(e *env, args []string) error {
	f := newFlags(e, "restore")
	f.bytes("a", "first weighted secret")
	f.bytes("b", "second weighted secret")
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("a", "b")
	if err != nil {
		return err
	}
	sk, err := threshold.RestoreBytes(v[0], v[1])
	if err != nil {
		return err
	}
	e.print("sk", e.codec.encode(sk))
	return nil
}

func runLock(e *env, args []string) error {
	f := newFlags(e, "lock")
	f.bytes("tx", "serialized transaction")
	f.bytes("g", "generator")
	f.String("sk", "", "master secret key; the transaction is signed through both shares")
	f.String("pk", "", "public key, required with -sig")
	f.String("sig", "", "existing signature over the transaction hash")
	if err := f.parse(args); err != nil {
		return err
	}
	v, err := f.getAll("tx", "g")
	if err != nil {
		return err
	}
	rawTx, gen := v[0], v[1]
	txHash := lockscript.TxHash(rawTx)

	var lockArgs, witness []byte
	if s := f.Lookup("sig").Value.String(); s != "" {
		sig, err := e.codec.decode("sig", s)
		if err != nil {
			return err
		}
		pk, err := e.codec.decode("pk", f.Lookup("pk").Value.String())
		if err != nil {
			return err
		}
		lockArgs = append(append([]byte{}, pk...), gen...)
		witness = (&lockscript.WitnessArgs{Lock: sig}).Serialize()
	} else {
		sk, err := e.codec.decode("sk", f.Lookup("sk").Value.String())
		if err != nil {
			return err
		}
		d, err := newDealer(e, sk, gen)
		if err != nil {
			return err
		}
		sig, err := session.QuickSign(e.rng, d, txHash)
		if err != nil {
			return err
		}
		lockArgs = lockscript.Args(d.PublicKey(), d.Generator())
		witness = lockscript.LockWitness(sig)
	}

	e.print(
		"tx_hash", e.codec.encode(txHash),
		"args", e.codec.encode(lockArgs),
		"witness", e.codec.encode(witness),
	)

	verifier := lockscript.NewVerifier(e.scheme, lockscript.WithLogger(e.logger))
	err = verifier.Run(lockscript.NewMemoryLoader(lockArgs, rawTx, witness))
	e.print("code", strconv.Itoa(lockscript.Code(err)))
	if err != nil {
		return err
	}
	e.logger.Info("transaction authorized", zap.String("tx_hash", e.codec.encode(txHash)))
	return nil
}

func newDealer(e *env, sk, g []byte) (*session.Dealer, error) {
	x, err := bls.DecodeSecretKey(sk)
	if err != nil {
		return nil, err
	}
	gen, err := bls.DecodeGenerator(g)
	if err != nil {
		return nil, err
	}
	kp := &bls.KeyPair{Generator: gen, SecretKey: x, PublicKey: bls.PublicKey(gen, x)}
	return session.NewDealer(e.scheme, kp)
}
