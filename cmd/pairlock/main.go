// Command pairlock exposes key generation, signing, 2-of-2 blind signing
// and lock script verification on the command line.
//
//	pairlock [-config pairlock.yaml] <command> [flags]
//
// Byte values are read and printed in the configured encoding (hex by
// default). Results are printed one "name: value" pair per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/f3rmion/pairlock/bls"
	"github.com/f3rmion/pairlock/config"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks errors caused by bad command line input.
var errUsage = errors.New("usage")

// env is the state shared by all commands.
type env struct {
	scheme *bls.Scheme
	codec  codec
	logger *zap.Logger
	rng    io.Reader
	out    io.Writer
}

type command struct {
	summary string
	run     func(e *env, args []string) error
}

var commands = map[string]command{
	"keygen":      {"generate a master keypair", runKeygen},
	"sign":        {"sign a message with a secret key", runSign},
	"sign-digest": {"raise an uncompressed G1 digest to a secret key", runSignDigest},
	"verify":      {"verify a signature", runVerify},
	"aggregate":   {"multiply two signatures", runAggregate},
	"rand":        {"sample a blinding factor", runRand},
	"derive":      {"derive the share for an identity tag", runDerive},
	"blind":       {"weight a message digest for blind partial signing", runBlind},
	"combine":     {"split a master key and sign through both shares", runCombine},
	"restore":     {"add two weighted secrets", runRestore},
	"lock":        {"build a lock witness for a transaction and verify it", runLock},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pairlock", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	fs.Usage = func() { usage(fs, stderr) }
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		usage(fs, stderr)
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return exitFailure
		}
		cfg = c
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitFailure
	}
	defer func() { _ = logger.Sync() }()

	params, err := cfg.Params()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitFailure
	}

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		usage(fs, stderr)
		return exitUsage
	}

	e := &env{
		scheme: bls.New(params),
		codec:  codec(cfg.Encoding),
		logger: logger.With(zap.String("command", name)),
		rng:    randReader,
		out:    stdout,
	}
	if err := cmd.run(e, fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			if !errors.Is(err, flag.ErrHelp) {
				fmt.Fprintln(stderr, err.Error())
			}
			return exitUsage
		}
		e.logger.Debug("command failed", zap.Error(err))
		fmt.Fprintln(stderr, err.Error())
		return exitFailure
	}
	return exitOK
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: pairlock [-config file] <command> [flags]")
	fs.PrintDefaults()
	fmt.Fprintln(w, "commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, commands[name].summary)
	}
}

// print writes name/value pairs, one per line.
func (e *env) print(pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(e.out, "%s: %s\n", pairs[i], pairs[i+1])
	}
}
