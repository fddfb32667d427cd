package lockscript

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// TxHashSize is the length of a transaction hash.
const TxHashSize = blake2b.Size256

// ErrIndexOutOfBound is returned by loaders for a missing witness.
var ErrIndexOutOfBound = errors.New("lockscript: index out of bound")

// Loader gives the verifier access to the executing transaction. On chain
// it is backed by syscalls; [MemoryLoader] serves tests and tools.
type Loader interface {
	// LoadScriptArgs returns the args of the executing lock script.
	LoadScriptArgs() ([]byte, error)
	// LoadWitness returns the witness at index within the script group's
	// inputs.
	LoadWitness(index int) ([]byte, error)
	// LoadTxHash returns the hash of the executing transaction.
	LoadTxHash() ([]byte, error)
}

// TxHash returns the BLAKE2b-256 digest of a serialized transaction.
func TxHash(raw []byte) []byte {
	h := blake2b.Sum256(raw)
	return h[:]
}

// MemoryLoader is a Loader over in-memory values.
type MemoryLoader struct {
	Args      []byte
	Witnesses [][]byte
	Hash      []byte
}

// NewMemoryLoader returns a loader for a transaction whose hash is computed
// from its serialized form with [TxHash].
func NewMemoryLoader(args []byte, rawTx []byte, witnesses ...[]byte) *MemoryLoader {
	return &MemoryLoader{
		Args:      args,
		Witnesses: witnesses,
		Hash:      TxHash(rawTx),
	}
}

func (m *MemoryLoader) LoadScriptArgs() ([]byte, error) {
	return m.Args, nil
}

func (m *MemoryLoader) LoadWitness(index int) ([]byte, error) {
	if index < 0 || index >= len(m.Witnesses) {
		return nil, fmt.Errorf("%w: witness %d of %d", ErrIndexOutOfBound, index, len(m.Witnesses))
	}
	return m.Witnesses[index], nil
}

func (m *MemoryLoader) LoadTxHash() ([]byte, error) {
	return m.Hash, nil
}
