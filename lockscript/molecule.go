package lockscript

import (
	"encoding/binary"
	"fmt"
)

const (
	numberSize       = 4
	witnessArgsCount = 3
	witnessArgsHead  = numberSize * (1 + witnessArgsCount)
)

// WitnessArgs is the molecule table carried in a transaction witness. Each
// field is optional; nil means absent.
type WitnessArgs struct {
	Lock       []byte
	InputType  []byte
	OutputType []byte
}

// ParseWitnessArgs decodes a WitnessArgs molecule table. Tables with extra
// fields are rejected.
func ParseWitnessArgs(data []byte) (*WitnessArgs, error) {
	if len(data) < numberSize {
		return nil, fmt.Errorf("%w: witness header truncated", ErrEncoding)
	}
	total := int(binary.LittleEndian.Uint32(data))
	if total != len(data) {
		return nil, fmt.Errorf("%w: witness declares %d bytes, has %d", ErrEncoding, total, len(data))
	}
	if total < witnessArgsHead {
		return nil, fmt.Errorf("%w: witness header truncated", ErrEncoding)
	}

	first := int(binary.LittleEndian.Uint32(data[numberSize:]))
	if first%numberSize != 0 || first/numberSize-1 != witnessArgsCount {
		return nil, fmt.Errorf("%w: witness has wrong field count", ErrEncoding)
	}

	var offsets [witnessArgsCount + 1]int
	for i := 0; i < witnessArgsCount; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(data[numberSize*(i+1):]))
	}
	offsets[witnessArgsCount] = total
	for i := 0; i < witnessArgsCount; i++ {
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("%w: witness offsets out of order", ErrEncoding)
		}
	}

	var fields [witnessArgsCount][]byte
	for i := range fields {
		f, err := parseBytesOpt(data[offsets[i]:offsets[i+1]])
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return &WitnessArgs{Lock: fields[0], InputType: fields[1], OutputType: fields[2]}, nil
}

// parseBytesOpt decodes an optional byte vector. An empty slice is absent.
func parseBytesOpt(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < numberSize {
		return nil, fmt.Errorf("%w: bytes header truncated", ErrEncoding)
	}
	n := int(binary.LittleEndian.Uint32(data))
	if n != len(data)-numberSize {
		return nil, fmt.Errorf("%w: bytes declares %d items, has %d", ErrEncoding, n, len(data)-numberSize)
	}
	out := make([]byte, n)
	copy(out, data[numberSize:])
	return out, nil
}

// Serialize encodes w as a WitnessArgs molecule table.
func (w *WitnessArgs) Serialize() []byte {
	fields := [witnessArgsCount][]byte{
		serializeBytesOpt(w.Lock),
		serializeBytesOpt(w.InputType),
		serializeBytesOpt(w.OutputType),
	}

	total := witnessArgsHead
	for _, f := range fields {
		total += len(f)
	}

	out := make([]byte, witnessArgsHead, total)
	binary.LittleEndian.PutUint32(out, uint32(total))
	offset := witnessArgsHead
	for i, f := range fields {
		binary.LittleEndian.PutUint32(out[numberSize*(i+1):], uint32(offset))
		offset += len(f)
	}
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

func serializeBytesOpt(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, numberSize+len(b))
	binary.LittleEndian.PutUint32(out, uint32(len(b)))
	copy(out[numberSize:], b)
	return out
}
