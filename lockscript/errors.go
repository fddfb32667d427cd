package lockscript

import "errors"

// Exit codes returned by the on-chain script.
const (
	CodeSuccess       = 0
	CodeArgumentsLen  = -1
	CodeEncoding      = -2
	CodeSyscall       = -3
	CodeScriptTooLong = -21
	CodeWitnessSize   = -22
	CodeVerification  = -31
)

var (
	// ErrArgumentsLen is returned when the script args or the witness lock
	// field have the wrong size.
	ErrArgumentsLen = errors.New("lockscript: invalid arguments length")
	// ErrEncoding is returned for malformed molecule data or key material.
	ErrEncoding = errors.New("lockscript: invalid encoding")
	// ErrSyscall is returned when the loader fails.
	ErrSyscall = errors.New("lockscript: load failed")
	// ErrScriptTooLong is returned when the script args exceed MaxScriptSize.
	ErrScriptTooLong = errors.New("lockscript: script too long")
	// ErrWitnessSize is returned when the witness exceeds MaxWitnessSize.
	ErrWitnessSize = errors.New("lockscript: witness too large")
	// ErrVerification is returned when the signature does not verify.
	ErrVerification = errors.New("lockscript: signature verification failed")
)

var codes = []struct {
	err  error
	code int
}{
	{ErrArgumentsLen, CodeArgumentsLen},
	{ErrEncoding, CodeEncoding},
	{ErrSyscall, CodeSyscall},
	{ErrScriptTooLong, CodeScriptTooLong},
	{ErrWitnessSize, CodeWitnessSize},
	{ErrVerification, CodeVerification},
}

// Code returns the script exit code for err. A nil error is success;
// errors not produced by this package map to CodeSyscall.
func Code(err error) int {
	if err == nil {
		return CodeSuccess
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeSyscall
}
