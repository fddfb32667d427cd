package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exec runs the command line and returns its exit code and parsed output.
func exec(t *testing.T, args ...string) (int, map[string]string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	out := map[string]string{}
	sc := bufio.NewScanner(&stdout)
	for sc.Scan() {
		name, value, ok := strings.Cut(sc.Text(), ": ")
		if ok {
			out[name] = value
		}
	}
	return code, out
}

func mustExec(t *testing.T, args ...string) map[string]string {
	t.Helper()
	code, out := exec(t, args...)
	require.Equal(t, exitOK, code, "pairlock %s", strings.Join(args, " "))
	return out
}

func TestSignVerify(t *testing.T) {
	keys := mustExec(t, "keygen")
	require.Len(t, keys["sk"], 64)

	sig := mustExec(t, "sign", "-sk", keys["sk"], "-text", "hello")["sig"]
	out := mustExec(t, "verify", "-sig", sig, "-g", keys["g"], "-pk", keys["pk"], "-text", "hello")
	assert.Equal(t, "true", out["valid"])

	code, out := exec(t, "verify", "-sig", sig, "-g", keys["g"], "-pk", keys["pk"], "-text", "other")
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "false", out["valid"])

	// -msg carries the same bytes hex encoded
	out = mustExec(t, "verify", "-sig", sig, "-g", keys["g"], "-pk", keys["pk"], "-msg", "68656c6c6f")
	assert.Equal(t, "true", out["valid"])
}

func TestBlindSigningFlow(t *testing.T) {
	keys := mustExec(t, "keygen")
	rnd := mustExec(t, "rand")["rand"]

	s1 := mustExec(t, "derive", "-g", keys["g"], "-rand", rnd, "-id", "1", "-sk", keys["sk"])
	s2 := mustExec(t, "derive", "-g", keys["g"], "-rand", rnd, "-id", "2", "-sk", keys["sk"])
	assert.NotEqual(t, s1["pk"], s2["pk"])

	b1 := mustExec(t, "blind", "-sk", s1["sk"], "-id", "1", "-text", "transfer:42")
	b2 := mustExec(t, "blind", "-sk", s2["sk"], "-id", "2", "-text", "transfer:42")
	assert.Equal(t, b1["digest"], b2["digest"])

	partial := mustExec(t, "sign-digest", "-sk", s1["sk"], "-digest", b1["weighted_digest"])["sig"]
	assert.Equal(t, b1["partial"], partial)

	sig := mustExec(t, "aggregate", "-a", b1["partial"], "-b", b2["partial"])["sig"]
	want := mustExec(t, "sign", "-sk", keys["sk"], "-text", "transfer:42")["sig"]
	assert.Equal(t, want, sig)

	restored := mustExec(t, "restore", "-a", b1["weighted_secret"], "-b", b2["weighted_secret"])["sk"]
	assert.Equal(t, keys["sk"], restored)
}

func TestCombineAndLock(t *testing.T) {
	keys := mustExec(t, "keygen")

	out := mustExec(t, "combine", "-sk", keys["sk"], "-g", keys["g"], "-text", "transfer:42")
	assert.Equal(t, keys["pk"], out["pk"])
	mustExec(t, "verify", "-sig", out["sig"], "-g", keys["g"], "-pk", keys["pk"], "-text", "transfer:42")

	tx := "deadbeef"
	lock := mustExec(t, "lock", "-tx", tx, "-g", keys["g"], "-sk", keys["sk"])
	assert.Equal(t, "0", lock["code"])

	// resubmit the witness signature for a different transaction
	code, out := exec(t, "lock", "-tx", "cafebabe", "-g", keys["g"], "-pk", keys["pk"],
		"-sig", mustExec(t, "sign", "-sk", keys["sk"], "-msg", lock["tx_hash"])["sig"])
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "-31", out["code"])
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"nope"},
		{"sign", "-text", "x"},
		{"sign", "-sk", "zz", "-text", "x"},
		{"derive", "-id", "3"},
		{"keygen", "extra"},
		{"sign", "-sk", "00", "-msg", "00", "-text", "x"},
	}
	for _, args := range cases {
		code, _ := exec(t, args...)
		assert.Equal(t, exitUsage, code, "pairlock %s", strings.Join(args, " "))
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairlock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DST: CLI-TEST-DST\nEncoding: base64\nLogLevel: error\n"), 0o600))

	keys := mustExec(t, "-config", path, "keygen")
	assert.Len(t, keys["sk"], 44, "32 bytes in base64")

	sig := mustExec(t, "-config", path, "sign", "-sk", keys["sk"], "-text", "m")["sig"]
	mustExec(t, "-config", path, "verify", "-sig", sig, "-g", keys["g"], "-pk", keys["pk"], "-text", "m")

	code, _ := exec(t, "-config", filepath.Join(dir, "missing.yaml"), "keygen")
	assert.Equal(t, exitFailure, code)
}
