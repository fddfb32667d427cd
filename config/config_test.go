package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/f3rmion/pairlock/pairing"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	params, err := c.Params()
	require.NoError(t, err)
	assert.Same(t, pairing.Default(), params)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairlock.yaml")
	data := "DST: TEST-DST\nLogLevel: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TEST-DST", c.DST)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, EncodingHex, c.Encoding, "missing field keeps its default")

	params, err := c.Params()
	require.NoError(t, err)
	assert.Equal(t, []byte("TEST-DST"), params.DST())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"UnknownField": "Curve: bn254\n",
		"EmptyDST":     "DST: \"\"\n",
		"LongDST":      "DST: " + strings.Repeat("a", 256) + "\n",
		"BadLevel":     "LogLevel: loud\n",
		"BadEncoding":  "Encoding: base32\n",
		"NotYAML":      "DST: [\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundtrip(t *testing.T) {
	c := Default()
	c.Encoding = EncodingBase64

	data, err := c.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestLogger(t *testing.T) {
	c := Default()
	c.LogLevel = "warn"
	l, err := c.Logger()
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel), "debug should be disabled at warn")
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel), "error should be enabled at warn")
}
