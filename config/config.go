// Package config loads the YAML configuration shared by the pairlock tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/f3rmion/pairlock/pairing"
)

// Config is the on-disk configuration.
//
//	DST: PAIRLOCK-V01-CS01-with-BLS12381G1_XMD:SHA-256_SSWU_RO_
//	LogLevel: info
//	Encoding: hex
type Config struct {
	// DST is the hash-to-curve domain separation tag. All parties of one
	// deployment must agree on it.
	DST string `yaml:"DST"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"LogLevel"`
	// Encoding selects how byte values are printed: hex or base64.
	Encoding string `yaml:"Encoding"`
}

const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DST:      pairing.DefaultDST,
		LogLevel: "info",
		Encoding: EncodingHex,
	}
}

// Load reads a YAML file. Fields missing from the file keep their default
// values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data over the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the field values.
func (c *Config) Validate() error {
	if c.DST == "" {
		return errors.New("config: DST is empty")
	}
	if len(c.DST) > 255 {
		return errors.New("config: DST longer than 255 bytes")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LogLevel: %w", err)
	}
	switch c.Encoding {
	case EncodingHex, EncodingBase64:
	default:
		return fmt.Errorf("config: unknown Encoding %q", c.Encoding)
	}
	return nil
}

// Params returns the pairing parameters for the configured tag.
func (c *Config) Params() (*pairing.Params, error) {
	if c.DST == pairing.DefaultDST {
		return pairing.Default(), nil
	}
	return pairing.NewParams([]byte(c.DST))
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: LogLevel: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
