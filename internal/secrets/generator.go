// Package secrets generates cryptographically random credentials for project configuration.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// Generator produces random tokens. It is injected into consumers so tests
// can substitute a fixed-output stub; production code never accepts seeds.
type Generator interface {
	// RandomHex returns byteLen random bytes hex-encoded.
	RandomHex(byteLen int) (string, error)
	// RandomBase64 returns byteLen random bytes base64-encoded.
	RandomBase64(byteLen int) (string, error)
}

// EntropyError indicates the secure random source is unavailable. Secret
// generation fails loudly instead of degrading to a weak generator.
type EntropyError struct {
	// Cause is the underlying read failure.
	Cause error
}

func (e *EntropyError) Error() string {
	if e == nil || e.Cause == nil {
		return "secure random source unavailable"
	}
	return fmt.Sprintf("secure random source unavailable: %v", e.Cause)
}

func (e *EntropyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// IsEntropyError reports whether err indicates an unavailable random source.
func IsEntropyError(err error) bool {
	var target *EntropyError
	return errors.As(err, &target)
}

// New returns the production Generator backed by crypto/rand.
func New() Generator {
	return cryptoGenerator{}
}

type cryptoGenerator struct{}

func (cryptoGenerator) RandomHex(byteLen int) (string, error) {
	buf, err := randomBytes(byteLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (cryptoGenerator) RandomBase64(byteLen int) (string, error) {
	buf, err := randomBytes(byteLen)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

func randomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid random length %d", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, &EntropyError{Cause: err}
	}
	return buf, nil
}
