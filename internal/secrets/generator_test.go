package secrets_test

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackforge/forgectl/internal/secrets"
)

func TestRandomHex(t *testing.T) {
	gen := secrets.New()

	out, err := gen.RandomHex(32)
	require.NoError(t, err)
	assert.Len(t, out, 64)
	_, err = hex.DecodeString(out)
	assert.NoError(t, err)

	other, err := gen.RandomHex(32)
	require.NoError(t, err)
	assert.NotEqual(t, out, other)
}

func TestRandomBase64(t *testing.T) {
	gen := secrets.New()

	out, err := gen.RandomBase64(12)
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	assert.Len(t, raw, 12)
}

func TestInvalidLength(t *testing.T) {
	gen := secrets.New()
	_, err := gen.RandomHex(0)
	assert.Error(t, err)
	_, err = gen.RandomBase64(-1)
	assert.Error(t, err)
}

func TestIsEntropyError(t *testing.T) {
	err := &secrets.EntropyError{Cause: errors.New("read failed")}
	assert.True(t, secrets.IsEntropyError(err))
	assert.False(t, secrets.IsEntropyError(errors.New("other")))
}
