package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	token, err := Generate(8)
	assert.NoError(t, err)
	assert.Equal(t, 8, len(token))

	token2, err := Generate(8)
	assert.NoError(t, err)
	assert.NotEqual(t, token, token2)

	long, err := Generate(SecretLength)
	assert.NoError(t, err)
	assert.Equal(t, SecretLength, len(long))
	assert.Regexp(t, "^[A-Za-z0-9_-]+$", long)
}

func TestSecret(t *testing.T) {
	secret, err := Secret("configured")
	assert.NoError(t, err)
	assert.Equal(t, "configured", secret)

	secret, err = Secret("")
	assert.NoError(t, err)
	assert.Len(t, secret, SecretLength)
}
