package token

import (
	"crypto/rand"
	"encoding/base64"
)

// SecretLength is the length of a generated signing secret
const SecretLength = 43

// Generate returns a crypto-secure random string of length n
// The random string is contains the following characters:
// ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
func Generate(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	// base64 increases size by ~33%
	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}

// Secret returns configured if it is set, otherwise a random secret
func Secret(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	return Generate(SecretLength)
}
