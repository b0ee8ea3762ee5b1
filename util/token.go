package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	// PrefixLength is the length of the public api key prefix used for lookup.
	PrefixLength = 8
	secretLength = 16
)

func randomKey(n int) (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(keyAlphabet)))
	for i := 0; i < n; i++ {
		j, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(keyAlphabet[j.Int64()])
	}
	return sb.String(), nil
}

// GenerateToken returns a new api key prefix and secret. The key handed to
// users is "prefix.secret".
func GenerateToken() (prefix, secret string, err error) {
	prefix, err = randomKey(PrefixLength)
	if err != nil {
		return "", "", err
	}
	secret, err = randomKey(secretLength)
	if err != nil {
		return "", "", err
	}
	return prefix, secret, nil
}

// HashAPIKey hashes an api key with bcrypt at the given cost, bcrypt.DefaultCost if zero.
func HashAPIKey(key string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash api key: %w", err)
	}
	return string(hashed), nil
}

// CheckAPIKey reports whether key matches the bcrypt hash.
func CheckAPIKey(key, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(key))
}
