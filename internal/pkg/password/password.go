// Package password implements scrypt-based password hashing with a per-call
// random salt. Stored hashes use the recoverable `hexkey.hexsalt` format so
// the salt can be replayed during comparison.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Fixed: changing them invalidates every stored hash.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

var ErrMalformedHash = errors.New("malformed password hash")

// Hash derives a key from plaintext with a fresh random salt and returns the
// `hexkey.hexsalt` composite. Two calls with the same plaintext produce
// different results.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Compare recomputes the derivation with the stored salt and compares in
// constant time. A malformed stored value is an error, not a mismatch.
func Compare(plaintext, stored string) (bool, error) {
	hashHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false, ErrMalformedHash
	}

	storedKey, err := hex.DecodeString(hashHex)
	if err != nil {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, ErrMalformedHash
	}

	key, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false, fmt.Errorf("derive key: %w", err)
	}

	return subtle.ConstantTimeCompare(storedKey, key) == 1, nil
}
