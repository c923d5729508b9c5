package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a scrypt hash and returns "hexhash.hexsalt".
// The salt travels with the hash so verification needs no extra storage.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// ComparePasswords re-derives the key with the stored salt and compares in
// constant time. An error means the stored value was malformed, not that
// the password was wrong.
func ComparePasswords(stored string, plain string) (bool, error) {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false, errors.New("malformed password hash")
	}

	storedKey, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, errors.New("malformed password hash")
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, errors.New("malformed password hash")
	}

	key, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(storedKey, key) == 1, nil
}
