package util

import (
	"crypto/rand"
	"fmt"
	"io"
	"unicode"

	"golang.org/x/crypto/scrypt"
)

// Key derivation parameters for encrypted exports.
const (
	scryptN   = 1 << 15
	scryptR   = 8
	scryptP   = 1
	KeyLength = 32
	SaltSize  = 16
)

// ValidatePassphrase enforces the minimum strength for export passphrases.
func ValidatePassphrase(pass string) error {
	if len(pass) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("passphrase must contain a letter and a digit")
	}
	return nil
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey stretches a passphrase into an AES-256 key.
func DeriveKey(pass string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(pass), salt, scryptN, scryptR, scryptP, KeyLength)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}
