package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	legacyHashLength = sha256.Size * 2
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// LegacyHash returns the unsalted SHA-256 hex digest older installs stored in
// users.password_hash. New hashes are never written in this format.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}

// IsLegacy reports whether hash is an unsalted SHA-256 hex digest.
func IsLegacy(hash string) bool {
	if len(hash) != legacyHashLength {
		return false
	}

	_, err := hex.DecodeString(hash)

	return err == nil
}

// Verify checks if the provided password matches the hash. Both bcrypt and
// legacy SHA-256 hashes are accepted.
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	if IsLegacy(hash) {
		if subtle.ConstantTimeCompare([]byte(LegacyHash(password)), []byte(hash)) != 1 {
			return ErrInvalidPassword
		}

		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}

	return nil
}
