// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// NewSpinID returns a random UUIDv4 string for a spin record
func NewSpinID() string {
	return uuid.NewString()
}

// ValidateSpinID reports whether id looks like an ID from NewSpinID
func ValidateSpinID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ValidateAdminKey compares the provided key against the configured one
// in constant time. Digests are compared so key length is not leaked.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" || provided == "" {
		return ErrInvalidAdminKey
	}
	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}
