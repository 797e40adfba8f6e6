// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidEditKey = errors.New("invalid edit key")
	ErrInvalidDraftID = errors.New("invalid draft id")
)

// NewDraftID returns a random UUIDv4 string
func NewDraftID() string {
	return uuid.NewString()
}

// ParseDraftID checks the id is a UUID and returns its canonical form
func ParseDraftID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidDraftID
	}
	return parsed.String(), nil
}

// GenerateEditKey creates an HMAC-based edit key for a draft
// This is deterministic and verifiable
func GenerateEditKey(draftID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(draftID))
	// URL-safe base64 without padding for cleaner keys
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// ValidateEditKey checks if the provided edit key is valid for the draft
func ValidateEditKey(draftID, editKey, salt string) error {
	expected := GenerateEditKey(draftID, salt)
	if !hmac.Equal([]byte(editKey), []byte(expected)) {
		return ErrInvalidEditKey
	}
	return nil
}
