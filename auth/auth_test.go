// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestNewDraftID(t *testing.T) {
	id1 := NewDraftID()
	id2 := NewDraftID()

	if id1 == id2 {
		t.Error("NewDraftID() produced duplicate IDs (extremely unlikely)")
	}

	for _, id := range []string{id1, id2} {
		if len(id) != 36 {
			t.Errorf("NewDraftID() length = %d, want 36", len(id))
		}
		if _, err := ParseDraftID(id); err != nil {
			t.Errorf("ParseDraftID(%q) error = %v", id, err)
		}
	}
}

func TestParseDraftID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{"canonical", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"upper case", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"empty", "", "", true},
		{"not a uuid", "draft-123", "", true},
		{"path traversal", "../../etc/passwd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDraftID(tt.id)
			if tt.wantErr {
				if err != ErrInvalidDraftID {
					t.Errorf("ParseDraftID() error = %v, want ErrInvalidDraftID", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDraftID() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDraftID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateEditKey(t *testing.T) {
	tests := []struct {
		name    string
		draftID string
		salt    string
	}{
		{"standard", "draft123", "secret-salt"},
		{"empty draft id", "", "salt"},
		{"empty salt", "draft456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateEditKey(tt.draftID, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateEditKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateEditKey(tt.draftID, tt.salt)
			if key != key2 {
				t.Error("GenerateEditKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.draftID != "" && tt.salt != "" {
				differentKey := GenerateEditKey(tt.draftID+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateEditKey() produced same key for different draft IDs")
				}
			}

			// Should be URL-safe (no padding)
			if strings.ContainsAny(key, "=+/") {
				t.Errorf("GenerateEditKey() is not URL-safe: %s", key)
			}
		})
	}
}

func TestValidateEditKey(t *testing.T) {
	draftID := NewDraftID()
	salt := "test-salt"
	validKey := GenerateEditKey(draftID, salt)

	tests := []struct {
		name    string
		draftID string
		key     string
		salt    string
		wantErr bool
	}{
		{"valid key", draftID, validKey, salt, false},
		{"wrong key", draftID, "wrong-key", salt, true},
		{"empty key", draftID, "", salt, true},
		{"wrong draft", NewDraftID(), validKey, salt, true},
		{"wrong salt", draftID, validKey, "other-salt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEditKey(tt.draftID, tt.key, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEditKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidEditKey {
				t.Errorf("ValidateEditKey() error = %v, want ErrInvalidEditKey", err)
			}
		})
	}
}
