// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides draft identifiers and edit keys.

# Draft IDs

Drafts are named by random UUIDs:

	id := auth.NewDraftID()
	id, err := auth.ParseDraftID(r.PathValue("id"))

# Edit Keys

Edit keys are HMAC-SHA256 signatures of the draft ID, URL-safe base64
without padding:

	key := auth.GenerateEditKey(draftID, salt)
	err := auth.ValidateEditKey(draftID, key, salt)

Properties:
  - Deterministic: same draft ID + salt = same key
  - Verifiable without storage
  - Constant-time comparison

The key is returned once at draft creation and sent back in the
X-Edit-Key header on every draft operation. Share links need no key.

# Errors

	ErrInvalidEditKey: edit key validation failed
	ErrInvalidDraftID: draft ID is not a UUID
*/
package auth
