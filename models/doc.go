// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the payload, request, and response types for the API.

# Payload

Payload is the unit a share link carries and a draft stores:

  - UserName: display name, omitted when empty
  - Questions: catalog snapshot, omitted by links that predate it
  - Answers: question ID → answer slots
  - Custom: user-written questions, one answer each

An answer slot list of exactly ["-"] (SkipSentinel) means the question
was skipped. Empty strings are unfilled slots.

# Request Types

  - CreateDraftRequest: user_name
  - SaveDraftRequest: full payload
  - SetAnswerRequest: question_id, index, value
  - NextRequest: question_id
  - AddCustomRequest: question, answer

# Response Types

  - CreateDraftResponse: draft_id, edit_key
  - DraftResponse: draft_id, payload, resume
  - ShareResponse: token, share_url, token_size
  - ViewResponse: user_name, legacy, questions, results, custom
  - ErrorResponse: error, message

# Constants

Question kinds:

	KindSingle   = "single"
	KindMultiple = "multiple"

Form stages:

	StageWelcome, StageQuestion, StageCustom, StageResults
*/
package models
