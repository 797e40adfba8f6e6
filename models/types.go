// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Question kinds
const (
	KindSingle   = "single"
	KindMultiple = "multiple"
)

// SkipSentinel marks a question the user explicitly passed on.
// It is distinct from "" which means the slot was never filled.
const SkipSentinel = "-"

// Domain types

type Question struct {
	ID         int    `json:"id" yaml:"id"`
	Text       string `json:"text" yaml:"text"`
	Type       string `json:"type" yaml:"type"`
	MaxAnswers *int   `json:"maxAnswers,omitempty" yaml:"maxAnswers,omitempty"`
}

// Slots returns how many answer positions the question accepts
func (q Question) Slots() int {
	if q.MaxAnswers != nil && *q.MaxAnswers > 0 {
		return *q.MaxAnswers
	}
	if q.Type == KindMultiple {
		return 0 // unbounded
	}
	return 1
}

// question id -> ordered answers
type AnswerSet map[int][]string

// Clone returns a deep copy so callers can edit without touching a decoded snapshot
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, values := range a {
		out[id] = append([]string(nil), values...)
	}
	return out
}

type CustomEntry struct {
	Question string   `json:"question"`
	Answer   []string `json:"answer"`
}

// Payload is everything a share link carries.
// Questions is nil for links made before the catalog was embedded.
type Payload struct {
	UserName  string        `json:"userName,omitempty"`
	Questions []Question    `json:"questions,omitempty"`
	Answers   AnswerSet     `json:"answers"`
	Custom    []CustomEntry `json:"custom"`
}

// Request types

type CreateDraftRequest struct {
	UserName string `json:"user_name"`
}

type SaveDraftRequest struct {
	UserName string        `json:"user_name"`
	Answers  AnswerSet     `json:"answers"`
	Custom   []CustomEntry `json:"custom"`
}

type SetAnswerRequest struct {
	QuestionID int    `json:"question_id"`
	Index      int    `json:"index"`
	Value      string `json:"value"`
}

type NextRequest struct {
	QuestionID int `json:"question_id"`
}

type AddCustomRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Response types

type CreateDraftResponse struct {
	DraftID string `json:"draft_id"`
	EditKey string `json:"edit_key"`
}

// Stage of the form a draft should resume at
const (
	StageWelcome  = "welcome"
	StageQuestion = "question"
	StageCustom   = "custom"
	StageResults  = "results"
)

type Position struct {
	Stage string `json:"stage"`
	Step  int    `json:"step"` // index into the catalog, only meaningful for StageQuestion
}

type DraftResponse struct {
	DraftID string   `json:"draft_id"`
	Payload Payload  `json:"payload"`
	Resume  Position `json:"resume"`
}

type ShareResponse struct {
	Token     string `json:"token"`
	ShareURL  string `json:"share_url"`
	TokenSize string `json:"token_size"`
}

type ResultItem struct {
	QuestionID int      `json:"question_id"`
	Text       string   `json:"text"`
	Answers    []string `json:"answers"`
	Skipped    bool     `json:"skipped"`
}

type ViewResponse struct {
	UserName  string        `json:"user_name,omitempty"`
	Legacy    bool          `json:"legacy"`
	Questions []Question    `json:"questions"`
	Results   []ResultItem  `json:"results"`
	Custom    []CustomEntry `json:"custom"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
