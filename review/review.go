// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package review

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/danielhkuo/year-review/catalog"
	"github.com/danielhkuo/year-review/models"
	"github.com/danielhkuo/year-review/sharecodec"
)

var (
	ErrSlotOutOfRange = errors.New("answer index out of range")
	ErrEmptyCustom    = errors.New("custom question and answer are required")
)

// IsAnswered reports whether any slot holds a real answer
func IsAnswered(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" && v != models.SkipSentinel {
			return true
		}
	}
	return false
}

// SetAnswer writes value at a position, growing the slot list with empty strings.
// A lone skip marker is discarded first. Returns a new answer set; the input is not modified.
func SetAnswer(answers models.AnswerSet, q models.Question, index int, value string) (models.AnswerSet, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	if slots := q.Slots(); slots > 0 && index >= slots {
		return nil, fmt.Errorf("%w: question %d takes %d answers", ErrSlotOutOfRange, q.ID, slots)
	}

	out := answers.Clone()
	values := out[q.ID]
	if len(values) == 1 && values[0] == models.SkipSentinel {
		values = nil
	}
	for len(values) <= index {
		values = append(values, "")
	}
	values[index] = value
	out[q.ID] = values

	return out, nil
}

// MarkSkipped replaces an unanswered slot list with the skip sentinel.
// Answered questions are left alone.
func MarkSkipped(answers models.AnswerSet, questionID int) models.AnswerSet {
	out := answers.Clone()
	if !IsAnswered(out[questionID]) {
		out[questionID] = []string{models.SkipSentinel}
	}
	return out
}

// AddCustom appends a user-written question with its single answer
func AddCustom(custom []models.CustomEntry, question, answer string) ([]models.CustomEntry, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return nil, ErrEmptyCustom
	}

	out := make([]models.CustomEntry, 0, len(custom)+1)
	out = append(out, custom...)
	out = append(out, models.CustomEntry{Question: question, Answer: []string{answer}})
	return out, nil
}

// Resume works out where a returning user should land in the form
func Resume(p models.Payload, c *catalog.Catalog) models.Position {
	hasValid := false
	for _, values := range p.Answers {
		if len(values) > 0 && !(len(values) == 1 && values[0] == models.SkipSentinel) {
			hasValid = true
			break
		}
	}

	if p.UserName == "" || !hasValid {
		return models.Position{Stage: models.StageWelcome}
	}

	for i, q := range c.Questions {
		values := p.Answers[q.ID]
		if len(values) == 0 || (len(values) == 1 && values[0] == models.SkipSentinel) {
			return models.Position{Stage: models.StageQuestion, Step: i}
		}
	}

	if len(p.Custom) == 0 {
		return models.Position{Stage: models.StageCustom}
	}

	return models.Position{Stage: models.StageResults}
}

// QuestionsFor returns the catalog a payload was answered against,
// falling back for links that predate embedding it
func QuestionsFor(p models.Payload, fallback *catalog.Catalog) []models.Question {
	if sharecodec.ShapeOf(p) == sharecodec.ShapeCurrent {
		return p.Questions
	}
	return fallback.Snapshot()
}

// Results lists the answered questions in catalog order, dropping blank slots.
// Questions with nothing but blanks are left out.
func Results(p models.Payload, fallback *catalog.Catalog) []models.ResultItem {
	items := []models.ResultItem{}
	for _, q := range QuestionsFor(p, fallback) {
		var shown []string
		for _, v := range p.Answers[q.ID] {
			if strings.TrimSpace(v) != "" {
				shown = append(shown, v)
			}
		}
		if len(shown) == 0 {
			continue
		}

		items = append(items, models.ResultItem{
			QuestionID: q.ID,
			Text:       q.Text,
			Answers:    shown,
			Skipped:    !IsAnswered(shown),
		})
	}
	return items
}

// ShareURL puts the token into the data query parameter of base
func ShareURL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base URL %q must be absolute", base)
	}

	q := u.Query()
	q.Set("data", token)
	u.RawQuery = q.Encode()
	u.Fragment = ""

	return u.String(), nil
}
