// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sharecodec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/year-review/models"
)

// Shape tells which generation of the token format a payload came from
type Shape int

const (
	// ShapeLegacy payloads carry no question catalog
	ShapeLegacy Shape = iota + 1
	// ShapeCurrent payloads embed the catalog they were answered against
	ShapeCurrent
)

func (s Shape) String() string {
	switch s {
	case ShapeLegacy:
		return "legacy"
	case ShapeCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// ShapeOf reports the shape a payload encodes to
func ShapeOf(p models.Payload) Shape {
	if p.Questions == nil {
		return ShapeLegacy
	}
	return ShapeCurrent
}

// wirePayload fixes the field order of the JSON text.
// Questions is a pointer so that an empty catalog is still written.
type wirePayload struct {
	UserName  string               `json:"userName,omitempty"`
	Questions *[]models.Question   `json:"questions,omitempty"`
	Answers   map[string][]string  `json:"answers"`
	Custom    []models.CustomEntry `json:"custom"`
}

// Encode turns a payload into a token safe to drop into a URL query
// or a plain string store. Output only uses [A-Za-z0-9_-].
func Encode(p models.Payload) (string, error) {
	w := wirePayload{
		UserName: p.UserName,
		Answers:  make(map[string][]string, len(p.Answers)),
		Custom:   make([]models.CustomEntry, 0, len(p.Custom)),
	}

	if p.Questions != nil {
		for _, q := range p.Questions {
			if !validKind(q.Type) {
				return "", fmt.Errorf("question %d has unknown type %q", q.ID, q.Type)
			}
		}
		questions := p.Questions
		w.Questions = &questions
	}

	for id, values := range p.Answers {
		if values == nil {
			values = []string{}
		}
		w.Answers[strconv.Itoa(id)] = values
	}

	for _, entry := range p.Custom {
		if entry.Answer == nil {
			entry.Answer = []string{}
		}
		w.Custom = append(w.Custom, entry)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	text := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	// RawURLEncoding is the standard alphabet with + and / swapped for - and _, unpadded
	return base64.RawURLEncoding.EncodeToString(text), nil
}

// Decode recovers a payload from a token taken from a link or the draft store.
// It accepts tokens a URL layer has already unescaped, tokens that still carry
// percent escapes, and padded standard-alphabet tokens from older links.
// On failure the returned error is a *DecodeError and the payload is zero.
func Decode(token string) (models.Payload, error) {
	padded, err := normalize(token)
	if err != nil {
		return models.Payload{}, err
	}

	// Strict rejects non-zero bits after the last byte
	data, err := base64.StdEncoding.Strict().DecodeString(padded)
	if err != nil {
		return models.Payload{}, &DecodeError{Kind: ErrInvalidEncoding, Err: err}
	}

	if !utf8.Valid(data) {
		return models.Payload{}, fail(ErrInvalidText, "%d decoded bytes contain invalid UTF-8", len(data))
	}

	return parse(data)
}

// normalize maps a token onto the padded standard base64 alphabet
func normalize(token string) (string, error) {
	if strings.ContainsRune(token, '%') {
		unescaped, err := url.PathUnescape(token)
		if err != nil {
			return "", &DecodeError{Kind: ErrMalformedToken, Err: err}
		}
		token = unescaped
	}

	token = strings.TrimRight(token, "=")
	if token == "" {
		return "", fail(ErrMalformedToken, "empty token")
	}

	var b strings.Builder
	b.Grow(len(token) + 2)
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c == '-':
			c = '+'
		case c == '_':
			c = '/'
		case c == ' ':
			// a raw '+' read back through form decoding
			c = '+'
		case c == '+' || c == '/':
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			return "", fail(ErrMalformedToken, "invalid character %q at offset %d", c, i)
		}
		b.WriteByte(c)
	}

	switch b.Len() % 4 {
	case 1:
		return "", fail(ErrMalformedToken, "length %d cannot be base64", b.Len())
	case 2:
		b.WriteString("==")
	case 3:
		b.WriteString("=")
	}

	return b.String(), nil
}

type wireQuestion struct {
	ID         *int   `json:"id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	MaxAnswers *int   `json:"maxAnswers"`
}

type wireCustom struct {
	Question *string   `json:"question"`
	Answer   []*string `json:"answer"`
}

// parse reads the JSON text into a loose record first and then
// branches on whether the catalog is present.
func parse(data []byte) (models.Payload, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return models.Payload{}, &DecodeError{Kind: ErrInvalidStructure, Err: err}
	}
	if record == nil {
		return models.Payload{}, fail(ErrInvalidStructure, "payload is not an object")
	}

	answers, err := parseAnswers(record["answers"])
	if err != nil {
		return models.Payload{}, err
	}

	userName, err := parseUserName(record["userName"])
	if err != nil {
		return models.Payload{}, err
	}

	custom, err := parseCustom(record["custom"])
	if err != nil {
		return models.Payload{}, err
	}

	p := models.Payload{
		UserName: userName,
		Answers:  answers,
		Custom:   custom,
	}

	if raw, ok := record["questions"]; ok && !isNull(raw) {
		questions, err := parseQuestions(raw)
		if err != nil {
			return models.Payload{}, err
		}
		p.Questions = questions
	}

	return p, nil
}

func parseAnswers(raw json.RawMessage) (models.AnswerSet, error) {
	if raw == nil {
		return nil, fail(ErrInvalidStructure, "answers is missing")
	}
	if isNull(raw) {
		return nil, fail(ErrInvalidStructure, "answers is null")
	}

	var loose map[string][]*string
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fail(ErrInvalidStructure, "answers: %w", err)
	}

	answers := make(models.AnswerSet, len(loose))
	for key, values := range loose {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fail(ErrInvalidStructure, "answer key %q is not a question id", key)
		}
		if _, dup := answers[id]; dup {
			return nil, fail(ErrInvalidStructure, "answer key %q repeats question %d", key, id)
		}
		answers[id] = flatten(values)
	}

	return answers, nil
}

func parseUserName(raw json.RawMessage) (string, error) {
	if raw == nil || isNull(raw) {
		return "", nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", fail(ErrInvalidStructure, "userName: %w", err)
	}
	return name, nil
}

func parseCustom(raw json.RawMessage) ([]models.CustomEntry, error) {
	custom := []models.CustomEntry{}
	if raw == nil || isNull(raw) {
		return custom, nil
	}

	var loose []wireCustom
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fail(ErrInvalidStructure, "custom: %w", err)
	}

	for _, entry := range loose {
		var question string
		if entry.Question != nil {
			question = *entry.Question
		}
		custom = append(custom, models.CustomEntry{
			Question: question,
			Answer:   flatten(entry.Answer),
		})
	}

	return custom, nil
}

func parseQuestions(raw json.RawMessage) ([]models.Question, error) {
	var loose []wireQuestion
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fail(ErrInvalidStructure, "questions: %w", err)
	}

	questions := make([]models.Question, 0, len(loose))
	seen := make(map[int]bool, len(loose))
	for i, q := range loose {
		if q.ID == nil {
			return nil, fail(ErrInvalidStructure, "question %d has no id", i)
		}
		if seen[*q.ID] {
			return nil, fail(ErrInvalidStructure, "question id %d appears twice", *q.ID)
		}
		seen[*q.ID] = true
		if !validKind(q.Type) {
			return nil, fail(ErrInvalidStructure, "question %d has unknown type %q", *q.ID, q.Type)
		}
		questions = append(questions, models.Question{
			ID:         *q.ID,
			Text:       q.Text,
			Type:       q.Type,
			MaxAnswers: q.MaxAnswers,
		})
	}

	return questions, nil
}

// flatten turns JSON nulls (holes in a sparsely filled answer list) into empty slots
func flatten(values []*string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func validKind(kind string) bool {
	return kind == models.KindSingle || kind == models.KindMultiple
}
