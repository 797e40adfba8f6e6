// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/year-review/models"
)

var ErrUnknownQuestion = errors.New("unknown question")

// Catalog is the ordered list of questions the form walks through
type Catalog struct {
	Year      int               `json:"year" yaml:"year"`
	Questions []models.Question `json:"questions" yaml:"questions"`
}

func maxAnswers(n int) *int { return &n }

// Default returns the built-in 2025 catalog
func Default() *Catalog {
	return &Catalog{
		Year: 2025,
		Questions: []models.Question{
			{ID: 1, Text: "Саундтрек года", Type: models.KindMultiple, MaxAnswers: maxAnswers(3)},
			{ID: 2, Text: "ТОП фильмов/сериалов года", Type: models.KindMultiple, MaxAnswers: maxAnswers(3)},
			{ID: 3, Text: "Победа года", Type: models.KindSingle},
			{ID: 4, Text: "Разочарование года", Type: models.KindSingle},
			{ID: 5, Text: "Занятия года", Type: models.KindMultiple, MaxAnswers: maxAnswers(3)},
			{ID: 6, Text: "Игра/развлечение года", Type: models.KindSingle},
			{ID: 7, Text: "Поездка или встреча года", Type: models.KindSingle},
			{ID: 8, Text: "Самая дурацкая покупка года", Type: models.KindSingle},
			{ID: 9, Text: "Неожиданное событие года", Type: models.KindSingle},
			{ID: 10, Text: "Открытие года", Type: models.KindSingle, MaxAnswers: maxAnswers(3)},
			{ID: 11, Text: "Лучшие моменты года", Type: models.KindMultiple},
			{ID: 12, Text: "ТОП желаний в 2026", Type: models.KindSingle},
		},
	}
}

// LoadFile reads a YAML catalog
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks ids are unique and positive and every question is well formed
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}

	seen := make(map[int]bool, len(c.Questions))
	for i, q := range c.Questions {
		if q.ID <= 0 {
			return fmt.Errorf("question %d: id must be positive", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %d: duplicate id %d", i, q.ID)
		}
		seen[q.ID] = true

		if q.Text == "" {
			return fmt.Errorf("question %d: text is required", q.ID)
		}
		if q.Type != models.KindSingle && q.Type != models.KindMultiple {
			return fmt.Errorf("question %d: type must be %q or %q", q.ID, models.KindSingle, models.KindMultiple)
		}
		if q.MaxAnswers != nil && *q.MaxAnswers < 1 {
			return fmt.Errorf("question %d: maxAnswers must be at least 1", q.ID)
		}
	}

	return nil
}

// Lookup finds a question by id
func (c *Catalog) Lookup(id int) (models.Question, error) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Question{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, id)
}

// Index returns the position of a question in the catalog, or -1
func (c *Catalog) Index(id int) int {
	for i, q := range c.Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Snapshot copies the question list so it can be embedded in a payload
func (c *Catalog) Snapshot() []models.Question {
	out := make([]models.Question, len(c.Questions))
	copy(out, c.Questions)
	return out
}
