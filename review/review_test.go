// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package review

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/danielhkuo/year-review/catalog"
	"github.com/danielhkuo/year-review/models"
	"github.com/danielhkuo/year-review/sharecodec"
)

func TestIsAnswered(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"nil", nil, false},
		{"empty string", []string{""}, false},
		{"whitespace", []string{"   "}, false},
		{"skip sentinel", []string{"-"}, false},
		{"sentinel and blank", []string{"-", ""}, false},
		{"real answer", []string{"Пицца"}, true},
		{"answer in later slot", []string{"", "", "x"}, true},
		{"dash inside text", []string{"-ish"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAnswered(tt.values); got != tt.want {
				t.Errorf("IsAnswered(%q) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestSetAnswer(t *testing.T) {
	c := catalog.Default()
	multi, _ := c.Lookup(1)  // three slots
	single, _ := c.Lookup(3) // one slot
	open, _ := c.Lookup(11)  // unbounded

	before := models.AnswerSet{1: {"a"}}

	got, err := SetAnswer(before, multi, 2, "c")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got[1], []string{"a", "", "c"}) {
		t.Errorf("unexpected slots: %q", got[1])
	}
	if !reflect.DeepEqual(before[1], []string{"a"}) {
		t.Errorf("input was modified: %q", before[1])
	}

	if _, err := SetAnswer(before, multi, 3, "d"); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("expected ErrSlotOutOfRange, got %v", err)
	}
	if _, err := SetAnswer(before, single, 1, "x"); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("expected ErrSlotOutOfRange for single, got %v", err)
	}
	if _, err := SetAnswer(before, single, -1, "x"); !errors.Is(err, ErrSlotOutOfRange) {
		t.Errorf("expected ErrSlotOutOfRange for negative index, got %v", err)
	}

	got, err = SetAnswer(nil, open, 7, "moment")
	if err != nil {
		t.Fatalf("unbounded question rejected index 7: %v", err)
	}
	if len(got[11]) != 8 || got[11][7] != "moment" {
		t.Errorf("unexpected slots: %q", got[11])
	}

	got, err = SetAnswer(models.AnswerSet{1: {models.SkipSentinel}}, multi, 1, "yoga")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got[1], []string{"", "yoga"}) {
		t.Errorf("skip marker should be replaced, got %q", got[1])
	}
}

func TestMarkSkipped(t *testing.T) {
	answers := models.AnswerSet{
		1: {"", "  "},
		2: {"film"},
	}

	got := MarkSkipped(answers, 1)
	if !reflect.DeepEqual(got[1], []string{models.SkipSentinel}) {
		t.Errorf("expected skip sentinel, got %q", got[1])
	}

	got = MarkSkipped(got, 2)
	if !reflect.DeepEqual(got[2], []string{"film"}) {
		t.Errorf("answered question should be untouched, got %q", got[2])
	}

	got = MarkSkipped(got, 5)
	if !reflect.DeepEqual(got[5], []string{models.SkipSentinel}) {
		t.Errorf("missing question should be skipped, got %q", got[5])
	}

	if !reflect.DeepEqual(answers[1], []string{"", "  "}) {
		t.Errorf("input was modified: %q", answers[1])
	}
}

func TestAddCustom(t *testing.T) {
	custom, err := AddCustom(nil, "Моя номинация", "Мой ответ")
	if err != nil {
		t.Fatal(err)
	}
	if len(custom) != 1 || custom[0].Answer[0] != "Мой ответ" {
		t.Errorf("unexpected custom entries: %+v", custom)
	}

	for _, pair := range [][2]string{{"", "a"}, {"q", " "}, {" ", " "}} {
		if _, err := AddCustom(custom, pair[0], pair[1]); !errors.Is(err, ErrEmptyCustom) {
			t.Errorf("AddCustom(%q, %q) expected ErrEmptyCustom, got %v", pair[0], pair[1], err)
		}
	}
}

func TestResume(t *testing.T) {
	c := catalog.Default()

	all := models.AnswerSet{}
	for _, q := range c.Questions {
		all[q.ID] = []string{"x"}
	}

	partial := all.Clone()
	partial[4] = []string{models.SkipSentinel}
	delete(partial, 6)

	tests := []struct {
		name string
		p    models.Payload
		want models.Position
	}{
		{"nothing yet", models.Payload{}, models.Position{Stage: models.StageWelcome}},
		{"name only", models.Payload{UserName: "Аня", Answers: models.AnswerSet{}}, models.Position{Stage: models.StageWelcome}},
		{"only skips", models.Payload{UserName: "Аня", Answers: models.AnswerSet{1: {"-"}}}, models.Position{Stage: models.StageWelcome}},
		{"answers but no name", models.Payload{Answers: all}, models.Position{Stage: models.StageWelcome}},
		{"first unanswered", models.Payload{UserName: "Аня", Answers: partial}, models.Position{Stage: models.StageQuestion, Step: 3}},
		{"custom step", models.Payload{UserName: "Аня", Answers: all}, models.Position{Stage: models.StageCustom}},
		{"done", models.Payload{UserName: "Аня", Answers: all, Custom: []models.CustomEntry{{Question: "q", Answer: []string{"a"}}}}, models.Position{Stage: models.StageResults}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resume(tt.p, c); got != tt.want {
				t.Errorf("Resume() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuestionsFor(t *testing.T) {
	fallback := catalog.Default()

	legacy := models.Payload{Answers: models.AnswerSet{}}
	if got := QuestionsFor(legacy, fallback); len(got) != len(fallback.Questions) {
		t.Errorf("legacy payload should use fallback, got %d questions", len(got))
	}

	embedded := []models.Question{{ID: 1, Text: "Еда года", Type: models.KindSingle}}
	current := models.Payload{Questions: embedded, Answers: models.AnswerSet{}}
	if got := QuestionsFor(current, fallback); !reflect.DeepEqual(got, embedded) {
		t.Errorf("current payload should keep its own questions, got %+v", got)
	}
}

func TestResults(t *testing.T) {
	p := models.Payload{
		Questions: []models.Question{
			{ID: 1, Text: "Еда года", Type: models.KindSingle},
			{ID: 2, Text: "Саундтрек года", Type: models.KindMultiple},
			{ID: 3, Text: "ТОП фильмов", Type: models.KindMultiple},
			{ID: 4, Text: "Пропущено", Type: models.KindSingle},
		},
		Answers: models.AnswerSet{
			1: {"Пицца"},
			2: {"Песня 1", "", "Песня 3"},
			3: {"", " "},
			4: {"-"},
			9: {"orphan"},
		},
	}

	got := Results(p, catalog.Default())
	want := []models.ResultItem{
		{QuestionID: 1, Text: "Еда года", Answers: []string{"Пицца"}},
		{QuestionID: 2, Text: "Саундтрек года", Answers: []string{"Песня 1", "Песня 3"}},
		{QuestionID: 4, Text: "Пропущено", Answers: []string{"-"}, Skipped: true},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Results() = %+v, want %+v", got, want)
	}
}

func TestShareURL(t *testing.T) {
	token, err := sharecodec.Encode(models.Payload{UserName: "Аня", Answers: models.AnswerSet{1: {"Пицца"}}})
	if err != nil {
		t.Fatal(err)
	}

	link, err := ShareURL("https://review.example.com/2025/?utm=x#top", token)
	if err != nil {
		t.Fatal(err)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "review.example.com" || u.Path != "/2025/" {
		t.Errorf("unexpected link %s", link)
	}
	if u.Fragment != "" {
		t.Errorf("fragment should be dropped: %s", link)
	}
	if u.Query().Get("utm") != "x" {
		t.Errorf("existing query should be kept: %s", link)
	}

	got, err := sharecodec.Decode(u.Query().Get("data"))
	if err != nil {
		t.Fatalf("token from link failed to decode: %v", err)
	}
	if got.UserName != "Аня" {
		t.Errorf("expected user name to survive, got %q", got.UserName)
	}

	for _, bad := range []string{"", "/relative", "://nope"} {
		if _, err := ShareURL(bad, token); err == nil {
			t.Errorf("ShareURL(%q) expected error", bad)
		}
	}
}
