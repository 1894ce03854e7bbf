package bank

import (
	"math/rand"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{1, "Which number is even?", "18", "15", "21"},
		{1, "Which shape has three sides?", "Triangle", "Square", "Circle"},
		{1, "What is 5 + 3?", "8", "7", "9"},
		{2, "What is 7 x 8?", "56", "54", "58"},
		{3, "What is 3 cubed?", "27", "9", "81"},
	}
}

func TestLoadDropsInvalidRecords(t *testing.T) {
	records := append(testRecords(),
		Record{0, "bad level", "a", "b", "c"},
		Record{4, "bad level", "a", "b", "c"},
		Record{1, "", "a", "b", "c"},
		Record{1, "no correct", "", "b", "c"},
		Record{1, "no distractor", "a", "  ", "c"},
	)
	cat := Load(records)
	if cat.Len() != 5 {
		t.Fatalf("expected 5 valid questions, got %d", cat.Len())
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	cat := Load([]Record{{1, "  prompt  ", " 42 ", " a ", " b "}})
	session, err := cat.StartSession(1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	q, ok := session.DrawNext()
	if !ok {
		t.Fatalf("expected a question")
	}
	if q.Prompt != "prompt" || q.Correct != "42" || q.Distractors[0] != "a" {
		t.Fatalf("expected trimmed fields, got %+v", q)
	}
}

func TestSessionDrawsEachQuestionOnce(t *testing.T) {
	cat := Load(testRecords())
	session, err := cat.StartSession(1, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	seen := map[string]bool{}
	for {
		q, ok := session.DrawNext()
		if !ok {
			break
		}
		if q.Level != 1 {
			t.Fatalf("drew question from wrong level: %+v", q)
		}
		if seen[q.Prompt] {
			t.Fatalf("question drawn twice: %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
	if len(seen) != cat.LevelCount(1) {
		t.Fatalf("expected %d unique draws, got %d", cat.LevelCount(1), len(seen))
	}
	if _, ok := session.DrawNext(); ok {
		t.Fatalf("expected exhausted session to stay empty")
	}
}

func TestSessionIsDeterministicForSeed(t *testing.T) {
	cat := Load(testRecords())

	drawAll := func(seed int64) []string {
		session, err := cat.StartSession(1, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("start session: %v", err)
		}
		var order []string
		for {
			q, ok := session.DrawNext()
			if !ok {
				return order
			}
			order = append(order, q.Prompt)
		}
	}

	a, b := drawAll(42), drawAll(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestStartSessionEmptyLevel(t *testing.T) {
	cat := Load(testRecords())
	if _, err := cat.StartSession(2, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("level 2 has a question: %v", err)
	}
	cat = Load(testRecords()[:3]) // level 1 only
	if _, err := cat.StartSession(3, rand.New(rand.NewSource(1))); err == nil {
		t.Fatalf("expected error for empty level")
	}
}

func TestShuffleOptionsKeepsAllThree(t *testing.T) {
	q := Load(testRecords()).questions[0]
	rng := rand.New(rand.NewSource(3))
	opts := ShuffleOptions(q, rng)

	found := map[string]bool{}
	for _, opt := range opts {
		found[opt] = true
	}
	for _, want := range []string{q.Correct, q.Distractors[0], q.Distractors[1]} {
		if !found[want] {
			t.Fatalf("option %q missing from %v", want, opts)
		}
	}
}

func TestShuffleOptionsDeterministicForSeed(t *testing.T) {
	q := Load(testRecords()).questions[0]
	a := ShuffleOptions(q, rand.New(rand.NewSource(9)))
	b := ShuffleOptions(q, rand.New(rand.NewSource(9)))
	if a != b {
		t.Fatalf("same seed produced different orders: %v vs %v", a, b)
	}
}

func TestDefaultRecordsCoverAllLevels(t *testing.T) {
	cat := Load(DefaultRecords())
	for level := 1; level <= 3; level++ {
		if cat.LevelCount(level) < 10 {
			t.Fatalf("expected at least 10 default questions for level %d, got %d", level, cat.LevelCount(level))
		}
	}
}
