package engine

import (
	"math/rand"
	"testing"
	"time"

	"robot-race-service/internal/bank"
	"robot-race-service/internal/domain"
)

// portRecorder captures actuator notifications for assertions.
type portRecorder struct {
	advances   []advanceCall
	celebrates []domain.PlayerID
}

type advanceCall struct {
	player   domain.PlayerID
	distance int
}

func (r *portRecorder) Advance(p domain.PlayerID, d int) {
	r.advances = append(r.advances, advanceCall{p, d})
}

func (r *portRecorder) Celebrate(p domain.PlayerID) {
	r.celebrates = append(r.celebrates, p)
}

func testCatalog(n int) *bank.Catalog {
	records := make([]bank.Record, 0, n)
	prompts := []string{
		"What is 5 + 3?", "Which number is even?", "Which shape is round?",
		"What is 7 x 8?", "What is 3 cubed?", "Which number is prime?",
	}
	answers := [][3]string{
		{"8", "7", "9"}, {"18", "15", "21"}, {"Circle", "Triangle", "Square"},
		{"56", "54", "58"}, {"27", "9", "81"}, {"17", "15", "21"},
	}
	for i := 0; i < n; i++ {
		records = append(records, bank.Record{
			Level:       1,
			Prompt:      prompts[i%len(prompts)],
			Correct:     answers[i%len(answers)][0],
			Distractor1: answers[i%len(answers)][1],
			Distractor2: answers[i%len(answers)][2],
		})
	}
	return bank.Load(records)
}

func newTestMatch(t *testing.T, mode domain.Mode, questions int, rules Rules) (*Match, *portRecorder) {
	t.Helper()
	port := &portRecorder{}
	m, err := NewMatch(mode, testCatalog(questions), rules, port, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new match: %v", err)
	}
	return m, port
}

var t0 = time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)

// startLevel selects level 1 and returns the lead-in entry time.
func startLevel(t *testing.T, m *Match) time.Time {
	t.Helper()
	m.Tick(t0, []domain.Action{{Kind: domain.ActionSelectLevel, Level: 1}})
	if m.Phase() != m.policy.LeadInPhase() {
		t.Fatalf("expected lead-in after level select, got %s", m.Phase())
	}
	return t0
}

func correctOption(t *testing.T, m *Match) int {
	t.Helper()
	for i, opt := range m.round.Options {
		if opt == m.round.Question.Correct {
			return i
		}
	}
	t.Fatalf("correct answer missing from options %v", m.round.Options)
	return -1
}

func wrongOption(t *testing.T, m *Match) int {
	t.Helper()
	for i, opt := range m.round.Options {
		if opt != m.round.Question.Correct {
			return i
		}
	}
	t.Fatalf("no wrong option in %v", m.round.Options)
	return -1
}

func answer(p domain.PlayerID, option int) []domain.Action {
	return []domain.Action{{Kind: domain.ActionAnswer, Player: p, Option: option}}
}
