// Package bank owns the question catalog and the per-session draw order.
package bank

import (
	"log"
	"math/rand"
	"strings"

	"robot-race-service/internal/domain"
)

// Record is one candidate catalog row as delivered by a loader (spreadsheet,
// Postgres, built-in defaults). It has not been validated yet.
type Record struct {
	Level       int    `json:"level"`
	Prompt      string `json:"prompt"`
	Correct     string `json:"correctAnswer"`
	Distractor1 string `json:"distractor1"`
	Distractor2 string `json:"distractor2"`
}

// Catalog is the immutable validated question set for a process.
type Catalog struct {
	questions []domain.Question
}

// Load validates records and builds a catalog. Invalid records are dropped
// with a warning, never fatal: a half-broken spreadsheet still yields a
// playable game.
func Load(records []Record) *Catalog {
	questions := make([]domain.Question, 0, len(records))
	dropped := 0
	for i, rec := range records {
		q, ok := validate(rec)
		if !ok {
			dropped++
			log.Printf("bank: dropping invalid record %d (level=%d prompt=%q)", i, rec.Level, rec.Prompt)
			continue
		}
		questions = append(questions, q)
	}
	if dropped > 0 {
		log.Printf("bank: loaded %d questions, dropped %d invalid records", len(questions), dropped)
	}
	return &Catalog{questions: questions}
}

func validate(rec Record) (domain.Question, bool) {
	q := domain.Question{
		Level:   rec.Level,
		Prompt:  strings.TrimSpace(rec.Prompt),
		Correct: strings.TrimSpace(rec.Correct),
		Distractors: [2]string{
			strings.TrimSpace(rec.Distractor1),
			strings.TrimSpace(rec.Distractor2),
		},
	}
	if q.Level < 1 || q.Level > 3 {
		return domain.Question{}, false
	}
	if q.Prompt == "" || q.Correct == "" || q.Distractors[0] == "" || q.Distractors[1] == "" {
		return domain.Question{}, false
	}
	return q, true
}

// Len returns the total number of valid questions.
func (c *Catalog) Len() int { return len(c.questions) }

// LevelCount returns how many questions exist for a level.
func (c *Catalog) LevelCount(level int) int {
	n := 0
	for _, q := range c.questions {
		if q.Level == level {
			n++
		}
	}
	return n
}

// StartSession filters the catalog to one level and returns a draw queue
// holding every matching question exactly once in a uniformly random
// permutation. The rng is caller-supplied so tests can reseed.
func (c *Catalog) StartSession(level int, rng *rand.Rand) (*Session, error) {
	var queue []domain.Question
	for _, q := range c.questions {
		if q.Level == level {
			queue = append(queue, q)
		}
	}
	if len(queue) == 0 {
		return nil, domain.ErrLevelEmpty
	}
	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	return &Session{queue: queue}, nil
}

// Session is one match's draw queue. Draining it is the sole bank-side
// termination signal for a match.
type Session struct {
	queue []domain.Question
}

// DrawNext pops the head of the queue; ok is false once exhausted.
func (s *Session) DrawNext() (domain.Question, bool) {
	if len(s.queue) == 0 {
		return domain.Question{}, false
	}
	q := s.queue[0]
	s.queue = s.queue[1:]
	return q, true
}

// Remaining reports how many questions are left to draw.
func (s *Session) Remaining() int { return len(s.queue) }

// ShuffleOptions returns the three answer strings of q in a fresh random
// order. Correct-answer identity is preserved only through string equality
// with q.Correct.
func ShuffleOptions(q domain.Question, rng *rand.Rand) domain.OptionSet {
	opts := domain.OptionSet{q.Correct, q.Distractors[0], q.Distractors[1]}
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}
