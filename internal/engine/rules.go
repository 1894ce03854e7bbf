package engine

import "time"

// Rules carries the phase timings and track parameters for a match. The
// defaults are the classroom values the game shipped with.
type Rules struct {
	// Buzzer-race timings.
	ReadingTime time.Duration // question on screen, no input accepted
	BuzzerPause time.Duration // shows who claimed before answering opens
	AnswerTime  time.Duration // claimant's window to answer or skip

	// Open-answer timings.
	CountdownTime time.Duration // cosmetic 3-2-1 before the window opens
	QuestionTime  time.Duration // shared answer window

	ResultPause time.Duration // outcome on screen before the next question

	AdvanceStep int // track units per correct answer; finish is at 100
}

// FinishPosition is the track position that ends a match immediately.
const FinishPosition = 100.0

// DefaultRules returns the stock timings.
func DefaultRules() Rules {
	return Rules{
		ReadingTime:   10 * time.Second,
		BuzzerPause:   1500 * time.Millisecond,
		AnswerTime:    15 * time.Second,
		CountdownTime: 3 * time.Second,
		QuestionTime:  30 * time.Second,
		ResultPause:   2 * time.Second,
		AdvanceStep:   20,
	}
}
