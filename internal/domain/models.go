package domain

// PlayerID identifies one of the two racers. The zero value means "nobody",
// which doubles as the draw marker in MatchResult.
type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

// Other returns the opposing player.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// Valid reports whether p names an actual player.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Mode selects which contest rules a match runs under.
type Mode string

const (
	// ModeBuzzerRace: after a reading phase the players race to claim the
	// buzzer; only the claimant may answer or skip within a timed window.
	ModeBuzzerRace Mode = "buzzer"
	// ModeOpenAnswer: after a short countdown both players may answer the
	// same question; a wrong attempt locks that player out of the round.
	ModeOpenAnswer Mode = "open"
)

// Question is one immutable catalog entry. Correct and the distractors are
// trimmed at load time; answer checks compare exact strings against Correct.
type Question struct {
	Level       int       `json:"level"`
	Prompt      string    `json:"prompt"`
	Correct     string    `json:"correct"`
	Distractors [2]string `json:"distractors"`
}

// OptionSet is the three answer strings of one question instance in
// session-randomized order. Built once per question, never reshuffled
// mid-round.
type OptionSet [3]string

// Outcome tags what a player did with the current round.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeTimedOut  Outcome = "timeout"
)

// ActionKind enumerates the already-decoded input events the engine accepts.
// Mapping from physical keys or Makey-Makey pads to these is the transport's
// problem.
type ActionKind string

const (
	ActionSelectLevel ActionKind = "select_level" // menu only
	ActionClaimBuzzer ActionKind = "claim_buzzer" // buzzer-race only
	ActionAnswer      ActionKind = "answer"
	ActionSkip        ActionKind = "skip" // buzzer-race only
	ActionCancel      ActionKind = "cancel"
	ActionRestart     ActionKind = "restart" // finished only
)

// Action is one player input event. Fields beyond Kind are only meaningful
// for the kinds that use them.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Player PlayerID   `json:"player,omitempty"`
	Option int        `json:"option,omitempty"` // 0..2 for ActionAnswer
	Level  int        `json:"level,omitempty"`  // 1..3 for ActionSelectLevel
}

// MatchResult is the single terminal shape for both end conditions: track
// completion and bank exhaustion. Winner == NoPlayer means a draw.
type MatchResult struct {
	Winner PlayerID `json:"winner"`
	Draw   bool     `json:"draw"`
}

// PlayerSnapshot is the per-player slice of a match snapshot.
type PlayerSnapshot struct {
	Score    int     `json:"score"`
	Position float64 `json:"position"`
	Outcome  Outcome `json:"outcome"`
}

// MatchSnapshot is the renderer-agnostic view of a match, emitted to hosts
// after every state change. CorrectAnswer is populated only once the round
// has resolved.
type MatchSnapshot struct {
	Mode           Mode             `json:"mode"`
	Phase          string           `json:"phase"`
	Level          int              `json:"level"`
	QuestionNumber int              `json:"questionNumber"`
	Prompt         string           `json:"prompt,omitempty"`
	Options        []string         `json:"options,omitempty"`
	CorrectAnswer  string           `json:"correctAnswer,omitempty"`
	TimeRemaining  float64          `json:"timeRemaining"`
	BuzzerWinner   PlayerID         `json:"buzzerWinner,omitempty"`
	RoundWinner    PlayerID         `json:"roundWinner,omitempty"`
	Players        [2]PlayerSnapshot `json:"players"`
	Result         *MatchResult     `json:"result,omitempty"`
}
