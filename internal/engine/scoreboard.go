package engine

import "robot-race-service/internal/domain"

// ScoreBoard holds the per-player match state: score and track position.
// Positions are monotonic and clamped to the finish line; only a correct
// outcome mutates them.
type ScoreBoard struct {
	step      int
	scores    [2]int
	positions [2]float64
}

func NewScoreBoard(step int) *ScoreBoard {
	return &ScoreBoard{step: step}
}

// Reset zeroes both players for a new session.
func (b *ScoreBoard) Reset() {
	b.scores = [2]int{}
	b.positions = [2]float64{}
}

// Step returns the track advance per correct answer.
func (b *ScoreBoard) Step() int { return b.step }

// ApplyCorrect awards a point and track advance to player. It reports whether
// the player just reached the finish line, which ends the match immediately.
func (b *ScoreBoard) ApplyCorrect(player domain.PlayerID) bool {
	i := playerIndex(player)
	b.scores[i]++
	b.positions[i] += float64(b.step)
	if b.positions[i] >= FinishPosition {
		b.positions[i] = FinishPosition
		return true
	}
	return false
}

// FinalizeOnBankExhausted settles the match when no questions remain: higher
// score wins, equal scores draw.
func (b *ScoreBoard) FinalizeOnBankExhausted() domain.MatchResult {
	switch {
	case b.scores[0] > b.scores[1]:
		return domain.MatchResult{Winner: domain.Player1}
	case b.scores[1] > b.scores[0]:
		return domain.MatchResult{Winner: domain.Player2}
	}
	return domain.MatchResult{Draw: true}
}

func (b *ScoreBoard) Score(player domain.PlayerID) int {
	return b.scores[playerIndex(player)]
}

func (b *ScoreBoard) Position(player domain.PlayerID) float64 {
	return b.positions[playerIndex(player)]
}

func playerIndex(p domain.PlayerID) int {
	if p == domain.Player2 {
		return 1
	}
	return 0
}
