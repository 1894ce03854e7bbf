package engine

import (
	"log"
	"time"

	"robot-race-service/internal/domain"
)

// buzzerRace: reading phase, then both players race to claim the buzzer;
// only the claimant may answer or skip within the answer window.
type buzzerRace struct{}

func (buzzerRace) Mode() domain.Mode { return domain.ModeBuzzerRace }

func (buzzerRace) LeadInPhase() Phase { return PhaseReading }

func (buzzerRace) PhaseLimit(phase Phase, rules Rules) (time.Duration, bool) {
	switch phase {
	case PhaseReading:
		return rules.ReadingTime, true
	case PhaseBuzzerPause:
		return rules.BuzzerPause, true
	case PhaseAnswering:
		return rules.AnswerTime, true
	}
	// The buzzer race itself has no deadline; somebody has to press.
	return 0, false
}

func (buzzerRace) BeginContest(m *Match, now time.Time) {
	m.setPhase(PhaseBuzzer, now)
}

func (buzzerRace) HandleAction(m *Match, act domain.Action, now time.Time) {
	switch m.phase {
	case PhaseBuzzer:
		if act.Kind != domain.ActionClaimBuzzer || !act.Player.Valid() {
			return
		}
		// First claim wins; later claims arrive in the pause phase and drop.
		m.round.BuzzerWinner = act.Player
		log.Printf("engine: player %d claimed the buzzer", act.Player)
		m.setPhase(PhaseBuzzerPause, now)

	case PhaseAnswering:
		if act.Player != m.round.BuzzerWinner {
			return
		}
		switch act.Kind {
		case domain.ActionAnswer:
			if act.Option < 0 || act.Option >= len(m.round.Options) {
				return
			}
			if m.round.Options[act.Option] == m.round.Question.Correct {
				m.resolveCorrect(act.Player, now)
				return
			}
			m.round.Outcomes[playerIndex(act.Player)] = domain.OutcomeIncorrect
			m.endRound(now)
		case domain.ActionSkip:
			// No penalty; the question is burned either way.
			m.round.Outcomes[playerIndex(act.Player)] = domain.OutcomeSkipped
			m.endRound(now)
		}
	}
}

func (buzzerRace) HandleExpiry(m *Match, now time.Time) {
	switch m.phase {
	case PhaseBuzzerPause:
		m.setPhase(PhaseAnswering, now)
	case PhaseAnswering:
		if m.round.BuzzerWinner.Valid() {
			m.round.Outcomes[playerIndex(m.round.BuzzerWinner)] = domain.OutcomeTimedOut
		}
		m.endRound(now)
	}
}
