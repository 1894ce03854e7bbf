package engine

import (
	"time"

	"robot-race-service/internal/domain"
)

// openAnswer: a short countdown, then one shared window in which both players
// may attempt the question. A wrong attempt locks that player for the round;
// the first correct attempt wins the point.
type openAnswer struct{}

func (openAnswer) Mode() domain.Mode { return domain.ModeOpenAnswer }

func (openAnswer) LeadInPhase() Phase { return PhaseCountdown }

func (openAnswer) PhaseLimit(phase Phase, rules Rules) (time.Duration, bool) {
	switch phase {
	case PhaseCountdown:
		return rules.CountdownTime, true
	case PhaseQuestion:
		return rules.QuestionTime, true
	}
	return 0, false
}

func (openAnswer) BeginContest(m *Match, now time.Time) {
	m.setPhase(PhaseQuestion, now)
}

func (openAnswer) HandleAction(m *Match, act domain.Action, now time.Time) {
	if m.phase != PhaseQuestion || act.Kind != domain.ActionAnswer || !act.Player.Valid() {
		return
	}
	i := playerIndex(act.Player)
	if m.round.Outcomes[i] != domain.OutcomeNone {
		// Already locked out this round.
		return
	}
	if act.Option < 0 || act.Option >= len(m.round.Options) {
		return
	}
	if m.round.Options[act.Option] == m.round.Question.Correct {
		m.resolveCorrect(act.Player, now)
		return
	}
	m.round.Outcomes[i] = domain.OutcomeIncorrect
	other := playerIndex(act.Player.Other())
	if m.round.Outcomes[other] == domain.OutcomeIncorrect {
		// Nobody left who may answer.
		m.endRound(now)
		return
	}
	m.touch()
}

func (openAnswer) HandleExpiry(m *Match, now time.Time) {
	if m.phase != PhaseQuestion {
		return
	}
	for i := range m.round.Outcomes {
		if m.round.Outcomes[i] == domain.OutcomeNone {
			m.round.Outcomes[i] = domain.OutcomeTimedOut
		}
	}
	m.endRound(now)
}
