package engine

import (
	"time"

	"robot-race-service/internal/domain"
)

// Policy supplies the contest rules for one match mode on top of the shared
// phase skeleton (menu -> lead-in -> contest -> result -> ... -> finished).
type Policy interface {
	Mode() domain.Mode

	// LeadInPhase is the read-only phase entered for each new question.
	LeadInPhase() Phase

	// PhaseLimit returns the wall-clock budget for a policy-owned phase.
	// ok is false for phases without a deadline (e.g. the buzzer race).
	PhaseLimit(phase Phase, rules Rules) (limit time.Duration, ok bool)

	// BeginContest fires when the lead-in timer expires.
	BeginContest(m *Match, now time.Time)

	// HandleAction applies a player action. Actions outside the policy's
	// contest phases must be silent no-ops.
	HandleAction(m *Match, act domain.Action, now time.Time)

	// HandleExpiry fires when a policy-owned phase hits its limit.
	HandleExpiry(m *Match, now time.Time)
}

func policyFor(mode domain.Mode) (Policy, error) {
	switch mode {
	case domain.ModeBuzzerRace:
		return buzzerRace{}, nil
	case domain.ModeOpenAnswer:
		return openAnswer{}, nil
	}
	return nil, domain.ErrUnknownMode
}
