// Package engine implements the round orchestration core: a tick-driven phase
// machine shared by the two contest policies, plus scoring and session flow.
// It holds game state only; rendering, input decoding and robot control live
// behind interfaces on the outside.
package engine

import (
	"log"
	"math/rand"
	"time"

	"robot-race-service/internal/actuator"
	"robot-race-service/internal/bank"
	"robot-race-service/internal/domain"
)

// Round is the per-question context, created fresh on every draw and
// discarded after the result phase.
type Round struct {
	Question     domain.Question
	Options      domain.OptionSet
	Outcomes     [2]domain.Outcome
	BuzzerWinner domain.PlayerID
	RoundWinner  domain.PlayerID
}

// Match is one authoritative game session. It is not safe for concurrent
// use: exactly one goroutine may call Tick, which applies the tick's actions
// in arrival order and then evaluates timer expiry, so an action landing on
// the deadline tick still wins.
type Match struct {
	rules  Rules
	policy Policy
	cat    *bank.Catalog
	board  *ScoreBoard
	port   actuator.Port
	rng    *rand.Rand

	phase      Phase
	phaseStart time.Time

	session *bank.Session
	level   int
	asked   int

	round  *Round
	result *domain.MatchResult

	rev uint64
}

// NewMatch builds a match in the menu phase. A nil rng gets a time-seeded
// one; tests pass a fixed seed for reproducible draws and shuffles.
func NewMatch(mode domain.Mode, cat *bank.Catalog, rules Rules, port actuator.Port, rng *rand.Rand) (*Match, error) {
	policy, err := policyFor(mode)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if port == nil {
		port = actuator.Nop{}
	}
	return &Match{
		rules:  rules,
		policy: policy,
		cat:    cat,
		board:  NewScoreBoard(rules.AdvanceStep),
		port:   port,
		rng:    rng,
		phase:  PhaseMenu,
	}, nil
}

// Tick advances the match: actions first, in order, then at most one timer
// transition. Spurious or out-of-phase actions are dropped silently.
func (m *Match) Tick(now time.Time, actions []domain.Action) {
	for _, act := range actions {
		m.apply(act, now)
	}
	m.checkTimer(now)
}

// Phase returns the current lifecycle stage.
func (m *Match) Phase() Phase { return m.phase }

// Revision increments on every observable state change; hosts use it to skip
// redundant snapshot broadcasts.
func (m *Match) Revision() uint64 { return m.rev }

// Result returns the terminal outcome, nil while the match is live.
func (m *Match) Result() *domain.MatchResult { return m.result }

func (m *Match) apply(act domain.Action, now time.Time) {
	switch act.Kind {
	case domain.ActionSelectLevel:
		if m.phase == PhaseMenu {
			m.startLevel(act.Level, now)
		}
	case domain.ActionCancel:
		if m.phase != PhaseMenu {
			m.toMenu()
		}
	case domain.ActionRestart:
		if m.phase == PhaseFinished {
			m.toMenu()
		}
	default:
		if m.round != nil {
			m.policy.HandleAction(m, act, now)
		}
	}
}

// startLevel resets both players, draws a fresh session for the level and
// begins the first lead-in.
func (m *Match) startLevel(level int, now time.Time) {
	if level < 1 || level > 3 {
		return
	}
	session, err := m.cat.StartSession(level, m.rng)
	if err != nil {
		log.Printf("engine: cannot start level %d: %v", level, err)
		return
	}
	m.session = session
	m.level = level
	m.asked = 0
	m.result = nil
	m.board.Reset()
	log.Printf("engine: level %d started (%s, %d questions)", level, m.policy.Mode(), session.Remaining())
	m.nextQuestion(now)
}

// nextQuestion draws the next question or finalizes on exhaustion. Drawing
// through the whole queue is the only non-track way a match ends.
func (m *Match) nextQuestion(now time.Time) {
	q, ok := m.session.DrawNext()
	if !ok {
		m.finalize()
		return
	}
	m.asked++
	m.round = &Round{
		Question: q,
		Options:  bank.ShuffleOptions(q, m.rng),
	}
	m.setPhase(m.policy.LeadInPhase(), now)
}

func (m *Match) finalize() {
	res := m.board.FinalizeOnBankExhausted()
	m.result = &res
	m.round = nil
	if res.Winner.Valid() {
		m.port.Celebrate(res.Winner)
		log.Printf("engine: bank exhausted, player %d wins on score", res.Winner)
	} else {
		log.Printf("engine: bank exhausted, match drawn")
	}
	m.setPhase(PhaseFinished, time.Time{})
}

func (m *Match) toMenu() {
	m.phase = PhaseMenu
	m.phaseStart = time.Time{}
	m.round = nil
	m.session = nil
	m.result = nil
	m.asked = 0
	m.level = 0
	m.board.Reset()
	m.rev++
}

// resolveCorrect awards player the point, notifies the actuator, and either
// ends the match on track completion or shows the round result.
func (m *Match) resolveCorrect(player domain.PlayerID, now time.Time) {
	m.round.Outcomes[playerIndex(player)] = domain.OutcomeCorrect
	m.round.RoundWinner = player
	finished := m.board.ApplyCorrect(player)
	m.port.Advance(player, m.board.Step())
	if finished {
		m.result = &domain.MatchResult{Winner: player}
		m.port.Celebrate(player)
		log.Printf("engine: player %d reached the finish line", player)
		m.setPhase(PhaseFinished, now)
		return
	}
	m.setPhase(PhaseResult, now)
}

// endRound closes the round without a winner and shows the result.
func (m *Match) endRound(now time.Time) {
	m.setPhase(PhaseResult, now)
}

func (m *Match) setPhase(phase Phase, now time.Time) {
	m.phase = phase
	m.phaseStart = now
	m.rev++
}

// touch marks a state change that did not move the phase (e.g. a lockout).
func (m *Match) touch() { m.rev++ }

func (m *Match) checkTimer(now time.Time) {
	limit, ok := m.phaseLimit()
	if !ok {
		return
	}
	if now.Sub(m.phaseStart) < limit {
		return
	}
	// The transition below replaces phase and entry timestamp, so a repeated
	// check cannot fire twice.
	switch {
	case m.phase == PhaseResult:
		m.nextQuestion(now)
	case m.phase == m.policy.LeadInPhase():
		m.policy.BeginContest(m, now)
	default:
		m.policy.HandleExpiry(m, now)
	}
}

func (m *Match) phaseLimit() (time.Duration, bool) {
	switch m.phase {
	case PhaseMenu, PhaseFinished:
		return 0, false
	case PhaseResult:
		return m.rules.ResultPause, true
	}
	return m.policy.PhaseLimit(m.phase, m.rules)
}

// Snapshot renders the engine state for hosts. The correct answer is exposed
// only once the round has resolved.
func (m *Match) Snapshot(now time.Time) domain.MatchSnapshot {
	snap := domain.MatchSnapshot{
		Mode:           m.policy.Mode(),
		Phase:          string(m.phase),
		Level:          m.level,
		QuestionNumber: m.asked,
		Result:         m.result,
	}
	for _, p := range []domain.PlayerID{domain.Player1, domain.Player2} {
		snap.Players[playerIndex(p)] = domain.PlayerSnapshot{
			Score:    m.board.Score(p),
			Position: m.board.Position(p),
		}
	}
	if limit, ok := m.phaseLimit(); ok {
		remaining := limit - now.Sub(m.phaseStart)
		if remaining < 0 {
			remaining = 0
		}
		snap.TimeRemaining = remaining.Seconds()
	}
	if m.round != nil {
		snap.Prompt = m.round.Question.Prompt
		snap.Options = m.round.Options[:]
		snap.BuzzerWinner = m.round.BuzzerWinner
		snap.RoundWinner = m.round.RoundWinner
		for i := range m.round.Outcomes {
			snap.Players[i].Outcome = m.round.Outcomes[i]
		}
		if m.phase == PhaseResult || m.phase == PhaseFinished {
			snap.CorrectAnswer = m.round.Question.Correct
		}
	}
	return snap
}
