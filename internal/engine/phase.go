package engine

// Phase is the lifecycle stage of a match. Menu, Result and Finished are
// shared; the contest phases depend on the active policy.
type Phase string

const (
	PhaseMenu        Phase = "menu"
	PhaseReading     Phase = "reading"      // buzzer-race lead-in
	PhaseBuzzer      Phase = "buzzer"       // claim race, no deadline
	PhaseBuzzerPause Phase = "buzzer_pause" // shows the claimant
	PhaseAnswering   Phase = "answering"    // claimant answers or skips
	PhaseCountdown   Phase = "countdown"    // open-answer lead-in
	PhaseQuestion    Phase = "question"     // open answer window
	PhaseResult      Phase = "result"
	PhaseFinished    Phase = "finished"
)
