// Package actuator defines the robot control boundary. Implementations are
// fire-and-forget: the engine never waits on them and their failures must not
// affect round resolution.
package actuator

import (
	"log"

	"robot-race-service/internal/domain"
)

// Port receives robot commands. Advance fires on every correct answer,
// Celebrate exactly once when a match ends with a winner.
type Port interface {
	Advance(player domain.PlayerID, distance int)
	Celebrate(player domain.PlayerID)
}

// Simulated logs commands instead of driving hardware, for running without a
// robot attached.
type Simulated struct{}

func (Simulated) Advance(player domain.PlayerID, distance int) {
	log.Printf("[robot] player %d advances %d units", player, distance)
}

func (Simulated) Celebrate(player domain.PlayerID) {
	log.Printf("[robot] player %d celebrates the win", player)
}

// Nop discards all commands.
type Nop struct{}

func (Nop) Advance(domain.PlayerID, int) {}
func (Nop) Celebrate(domain.PlayerID)    {}
