package redis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"robot-race-service/internal/domain"
)

const actuatorChannel = "race:actuator"

// ActuatorPublisher forwards robot commands to a Redis channel where a
// bridge process (EV3 driver, simulator UI) can pick them up. Commands are
// queued through a buffered channel and published by a worker goroutine so
// the engine never blocks on the network; overflow and publish failures are
// dropped, never surfaced to the round.
type ActuatorPublisher struct {
	client *redis.Client
	queue  chan actuatorCommand
	done   chan struct{}
}

type actuatorCommand struct {
	Command  string          `json:"command"` // "advance" or "celebrate"
	Player   domain.PlayerID `json:"player"`
	Distance int             `json:"distance,omitempty"`
}

func NewActuatorPublisher(client *redis.Client) *ActuatorPublisher {
	p := &ActuatorPublisher{
		client: client,
		queue:  make(chan actuatorCommand, 32),
		done:   make(chan struct{}),
	}
	go p.publishLoop()
	return p
}

func (p *ActuatorPublisher) Advance(player domain.PlayerID, distance int) {
	p.enqueue(actuatorCommand{Command: "advance", Player: player, Distance: distance})
}

func (p *ActuatorPublisher) Celebrate(player domain.PlayerID) {
	p.enqueue(actuatorCommand{Command: "celebrate", Player: player})
}

// Close stops the publish worker. Queued commands are discarded.
func (p *ActuatorPublisher) Close() {
	close(p.done)
}

func (p *ActuatorPublisher) enqueue(cmd actuatorCommand) {
	select {
	case p.queue <- cmd:
	default:
		log.Printf("redis: actuator queue full, dropping %s for player %d", cmd.Command, cmd.Player)
	}
}

func (p *ActuatorPublisher) publishLoop() {
	for {
		select {
		case <-p.done:
			return
		case cmd := <-p.queue:
			data, err := json.Marshal(cmd)
			if err != nil {
				continue
			}
			if err := p.client.Publish(context.Background(), actuatorChannel, data).Err(); err != nil {
				log.Printf("redis: actuator publish failed: %v", err)
			}
		}
	}
}
