package app

import (
	"log"
	"math"
	"sync"
	"time"

	"robot-race-service/internal/domain"
	"robot-race-service/internal/engine"
)

// LiveMatch wraps one engine.Match in a host loop. The loop goroutine is the
// sole owner of the engine: actions arrive over a channel and are applied on
// the next tick in arrival order, which also makes the open-answer tie-break
// explicit.
type LiveMatch struct {
	id      string
	eng     *engine.Match
	tick    time.Duration
	actions chan domain.Action
	done    chan struct{}

	mu     sync.Mutex
	subs   map[chan domain.MatchSnapshot]struct{}
	last   domain.MatchSnapshot
	closed bool

	closeOnce sync.Once
}

func newLiveMatch(id string, eng *engine.Match, tick time.Duration) *LiveMatch {
	return &LiveMatch{
		id:      id,
		eng:     eng,
		tick:    tick,
		actions: make(chan domain.Action, 64),
		done:    make(chan struct{}),
		subs:    make(map[chan domain.MatchSnapshot]struct{}),
		last:    eng.Snapshot(time.Now()),
	}
}

// ID returns the match identifier.
func (lm *LiveMatch) ID() string { return lm.id }

// Act queues a player action for the next tick. Spurious input on a full
// queue is dropped, matching the engine's tolerance for late or bogus events.
func (lm *LiveMatch) Act(act domain.Action) error {
	select {
	case <-lm.done:
		return domain.ErrMatchClosed
	case lm.actions <- act:
		return nil
	default:
		log.Printf("app: match %s action queue full, dropping %s", lm.id, act.Kind)
		return nil
	}
}

// Subscribe returns a snapshot channel. The caller must invoke the returned
// cancel function to avoid leaks.
func (lm *LiveMatch) Subscribe() (<-chan domain.MatchSnapshot, func()) {
	ch := make(chan domain.MatchSnapshot, 8)

	lm.mu.Lock()
	if lm.closed {
		lm.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	lm.subs[ch] = struct{}{}
	initial := lm.last
	lm.mu.Unlock()

	ch <- initial

	cancel := func() {
		lm.mu.Lock()
		if _, ok := lm.subs[ch]; ok {
			delete(lm.subs, ch)
			close(ch)
		}
		lm.mu.Unlock()
	}
	return ch, cancel
}

// Close stops the host loop and closes all subscriber channels.
func (lm *LiveMatch) Close() {
	lm.closeOnce.Do(func() {
		close(lm.done)
		lm.mu.Lock()
		lm.closed = true
		for ch := range lm.subs {
			delete(lm.subs, ch)
			close(ch)
		}
		lm.mu.Unlock()
	})
}

func (lm *LiveMatch) run() {
	ticker := time.NewTicker(lm.tick)
	defer ticker.Stop()

	var pending []domain.Action
	var lastRev uint64
	lastSecs := -1

	for {
		select {
		case <-lm.done:
			return
		case act := <-lm.actions:
			pending = append(pending, act)
		case now := <-ticker.C:
			pending = drain(lm.actions, pending)
			lm.eng.Tick(now, pending)
			pending = pending[:0]

			snap := lm.eng.Snapshot(now)
			secs := int(math.Ceil(snap.TimeRemaining))
			if rev := lm.eng.Revision(); rev != lastRev || secs != lastSecs {
				lastRev = rev
				lastSecs = secs
				lm.broadcast(snap)
			}
		}
	}
}

func drain(ch <-chan domain.Action, pending []domain.Action) []domain.Action {
	for {
		select {
		case act := <-ch:
			pending = append(pending, act)
		default:
			return pending
		}
	}
}

func (lm *LiveMatch) broadcast(snap domain.MatchSnapshot) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	lm.last = snap
	for ch := range lm.subs {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot so a slow host never blocks the loop.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
