package app_test

import (
	"context"
	"testing"
	"time"

	"robot-race-service/internal/actuator"
	"robot-race-service/internal/app"
	"robot-race-service/internal/bank"
	"robot-race-service/internal/domain"
	"robot-race-service/internal/engine"
	"robot-race-service/internal/infra/memory"
)

func newTestService() *app.MatchService {
	store := memory.NewMatchStore()
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(bank.DefaultRecords()), time.Minute)
	return app.NewMatchService(store, catalogs, engine.DefaultRules(), 2*time.Millisecond, actuator.Nop{})
}

func TestCreateAndStartMatch(t *testing.T) {
	service := newTestService()
	match, err := service.Create(context.Background(), domain.ModeBuzzerRace)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer service.Close(match.ID())

	if match.ID() == "" {
		t.Fatalf("expected a match id")
	}
	if got, err := service.Get(match.ID()); err != nil || got != match {
		t.Fatalf("expected to find match by id, got %v err=%v", got, err)
	}

	updates, cancel := match.Subscribe()
	defer cancel()

	snap := <-updates
	if snap.Phase != "menu" {
		t.Fatalf("expected initial menu snapshot, got %q", snap.Phase)
	}

	if err := match.Act(domain.Action{Kind: domain.ActionSelectLevel, Level: 1}); err != nil {
		t.Fatalf("act: %v", err)
	}
	waitForPhase(t, updates, "reading")
}

func TestCreateUnknownMode(t *testing.T) {
	service := newTestService()
	if _, err := service.Create(context.Background(), domain.Mode("duel")); err != domain.ErrUnknownMode {
		t.Fatalf("expected unknown mode error, got %v", err)
	}
}

func TestGetUnknownMatch(t *testing.T) {
	service := newTestService()
	if _, err := service.Get("nope"); err != domain.ErrMatchNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCloseStopsMatch(t *testing.T) {
	service := newTestService()
	match, err := service.Create(context.Background(), domain.ModeOpenAnswer)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updates, cancel := match.Subscribe()
	defer cancel()
	<-updates

	service.Close(match.ID())

	if _, err := service.Get(match.ID()); err != domain.ErrMatchNotFound {
		t.Fatalf("expected match forgotten, got %v", err)
	}
	if err := match.Act(domain.Action{Kind: domain.ActionSelectLevel, Level: 1}); err != domain.ErrMatchClosed {
		t.Fatalf("expected closed error, got %v", err)
	}

	// Subscriber channel drains and closes.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("subscriber channel not closed")
		}
	}
}

func waitForPhase(t *testing.T, updates <-chan domain.MatchSnapshot, phase string) domain.MatchSnapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				t.Fatalf("updates closed while waiting for %q", phase)
			}
			if snap.Phase == phase {
				return snap
			}
		case <-deadline:
			t.Fatalf("timed out waiting for phase %q", phase)
		}
	}
}
