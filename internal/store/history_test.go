package store

import (
	"context"
	"testing"
	"time"
)

func TestHistory_AppendAndReadPerProfile(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	if err := s.AppendEvent(ctx, "oli", "option.save", map[string]any{"label": "about"}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := s.AppendEvent(ctx, "oli", "option.delete", map[string]any{"index": 0}); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := s.AppendEvent(ctx, "bob", "option.save", nil); err != nil {
		t.Fatalf("AppendEvent: %v", err)
	}

	evs, err := s.ReadEvents(ctx, "oli", 0)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("got %d events for oli, want 2", len(evs))
	}
	if evs[0].Type != "option.save" || evs[1].Type != "option.delete" {
		t.Fatalf("events out of order: %+v", evs)
	}
	if evs[0].ID == "" || evs[0].TS.IsZero() {
		t.Fatalf("event missing id or timestamp: %+v", evs[0])
	}

	all, err := s.ReadEvents(ctx, "", 0)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events in total, want 3", len(all))
	}
}

func TestHistory_Limit(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.AppendEvent(ctx, "oli", "option.move", map[string]any{"from": i}); err != nil {
			t.Fatalf("AppendEvent: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	evs, err := s.ReadEvents(ctx, "oli", 2)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}
}

func TestHistory_RejectsEmptyType(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.AppendEvent(context.Background(), "oli", "  ", nil); err == nil {
		t.Fatalf("expected error for empty event type")
	}
}
