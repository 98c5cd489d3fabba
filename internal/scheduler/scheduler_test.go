package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRegisterWeekly_BadTime(t *testing.T) {
	s := New(time.UTC, zerolog.Nop())
	if err := s.RegisterWeekly("x", time.Friday, 24, 0, func(context.Context) {}); err == nil {
		t.Fatal("expected error for hour 24")
	}
	if err := s.RegisterWeekly("x", time.Friday, 12, 60, func(context.Context) {}); err == nil {
		t.Fatal("expected error for minute 60")
	}
}

func TestRegisterWeekly_ReplaceKeepsOneEntry(t *testing.T) {
	s := New(time.UTC, zerolog.Nop())

	if err := s.RegisterWeekly("jumma", time.Friday, 12, 0, func(context.Context) {}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := s.RegisterWeekly("jumma", time.Friday, 13, 30, func(context.Context) {}); err != nil {
		t.Fatalf("second register: %v", err)
	}

	if got := len(s.cron.Entries()); got != 1 {
		t.Fatalf("want 1 cron entry after replace, got %d", got)
	}
	if got := len(s.entries); got != 1 {
		t.Fatalf("want 1 named entry after replace, got %d", got)
	}
}

func TestStartStop(t *testing.T) {
	s := New(time.UTC, zerolog.Nop())
	if err := s.RegisterWeekly("noop", time.Monday, 0, 0, func(context.Context) {}); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()
	done := make(chan struct{})
	go func() { s.Stop(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
