package payment

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulator_ChargeSucceedsAfterDelay(t *testing.T) {
	s := &Simulator{Delay: 5 * time.Millisecond}

	if err := s.Charge(context.Background(), Card{Number: "4111111111111111"}, 100); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestSimulator_ChargeHonorsCancellation(t *testing.T) {
	s := &Simulator{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Charge(ctx, Card{}, 100); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLast4(t *testing.T) {
	if got := Last4("4111111111111111"); got != "1111" {
		t.Fatalf("expected 1111, got %q", got)
	}
	if got := Last4("123"); got != "123" {
		t.Fatalf("short numbers pass through, got %q", got)
	}
}
