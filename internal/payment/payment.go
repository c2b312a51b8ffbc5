package payment

import (
	"context"
	"time"
)

// Card carries the user-entered card fields. They are opaque strings; no
// Luhn or expiry validation happens anywhere in this process.
type Card struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

// Processor charges a card. Implementations decide what "charging" means; the
// default Simulator just burns time and succeeds.
type Processor interface {
	Charge(ctx context.Context, card Card, amount float64) error
}

// simulatorDelay stands in for payment network latency.
const simulatorDelay = 2 * time.Second

// Simulator is the mock processor: a fixed delay, then success. The delay
// honors cancellation so abandoned checkouts release their goroutine.
type Simulator struct {
	Delay time.Duration
}

// NewSimulator returns a simulator with the default delay.
func NewSimulator() *Simulator {
	return &Simulator{Delay: simulatorDelay}
}

func (s *Simulator) Charge(ctx context.Context, card Card, amount float64) error {
	if s.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
