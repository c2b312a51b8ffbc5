package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const gatewayTimeout = 5 * time.Second

// ChargeRequest is the payload posted to the gateway's charge endpoint.
type ChargeRequest struct {
	CardName  string  `json:"card_name"`
	CardLast4 string  `json:"card_last4"`
	Amount    float64 `json:"amount"`
}

// ChargeResponse is the gateway's reply.
type ChargeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// StatusCompleted is the gateway status for a successful charge.
const StatusCompleted = "COMPLETED"

// GatewayClient charges through an external payment gateway over HTTP,
// behind a circuit breaker. Only the cardholder name and last 4 digits cross
// the wire; this is still a demo gateway, not a PCI integration.
type GatewayClient struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

// NewGatewayClient returns a client bound to baseURL.
func NewGatewayClient(baseURL string) *GatewayClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "PaymentGateway",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(log.Fields{
				"circuit": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})

	return &GatewayClient{
		client:  resty.New().SetTimeout(gatewayTimeout).SetRetryCount(0),
		breaker: cb,
		baseURL: baseURL,
	}
}

func (g *GatewayClient) Charge(ctx context.Context, card Card, amount float64) error {
	req := ChargeRequest{
		CardName:  card.Name,
		CardLast4: Last4(card.Number),
		Amount:    amount,
	}

	_, err := g.breaker.Execute(func() (interface{}, error) {
		resp, httpErr := g.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post(g.baseURL + "/payment/charge")

		if httpErr != nil {
			return nil, fmt.Errorf("HTTP error: %w", httpErr)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode(), resp.String())
		}

		var out ChargeResponse
		if err := json.Unmarshal(resp.Body(), &out); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		if out.Status != StatusCompleted {
			return nil, fmt.Errorf("charge failed: %s", out.Message)
		}
		return out, nil
	})

	if err == gobreaker.ErrOpenState {
		return fmt.Errorf("payment gateway unavailable: %w", err)
	}
	return err
}

// Last4 returns the trailing 4 digits of a card number, the only part of it
// that is ever retained or transmitted.
func Last4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
