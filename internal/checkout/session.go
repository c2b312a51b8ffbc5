package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imrishuroy/go-storefront/internal/cart"
	"github.com/imrishuroy/go-storefront/internal/notify"
	"github.com/imrishuroy/go-storefront/internal/payment"
)

// taxRate is applied to the subtotal at order placement. Shipping is free.
const taxRate = 0.08

const defaultCountry = "United States"

var (
	// ErrEmptyCart rejects checkout entry when there is nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrWrongStep rejects an operation issued out of sequence.
	ErrWrongStep = errors.New("operation not allowed at current step")
	// ErrAlreadyPlacing rejects a second place-order while the first is in
	// flight. This is how duplicate orders are prevented.
	ErrAlreadyPlacing = errors.New("order placement already in progress")
	// ErrOrderPlaced rejects any use of a session after its order exists.
	ErrOrderPlaced = errors.New("order already placed")
)

// Session walks one checkout through shipping, payment, review, and
// placement. Backward navigation before placement keeps both drafts;
// placement is terminal and produces at most one Order per session.
type Session struct {
	mu         sync.Mutex
	step       Step
	processing bool
	placed     bool

	shipping ShippingInfo
	pay      PaymentInfo
	card     payment.Card

	cart      *cart.Engine
	processor payment.Processor
	notify    notify.Notifier

	nowFunc func() time.Time
	newID   func() string
}

// NewSession starts a checkout over the given cart. An empty cart is refused
// outright; there is no valid checkout of nothing.
func NewSession(c *cart.Engine, p payment.Processor, n notify.Notifier) (*Session, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}
	return &Session{
		step:      StepShipping,
		cart:      c,
		processor: p,
		notify:    n,
		nowFunc:   time.Now,
		newID:     NewOrderID,
	}, nil
}

// Step returns the current wizard position.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Processing reports whether an order placement is in flight.
func (s *Session) Processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// Shipping returns the shipping draft.
func (s *Session) Shipping() ShippingInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// Payment returns the retained payment draft (last 4 digits only).
func (s *Session) Payment() PaymentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pay
}

// SubmitShipping accepts the shipping form and advances to the payment step.
// The caller validates required fields before calling; the session only
// applies the country default.
func (s *Session) SubmitShipping(info ShippingInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return ErrOrderPlaced
	}
	if s.step != StepShipping {
		return ErrWrongStep
	}
	if info.Country == "" {
		info.Country = defaultCountry
	}
	s.shipping = info
	s.step = StepPayment
	return nil
}

// SubmitPayment accepts the card form and advances to review. Only the
// cardholder name, expiry, and last 4 digits are retained for display; the
// full card is kept internally until the charge and never exposed.
func (s *Session) SubmitPayment(card payment.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return ErrOrderPlaced
	}
	if s.step != StepPayment {
		return ErrWrongStep
	}
	s.card = card
	s.pay = PaymentInfo{
		CardName:   card.Name,
		CardLast4:  payment.Last4(card.Number),
		ExpiryDate: card.Expiry,
	}
	s.step = StepReview
	return nil
}

// Back returns from review to an earlier step for edits. Both drafts survive
// the round trip. Backward navigation is refused once placement has started.
func (s *Session) Back(target Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return ErrOrderPlaced
	}
	if s.processing {
		return ErrAlreadyPlacing
	}
	if s.step != StepReview {
		return ErrWrongStep
	}
	if target != StepShipping && target != StepPayment {
		return ErrWrongStep
	}
	s.step = target
	return nil
}

// PlaceOrder runs the terminal transition: charge, snapshot, clear the cart.
// Re-entry while a placement is in flight returns ErrAlreadyPlacing, so a
// session yields at most one Order no matter how often the trigger fires.
// There is no abort path once the charge has started.
func (s *Session) PlaceOrder(ctx context.Context) (*Order, error) {
	s.mu.Lock()
	if s.placed {
		s.mu.Unlock()
		return nil, ErrOrderPlaced
	}
	if s.processing {
		s.mu.Unlock()
		return nil, ErrAlreadyPlacing
	}
	if s.step != StepReview {
		s.mu.Unlock()
		return nil, ErrWrongStep
	}
	s.processing = true
	card := s.card
	s.mu.Unlock()

	items := s.cart.Items()
	subtotal := s.cart.Total()
	tax := subtotal * taxRate

	if err := s.processor.Charge(ctx, card, subtotal+tax); err != nil {
		s.mu.Lock()
		s.processing = false
		s.mu.Unlock()
		return nil, fmt.Errorf("payment processing: %w", err)
	}

	s.mu.Lock()
	order := &Order{
		OrderID:  s.newID(),
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		Shipping: s.shipping,
		PlacedAt: s.nowFunc(),
	}
	s.placed = true
	s.mu.Unlock()

	s.cart.Clear()
	s.notify.Success("Order placed successfully!")
	return order, nil
}

// NewOrderID generates a display order id, ORD- plus 9 characters.
func NewOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + suffix[:9]
}
