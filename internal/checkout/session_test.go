package checkout

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/imrishuroy/go-storefront/internal/cart"
	"github.com/imrishuroy/go-storefront/internal/catalog"
	"github.com/imrishuroy/go-storefront/internal/notify"
	"github.com/imrishuroy/go-storefront/internal/payment"
	"github.com/imrishuroy/go-storefront/internal/storage"
)

// fakeProcessor lets tests hold a charge in flight and observe call counts.
type fakeProcessor struct {
	mu      sync.Mutex
	calls   int
	block   chan struct{} // if non-nil, Charge waits for it
	started chan struct{} // if non-nil, signalled when Charge begins
	err     error
}

func (f *fakeProcessor) Charge(ctx context.Context, card payment.Card, amount float64) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return f.err
}

func (f *fakeProcessor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newCartWith(t *testing.T, products ...catalog.Product) *cart.Engine {
	t.Helper()
	e := cart.NewEngine(storage.New(t.TempDir()), &notify.Capture{})
	for _, p := range products {
		e.Add(p, 1)
	}
	return e
}

func validShipping() ShippingInfo {
	return ShippingInfo{
		FirstName: "Rishu",
		LastName:  "Roy",
		Email:     "rishu@example.com",
		Phone:     "555-0100",
		Address:   "1 Main St",
		City:      "Springfield",
		State:     "IL",
		ZipCode:   "62701",
	}
}

func validCard() payment.Card {
	return payment.Card{Number: "4111111111111111", Name: "Rishu Roy", Expiry: "12/27", CVV: "123"}
}

// walkToReview drives a fresh session through shipping and payment.
func walkToReview(t *testing.T, s *Session) {
	t.Helper()
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}
	if err := s.SubmitPayment(validCard()); err != nil {
		t.Fatalf("submit payment: %v", err)
	}
}

func TestNewSession_RefusesEmptyCart(t *testing.T) {
	c := cart.NewEngine(storage.New(t.TempDir()), &notify.Capture{})

	if _, err := NewSession(c, &fakeProcessor{}, &notify.Capture{}); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSession_StepGating(t *testing.T) {
	c := newCartWith(t, catalog.Product{ID: 1, Name: "A", Price: 10, Stock: 5})
	s, err := NewSession(c, &fakeProcessor{}, &notify.Capture{})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := s.SubmitPayment(validCard()); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("payment before shipping: expected ErrWrongStep, got %v", err)
	}
	if _, err := s.PlaceOrder(context.Background()); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("place before review: expected ErrWrongStep, got %v", err)
	}
	if err := s.Back(StepShipping); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("back before review: expected ErrWrongStep, got %v", err)
	}
}

func TestSubmitShipping_DefaultsCountry(t *testing.T) {
	c := newCartWith(t, catalog.Product{ID: 1, Name: "A", Price: 10, Stock: 5})
	s, _ := NewSession(c, &fakeProcessor{}, &notify.Capture{})

	info := validShipping()
	info.Country = ""
	if err := s.SubmitShipping(info); err != nil {
		t.Fatalf("submit shipping: %v", err)
	}
	if got := s.Shipping().Country; got != "United States" {
		t.Fatalf("expected defaulted country, got %q", got)
	}
}

func TestSubmitPayment_RetainsOnlyLast4(t *testing.T) {
	c := newCartWith(t, catalog.Product{ID: 1, Name: "A", Price: 10, Stock: 5})
	s, _ := NewSession(c, &fakeProcessor{}, &notify.Capture{})
	walkToReview(t, s)

	pay := s.Payment()
	if pay.CardLast4 != "1111" {
		t.Fatalf("expected last4 1111, got %q", pay.CardLast4)
	}
	if strings.Contains(pay.CardLast4, "4111111111111111") {
		t.Fatalf("full card number must not be exposed")
	}
}

func TestBack_PreservesBothDrafts(t *testing.T) {
	c := newCartWith(t, catalog.Product{ID: 1, Name: "A", Price: 10, Stock: 5})
	s, _ := NewSession(c, &fakeProcessor{}, &notify.Capture{})
	walkToReview(t, s)

	if err := s.Back(StepShipping); err != nil {
		t.Fatalf("back to shipping: %v", err)
	}
	if s.Step() != StepShipping {
		t.Fatalf("expected shipping step, got %v", s.Step())
	}
	if s.Shipping().FirstName != "Rishu" {
		t.Fatalf("shipping draft lost on backward navigation")
	}
	if s.Payment().CardLast4 != "1111" {
		t.Fatalf("payment draft lost on backward navigation")
	}

	// walk forward again
	if err := s.SubmitShipping(s.Shipping()); err != nil {
		t.Fatalf("resubmit shipping: %v", err)
	}
	if err := s.SubmitPayment(validCard()); err != nil {
		t.Fatalf("resubmit payment: %v", err)
	}
	if s.Step() != StepReview {
		t.Fatalf("expected review step, got %v", s.Step())
	}
}

func TestPlaceOrder_FullCheckout(t *testing.T) {
	c := newCartWith(t)
	c.Add(catalog.Product{ID: 1, Name: "A", Price: 100, Stock: 10}, 2)

	sink := &notify.Capture{}
	s, err := NewSession(c, &fakeProcessor{}, sink)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	walkToReview(t, s)

	order, err := s.PlaceOrder(context.Background())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if int(math.Round(order.Subtotal*100)) != 20000 {
		t.Fatalf("expected subtotal 200.00, got %v", order.Subtotal)
	}
	if int(math.Round(order.Tax*100)) != 1600 {
		t.Fatalf("expected tax 16.00, got %v", order.Tax)
	}
	if int(math.Round(order.Total*100)) != 21600 {
		t.Fatalf("expected total 216.00, got %v", order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("order snapshot should hold the cart at time of purchase, got %+v", order.Items)
	}
	if !strings.HasPrefix(order.OrderID, "ORD-") {
		t.Fatalf("expected ORD- prefixed id, got %q", order.OrderID)
	}
	if order.Shipping.City != "Springfield" {
		t.Fatalf("order should carry the shipping info")
	}

	// cart is cleared by placement
	if c.Count() != 0 {
		t.Fatalf("expected empty cart after placement, got count %d", c.Count())
	}

	last, _ := sink.Last()
	if last.Text != "Order placed successfully!" {
		t.Fatalf("expected success notification, got %+v", last)
	}
}

func TestPlaceOrder_DoubleSubmitYieldsOneOrder(t *testing.T) {
	c := newCartWith(t, catalog.Product{ID: 1, Name: "A", Price: 100, Stock: 10})
	proc := &fakeProcessor{block: make(chan struct{}), started: make(chan struct{}, 1)}
	s, _ := NewSession(c, proc, &notify.Capture{})
	walkToReview(t, s)

	type result struct {
		order *Order
		err   error
	}
	done := make(chan result, 1)
	go func() {
		o, err := s.PlaceOrder(context.Background())
		done <- result{o, err}
	}()

	<-proc.started // first placement is now in flight

	if _, err := s.PlaceOrder(context.Background()); !errors.Is(err, ErrAlreadyPlacing) {
		t.Fatalf("expected ErrAlreadyPlacing on re-trigger, got %v", err)
	}

	close(proc.block)
	first := <-done
	if first.err != nil {
		t.Fatalf("first placement should succeed, got %v", first.err)
	}
	if proc.callCount() != 1 {
		t.Fatalf("expected exactly one charge, got %d", proc.callCount())
	}

	// and the session is terminal now
	if _, err := s.PlaceOrder(context.Background()); !errors.Is(err, ErrOrderPlaced) {
		t.Fatalf("expected ErrOrderPlaced after completion, got %v", err)
	}
}

func TestPlaceOrder_ChargeFailureAllowsRetry(t *testing.T) {
	c := newCartWith(t, catalog.Product{ID: 1, Name: "A", Price: 100, Stock: 10})
	proc := &fakeProcessor{err: errors.New("card declined")}
	s, _ := NewSession(c, proc, &notify.Capture{})
	walkToReview(t, s)

	if _, err := s.PlaceOrder(context.Background()); err == nil {
		t.Fatalf("expected charge failure")
	}
	if c.Count() == 0 {
		t.Fatalf("cart must survive a failed placement")
	}

	// the processing flag resets, so the user can try again
	proc.err = nil
	if _, err := s.PlaceOrder(context.Background()); err != nil {
		t.Fatalf("retry after failure should work, got %v", err)
	}
}

func TestNewOrderID_Format(t *testing.T) {
	id := NewOrderID()
	if !strings.HasPrefix(id, "ORD-") || len(id) != len("ORD-")+9 {
		t.Fatalf("unexpected order id %q", id)
	}
	if id == NewOrderID() {
		t.Fatalf("order ids should not repeat")
	}
}
