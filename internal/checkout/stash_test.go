package checkout

import "testing"

func TestStash_TakeIsOneShot(t *testing.T) {
	s := NewStash()
	order := &Order{OrderID: "ORD-TEST12345"}

	s.Put(order)

	got, ok := s.Take("ORD-TEST12345")
	if !ok || got.OrderID != order.OrderID {
		t.Fatalf("expected to take the order once, got %+v ok=%v", got, ok)
	}

	// the reload case: the order is gone
	if _, ok := s.Take("ORD-TEST12345"); ok {
		t.Fatalf("second take must fail")
	}
}

func TestStash_UnknownID(t *testing.T) {
	s := NewStash()
	if _, ok := s.Take("ORD-NOPE"); ok {
		t.Fatalf("unknown id must report not found")
	}
}
