package checkout

import "sync"

// Stash is the one-time handoff between order placement and the confirmation
// screen. An order can be taken exactly once; after that the id is gone and
// the confirmation shows its not-found fallback. Nothing here is durable.
type Stash struct {
	mu     sync.Mutex
	orders map[string]*Order
}

// NewStash returns an empty stash.
func NewStash() *Stash {
	return &Stash{orders: make(map[string]*Order)}
}

// Put parks an order for its confirmation render.
func (s *Stash) Put(o *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.OrderID] = o
}

// Take removes and returns the order for id. The second Take of the same id
// reports false.
func (s *Stash) Take(id string) (*Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if ok {
		delete(s.orders, id)
	}
	return o, ok
}
