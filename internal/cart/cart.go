package cart

import (
	"fmt"
	"sync"

	"github.com/imrishuroy/go-storefront/internal/catalog"
	"github.com/imrishuroy/go-storefront/internal/notify"
	"github.com/imrishuroy/go-storefront/internal/storage"
)

const storageKey = "verveo-cart"

// Line is a product in the cart together with its quantity. The cart holds at
// most one line per product id; repeated adds merge into the existing line.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Engine owns the cart collection. Every mutation is applied in memory and
// then mirrored in full to the backing store. The engine is the single writer
// for its storage key.
type Engine struct {
	mu     sync.Mutex
	lines  []Line
	store  *storage.Store
	notify notify.Notifier
}

// NewEngine hydrates a cart engine from the store. A missing or corrupt
// stored cart starts empty.
func NewEngine(store *storage.Store, n notify.Notifier) *Engine {
	e := &Engine{store: store, notify: n}
	store.Load(storageKey, &e.lines)
	return e
}

// Add puts quantity units of p into the cart. If a line for p already exists
// the quantities are merged, but a merge that would exceed p.Stock is
// rejected: the cart is left unchanged and the user is notified. Returns
// false only on that rejection.
func (e *Engine) Add(p catalog.Product, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID != p.ID {
			continue
		}
		newQuantity := e.lines[i].Quantity + quantity
		if newQuantity > p.Stock {
			e.notify.Error("Cannot add more items - stock limit reached")
			return false
		}
		e.lines[i].Quantity = newQuantity
		e.persistLocked()
		e.notify.Success(fmt.Sprintf("Updated %s in cart (%d)", p.Name, newQuantity))
		return true
	}

	e.lines = append(e.lines, Line{Product: p, Quantity: quantity})
	e.persistLocked()
	e.notify.Success(fmt.Sprintf("%s added to cart", p.Name))
	return true
}

// Remove deletes the line for productID. Removing an absent product is a
// silent no-op.
func (e *Engine) Remove(productID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(productID)
}

func (e *Engine) removeLocked(productID int) {
	for i := range e.lines {
		if e.lines[i].ID == productID {
			name := e.lines[i].Name
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persistLocked()
			e.notify.Info(fmt.Sprintf("%s removed from cart", name))
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to the given value. A quantity of
// zero or less removes the line. The value is not checked against stock here;
// callers clamp before calling.
func (e *Engine) UpdateQuantity(productID, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		e.removeLocked(productID)
		return
	}
	for i := range e.lines {
		if e.lines[i].ID == productID {
			e.lines[i].Quantity = quantity
			e.persistLocked()
			return
		}
	}
}

// Clear empties the cart unconditionally. No notification is emitted; this is
// the post-order reset, not a user-visible mutation.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
	e.persistLocked()
}

// Total returns the cart value, sum of price times quantity over all lines.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	for _, l := range e.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count returns the total number of units across all lines.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	var count int
	for _, l := range e.lines {
		count += l.Quantity
	}
	return count
}

// Len returns the number of distinct lines.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// Items returns a snapshot copy of the cart lines.
func (e *Engine) Items() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func (e *Engine) persistLocked() {
	e.store.Save(storageKey, e.lines)
}
