package wishlist

import (
	"fmt"
	"sync"

	"github.com/imrishuroy/go-storefront/internal/catalog"
	"github.com/imrishuroy/go-storefront/internal/notify"
	"github.com/imrishuroy/go-storefront/internal/storage"
)

const storageKey = "verveo-wishlist"

// Engine owns the wishlist, a set of products keyed by id. There are no
// quantities; membership is the whole state.
type Engine struct {
	mu      sync.Mutex
	entries []catalog.Product
	store   *storage.Store
	notify  notify.Notifier
}

// NewEngine hydrates a wishlist engine from the store.
func NewEngine(store *storage.Store, n notify.Notifier) *Engine {
	e := &Engine{store: store, notify: n}
	store.Load(storageKey, &e.entries)
	return e
}

// Toggle flips membership of p: present products are removed, absent ones
// added. Two consecutive toggles of the same product cancel out. Returns true
// when the product ended up in the wishlist.
func (e *Engine) Toggle(p catalog.Product) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.entries {
		if e.entries[i].ID == p.ID {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			e.persistLocked()
			e.notify.Info(fmt.Sprintf("%s removed from wishlist", p.Name))
			return false
		}
	}

	e.entries = append(e.entries, p)
	e.persistLocked()
	e.notify.Success(fmt.Sprintf("%s added to wishlist", p.Name))
	return true
}

// Remove deletes productID from the wishlist if present; silent no-op
// otherwise.
func (e *Engine) Remove(productID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.entries {
		if e.entries[i].ID == productID {
			name := e.entries[i].Name
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			e.persistLocked()
			e.notify.Info(fmt.Sprintf("%s removed from wishlist", name))
			return
		}
	}
}

// Contains reports membership of productID.
func (e *Engine) Contains(productID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.entries {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of the wishlist.
func (e *Engine) Items() []catalog.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]catalog.Product, len(e.entries))
	copy(out, e.entries)
	return out
}

// Len returns the number of wishlist entries.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

func (e *Engine) persistLocked() {
	e.store.Save(storageKey, e.entries)
}
