package catalog

// Product is the unit of the storefront inventory. Products are read-only:
// the catalog is seeded once and never mutated, so Stock is the maximum
// purchasable quantity, not a live reservation counter.
type Product struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Brand       string            `json:"brand,omitempty"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	Featured    bool              `json:"featured,omitempty"`
	Description string            `json:"description,omitempty"`
	Image       string            `json:"image,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
}

// Catalog holds the in-memory product inventory.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// New returns a catalog seeded with the demo inventory.
func New() *Catalog {
	return newFrom(seedProducts)
}

// NewFrom builds a catalog from an explicit product list.
func NewFrom(products []Product) *Catalog {
	return newFrom(products)
}

func newFrom(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range c.products {
		c.byID[p.ID] = p
	}
	return c
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns products matching the given category.
func (c *Catalog) ByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the featured subset.
func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
