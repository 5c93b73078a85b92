package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Product is the catalog record a cart line is created from. Price is a
// snapshot taken at add time and does not follow later catalog changes.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// Item is one line in the cart. Quantity is always >= 1; an item that
// would drop to zero is removed instead.
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

// Snapshot is the read-only view handed to consumers (cart page, checkout,
// header badge). Total and ItemCount are derived from Items on every
// mutation and never drift.
type Snapshot struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type actionKind int

const (
	actionAdd actionKind = iota
	actionUpdateQuantity
	actionRemove
	actionClear
)

// action is the closed command set the cart is mutated through, mirroring
// the reducer dispatch the store is modeled as.
type action struct {
	kind     actionKind
	product  Product
	id       int
	quantity int
}

// Cart holds the line items for one session. All mutations go through
// dispatch under the mutex, so every operation is atomic: totals are
// recomputed before the lock is released and no partial state is visible.
type Cart struct {
	mu        sync.Mutex
	items     []Item
	total     decimal.Decimal
	itemCount int
}

func New() *Cart {
	return &Cart{total: decimal.Zero}
}

// Add appends the product as a new line, or increments the quantity of the
// existing line with the same product id (its position is unchanged).
// A quantity <= 0 is treated as 1.
func (c *Cart) Add(p Product, quantity int) {
	c.dispatch(action{kind: actionAdd, product: p, quantity: quantity})
}

// UpdateQuantity sets the absolute quantity of the line with the given id.
// A quantity <= 0 removes the line. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id, quantity int) {
	c.dispatch(action{kind: actionUpdateQuantity, id: id, quantity: quantity})
}

// Remove deletes the line with the given id if present.
func (c *Cart) Remove(id int) {
	c.dispatch(action{kind: actionRemove, id: id})
}

// Clear empties the cart. Totals become zero.
func (c *Cart) Clear() {
	c.dispatch(action{kind: actionClear})
}

// Snapshot returns a copy of the current state. The returned slice is
// detached from the cart and safe to hold across later mutations.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return Snapshot{Items: items, Total: c.total, ItemCount: c.itemCount}
}

func (c *Cart) dispatch(a action) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch a.kind {
	case actionAdd:
		qty := a.quantity
		if qty <= 0 {
			qty = 1
		}
		if i := c.indexOf(a.product.ID); i >= 0 {
			c.items[i].Quantity += qty
		} else {
			c.items = append(c.items, Item{
				ID:          a.product.ID,
				Name:        a.product.Name,
				Price:       a.product.Price,
				Image:       a.product.Image,
				Description: a.product.Description,
				Quantity:    qty,
			})
		}

	case actionUpdateQuantity:
		i := c.indexOf(a.id)
		if i < 0 {
			break
		}
		if a.quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = a.quantity
		}

	case actionRemove:
		if i := c.indexOf(a.id); i >= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}

	case actionClear:
		c.items = nil
	}

	c.recompute()
}

func (c *Cart) indexOf(id int) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) recompute() {
	total := decimal.Zero
	count := 0
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	c.total = total
	c.itemCount = count
}
