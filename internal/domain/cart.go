package domain

// CartItem is a product snapshot plus a quantity of at least 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is the transient, session-local list of selected products. It is never
// persisted in the blob store; the HTTP layer carries it in a signed cookie.
// Items keep insertion order and are keyed by product id.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add puts p in the cart. If the product is already present its quantity is
// incremented instead of appending a duplicate line.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity adjusts the quantity of the item with the given id by delta.
// Quantity never drops below zero; reaching zero removes the item entirely.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.Items {
		if c.Items[i].ID != id {
			continue
		}
		c.Items[i].Quantity += delta
		if c.Items[i].Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// Remove drops the item with the given id regardless of quantity.
func (c *Cart) Remove(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Total recomputes the discounted sum on every call, never cached.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.EffectivePrice() * float64(it.Quantity)
	}
	return total
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Clear() {
	c.Items = nil
}
