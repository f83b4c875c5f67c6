package domain

// Product is the catalog unit. JSON field names are the persisted contract of the
// products blob and must not change.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Discount    int      `json:"discount,omitempty"` // percent off, 0-100
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsTrending  bool     `json:"isTrending,omitempty"`
	IsFeatured  bool     `json:"isFeatured,omitempty"`
}

// EffectivePrice applies the discount for display and totals. The stored Price is
// never mutated.
func (p Product) EffectivePrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - float64(p.Discount)/100)
}
