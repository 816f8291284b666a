package models

// CartItem is one line in a session cart. The product is embedded as a
// snapshot so price and stock bounds come from the moment it was added.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState holds the session cart. Total and ItemCount are derived and
// recomputed in full on every mutation, never maintained incrementally.
type CartState struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func (c *CartState) Recalculate() {
	var total float64
	var count int
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

// QuantityOf reports how many units of the product are already in the cart.
func (c *CartState) QuantityOf(productID string) int {
	for _, item := range c.Items {
		if item.Product.ID.Hex() == productID {
			return item.Quantity
		}
	}
	return 0
}
