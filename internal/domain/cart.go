package domain

// CartItem is a copy of the product taken at add time. Editing or deleting
// the product afterwards never changes existing cart or order lines.
type CartItem struct {
	Product
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

// Matches reports whether the line is the merge target for the given
// product id and size. Lines merge only on an exact (id, size) pair; an
// unsized line and a sized line of the same product stay distinct.
func (c CartItem) Matches(productID, selectedSize string) bool {
	return c.ID == productID && c.SelectedSize == selectedSize
}

func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
