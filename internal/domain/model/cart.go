package model

// CartItem links a user to a product with the desired quantity.
// Unique per (user, product); quantity accumulates across additions.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
}

// CartLine is a cart item joined with current product data.
// Amount reads the live product price; prices freeze only at checkout.
type CartLine struct {
	Item    CartItem
	Product Product
}

// Amount is the line subtotal at the current catalog price.
func (l *CartLine) Amount() int64 {
	return l.Product.Price * int64(l.Item.Quantity)
}
