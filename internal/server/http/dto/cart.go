package dto

// CartAddRequest describes the add-to-cart payload.
type CartAddRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartQuantityRequest describes the quantity update payload.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse describes a stored cart line.
type CartItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartLineResponse describes one cart line joined with live product data.
type CartLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Amount    int64  `json:"amount"`
}

// CartResponse describes the whole cart with its running total.
type CartResponse struct {
	Lines       []CartLineResponse `json:"lines"`
	TotalAmount int64              `json:"total_amount"`
}
