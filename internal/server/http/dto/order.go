package dto

import "time"

// OrderLineResponse describes one frozen order line.
type OrderLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Amount    int64  `json:"amount"`
}

// OrderResponse describes an order snapshot.
type OrderResponse struct {
	ID          int64               `json:"id"`
	UID         string              `json:"uid"`
	Name        string              `json:"name"`
	Status      string              `json:"status"`
	TotalAmount int64               `json:"total_amount"`
	Lines       []OrderLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
