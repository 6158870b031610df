package dto

import "encoding/json"

// PaymentResponse describes one payment attempt. ShopID and the buyer
// fields are the launch properties the client-side gateway SDK needs.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	MerchantUID   string          `json:"merchant_uid"`
	OrderID       int64           `json:"order_id"`
	Name          string          `json:"name"`
	DesiredAmount int64           `json:"desired_amount"`
	BuyerName     string          `json:"buyer_name"`
	BuyerEmail    string          `json:"buyer_email,omitempty"`
	PayMethod     string          `json:"pay_method"`
	PayStatus     string          `json:"pay_status"`
	IsPaidOK      bool            `json:"is_paid_ok"`
	ShopID        string          `json:"shop_id,omitempty"`
	Meta          json.RawMessage `json:"meta,omitempty"`
}

// PaymentCheckResponse couples the verified payment with the resulting
// order status.
type PaymentCheckResponse struct {
	Payment     PaymentResponse `json:"payment"`
	OrderStatus string          `json:"order_status"`
}
