package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PayStatus mirrors the payment state reported by the gateway.
type PayStatus string

const (
	PayStatusReady    PayStatus = "ready"
	PayStatusPaid     PayStatus = "paid"
	PayStatusCanceled PayStatus = "canceled"
	PayStatusFailed   PayStatus = "failed"
)

// PayMethod identifies the payment instrument.
type PayMethod string

const PayMethodCard PayMethod = "card"

// Payment is one attempt to pay for an order via the external gateway.
// DesiredAmount is frozen at creation; PayStatus, Meta and IsPaidOK are
// overwritten from the gateway's authoritative state and never deleted.
type Payment struct {
	ID            int64
	UID           uuid.UUID
	OrderID       int64
	Name          string
	DesiredAmount int64
	BuyerName     string
	BuyerEmail    string
	PayMethod     PayMethod
	PayStatus     PayStatus
	IsPaidOK      bool
	Meta          json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MerchantUID is the identifier presented to the gateway to correlate
// verification calls for this attempt.
func (p *Payment) MerchantUID() string {
	return p.UID.String()
}

// GatewayPayment is the gateway's authoritative view of one payment.
type GatewayPayment struct {
	ImpUID      string
	MerchantUID string
	Status      PayStatus
	Amount      int64
	Raw         json.RawMessage
}
