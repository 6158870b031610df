package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// PaymentHandler manages payment endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Create handles POST /api/user/orders/:orderID/payments.
func (h *PaymentHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)
	orderID, ok := pathID(c, "orderID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.CreatePayment(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrOrderNotPayable):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	response := toPaymentResponse(*payment)
	response.ShopID = h.facade.ShopID()
	c.JSON(http.StatusCreated, response)
}

// Check handles POST /api/user/payments/:paymentID/check.
func (h *PaymentHandler) Check(c *gin.Context) {
	userID := CurrentUserID(c)
	paymentID, ok := pathID(c, "paymentID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, order, err := h.facade.CheckPayment(c.Request.Context(), userID, paymentID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentCheckResponse{
		Payment:     toPaymentResponse(*payment),
		OrderStatus: string(order.Status),
	})
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID,
		MerchantUID:   p.MerchantUID(),
		OrderID:       p.OrderID,
		Name:          p.Name,
		DesiredAmount: p.DesiredAmount,
		BuyerName:     p.BuyerName,
		BuyerEmail:    p.BuyerEmail,
		PayMethod:     string(p.PayMethod),
		PayStatus:     string(p.PayStatus),
		IsPaidOK:      p.IsPaidOK,
		Meta:          p.Meta,
	}
}
