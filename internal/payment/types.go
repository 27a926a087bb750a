package payment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	paymentResource = "payments"
	methodResource  = "payments:methods"
)

// CreateMethodRequest represents the payload for registering a payment method
type CreateMethodRequest struct {
	Name          string `json:"name" binding:"required"`
	Kind          string `json:"kind" binding:"required"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Instructions  string `json:"instructions"`
	Position      int    `json:"position"`
}

// UpdateMethodRequest represents the payload for updating a payment method
type UpdateMethodRequest struct {
	Name          string `json:"name"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	Instructions  string `json:"instructions"`
	Position      *int   `json:"position"`
}

// ActiveRequest represents the payload for toggling a payment method
type ActiveRequest struct {
	Active bool `json:"active"`
}

// SubmitPaymentRequest represents the payload for reporting a payment
type SubmitPaymentRequest struct {
	BookingID uuid.UUID       `json:"bookingId" binding:"required"`
	MethodID  uuid.UUID       `json:"methodId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference string          `json:"reference"`
}

// FilterOptions represents the query options for listing payments
type FilterOptions struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (o *FilterOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 20
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
}

// PaginatedPayments represents one page of payments
type PaginatedPayments struct {
	Payments []Payment `json:"payments"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
