package dto

import "moto-backoffice/internal/models"

// WorkOrderLineInput carries the editable fields of one line. The derived
// amounts are always recomputed server side, so clients only send the
// anchors. VATPercent is a pointer so an omitted value falls back to the
// default while an explicit 0 stays a VAT-exempt line.
type WorkOrderLineInput struct {
	Description     string   `json:"description"`
	Quantity        float64  `json:"quantity"`
	PriceExVAT      float64  `json:"price_ex_vat"`
	VATPercent      *float64 `json:"vat_percent"`
	DiscountPercent float64  `json:"discount_percent"`
}

// SaveWorkOrderRequest defines the structure for creating or updating a work
// order. A zero ID creates a new order. Customer and bike stay optional:
// walk-in jobs are written up before either is registered.
type SaveWorkOrderRequest struct {
	ID         int64                `json:"id" validate:"omitempty,gte=0"`
	Status     string               `json:"status" validate:"omitempty,oneof=open finished paid deleted"`
	CustomerID *int64               `json:"customer_id" validate:"omitempty,gt=0"`
	BikeID     *int64               `json:"bike_id" validate:"omitempty,gt=0"`
	Notes      string               `json:"notes"`
	Odometer   int                  `json:"odometer" validate:"omitempty,gte=0"`
	Items      []WorkOrderLineInput `json:"items"`
}

// RecalculateLineRequest recomputes one line after a single field edit.
type RecalculateLineRequest struct {
	Line   models.WorkOrderLine `json:"line"`
	Edited string               `json:"edited" validate:"required"`
}

// UpdateWorkOrderStatusRequest defines the structure for a status change.
type UpdateWorkOrderStatusRequest struct {
	ID     int64  `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=open finished paid deleted"`
}
