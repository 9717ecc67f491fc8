package dto

// CreatePartRequest defines the structure for adding an inventory part.
// Prices are in øre.
type CreatePartRequest struct {
	ItemNumber  string  `json:"item_number" validate:"required,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	InStock     int     `json:"in_stock" validate:"omitempty,gte=0"`
	PriceIn     int64   `json:"price_in" validate:"omitempty,gte=0"`
	PriceOut    int64   `json:"price_out" validate:"omitempty,gte=0"`
	VAT         float64 `json:"vat" validate:"omitempty,gte=0"`
	Barcode     string  `json:"barcode" validate:"omitempty,max=50"`
}

// UpdatePartRequest defines the structure for updating an inventory part.
type UpdatePartRequest struct {
	ID          int64   `json:"id" validate:"required"`
	ItemNumber  string  `json:"item_number" validate:"required,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	InStock     int     `json:"in_stock" validate:"omitempty,gte=0"`
	PriceIn     int64   `json:"price_in" validate:"omitempty,gte=0"`
	PriceOut    int64   `json:"price_out" validate:"omitempty,gte=0"`
	VAT         float64 `json:"vat" validate:"omitempty,gte=0"`
	Barcode     string  `json:"barcode" validate:"omitempty,max=50"`
}

// AdjustStockRequest applies a relative stock change, positive for receipts
// and negative for withdrawals.
type AdjustStockRequest struct {
	ID    int64 `json:"id" validate:"required"`
	Delta int   `json:"delta" validate:"required"`
}
