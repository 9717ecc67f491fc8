package dto

// PrintLine is one formatted invoice row. All amounts are fixed two-decimal
// strings, ready to render.
type PrintLine struct {
	Description     string `json:"description"`
	Quantity        string `json:"quantity"`
	PriceExVAT      string `json:"price_ex_vat"`
	VATPercent      string `json:"vat_percent"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	LineTotalIncVAT string `json:"line_total_inc_vat"`
}

// PrintParty is the customer block on the invoice header.
type PrintParty struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// PrintBike is the bike block on the invoice header.
type PrintBike struct {
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	ModelYear    string `json:"model_year"`
}

// WorkOrderPrintView is the complete invoice-style rendering of a work
// order.
type WorkOrderPrintView struct {
	OrderID     int64       `json:"order_id"`
	Date        string      `json:"date"`
	Status      string      `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	Odometer    int         `json:"odometer,omitempty"`
	Customer    *PrintParty `json:"customer,omitempty"`
	Bike        *PrintBike  `json:"bike,omitempty"`
	Lines       []PrintLine `json:"lines"`
	TotalExVAT  string      `json:"total_ex_vat"`
	TotalVAT    string      `json:"total_vat"`
	TotalIncVAT string      `json:"total_inc_vat"`
}
