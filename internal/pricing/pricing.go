package pricing

import (
	"math"
	"strconv"
	"strings"

	"moto-backoffice/internal/models"
)

// DefaultVATPercent is applied to new lines and to stored lines missing a
// VAT rate.
const DefaultVATPercent = 25

// Line field keys as the edit forms send them. Any other key leaves the unit
// prices untouched and only rederives the totals.
const (
	FieldPriceExVAT  = "price_ex_vat"
	FieldPriceIncVAT = "price_inc_vat"
	FieldVATPercent  = "vat_percent"
)

// Round2 rounds to 2 decimals. Every derivation step rounds through this
// before feeding the next step; the intermediate rounding is part of the
// observable totals and must not be collapsed into a single final rounding.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewLine returns a fresh empty line with the form defaults.
func NewLine() models.WorkOrderLine {
	return models.WorkOrderLine{
		Quantity:   1,
		VATPercent: DefaultVATPercent,
	}
}

// RecalculateLine rederives all dependent fields of a line after a single
// field edit. The edited value is already set on the line; edited names the
// field that changed so the counterpart price can be recomputed:
//
//   - price_ex_vat edited: price_inc_vat follows from it and the VAT percent
//   - price_inc_vat edited: price_ex_vat is back-derived
//   - vat_percent edited: price_inc_vat is recomputed, the ex-VAT price is
//     the anchor and is never back-derived from a VAT edit
//
// VAT and discount percentages are not clamped to [0,100]; out-of-range
// values flow through the arithmetic unchanged.
func RecalculateLine(l models.WorkOrderLine, edited string) models.WorkOrderLine {
	switch edited {
	case FieldPriceExVAT:
		l.PriceIncVAT = Round2(l.PriceExVAT * (1 + l.VATPercent/100))
	case FieldPriceIncVAT:
		l.PriceExVAT = Round2(l.PriceIncVAT / (1 + l.VATPercent/100))
	case FieldVATPercent:
		l.PriceIncVAT = Round2(l.PriceExVAT * (1 + l.VATPercent/100))
	}

	discountMultiplier := 1 - l.DiscountPercent/100
	baseLineTotalExVAT := l.PriceExVAT * l.Quantity
	baseLineTotalIncVAT := l.PriceIncVAT * l.Quantity

	l.LineTotalExVAT = Round2(baseLineTotalExVAT * discountMultiplier)
	l.LineTotalIncVAT = Round2(baseLineTotalIncVAT * discountMultiplier)
	l.VATAmount = Round2(l.LineTotalIncVAT - l.LineTotalExVAT)
	l.DiscountAmount = Round2(baseLineTotalExVAT - l.LineTotalExVAT)
	return l
}

// RecalculateOrderTotals rederives the three order totals from the current
// line set. The VAT total is the difference of the two rounded sums, not the
// sum of per-line VAT amounts; the two can disagree by a few øre and the
// difference form is the authoritative one.
func RecalculateOrderTotals(o models.WorkOrder) models.WorkOrder {
	var totalExVAT, totalIncVAT float64
	for _, l := range o.Items {
		totalExVAT += l.LineTotalExVAT
		totalIncVAT += l.LineTotalIncVAT
	}
	o.TotalExVAT = Round2(totalExVAT)
	o.TotalIncVAT = Round2(totalIncVAT)
	o.TotalVAT = Round2(o.TotalIncVAT - o.TotalExVAT)
	return o
}

// NormalizeStoredLine converts a persisted line into the in-memory form.
// The stored shape keeps a VAT rate multiplier and drops the derived
// amounts, so defaults are applied and the full derivation chain runs;
// a freshly loaded line satisfies the same invariants as a freshly edited
// one.
func NormalizeStoredLine(s models.StoredWorkOrderLine) models.WorkOrderLine {
	quantity := s.Quantity
	if quantity == 0 {
		quantity = 1
	}
	vatPercent := float64(DefaultVATPercent)
	if s.VATRate != 0 {
		vatPercent = (s.VATRate - 1) * 100
	}

	l := models.WorkOrderLine{
		ID:              s.ID,
		Description:     s.Description,
		Quantity:        quantity,
		PriceExVAT:      s.PriceExVAT,
		VATPercent:      vatPercent,
		DiscountPercent: s.DiscountPercent,
	}
	return RecalculateLine(l, FieldPriceExVAT)
}

// ToStoredLine projects a normalized line onto the persisted shape.
func ToStoredLine(l models.WorkOrderLine, orderID int64) models.StoredWorkOrderLine {
	return models.StoredWorkOrderLine{
		WorkOrderID:     orderID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		PriceExVAT:      l.PriceExVAT,
		VATRate:         1 + l.VATPercent/100,
		DiscountPercent: l.DiscountPercent,
		LineTotalIncVAT: l.LineTotalIncVAT,
	}
}

// Validation error map keys.
const (
	ErrKeyItems           = "items"
	ErrKeyItemDescription = "item_description"
)

// ValidateOrder checks an order before save and returns a map of field key to
// message; an empty map means the order may be saved. Customer and bike are
// deliberately not required.
func ValidateOrder(o models.WorkOrder) map[string]string {
	errs := make(map[string]string)

	if len(o.Items) == 0 {
		errs[ErrKeyItems] = "Please add at least one item"
	} else {
		for _, l := range o.Items {
			if strings.TrimSpace(l.Description) == "" {
				errs[ErrKeyItemDescription] = "All items must have a description"
				break
			}
		}
	}
	return errs
}

// ParseQuantity parses a quantity form value, falling back to 1 when the
// input is not a number or is zero. Negative quantities are passed through.
func ParseQuantity(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || v == 0 {
		return 1
	}
	return v
}

// ParseAmount parses a price or percent form value, falling back to 0. Bad
// numeric input never raises an error state; it degrades to the fallback.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}
