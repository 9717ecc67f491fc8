package pricing_test

import (
	"testing"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateLine(t *testing.T) {
	tests := []struct {
		name   string
		line   models.WorkOrderLine
		edited string
		want   models.WorkOrderLine
	}{
		{
			name: "plain line without discount",
			line: models.WorkOrderLine{
				Description: "Fork seal replacement",
				Quantity:    2,
				PriceExVAT:  100,
				VATPercent:  25,
			},
			edited: pricing.FieldPriceExVAT,
			want: models.WorkOrderLine{
				Description:     "Fork seal replacement",
				Quantity:        2,
				PriceExVAT:      100,
				PriceIncVAT:     125,
				VATPercent:      25,
				VATAmount:       50,
				LineTotalExVAT:  200,
				LineTotalIncVAT: 250,
			},
		},
		{
			name: "ten percent discount",
			line: models.WorkOrderLine{
				Description:     "Fork seal replacement",
				Quantity:        2,
				PriceExVAT:      100,
				VATPercent:      25,
				DiscountPercent: 10,
			},
			edited: pricing.FieldPriceExVAT,
			want: models.WorkOrderLine{
				Description:     "Fork seal replacement",
				Quantity:        2,
				PriceExVAT:      100,
				PriceIncVAT:     125,
				VATPercent:      25,
				VATAmount:       45,
				DiscountPercent: 10,
				DiscountAmount:  20,
				LineTotalExVAT:  180,
				LineTotalIncVAT: 225,
			},
		},
		{
			name: "inc-VAT edit back-derives ex-VAT price",
			line: models.WorkOrderLine{
				Description: "Chain kit",
				Quantity:    1,
				PriceIncVAT: 110,
				VATPercent:  25,
			},
			edited: pricing.FieldPriceIncVAT,
			want: models.WorkOrderLine{
				Description:     "Chain kit",
				Quantity:        1,
				PriceExVAT:      88,
				PriceIncVAT:     110,
				VATPercent:      25,
				VATAmount:       22,
				LineTotalExVAT:  88,
				LineTotalIncVAT: 110,
			},
		},
		{
			name: "VAT percent edit keeps ex-VAT price as anchor",
			line: models.WorkOrderLine{
				Description: "Oil change",
				Quantity:    1,
				PriceExVAT:  100,
				PriceIncVAT: 125,
				VATPercent:  12,
			},
			edited: pricing.FieldVATPercent,
			want: models.WorkOrderLine{
				Description:     "Oil change",
				Quantity:        1,
				PriceExVAT:      100,
				PriceIncVAT:     112,
				VATPercent:      12,
				VATAmount:       12,
				LineTotalExVAT:  100,
				LineTotalIncVAT: 112,
			},
		},
		{
			name: "quantity edit leaves both unit prices untouched",
			line: models.WorkOrderLine{
				Description: "Brake pads",
				Quantity:    3,
				PriceExVAT:  40,
				PriceIncVAT: 50,
				VATPercent:  25,
			},
			edited: "quantity",
			want: models.WorkOrderLine{
				Description:     "Brake pads",
				Quantity:        3,
				PriceExVAT:      40,
				PriceIncVAT:     50,
				VATPercent:      25,
				VATAmount:       30,
				LineTotalExVAT:  120,
				LineTotalIncVAT: 150,
			},
		},
		{
			name: "negative discount inflates the totals",
			line: models.WorkOrderLine{
				Description:     "Rush fee",
				Quantity:        1,
				PriceExVAT:      100,
				VATPercent:      25,
				DiscountPercent: -10,
			},
			edited: pricing.FieldPriceExVAT,
			want: models.WorkOrderLine{
				Description:     "Rush fee",
				Quantity:        1,
				PriceExVAT:      100,
				PriceIncVAT:     125,
				VATPercent:      25,
				VATAmount:       27.5,
				DiscountPercent: -10,
				DiscountAmount:  -10,
				LineTotalExVAT:  110,
				LineTotalIncVAT: 137.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.RecalculateLine(tt.line, tt.edited)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecalculateLine_PriceInvariant(t *testing.T) {
	// After any edit the two unit prices stay consistent through the VAT
	// percent, regardless of which field triggered the recompute.
	edits := []string{pricing.FieldPriceExVAT, pricing.FieldVATPercent, "quantity", "description"}

	line := models.WorkOrderLine{Quantity: 2, PriceExVAT: 99.99, VATPercent: 25}
	for _, edited := range edits {
		got := pricing.RecalculateLine(line, edited)
		assert.Equal(t, pricing.Round2(got.PriceExVAT*(1+got.VATPercent/100)), got.PriceIncVAT,
			"edited=%s", edited)
	}
}

func TestRecalculateLine_Idempotent(t *testing.T) {
	line := models.WorkOrderLine{
		Description:     "Valve adjustment",
		Quantity:        1.5,
		PriceExVAT:      433.33,
		VATPercent:      25,
		DiscountPercent: 12.5,
	}
	once := pricing.RecalculateLine(line, pricing.FieldPriceExVAT)
	twice := pricing.RecalculateLine(once, pricing.FieldPriceExVAT)
	assert.Equal(t, once, twice)
}

func TestRecalculateOrderTotals(t *testing.T) {
	t.Run("two lines", func(t *testing.T) {
		order := models.WorkOrder{
			Items: []models.WorkOrderLine{
				{LineTotalExVAT: 200, LineTotalIncVAT: 250},
				{LineTotalExVAT: 180, LineTotalIncVAT: 225},
			},
		}
		got := pricing.RecalculateOrderTotals(order)
		assert.Equal(t, 380.0, got.TotalExVAT)
		assert.Equal(t, 475.0, got.TotalIncVAT)
		assert.Equal(t, 95.0, got.TotalVAT)
	})

	t.Run("empty order is all zeros", func(t *testing.T) {
		got := pricing.RecalculateOrderTotals(models.WorkOrder{})
		assert.Zero(t, got.TotalExVAT)
		assert.Zero(t, got.TotalVAT)
		assert.Zero(t, got.TotalIncVAT)
	})

	t.Run("totals stay consistent with line sums", func(t *testing.T) {
		order := models.WorkOrder{
			Items: []models.WorkOrderLine{
				pricing.RecalculateLine(models.WorkOrderLine{Quantity: 3, PriceExVAT: 33.33, VATPercent: 25}, pricing.FieldPriceExVAT),
				pricing.RecalculateLine(models.WorkOrderLine{Quantity: 1, PriceExVAT: 0.01, VATPercent: 25}, pricing.FieldPriceExVAT),
				pricing.RecalculateLine(models.WorkOrderLine{Quantity: 7, PriceExVAT: 14.29, VATPercent: 15, DiscountPercent: 5}, pricing.FieldPriceExVAT),
			},
		}
		got := pricing.RecalculateOrderTotals(order)
		assert.InDelta(t, got.TotalIncVAT, got.TotalExVAT+got.TotalVAT, 0.001)

		var sumEx, sumInc float64
		for _, l := range got.Items {
			sumEx += l.LineTotalExVAT
			sumInc += l.LineTotalIncVAT
		}
		assert.Equal(t, pricing.Round2(sumEx), got.TotalExVAT)
		assert.Equal(t, pricing.Round2(sumInc), got.TotalIncVAT)
	})
}

func TestNormalizeStoredLine(t *testing.T) {
	t.Run("full stored line", func(t *testing.T) {
		got := pricing.NormalizeStoredLine(models.StoredWorkOrderLine{
			ID:              7,
			Description:     "Rear tyre",
			Quantity:        2,
			PriceExVAT:      100,
			VATRate:         1.25,
			DiscountPercent: 10,
		})
		assert.Equal(t, 25.0, got.VATPercent)
		assert.Equal(t, 125.0, got.PriceIncVAT)
		assert.Equal(t, 180.0, got.LineTotalExVAT)
		assert.Equal(t, 225.0, got.LineTotalIncVAT)
		assert.Equal(t, 45.0, got.VATAmount)
		assert.Equal(t, 20.0, got.DiscountAmount)
	})

	t.Run("missing fields fall back to defaults", func(t *testing.T) {
		got := pricing.NormalizeStoredLine(models.StoredWorkOrderLine{Description: "Mystery part"})
		assert.Equal(t, 1.0, got.Quantity)
		assert.Equal(t, 0.0, got.PriceExVAT)
		assert.Equal(t, 25.0, got.VATPercent)
		assert.Equal(t, 0.0, got.DiscountPercent)
	})

	t.Run("round trips through the stored VAT rate", func(t *testing.T) {
		stored := models.StoredWorkOrderLine{
			Description: "Clutch cable",
			Quantity:    1,
			PriceExVAT:  249,
			VATRate:     1.15,
		}
		normalized := pricing.NormalizeStoredLine(stored)
		back := pricing.ToStoredLine(normalized, 42)
		assert.InDelta(t, stored.VATRate, back.VATRate, 1e-9)
		assert.Equal(t, stored.Quantity, back.Quantity)
		assert.Equal(t, stored.PriceExVAT, back.PriceExVAT)
	})
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name     string
		order    models.WorkOrder
		wantKeys []string
	}{
		{
			name:     "no lines",
			order:    models.WorkOrder{},
			wantKeys: []string{pricing.ErrKeyItems},
		},
		{
			name: "whitespace-only description",
			order: models.WorkOrder{Items: []models.WorkOrderLine{
				{Description: "   ", Quantity: 1},
			}},
			wantKeys: []string{pricing.ErrKeyItemDescription},
		},
		{
			name: "valid order without customer or bike",
			order: models.WorkOrder{Items: []models.WorkOrderLine{
				{Description: "Service", Quantity: 1},
			}},
			wantKeys: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := pricing.ValidateOrder(tt.order)
			require.Len(t, errs, len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				assert.Contains(t, errs, key)
			}
		})
	}
}

func TestParseFallbacks(t *testing.T) {
	assert.Equal(t, 1.0, pricing.ParseQuantity("abc"))
	assert.Equal(t, 1.0, pricing.ParseQuantity(""))
	assert.Equal(t, 1.0, pricing.ParseQuantity("0"))
	assert.Equal(t, 2.5, pricing.ParseQuantity("2.5"))
	assert.Equal(t, -2.0, pricing.ParseQuantity("-2"))

	assert.Equal(t, 0.0, pricing.ParseAmount("not a price"))
	assert.Equal(t, 0.0, pricing.ParseAmount(""))
	assert.Equal(t, 129.9, pricing.ParseAmount("129.90"))
}
