package datamodel_test

import (
	"testing"

	"moto-backoffice/internal/datamodel"
	"moto-backoffice/internal/tableview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByEntity(t *testing.T) {
	for _, entity := range []string{"customers", "bikes", "work-orders", "inventory", "todos"} {
		s, ok := datamodel.ByEntity(entity)
		require.True(t, ok, entity)
		assert.NotEmpty(t, s.Fields, entity)
	}

	_, ok := datamodel.ByEntity("unicycles")
	assert.False(t, ok)
}

func TestWorkOrdersSchema(t *testing.T) {
	s := datamodel.WorkOrders()

	t.Run("status is the category field", func(t *testing.T) {
		f, ok := s.CategoryField()
		require.True(t, ok)
		assert.Equal(t, "status", f.Key)
		assert.Len(t, f.Options, 4)
		assert.Equal(t, "Åpen", f.Options[0].Label)
	})

	t.Run("default sort is newest first", func(t *testing.T) {
		assert.Equal(t, "created_at", s.DefaultSort.Key)
		assert.Equal(t, tableview.Descending, s.DefaultSort.Direction)
	})

	t.Run("customer column projects into the relation", func(t *testing.T) {
		f, ok := s.FieldByKey("customer_id")
		require.True(t, ok)
		got := tableview.RenderFieldValue(tableview.Record{
			"customer_id": float64(3),
			"customer":    map[string]any{"name": "Kari Nordmann"},
		}, f)
		assert.Equal(t, "Kari Nordmann", got)
	})

	t.Run("missing customer renders the null marker", func(t *testing.T) {
		f, _ := s.FieldByKey("customer_id")
		got := tableview.RenderFieldValue(tableview.Record{"customer_id": nil}, f)
		assert.Equal(t, "null", got)
	})

	t.Run("bike column composes plate year make model", func(t *testing.T) {
		f, ok := s.FieldByKey("bike_id")
		require.True(t, ok)
		got := tableview.RenderFieldValue(tableview.Record{
			"bike": map[string]any{
				"license_plate": "AB12345",
				"model_year":    "2019",
				"make":          "Honda",
				"model":         "CB500X",
			},
		}, f)
		assert.Equal(t, "AB12345 - 2019 Honda CB500X", got)
	})

	t.Run("bike without plate falls back to the VIN", func(t *testing.T) {
		f, _ := s.FieldByKey("bike_id")
		got := tableview.RenderFieldValue(tableview.Record{
			"bike": map[string]any{
				"vin":        "JH2SC5700XM200123",
				"model_year": "2001",
				"make":       "Yamaha",
				"model":      "R1",
			},
		}, f)
		assert.Equal(t, "JH2SC5700XM200123 - 2001 Yamaha R1", got)
	})

	t.Run("long notes are truncated with ellipsis", func(t *testing.T) {
		f, ok := s.FieldByKey("notes")
		require.True(t, ok)
		long := "Kunden ønsker full service, nye dekk foran og bak, samt justering av ventiler."
		got := tableview.RenderFieldValue(tableview.Record{"notes": long}, f)
		text, isString := got.(string)
		require.True(t, isString)
		assert.Len(t, []rune(text), 53)
		assert.Contains(t, text, "...")
	})

	t.Run("total renders as fixed kroner", func(t *testing.T) {
		f, ok := s.FieldByKey("total_inc_vat")
		require.True(t, ok)
		got := tableview.RenderFieldValue(tableview.Record{"total_inc_vat": 1234.5}, f)
		assert.Equal(t, "kr 1234.50", got)
	})
}

func TestCollectValue(t *testing.T) {
	quantity := tableview.Field{Key: "quantity", Kind: tableview.KindNumber}
	assert.Equal(t, 1.0, datamodel.CollectValue(quantity, "junk"))
	assert.Equal(t, 2.5, datamodel.CollectValue(quantity, "2.5"))

	price := tableview.Field{Key: "price_ex_vat", Kind: tableview.KindNumber}
	assert.Equal(t, 0.0, datamodel.CollectValue(price, "junk"))
	assert.Equal(t, 99.9, datamodel.CollectValue(price, "99.90"))

	name := tableview.Field{Key: "name", Kind: tableview.KindText}
	assert.Equal(t, "Ola", datamodel.CollectValue(name, "Ola"))
}

func TestValidateForm(t *testing.T) {
	s := datamodel.Customers()

	errs := datamodel.ValidateForm(s, map[string]string{"name": ""})
	require.Contains(t, errs, "name")
	assert.Equal(t, "Kunde er påkrevd", errs["name"])

	errs = datamodel.ValidateForm(s, map[string]string{"name": "Ola Nordmann"})
	assert.Empty(t, errs)
}
