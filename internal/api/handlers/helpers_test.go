package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moto-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listViewContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func listViewOrders() []models.WorkOrder {
	customerID := int64(3)
	return []models.WorkOrder{
		{
			ID:          7,
			Status:      models.WorkOrderStatusOpen,
			CustomerID:  &customerID,
			TotalIncVAT: 1875,
			Customer:    &models.Customer{ID: 3, Name: "Kari Nordmann"},
			Bike:        &models.Bike{LicensePlate: "AB12345", Make: "Honda", Model: "CB500F", ModelYear: "2019"},
		},
		{
			ID:          8,
			Status:      models.WorkOrderStatusDeleted,
			TotalIncVAT: 250,
		},
	}
}

func TestRespondListView_RejectsInvalidDirection(t *testing.T) {
	c, w := listViewContext(t, "/api/v1/work-orders?sort=id&dir=sideways")

	respondListView(c, "work-orders", listViewOrders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid list query")
}

func TestRespondListView_RawRecords(t *testing.T) {
	c, w := listViewContext(t, "/api/v1/work-orders?sort=id&dir=asc")

	respondListView(c, "work-orders", listViewOrders())

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, float64(7), rows[0]["id"])
	assert.Equal(t, 1875.0, rows[0]["total_inc_vat"])
	customer, ok := rows[0]["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Kari Nordmann", customer["name"])
}

func TestRespondListView_DisplayProjections(t *testing.T) {
	c, w := listViewContext(t, "/api/v1/work-orders?sort=id&dir=asc&display=1")

	respondListView(c, "work-orders", listViewOrders())

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Kari Nordmann", first["customer_id"])
	assert.Equal(t, "AB12345 - 2019 Honda CB500F", first["bike_id"])
	assert.Equal(t, "kr 1875.00", first["total_inc_vat"])
	assert.Equal(t, "-", first["notes"])
	assert.Equal(t, "open", first["status"])

	// No relations loaded: the projections fall back to their markers.
	second := rows[1]
	assert.Equal(t, "null", second["customer_id"])
	assert.Equal(t, "-", second["bike_id"])
	assert.Equal(t, "kr 250.00", second["total_inc_vat"])
}

func TestRespondListView_CategoryFiltersDeleted(t *testing.T) {
	c, w := listViewContext(t, "/api/v1/work-orders?category=deleted")

	respondListView(c, "work-orders", listViewOrders())

	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(8), rows[0]["id"])
}
