package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Work Order Status Enum ---
type WorkOrderStatus string

const (
	WorkOrderStatusOpen     WorkOrderStatus = "open"
	WorkOrderStatusFinished WorkOrderStatus = "finished"
	WorkOrderStatusPaid     WorkOrderStatus = "paid"
	WorkOrderStatusDeleted  WorkOrderStatus = "deleted"
)

// Scan implements the sql.Scanner interface for WorkOrderStatus
func (ws *WorkOrderStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan WorkOrderStatus: value is not string or []byte")
		}
	}
	v := WorkOrderStatus(strVal)
	switch v {
	case WorkOrderStatusOpen, WorkOrderStatusFinished, WorkOrderStatusPaid, WorkOrderStatusDeleted:
		*ws = v
		return nil
	default:
		return fmt.Errorf("invalid WorkOrderStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for WorkOrderStatus
func (ws WorkOrderStatus) Value() (driver.Value, error) {
	return string(ws), nil
}

// Valid reports whether the status is one of the known values. Transitions
// between valid statuses are not guarded; the status is advisory and any
// value may be set to any other via the edit form.
func (ws WorkOrderStatus) Valid() bool {
	switch ws {
	case WorkOrderStatusOpen, WorkOrderStatusFinished, WorkOrderStatusPaid, WorkOrderStatusDeleted:
		return true
	}
	return false
}

// --- Todo Status Enum ---
type TodoStatus string

const (
	TodoStatusTodo      TodoStatus = "todo"
	TodoStatusWaiting   TodoStatus = "waiting"
	TodoStatusCompleted TodoStatus = "completed"
)

// Scan implements the sql.Scanner interface for TodoStatus
func (ts *TodoStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan TodoStatus: value is not string or []byte")
		}
	}
	v := TodoStatus(strVal)
	switch v {
	case TodoStatusTodo, TodoStatusWaiting, TodoStatusCompleted:
		*ts = v
		return nil
	default:
		return fmt.Errorf("invalid TodoStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for TodoStatus
func (ts TodoStatus) Value() (driver.Value, error) {
	return string(ts), nil
}

// User represents a back-office user account.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Customer is a registered customer of the workshop.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Street    string    `json:"street" db:"street"`
	Zip       string    `json:"zip" db:"zip"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Bike is a motorcycle in the registry, usually tied to a customer.
type Bike struct {
	ID           int64     `json:"id" db:"id"`
	CustomerID   *int64    `json:"customer_id,omitempty" db:"customer_id"`
	LicensePlate string    `json:"license_plate" db:"license_plate"`
	VIN          string    `json:"vin" db:"vin"`
	Make         string    `json:"make" db:"make"`
	Model        string    `json:"model" db:"model"`
	ModelYear    string    `json:"model_year" db:"model_year"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// WorkOrderLine is a single item or service entry on a work order, in its
// normalized in-memory form with all derived amounts populated. ID is zero
// until the order has been saved; lines have no independent persistence
// identity across saves (the full set is replaced on every save).
type WorkOrderLine struct {
	ID              int64   `json:"id"`
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	PriceExVAT      float64 `json:"price_ex_vat"`
	PriceIncVAT     float64 `json:"price_inc_vat"`
	VATPercent      float64 `json:"vat_percent"`
	VATAmount       float64 `json:"vat_amount"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	LineTotalExVAT  float64 `json:"line_total_ex_vat"`
	LineTotalIncVAT float64 `json:"line_total_inc_vat"`
}

// StoredWorkOrderLine is the persisted shape of a line. It stores a VAT rate
// multiplier (1.25 for 25%) instead of a percent and omits the derived
// amounts, which are recomputed on load.
type StoredWorkOrderLine struct {
	ID              int64   `json:"id" db:"id"`
	WorkOrderID     int64   `json:"work_order_id" db:"work_order_id"`
	Description     string  `json:"description" db:"description"`
	Quantity        float64 `json:"quantity" db:"quantity"`
	PriceExVAT      float64 `json:"price_ex_vat" db:"price_ex_vat"`
	VATRate         float64 `json:"vat_rate" db:"vat_rate"`
	DiscountPercent float64 `json:"discount_percent" db:"discount_percent"`
	LineTotalIncVAT float64 `json:"line_total_inc_vat" db:"line_total_inc_vat"`
}

// WorkOrder is a repair job for a bike. The three totals are always derived
// from the line set, never set independently.
type WorkOrder struct {
	ID          int64           `json:"id" db:"id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	Status      WorkOrderStatus `json:"status" db:"status"`
	CustomerID  *int64          `json:"customer_id,omitempty" db:"customer_id"`
	BikeID      *int64          `json:"bike_id,omitempty" db:"bike_id"`
	Notes       string          `json:"notes" db:"notes"`
	Odometer    int             `json:"odometer" db:"odometer"`
	TotalExVAT  float64         `json:"total_ex_vat" db:"total_ex_vat"`
	TotalVAT    float64         `json:"total_vat" db:"total_vat"`
	TotalIncVAT float64         `json:"total_inc_vat" db:"total_inc_vat"`
	Items       []WorkOrderLine `json:"items"`

	// Embedded relations, populated by list queries.
	Customer *Customer `json:"customer,omitempty"`
	Bike     *Bike     `json:"bike,omitempty"`
}

// Part is an inventory item. Purchase and sale prices are stored in øre.
type Part struct {
	ID          int64     `json:"id" db:"id"`
	ItemNumber  string    `json:"item_number" db:"item_number"`
	Description string    `json:"description" db:"description"`
	InStock     int       `json:"in_stock" db:"in_stock"`
	PriceIn     int64     `json:"price_in" db:"price_in"`
	PriceOut    int64     `json:"price_out" db:"price_out"`
	VAT         float64   `json:"vat" db:"vat"`
	Barcode     string    `json:"barcode" db:"barcode"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TodoEntry is a workflow note, optionally tied to a customer and a bike.
type TodoEntry struct {
	ID         int64      `json:"id" db:"id"`
	What       string     `json:"what" db:"what"`
	Status     TodoStatus `json:"status" db:"status"`
	CustomerID *int64     `json:"customer_id,omitempty" db:"customer_id"`
	BikeID     *int64     `json:"bike_id,omitempty" db:"bike_id"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`

	Customer *Customer `json:"customer,omitempty"`
	Bike     *Bike     `json:"bike,omitempty"`
}
