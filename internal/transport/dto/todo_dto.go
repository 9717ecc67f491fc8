package dto

// CreateTodoRequest defines the structure for a new tracker entry.
type CreateTodoRequest struct {
	What       string `json:"what" validate:"required,max=1000"`
	Status     string `json:"status" validate:"omitempty,oneof=todo waiting completed"`
	CustomerID *int64 `json:"customer_id" validate:"omitempty,gt=0"`
	BikeID     *int64 `json:"bike_id" validate:"omitempty,gt=0"`
}

// UpdateTodoRequest defines the structure for updating a tracker entry.
type UpdateTodoRequest struct {
	ID         int64  `json:"id" validate:"required"`
	What       string `json:"what" validate:"required,max=1000"`
	Status     string `json:"status" validate:"required,oneof=todo waiting completed"`
	CustomerID *int64 `json:"customer_id" validate:"omitempty,gt=0"`
	BikeID     *int64 `json:"bike_id" validate:"omitempty,gt=0"`
}
