package dto

// CreateCustomerRequest defines the structure for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Street  string `json:"street" validate:"omitempty,max=200"`
	Zip     string `json:"zip" validate:"omitempty,max=20"`
	City    string `json:"city" validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=40"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateCustomerRequest defines the structure for updating a customer.
type UpdateCustomerRequest struct {
	ID      int64  `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
	Street  string `json:"street" validate:"omitempty,max=200"`
	Zip     string `json:"zip" validate:"omitempty,max=20"`
	City    string `json:"city" validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=40"`
	Email   string `json:"email" validate:"omitempty,email"`
}
