package dto

// CreateBikeRequest defines the structure for registering a bike. None of the
// identifying fields are individually required; unregistered bikes arrive
// with only a VIN, imports sometimes with only make and model.
type CreateBikeRequest struct {
	CustomerID   *int64 `json:"customer_id" validate:"omitempty,gt=0"`
	LicensePlate string `json:"license_plate" validate:"omitempty,max=20"`
	VIN          string `json:"vin" validate:"omitempty,max=30"`
	Make         string `json:"make" validate:"omitempty,max=100"`
	Model        string `json:"model" validate:"omitempty,max=100"`
	ModelYear    string `json:"model_year" validate:"omitempty,max=10"`
}

// UpdateBikeRequest defines the structure for updating a bike.
type UpdateBikeRequest struct {
	ID           int64  `json:"id" validate:"required"`
	CustomerID   *int64 `json:"customer_id" validate:"omitempty,gt=0"`
	LicensePlate string `json:"license_plate" validate:"omitempty,max=20"`
	VIN          string `json:"vin" validate:"omitempty,max=30"`
	Make         string `json:"make" validate:"omitempty,max=100"`
	Model        string `json:"model" validate:"omitempty,max=100"`
	ModelYear    string `json:"model_year" validate:"omitempty,max=10"`
}

// LookupVehicleRequest asks the vehicle registry for the data behind a plate.
type LookupVehicleRequest struct {
	LicensePlate string `json:"license_plate" validate:"required,max=20"`
}

// VehicleInfo is the subset of registry data the bike form can be filled
// from.
type VehicleInfo struct {
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	ModelYear    string `json:"model_year"`
}
