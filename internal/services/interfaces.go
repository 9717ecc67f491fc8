package services

import (
	"context"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/transport/dto"
)

// CustomerService defines the interface for customer business logic.
type CustomerService interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	Search(ctx context.Context, term string) ([]models.Customer, error)
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, req *dto.UpdateCustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// BikeService defines the interface for bike registry business logic.
type BikeService interface {
	GetAll(ctx context.Context) ([]models.Bike, error)
	GetByID(ctx context.Context, id int64) (*models.Bike, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]models.Bike, error)
	Search(ctx context.Context, term string) ([]models.Bike, error)
	Create(ctx context.Context, req *dto.CreateBikeRequest) (*models.Bike, error)
	Update(ctx context.Context, req *dto.UpdateBikeRequest) (*models.Bike, error)
	Delete(ctx context.Context, id int64) error
}

// WorkOrderService defines the interface for work order business logic.
// Save validates, recomputes every derived amount, and replaces the full
// line set in one transaction. Delete is a soft delete via the status.
type WorkOrderService interface {
	GetAll(ctx context.Context) ([]models.WorkOrder, error)
	GetByID(ctx context.Context, id int64) (*models.WorkOrder, error)
	Save(ctx context.Context, req *dto.SaveWorkOrderRequest) (*models.WorkOrder, error)
	RecalculateLine(ctx context.Context, req *dto.RecalculateLineRequest) (models.WorkOrderLine, error)
	SetStatus(ctx context.Context, req *dto.UpdateWorkOrderStatusRequest) error
	Delete(ctx context.Context, id int64) error
	PrintView(ctx context.Context, id int64) (*dto.WorkOrderPrintView, error)
}

// PartService defines the interface for inventory business logic.
type PartService interface {
	GetAll(ctx context.Context) ([]models.Part, error)
	GetByID(ctx context.Context, id int64) (*models.Part, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.Part, error)
	Create(ctx context.Context, req *dto.CreatePartRequest) (*models.Part, error)
	Update(ctx context.Context, req *dto.UpdatePartRequest) (*models.Part, error)
	AdjustStock(ctx context.Context, req *dto.AdjustStockRequest) (*models.Part, error)
	Delete(ctx context.Context, id int64) error
}

// TodoService defines the interface for the to-do tracker business logic.
type TodoService interface {
	GetAll(ctx context.Context) ([]models.TodoEntry, error)
	GetByID(ctx context.Context, id int64) (*models.TodoEntry, error)
	Create(ctx context.Context, req *dto.CreateTodoRequest) (*models.TodoEntry, error)
	Update(ctx context.Context, req *dto.UpdateTodoRequest) (*models.TodoEntry, error)
	Delete(ctx context.Context, id int64) error
}

// UserService defines the interface for account and login business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
}

// VehicleLookupService resolves a license plate against the national vehicle
// registry.
type VehicleLookupService interface {
	Lookup(ctx context.Context, req *dto.LookupVehicleRequest) (*dto.VehicleInfo, error)
}
