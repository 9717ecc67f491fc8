package storage

import (
	"context"

	"moto-backoffice/internal/models"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	Search(ctx context.Context, term string) ([]models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// BikeRepository defines the interface for bike registry operations.
type BikeRepository interface {
	GetAll(ctx context.Context) ([]models.Bike, error)
	GetByID(ctx context.Context, id int64) (*models.Bike, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]models.Bike, error)
	Search(ctx context.Context, term string) ([]models.Bike, error)
	Create(ctx context.Context, bike *models.Bike) (*models.Bike, error)
	Update(ctx context.Context, bike *models.Bike) (*models.Bike, error)
	Delete(ctx context.Context, id int64) error
}

// WorkOrderRepository defines the interface for work order persistence.
// SaveWithLines writes the header and the full replacement line set in one
// transaction; lines carry no identity across saves.
type WorkOrderRepository interface {
	GetAll(ctx context.Context) ([]models.WorkOrder, error)
	GetByID(ctx context.Context, id int64) (*models.WorkOrder, error)
	GetLines(ctx context.Context, orderID int64) ([]models.StoredWorkOrderLine, error)
	SaveWithLines(ctx context.Context, order *models.WorkOrder, lines []models.StoredWorkOrderLine) (*models.WorkOrder, error)
	SetStatus(ctx context.Context, id int64, status models.WorkOrderStatus) error
}

// PartRepository defines the interface for inventory operations.
type PartRepository interface {
	GetAll(ctx context.Context) ([]models.Part, error)
	GetByID(ctx context.Context, id int64) (*models.Part, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.Part, error)
	Create(ctx context.Context, part *models.Part) (*models.Part, error)
	Update(ctx context.Context, part *models.Part) (*models.Part, error)
	AdjustStock(ctx context.Context, id int64, delta int) (*models.Part, error)
	Delete(ctx context.Context, id int64) error
}

// TodoRepository defines the interface for the to-do tracker.
type TodoRepository interface {
	GetAll(ctx context.Context) ([]models.TodoEntry, error)
	GetByID(ctx context.Context, id int64) (*models.TodoEntry, error)
	Create(ctx context.Context, entry *models.TodoEntry) (*models.TodoEntry, error)
	Update(ctx context.Context, entry *models.TodoEntry) (*models.TodoEntry, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines the interface for user account operations.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}
