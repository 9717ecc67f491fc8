package postgres

import (
	"context"
	"fmt"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// CustomerRepo implements storage.CustomerRepository on Postgres.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

var _ storage.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = "id, name, street, zip, city, country, phone, email, created_at"

func scanCustomer(row interface{ Scan(...any) error }) (*models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Street, &c.Zip, &c.City, &c.Country, &c.Phone, &c.Email, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+customerColumns+" FROM customers ORDER BY created_at DESC")
	if err != nil {
		log.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	c, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (r *CustomerRepo) Search(ctx context.Context, term string) ([]models.Customer, error) {
	pattern := ilikePattern(term)
	rows, err := r.pool.Query(ctx,
		"SELECT "+customerColumns+` FROM customers
		 WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		 ORDER BY name ASC`, pattern)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("failed to search customers")
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepo) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO customers (name, street, zip, city, country, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+customerColumns,
		customer.Name, customer.Street, customer.Zip, customer.City,
		customer.Country, customer.Phone, customer.Email)
	created, err := scanCustomer(row)
	if err != nil {
		log.Error().Err(err).Str("name", customer.Name).Msg("failed to create customer")
		return nil, mapError(err)
	}
	log.Info().Int64("id", created.ID).Msg("customer created")
	return created, nil
}

func (r *CustomerRepo) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE customers
		 SET name = $2, street = $3, zip = $4, city = $5, country = $6, phone = $7, email = $8
		 WHERE id = $1
		 RETURNING `+customerColumns,
		customer.ID, customer.Name, customer.Street, customer.Zip, customer.City,
		customer.Country, customer.Phone, customer.Email)
	updated, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete customer")
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
