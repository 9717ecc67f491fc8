package postgres

import (
	"context"
	"fmt"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// BikeRepo implements storage.BikeRepository on Postgres.
type BikeRepo struct {
	pool *pgxpool.Pool
}

func NewBikeRepo(pool *pgxpool.Pool) *BikeRepo {
	return &BikeRepo{pool: pool}
}

var _ storage.BikeRepository = (*BikeRepo)(nil)

const bikeColumns = "id, customer_id, license_plate, vin, make, model, model_year, created_at"

func scanBike(row interface{ Scan(...any) error }) (*models.Bike, error) {
	var b models.Bike
	err := row.Scan(&b.ID, &b.CustomerID, &b.LicensePlate, &b.VIN, &b.Make, &b.Model, &b.ModelYear, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BikeRepo) queryBikes(ctx context.Context, sql string, args ...any) ([]models.Bike, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		log.Error().Err(err).Msg("failed to query bikes")
		return nil, fmt.Errorf("failed to query bikes: %w", err)
	}
	defer rows.Close()

	var bikes []models.Bike
	for rows.Next() {
		b, err := scanBike(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bike: %w", err)
		}
		bikes = append(bikes, *b)
	}
	return bikes, rows.Err()
}

func (r *BikeRepo) GetAll(ctx context.Context) ([]models.Bike, error) {
	return r.queryBikes(ctx,
		"SELECT "+bikeColumns+" FROM bikes ORDER BY created_at DESC")
}

func (r *BikeRepo) GetByID(ctx context.Context, id int64) (*models.Bike, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+bikeColumns+" FROM bikes WHERE id = $1", id)
	b, err := scanBike(row)
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func (r *BikeRepo) GetByCustomer(ctx context.Context, customerID int64) ([]models.Bike, error) {
	return r.queryBikes(ctx,
		"SELECT "+bikeColumns+" FROM bikes WHERE customer_id = $1 ORDER BY created_at DESC",
		customerID)
}

func (r *BikeRepo) Search(ctx context.Context, term string) ([]models.Bike, error) {
	pattern := ilikePattern(term)
	return r.queryBikes(ctx,
		"SELECT "+bikeColumns+` FROM bikes
		 WHERE license_plate ILIKE $1 OR vin ILIKE $1 OR make ILIKE $1 OR model ILIKE $1
		 ORDER BY license_plate ASC`, pattern)
}

func (r *BikeRepo) Create(ctx context.Context, bike *models.Bike) (*models.Bike, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO bikes (customer_id, license_plate, vin, make, model, model_year)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+bikeColumns,
		bike.CustomerID, bike.LicensePlate, bike.VIN, bike.Make, bike.Model, bike.ModelYear)
	created, err := scanBike(row)
	if err != nil {
		log.Error().Err(err).Str("license_plate", bike.LicensePlate).Msg("failed to create bike")
		return nil, mapError(err)
	}
	log.Info().Int64("id", created.ID).Msg("bike created")
	return created, nil
}

func (r *BikeRepo) Update(ctx context.Context, bike *models.Bike) (*models.Bike, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE bikes
		 SET customer_id = $2, license_plate = $3, vin = $4, make = $5, model = $6, model_year = $7
		 WHERE id = $1
		 RETURNING `+bikeColumns,
		bike.ID, bike.CustomerID, bike.LicensePlate, bike.VIN, bike.Make, bike.Model, bike.ModelYear)
	updated, err := scanBike(row)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *BikeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM bikes WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete bike")
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
