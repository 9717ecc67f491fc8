package postgres

import (
	"context"
	"fmt"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// TodoRepo implements storage.TodoRepository on Postgres.
type TodoRepo struct {
	pool *pgxpool.Pool
}

func NewTodoRepo(pool *pgxpool.Pool) *TodoRepo {
	return &TodoRepo{pool: pool}
}

var _ storage.TodoRepository = (*TodoRepo)(nil)

const todoColumns = "id, what, status, customer_id, bike_id, created_at"

func scanTodo(row interface{ Scan(...any) error }) (*models.TodoEntry, error) {
	var t models.TodoEntry
	err := row.Scan(&t.ID, &t.What, &t.Status, &t.CustomerID, &t.BikeID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll returns every entry with its customer and bike names joined in, so
// the tracker can label relations without extra lookups.
func (r *TodoRepo) GetAll(ctx context.Context) ([]models.TodoEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.what, t.status, t.customer_id, t.bike_id, t.created_at,
			c.name,
			b.license_plate, b.vin, b.make, b.model, b.model_year
		FROM todo_entries t
		LEFT JOIN customers c ON c.id = t.customer_id
		LEFT JOIN bikes b ON b.id = t.bike_id
		ORDER BY t.created_at DESC`)
	if err != nil {
		log.Error().Err(err).Msg("failed to query todo entries")
		return nil, fmt.Errorf("failed to query todo entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TodoEntry
	for rows.Next() {
		var t models.TodoEntry
		var custName *string
		var bikePlate, bikeVIN, bikeMake, bikeModel, bikeModelYear *string
		err := rows.Scan(&t.ID, &t.What, &t.Status, &t.CustomerID, &t.BikeID, &t.CreatedAt,
			&custName,
			&bikePlate, &bikeVIN, &bikeMake, &bikeModel, &bikeModelYear)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo entry: %w", err)
		}
		if t.CustomerID != nil && custName != nil {
			t.Customer = &models.Customer{ID: *t.CustomerID, Name: *custName}
		}
		if t.BikeID != nil {
			t.Bike = &models.Bike{
				ID: *t.BikeID, LicensePlate: deref(bikePlate), VIN: deref(bikeVIN),
				Make: deref(bikeMake), Model: deref(bikeModel), ModelYear: deref(bikeModelYear),
			}
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}

func (r *TodoRepo) GetByID(ctx context.Context, id int64) (*models.TodoEntry, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+todoColumns+" FROM todo_entries WHERE id = $1", id)
	t, err := scanTodo(row)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *TodoRepo) Create(ctx context.Context, entry *models.TodoEntry) (*models.TodoEntry, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO todo_entries (what, status, customer_id, bike_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+todoColumns,
		entry.What, entry.Status, entry.CustomerID, entry.BikeID)
	created, err := scanTodo(row)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo entry")
		return nil, mapError(err)
	}
	log.Info().Int64("id", created.ID).Msg("todo entry created")
	return created, nil
}

func (r *TodoRepo) Update(ctx context.Context, entry *models.TodoEntry) (*models.TodoEntry, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE todo_entries
		 SET what = $2, status = $3, customer_id = $4, bike_id = $5
		 WHERE id = $1
		 RETURNING `+todoColumns,
		entry.ID, entry.What, entry.Status, entry.CustomerID, entry.BikeID)
	updated, err := scanTodo(row)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *TodoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM todo_entries WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo entry")
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
