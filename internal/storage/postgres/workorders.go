package postgres

import (
	"context"
	"fmt"
	"time"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// WorkOrderRepo implements storage.WorkOrderRepository on Postgres.
type WorkOrderRepo struct {
	pool *pgxpool.Pool
}

func NewWorkOrderRepo(pool *pgxpool.Pool) *WorkOrderRepo {
	return &WorkOrderRepo{pool: pool}
}

var _ storage.WorkOrderRepository = (*WorkOrderRepo)(nil)

const workOrderColumns = `w.id, w.created_at, w.status, w.customer_id, w.bike_id, w.notes,
	w.odometer, w.total_ex_vat, w.total_vat, w.total_inc_vat`

// listQuery joins the customer and bike relations so the overview can show
// names instead of foreign keys without extra round trips.
const listQuery = `
	SELECT ` + workOrderColumns + `,
		c.id, c.name, c.street, c.zip, c.city, c.country, c.phone, c.email, c.created_at,
		b.id, b.customer_id, b.license_plate, b.vin, b.make, b.model, b.model_year, b.created_at
	FROM work_orders w
	LEFT JOIN customers c ON c.id = w.customer_id
	LEFT JOIN bikes b ON b.id = w.bike_id`

func scanWorkOrderJoined(rows pgx.Rows) (*models.WorkOrder, error) {
	var w models.WorkOrder
	var (
		custID                                                 *int64
		custName, custStreet, custZip, custCity                *string
		custCountry, custPhone, custEmail                      *string
		custCreatedAt                                          *time.Time
		bikeID, bikeCustomerID                                 *int64
		bikePlate, bikeVIN, bikeMake, bikeModel, bikeModelYear *string
		bikeCreatedAt                                          *time.Time
	)
	err := rows.Scan(
		&w.ID, &w.CreatedAt, &w.Status, &w.CustomerID, &w.BikeID, &w.Notes,
		&w.Odometer, &w.TotalExVAT, &w.TotalVAT, &w.TotalIncVAT,
		&custID, &custName, &custStreet, &custZip, &custCity, &custCountry, &custPhone, &custEmail, &custCreatedAt,
		&bikeID, &bikeCustomerID, &bikePlate, &bikeVIN, &bikeMake, &bikeModel, &bikeModelYear, &bikeCreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if custID != nil {
		w.Customer = &models.Customer{
			ID: *custID, Name: deref(custName), Street: deref(custStreet),
			Zip: deref(custZip), City: deref(custCity), Country: deref(custCountry),
			Phone: deref(custPhone), Email: deref(custEmail),
		}
		if custCreatedAt != nil {
			w.Customer.CreatedAt = *custCreatedAt
		}
	}
	if bikeID != nil {
		w.Bike = &models.Bike{
			ID: *bikeID, CustomerID: bikeCustomerID, LicensePlate: deref(bikePlate),
			VIN: deref(bikeVIN), Make: deref(bikeMake), Model: deref(bikeModel),
			ModelYear: deref(bikeModelYear),
		}
		if bikeCreatedAt != nil {
			w.Bike.CreatedAt = *bikeCreatedAt
		}
	}
	return &w, nil
}

func (r *WorkOrderRepo) GetAll(ctx context.Context) ([]models.WorkOrder, error) {
	rows, err := r.pool.Query(ctx, listQuery+" ORDER BY w.created_at DESC")
	if err != nil {
		log.Error().Err(err).Msg("failed to query work orders")
		return nil, fmt.Errorf("failed to query work orders: %w", err)
	}
	defer rows.Close()

	var orders []models.WorkOrder
	for rows.Next() {
		w, err := scanWorkOrderJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		orders = append(orders, *w)
	}
	return orders, rows.Err()
}

func (r *WorkOrderRepo) GetByID(ctx context.Context, id int64) (*models.WorkOrder, error) {
	rows, err := r.pool.Query(ctx, listQuery+" WHERE w.id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query work order %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, storage.ErrNotFound
	}
	w, err := scanWorkOrderJoined(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan work order %d: %w", id, err)
	}
	return w, nil
}

const lineColumns = "id, work_order_id, description, quantity, price_ex_vat, vat_rate, discount_percent, line_total_inc_vat"

func (r *WorkOrderRepo) GetLines(ctx context.Context, orderID int64) ([]models.StoredWorkOrderLine, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+lineColumns+" FROM work_order_lines WHERE work_order_id = $1 ORDER BY id ASC",
		orderID)
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("failed to query work order lines")
		return nil, fmt.Errorf("failed to query lines for work order %d: %w", orderID, err)
	}
	defer rows.Close()

	var lines []models.StoredWorkOrderLine
	for rows.Next() {
		var l models.StoredWorkOrderLine
		err := rows.Scan(&l.ID, &l.WorkOrderID, &l.Description, &l.Quantity,
			&l.PriceExVAT, &l.VATRate, &l.DiscountPercent, &l.LineTotalIncVAT)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// SaveWithLines writes the header and the full replacement line set in one
// transaction. A zero order ID inserts a new header; otherwise the existing
// header row is updated. Either way every previous line is deleted and the
// given set inserted fresh, so a failure at any point leaves the stored order
// exactly as it was.
func (r *WorkOrderRepo) SaveWithLines(ctx context.Context, order *models.WorkOrder, lines []models.StoredWorkOrderLine) (*models.WorkOrder, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin work order save: %w", err)
	}
	defer tx.Rollback(ctx)

	saved := *order
	if order.ID == 0 {
		err = tx.QueryRow(ctx,
			`INSERT INTO work_orders (status, customer_id, bike_id, notes, odometer, total_ex_vat, total_vat, total_inc_vat)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id, created_at`,
			order.Status, order.CustomerID, order.BikeID, order.Notes, order.Odometer,
			order.TotalExVAT, order.TotalVAT, order.TotalIncVAT,
		).Scan(&saved.ID, &saved.CreatedAt)
	} else {
		err = tx.QueryRow(ctx,
			`UPDATE work_orders
			 SET status = $2, customer_id = $3, bike_id = $4, notes = $5, odometer = $6,
			     total_ex_vat = $7, total_vat = $8, total_inc_vat = $9
			 WHERE id = $1
			 RETURNING created_at`,
			order.ID, order.Status, order.CustomerID, order.BikeID, order.Notes, order.Odometer,
			order.TotalExVAT, order.TotalVAT, order.TotalIncVAT,
		).Scan(&saved.CreatedAt)
	}
	if err != nil {
		log.Error().Err(err).Int64("id", order.ID).Msg("failed to save work order header")
		return nil, mapError(err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM work_order_lines WHERE work_order_id = $1", saved.ID); err != nil {
		return nil, fmt.Errorf("failed to clear lines for work order %d: %w", saved.ID, err)
	}
	for _, l := range lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO work_order_lines (work_order_id, description, quantity, price_ex_vat, vat_rate, discount_percent, line_total_inc_vat)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			saved.ID, l.Description, l.Quantity, l.PriceExVAT, l.VATRate, l.DiscountPercent, l.LineTotalIncVAT)
		if err != nil {
			return nil, fmt.Errorf("failed to insert line for work order %d: %w", saved.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit work order %d: %w", saved.ID, err)
	}
	log.Info().Int64("id", saved.ID).Int("lines", len(lines)).Msg("work order saved")
	return &saved, nil
}

func (r *WorkOrderRepo) SetStatus(ctx context.Context, id int64, status models.WorkOrderStatus) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE work_orders SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update work order status")
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
