package postgres

import (
	"context"
	"fmt"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PartRepo implements storage.PartRepository on Postgres.
type PartRepo struct {
	pool *pgxpool.Pool
}

func NewPartRepo(pool *pgxpool.Pool) *PartRepo {
	return &PartRepo{pool: pool}
}

var _ storage.PartRepository = (*PartRepo)(nil)

const partColumns = "id, item_number, description, in_stock, price_in, price_out, vat, barcode, created_at"

func scanPart(row interface{ Scan(...any) error }) (*models.Part, error) {
	var p models.Part
	err := row.Scan(&p.ID, &p.ItemNumber, &p.Description, &p.InStock,
		&p.PriceIn, &p.PriceOut, &p.VAT, &p.Barcode, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartRepo) GetAll(ctx context.Context) ([]models.Part, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+partColumns+" FROM parts ORDER BY item_number ASC")
	if err != nil {
		log.Error().Err(err).Msg("failed to query parts")
		return nil, fmt.Errorf("failed to query parts: %w", err)
	}
	defer rows.Close()

	var parts []models.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, *p)
	}
	return parts, rows.Err()
}

func (r *PartRepo) GetByID(ctx context.Context, id int64) (*models.Part, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+partColumns+" FROM parts WHERE id = $1", id)
	p, err := scanPart(row)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *PartRepo) GetByBarcode(ctx context.Context, barcode string) (*models.Part, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+partColumns+" FROM parts WHERE barcode = $1", barcode)
	p, err := scanPart(row)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *PartRepo) Create(ctx context.Context, part *models.Part) (*models.Part, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO parts (item_number, description, in_stock, price_in, price_out, vat, barcode)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+partColumns,
		part.ItemNumber, part.Description, part.InStock, part.PriceIn,
		part.PriceOut, part.VAT, part.Barcode)
	created, err := scanPart(row)
	if err != nil {
		log.Error().Err(err).Str("item_number", part.ItemNumber).Msg("failed to create part")
		return nil, mapError(err)
	}
	log.Info().Int64("id", created.ID).Str("item_number", created.ItemNumber).Msg("part created")
	return created, nil
}

func (r *PartRepo) Update(ctx context.Context, part *models.Part) (*models.Part, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE parts
		 SET item_number = $2, description = $3, in_stock = $4, price_in = $5, price_out = $6, vat = $7, barcode = $8
		 WHERE id = $1
		 RETURNING `+partColumns,
		part.ID, part.ItemNumber, part.Description, part.InStock,
		part.PriceIn, part.PriceOut, part.VAT, part.Barcode)
	updated, err := scanPart(row)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

// AdjustStock applies a relative stock change atomically, so concurrent
// receipts and withdrawals never lose updates.
func (r *PartRepo) AdjustStock(ctx context.Context, id int64, delta int) (*models.Part, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE parts SET in_stock = in_stock + $2 WHERE id = $1
		 RETURNING `+partColumns, id, delta)
	updated, err := scanPart(row)
	if err != nil {
		return nil, mapError(err)
	}
	return updated, nil
}

func (r *PartRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM parts WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete part")
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
