package postgres

import (
	"context"
	"errors"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// UserRepo implements storage.UserRepository on Postgres.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = "id, name, email, password_hash, created_at, updated_at"

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		user.ID, user.Name, user.Email, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			log.Warn().Str("email", user.Email).Msg("attempted to register duplicate email")
			return nil, storage.ErrDuplicateEmail
		}
		log.Error().Err(err).Str("email", user.Email).Msg("failed to create user")
		return nil, mapError(err)
	}
	log.Info().Str("id", created.ID.String()).Msg("user created")
	return created, nil
}
