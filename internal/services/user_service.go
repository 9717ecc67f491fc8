package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moto-backoffice/internal/models"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo          storage.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register user")
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return created, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown email")
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with invalid password")
		return nil, "", ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}

	return user, tokenString, nil
}
