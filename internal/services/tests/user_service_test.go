package services_test

import (
	"context"
	"testing"
	"time"

	mock_storage "moto-backoffice/internal/mocks"
	"moto-backoffice/internal/models"
	"moto-backoffice/internal/services"
	"moto-backoffice/internal/storage"
	"moto-backoffice/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func setupUserServiceTest(t *testing.T) (context.Context, services.UserService, *mock_storage.MockUserRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	userService := services.NewUserService(mockUserRepo, testJWTSecret, time.Hour)
	ctx := context.Background()
	return ctx, userService, mockUserRepo, ctrl
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.RegisterRequest
		repoErr     error
		expectedErr error
	}{
		{
			name: "Success",
			req:  &dto.RegisterRequest{Name: "Ola", Email: "ola@example.com", Password: "hunter22"},
		},
		{
			name:        "Failure_DuplicateEmail",
			req:         &dto.RegisterRequest{Name: "Ola", Email: "ola@example.com", Password: "hunter22"},
			repoErr:     storage.ErrDuplicateEmail,
			expectedErr: services.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, userService, mockUserRepo, ctrl := setupUserServiceTest(t)
			defer ctrl.Finish()

			mockUserRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					assert.NotEqual(t, uuid.Nil, user.ID)
					assert.Equal(t, tt.req.Email, user.Email)
					// The raw password must never reach the repository.
					assert.NotEqual(t, tt.req.Password, user.PasswordHash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.req.Password)))
					created := *user
					created.CreatedAt = time.Now()
					return &created, nil
				})

			created, err := userService.Register(ctx, tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.req.Name, created.Name)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	storedUser := &models.User{
		ID:           userID,
		Name:         "Ola",
		Email:        "ola@example.com",
		PasswordHash: string(hashed),
	}

	tests := []struct {
		name        string
		req         *dto.LoginRequest
		repoUser    *models.User
		repoErr     error
		expectedErr error
	}{
		{
			name:     "Success",
			req:      &dto.LoginRequest{Email: "ola@example.com", Password: "hunter22"},
			repoUser: storedUser,
		},
		{
			name:        "Failure_UnknownEmail",
			req:         &dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"},
			repoErr:     storage.ErrNotFound,
			expectedErr: services.ErrInvalidCredentials,
		},
		{
			name:        "Failure_WrongPassword",
			req:         &dto.LoginRequest{Email: "ola@example.com", Password: "wrong"},
			repoUser:    storedUser,
			expectedErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, userService, mockUserRepo, ctrl := setupUserServiceTest(t)
			defer ctrl.Finish()

			mockUserRepo.EXPECT().GetByEmail(gomock.Any(), tt.req.Email).Return(tt.repoUser, tt.repoErr)

			user, token, err := userService.Login(ctx, tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotEmpty(t, token)

			claims := &jwt.RegisteredClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
				return []byte(testJWTSecret), nil
			})
			require.NoError(t, err)
			assert.True(t, parsed.Valid)
			assert.Equal(t, userID.String(), claims.Subject)
			assert.True(t, claims.ExpiresAt.After(time.Now()))
		})
	}
}
