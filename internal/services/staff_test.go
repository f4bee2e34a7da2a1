package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/repositories/mocks"
	service "github.com/lusakaeats/restaurant-ordering-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaffLogin(t *testing.T) {
	ctx := context.Background()
	jwtKey := []byte("test-signing-key")
	tokenTTL := 12 * time.Hour

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	staffUser := &models.StaffUser{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		Email:        "staff@lusakaeats.com",
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
	}

	t.Run("Valid credentials yield a signed token", func(t *testing.T) {
		mockRepo := mocks.NewStaffRepository(t)
		staffService := service.NewStaffService(mockRepo, nil, jwtKey, tokenTTL)
		mockRepo.On("GetByEmail", ctx, staffUser.Email).Return(staffUser, nil).Once()

		resp, err := staffService.Login(ctx, &models.LoginRequest{Email: staffUser.Email, Password: "correct horse"})

		require.NoError(t, err)
		assert.Equal(t, int(tokenTTL.Seconds()), resp.ExpiresIn)

		claims := &models.Claims{}
		parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, staffUser.ID, claims.UserID)
		assert.Equal(t, staffUser.RestaurantID, claims.RestaurantID)
		assert.Equal(t, models.RoleStaff, claims.Role)
	})

	t.Run("Wrong password and unknown email are indistinguishable", func(t *testing.T) {
		mockRepo := mocks.NewStaffRepository(t)
		staffService := service.NewStaffService(mockRepo, nil, jwtKey, tokenTTL)
		mockRepo.On("GetByEmail", ctx, staffUser.Email).Return(staffUser, nil).Once()
		mockRepo.On("GetByEmail", ctx, "nobody@lusakaeats.com").Return(nil, sql.ErrNoRows).Once()

		_, errWrongPass := staffService.Login(ctx, &models.LoginRequest{Email: staffUser.Email, Password: "wrong"})
		_, errNoUser := staffService.Login(ctx, &models.LoginRequest{Email: "nobody@lusakaeats.com", Password: "wrong"})

		appErr1, ok := appErrors.IsAppError(errWrongPass)
		require.True(t, ok)
		appErr2, ok := appErrors.IsAppError(errNoUser)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr1.Code)
		assert.Equal(t, appErr1.Message, appErr2.Message)
	})

	t.Run("Throttled login never reaches the store", func(t *testing.T) {
		mockRepo := mocks.NewStaffRepository(t)
		mockLimiter := mocks.NewLoginRateLimiter(t)
		staffService := service.NewStaffService(mockRepo, mockLimiter, jwtKey, tokenTTL)
		mockLimiter.On("Allow", ctx, staffUser.Email).Return(false, 90*time.Second, nil).Once()

		_, err := staffService.Login(ctx, &models.LoginRequest{Email: staffUser.Email, Password: "correct horse"})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeTooManyRequests, appErr.Code)
		assert.Contains(t, appErr.Message, "90 seconds")
		mockRepo.AssertNotCalled(t, "GetByEmail", ctx, staffUser.Email)
	})

	t.Run("Limiter failure does not block login", func(t *testing.T) {
		mockRepo := mocks.NewStaffRepository(t)
		mockLimiter := mocks.NewLoginRateLimiter(t)
		staffService := service.NewStaffService(mockRepo, mockLimiter, jwtKey, tokenTTL)
		mockLimiter.On("Allow", ctx, staffUser.Email).Return(false, time.Duration(0), assert.AnError).Once()
		mockRepo.On("GetByEmail", ctx, staffUser.Email).Return(staffUser, nil).Once()

		resp, err := staffService.Login(ctx, &models.LoginRequest{Email: staffUser.Email, Password: "correct horse"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}
