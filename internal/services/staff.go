package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

type StaffService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type staffService struct {
	repo     repository.StaffRepository
	limiter  repository.LoginRateLimiter
	jwtKey   []byte
	tokenTTL time.Duration
}

// NewStaffService builds the staff auth service. A nil limiter disables login
// throttling.
func NewStaffService(repo repository.StaffRepository, limiter repository.LoginRateLimiter, jwtKey []byte, tokenTTL time.Duration) StaffService {
	return &staffService{repo: repo, limiter: limiter, jwtKey: jwtKey, tokenTTL: tokenTTL}
}

func (s *staffService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if s.limiter != nil {
		// Limiter errors fail open so a redis outage never blocks staff logins.
		allowed, retryAfter, err := s.limiter.Allow(ctx, req.Email)
		if err == nil && !allowed {
			return nil, appErrors.TooManyRequestsError(
				fmt.Sprintf("Too many login attempts, try again in %d seconds", int(retryAfter.Seconds())))
		}
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("Invalid email or password")
		}

		return nil, appErrors.DatabaseError("Failed to fetch staff user").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.UnauthorizedError("Invalid email or password")
	}

	now := time.Now()

	claims := &models.Claims{
		UserID:       user.ID,
		RestaurantID: user.RestaurantID,
		Email:        user.Email,
		Role:         user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to sign token").WithError(err)
	}

	return &models.LoginResponse{
		Token:     signed,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}
