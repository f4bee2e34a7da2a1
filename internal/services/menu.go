package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/cache"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
)

type MenuService interface {
	GetMenu(ctx context.Context, restaurantID uuid.UUID) (*models.Menu, error)
}

type menuService struct {
	repo  repository.MenuRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewMenuService(repo repository.MenuRepository, menuCache cache.Cache, ttl time.Duration) MenuService {
	return &menuService{repo: repo, cache: menuCache, ttl: ttl}
}

// GetMenu serves from the cache when possible. Cache failures degrade to the
// database, they are never surfaced to the customer.
func (s *menuService) GetMenu(ctx context.Context, restaurantID uuid.UUID) (*models.Menu, error) {
	key := cache.Key(cache.MenuKeyPrefix, restaurantID.String())

	if s.cache != nil {
		menu := &models.Menu{}

		found, err := s.cache.Get(ctx, key, menu)
		if err != nil {
			slog.Warn("Menu cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		} else if found {
			return menu, nil
		}
	}

	menu, err := s.repo.GetMenu(ctx, restaurantID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch menu").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, menu, s.ttl); err != nil {
			slog.Warn("Menu cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	return menu, nil
}
