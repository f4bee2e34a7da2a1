package repository_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMenuRepoTest(t *testing.T) (repository.MenuRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewMenuRepo(db), mock
}

func TestGetMenuRepo(t *testing.T) {
	ctx := t.Context()
	repo, mock := setupMenuRepoTest(t)
	restaurantID := uuid.New()
	categoryID := uuid.New()
	itemID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM categories`).
		WithArgs(restaurantID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "sort_order", "created_at", "updated_at"}).
			AddRow(categoryID, restaurantID, "Street Food", 1, now, now))

	mock.ExpectQuery(`SELECT (.+) FROM menu_items`).
		WithArgs(restaurantID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "restaurant_id", "category_id", "name", "description", "price",
			"packaging_price", "pricing_type", "available", "created_at", "updated_at",
		}).AddRow(itemID, restaurantID, categoryID, "Pani Puri", "Six crispy shells",
			decimal.RequireFromString("45"), decimal.RequireFromString("2"), models.PricingFixed, true, now, now))

	menu, err := repo.GetMenu(ctx, restaurantID)

	require.NoError(t, err)
	assert.Equal(t, restaurantID, menu.RestaurantID)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "Street Food", menu.Categories[0].Name)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "Pani Puri", menu.Items[0].Name)
	assert.True(t, menu.Items[0].Price.Equal(decimal.RequireFromString("45")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetItemByID(t *testing.T) {
	ctx := t.Context()

	t.Run("Found", func(t *testing.T) {
		repo, mock := setupMenuRepoTest(t)
		itemID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE id = \$1`).
			WithArgs(itemID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "restaurant_id", "category_id", "name", "description", "price",
				"packaging_price", "pricing_type", "available", "created_at", "updated_at",
			}).AddRow(itemID, uuid.New(), uuid.New(), "Roasted Groundnuts", "",
				decimal.RequireFromString("0.2"), decimal.RequireFromString("1"), models.PricingPerGram, true, now, now))

		item, err := repo.GetItemByID(ctx, itemID)

		require.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, models.PricingPerGram, item.PricingType)
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := setupMenuRepoTest(t)
		itemID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM menu_items WHERE id = \$1`).
			WithArgs(itemID).
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetItemByID(ctx, itemID)

		assert.Nil(t, item)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
