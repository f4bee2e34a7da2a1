package repository_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartRepoTest(t *testing.T) (repository.CartRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	repo := repository.NewCartRepo(client, 24*time.Hour)

	return repo, mock
}

func sampleCart(sessionID string) *models.Cart {
	return &models.Cart{
		SessionID:    sessionID,
		RestaurantID: uuid.New(),
		Lines: []models.CartLine{{
			ID:          uuid.New(),
			MenuItemID:  uuid.New(),
			Name:        "Shawarma Wrap",
			PricingType: models.PricingFixed,
			UnitPrice:   decimal.RequireFromString("45"),
			Quantity:    2,
		}},
		CouponCode: "WELCOME10",
	}
}

func TestCartGet(t *testing.T) {
	ctx := t.Context()
	sessionID := "sess-1"

	t.Run("Stored cart round-trips", func(t *testing.T) {
		repo, mock := setupCartRepoTest(t)
		cart := sampleCart(sessionID)
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectGet("cart:" + sessionID).SetVal(string(data))

		got, err := repo.Get(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, cart.SessionID, got.SessionID)
		assert.Equal(t, cart.CouponCode, got.CouponCode)
		require.Len(t, got.Lines, 1)
		assert.True(t, got.Lines[0].UnitPrice.Equal(cart.Lines[0].UnitPrice))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing key maps to ErrCartNotFound", func(t *testing.T) {
		repo, mock := setupCartRepoTest(t)

		mock.ExpectGet("cart:" + sessionID).RedisNil()

		got, err := repo.Get(ctx, sessionID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, repository.ErrCartNotFound)
	})

	t.Run("Redis failure is wrapped", func(t *testing.T) {
		repo, mock := setupCartRepoTest(t)

		mock.ExpectGet("cart:" + sessionID).SetErr(errors.New("connection reset"))

		got, err := repo.Get(ctx, sessionID)

		assert.Nil(t, got)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrCartNotFound)
	})
}

func TestCartSave(t *testing.T) {
	ctx := t.Context()
	sessionID := "sess-1"

	t.Run("Cart saved under session key with TTL", func(t *testing.T) {
		repo, mock := setupCartRepoTest(t)
		cart := sampleCart(sessionID)
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectSet("cart:"+sessionID, data, 24*time.Hour).SetVal("OK")

		assert.NoError(t, repo.Save(ctx, cart))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis failure surfaces", func(t *testing.T) {
		repo, mock := setupCartRepoTest(t)
		cart := sampleCart(sessionID)
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectSet("cart:"+sessionID, data, 24*time.Hour).SetErr(errors.New("oom"))

		assert.Error(t, repo.Save(ctx, cart))
	})
}

func TestCartDelete(t *testing.T) {
	ctx := t.Context()
	sessionID := "sess-1"

	repo, mock := setupCartRepoTest(t)
	mock.ExpectDel("cart:" + sessionID).SetVal(1)

	assert.NoError(t, repo.Delete(ctx, sessionID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
