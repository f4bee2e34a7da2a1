// Package mocks provides testify mocks for the repository interfaces, used
// by the service tests.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CartRepository struct {
	mock.Mock
}

func NewCartRepository(t testingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CartRepository) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *CartRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MenuRepository) GetMenu(ctx context.Context, restaurantID uuid.UUID) (*models.Menu, error) {
	args := m.Called(ctx, restaurantID)
	if menu, ok := args.Get(0).(*models.Menu); ok {
		return menu, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MenuRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*models.MenuItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) GetByToken(ctx context.Context, token string) (*models.Order, error) {
	args := m.Called(ctx, token)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, restaurantID, page, size)
	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func NewReservationRepository(t testingT) *ReservationRepository {
	m := &ReservationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	args := m.Called(ctx, reservation)

	return args.Error(0)
}

func (m *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if reservation, ok := args.Get(0).(*models.Reservation); ok {
		return reservation, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReservationRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Reservation, int, error) {
	args := m.Called(ctx, restaurantID, page, size)
	if reservations, ok := args.Get(0).([]models.Reservation); ok {
		return reservations, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) (*models.Reservation, error) {
	args := m.Called(ctx, id, status)
	if reservation, ok := args.Get(0).(*models.Reservation); ok {
		return reservation, args.Error(1)
	}

	return nil, args.Error(1)
}

type StaffRepository struct {
	mock.Mock
}

func NewStaffRepository(t testingT) *StaffRepository {
	m := &StaffRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *StaffRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.StaffUser); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type LoginRateLimiter struct {
	mock.Mock
}

func NewLoginRateLimiter(t testingT) *LoginRateLimiter {
	m := &LoginRateLimiter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *LoginRateLimiter) Allow(ctx context.Context, email string) (bool, time.Duration, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}
