// Package mocks provides testify mocks for the service interfaces, used by
// the handler tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID string, lineID uuid.UUID, quantity int) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, lineID, quantity)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID string, lineID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, lineID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) ApplyCoupon(ctx context.Context, sessionID string, code string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, code)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) ClearCoupon(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, sessionID, req)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) GetOrderByToken(ctx context.Context, token string) (*models.Order, error) {
	args := m.Called(ctx, token)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderService) ListOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, restaurantID, page, size)
	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

type MenuService struct {
	mock.Mock
}

func (m *MenuService) GetMenu(ctx context.Context, restaurantID uuid.UUID) (*models.Menu, error) {
	args := m.Called(ctx, restaurantID)
	if menu, ok := args.Get(0).(*models.Menu); ok {
		return menu, args.Error(1)
	}

	return nil, args.Error(1)
}

type ReservationService struct {
	mock.Mock
}

func (m *ReservationService) CreateReservation(ctx context.Context, req *models.CreateReservationRequest) (*models.Reservation, error) {
	args := m.Called(ctx, req)
	if reservation, ok := args.Get(0).(*models.Reservation); ok {
		return reservation, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReservationService) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if reservation, ok := args.Get(0).(*models.Reservation); ok {
		return reservation, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReservationService) ListReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Reservation, int, error) {
	args := m.Called(ctx, restaurantID, page, size)
	if reservations, ok := args.Get(0).([]models.Reservation); ok {
		return reservations, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ReservationService) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) (*models.Reservation, error) {
	args := m.Called(ctx, id, status)
	if reservation, ok := args.Get(0).(*models.Reservation); ok {
		return reservation, args.Error(1)
	}

	return nil, args.Error(1)
}

type StaffService struct {
	mock.Mock
}

func (m *StaffService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.LoginResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}
