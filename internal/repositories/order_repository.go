package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByToken(ctx context.Context, token string) (*models.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, token, restaurant_id, order_type, customer_name, customer_phone, customer_email,
			table_number, notes, subtotal, discount, coupon_code, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`

	_, err = tx.ExecContext(dbCtx, query, order.ID, order.Token, order.RestaurantID, order.OrderType,
		order.CustomerName, order.CustomerPhone, order.CustomerEmail, order.TableNumber, order.Notes,
		order.Subtotal, order.Discount, order.CouponCode, order.Total, order.Status)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, menu_item_id, name, pricing_type, unit_price, packaging_price, quantity, grams, line_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`

	for _, item := range order.Items {
		_, err := tx.ExecContext(dbCtx, itemQuery, item.ID, order.ID, item.MenuItemID, item.Name,
			item.PricingType, item.UnitPrice, item.PackagingPrice, item.Quantity, item.Grams, item.LineTotal)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *orderRepository) GetByToken(ctx context.Context, token string) (*models.Order, error) {
	return r.getOne(ctx, "token = $1", token)
}

func (r *orderRepository) getOne(ctx context.Context, where string, arg any) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, token, restaurant_id, order_type, customer_name, customer_phone, customer_email,
			table_number, notes, subtotal, discount, coupon_code, total, status, created_at, updated_at
		FROM orders
		WHERE ` + where

	order := &models.Order{}

	err := r.DB.QueryRowContext(dbCtx, query, arg).Scan(&order.ID, &order.Token, &order.RestaurantID,
		&order.OrderType, &order.CustomerName, &order.CustomerPhone, &order.CustomerEmail, &order.TableNumber,
		&order.Notes, &order.Subtotal, &order.Discount, &order.CouponCode, &order.Total, &order.Status,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.getItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) getItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT id, menu_item_id, name, pricing_type, unit_price, packaging_price, quantity, grams, line_total, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {
		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.MenuItemID, &item.Name, &item.PricingType, &item.UnitPrice,
			&item.PackagingPrice, &item.Quantity, &item.Grams, &item.LineTotal, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = orderID
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE restaurant_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, restaurantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, token, order_type, customer_name, customer_phone, customer_email,
			table_number, notes, subtotal, discount, coupon_code, total, status, created_at, updated_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, restaurantID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order

	for rows.Next() {
		var order models.Order

		order.RestaurantID = restaurantID

		err := rows.Scan(&order.ID, &order.Token, &order.OrderType, &order.CustomerName, &order.CustomerPhone,
			&order.CustomerEmail, &order.TableNumber, &order.Notes, &order.Subtotal, &order.Discount,
			&order.CouponCode, &order.Total, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.getItems(dbCtx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}

		orders[i].Items = items
	}

	return orders, total, nil
}

// UpdateStatus writes the new status and returns the order as stored, so the
// caller only ever shows a server-confirmed value.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return nil, sql.ErrNoRows
	}

	return r.GetByID(ctx, id)
}
