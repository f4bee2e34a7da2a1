package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
)

type MenuRepository interface {
	GetMenu(ctx context.Context, restaurantID uuid.UUID) (*models.Menu, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
}

type menuRepository struct {
	DB *sql.DB
}

func NewMenuRepo(db *sql.DB) MenuRepository {
	return &menuRepository{DB: db}
}

func (r *menuRepository) GetMenu(ctx context.Context, restaurantID uuid.UUID) (*models.Menu, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	menu := &models.Menu{RestaurantID: restaurantID}

	query := `
		SELECT id, restaurant_id, name, sort_order, created_at, updated_at
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY sort_order, name
	`

	rows, err := r.DB.QueryContext(dbCtx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		menu.Categories = append(menu.Categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	query = `
		SELECT id, restaurant_id, category_id, name, description, price, packaging_price, pricing_type, available, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY name
	`

	itemRows, err := r.DB.QueryContext(dbCtx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.MenuItem
		if err := itemRows.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name, &item.Description,
			&item.Price, &item.PackagingPrice, &item.PricingType, &item.Available, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		menu.Items = append(menu.Items, item)
	}

	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return menu, nil
}

func (r *menuRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, restaurant_id, category_id, name, description, price, packaging_price, pricing_type, available, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	item := &models.MenuItem{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&item.ID, &item.RestaurantID, &item.CategoryID,
		&item.Name, &item.Description, &item.Price, &item.PackagingPrice, &item.PricingType,
		&item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return item, nil
}
