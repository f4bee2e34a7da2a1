package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
)

type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
}

type staffRepository struct {
	DB *sql.DB
}

func NewStaffRepo(db *sql.DB) StaffRepository {
	return &staffRepository{DB: db}
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, restaurant_id, name, email, password_hash, role, created_at, updated_at
		FROM staff_users
		WHERE email = $1
	`

	user := &models.StaffUser{}

	err := r.DB.QueryRowContext(dbCtx, query, email).Scan(&user.ID, &user.RestaurantID, &user.Name,
		&user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get staff user: %w", err)
	}

	return user, nil
}
