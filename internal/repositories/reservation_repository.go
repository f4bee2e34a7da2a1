package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/utils"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Reservation, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) (*models.Reservation, error)
}

type reservationRepository struct {
	DB *sql.DB
}

func NewReservationRepo(db *sql.DB) ReservationRepository {
	return &reservationRepository{DB: db}
}

const reservationColumns = `id, restaurant_id, customer_name, customer_phone, reserved_for, party_size, notes, status, created_at, updated_at`

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, reservation.ID, reservation.RestaurantID, reservation.CustomerName,
		reservation.CustomerPhone, reservation.ReservedFor, reservation.PartySize, reservation.Notes,
		reservation.Status).Scan(&reservation.CreatedAt, &reservation.UpdatedAt)
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation := &models.Reservation{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&reservation.ID, &reservation.RestaurantID,
		&reservation.CustomerName, &reservation.CustomerPhone, &reservation.ReservedFor, &reservation.PartySize,
		&reservation.Notes, &reservation.Status, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

func (r *reservationRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Reservation, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM reservations WHERE restaurant_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, restaurantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE restaurant_id = $1
		ORDER BY reserved_for
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, restaurantID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation

	for rows.Next() {
		var reservation models.Reservation

		err := rows.Scan(&reservation.ID, &reservation.RestaurantID, &reservation.CustomerName,
			&reservation.CustomerPhone, &reservation.ReservedFor, &reservation.PartySize, &reservation.Notes,
			&reservation.Status, &reservation.CreatedAt, &reservation.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan reservation: %w", err)
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return reservations, total, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus) (*models.Reservation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE reservations
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
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
