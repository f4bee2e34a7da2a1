package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	appErrors "github.com/lusakaeats/restaurant-ordering-platform/internal/errors"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, req *models.CreateReservationRequest) (*models.Reservation, error)
	GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	ListReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Reservation, int, error)
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) (*models.Reservation, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	sanitizer *bluemonday.Policy
}

func NewReservationService(repo repository.ReservationRepository) ReservationService {
	return &reservationService{repo: repo, sanitizer: bluemonday.StrictPolicy()}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *models.CreateReservationRequest) (*models.Reservation, error) {
	if req.ReservedFor.Before(time.Now()) {
		return nil, appErrors.ValidationError("Reservation time must be in the future")
	}

	reservation := &models.Reservation{
		ID:            uuid.New(),
		RestaurantID:  req.RestaurantID,
		CustomerName:  s.sanitizer.Sanitize(req.CustomerName),
		CustomerPhone: req.CustomerPhone,
		ReservedFor:   req.ReservedFor,
		PartySize:     req.PartySize,
		Notes:         s.sanitizer.Sanitize(req.Notes),
		Status:        models.ReservationStatusPending,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, appErrors.DatabaseError("Failed to create reservation").WithError(err)
	}

	return reservation, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Reservation not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch reservation").WithError(err)
	}

	return reservation, nil
}

func (s *reservationService) ListReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, page, size int) ([]models.Reservation, int, error) {
	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	reservations, total, err := s.repo.ListByRestaurant(ctx, restaurantID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch reservations").WithError(err)
	}

	return reservations, total, nil
}

// UpdateReservationStatus mirrors the order workflow: unknown statuses and
// illegal transitions are rejected before any write.
func (s *reservationService) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) (*models.Reservation, error) {
	next, ok := models.ParseReservationStatus(status)
	if !ok {
		return nil, appErrors.ValidationError("Unknown reservation status: " + status)
	}

	reservation, err := s.GetReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !reservation.Status.CanTransitionTo(next) {
		return nil, appErrors.InvalidTransitionError(
			fmt.Sprintf("Cannot move reservation from %s to %s", reservation.Status, next))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update reservation status").WithError(err)
	}

	return updated, nil
}
