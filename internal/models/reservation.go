package models

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusSeated    ReservationStatus = "seated"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusSeated, ReservationStatusCancelled},
	ReservationStatusSeated:    {ReservationStatusCompleted},
	ReservationStatusCompleted: {},
	ReservationStatusCancelled: {},
}

func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	if _, ok := reservationTransitions[status]; !ok {
		return "", false
	}

	return status, true
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Reservation struct {
	ID            uuid.UUID         `json:"id"`
	RestaurantID  uuid.UUID         `json:"restaurant_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	ReservedFor   time.Time         `json:"reserved_for"`
	PartySize     int               `json:"party_size"`
	Notes         string            `json:"notes,omitempty"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type CreateReservationRequest struct {
	RestaurantID  uuid.UUID `json:"restaurant_id"  validate:"required"`
	CustomerName  string    `json:"customer_name"  validate:"required,max=120"`
	CustomerPhone string    `json:"customer_phone" validate:"required,max=20"`
	ReservedFor   time.Time `json:"reserved_for"   validate:"required"`
	PartySize     int       `json:"party_size"     validate:"required,min=1,max=40"`
	Notes         string    `json:"notes"          validate:"omitempty,max=500"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
