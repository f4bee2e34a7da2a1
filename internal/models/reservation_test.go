package models_test

import (
	"testing"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseReservationStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "seated", "completed", "cancelled"} {
		status, ok := models.ParseReservationStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, models.ReservationStatus(s), status)
	}

	_, ok := models.ParseReservationStatus("booked")
	assert.False(t, ok)
}

func TestReservationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    models.ReservationStatus
		to      models.ReservationStatus
		allowed bool
	}{
		{models.ReservationStatusPending, models.ReservationStatusConfirmed, true},
		{models.ReservationStatusPending, models.ReservationStatusCancelled, true},
		{models.ReservationStatusPending, models.ReservationStatusSeated, false},
		{models.ReservationStatusConfirmed, models.ReservationStatusSeated, true},
		{models.ReservationStatusConfirmed, models.ReservationStatusCompleted, false},
		{models.ReservationStatusSeated, models.ReservationStatusCompleted, true},
		{models.ReservationStatusSeated, models.ReservationStatusCancelled, false},
		{models.ReservationStatusCompleted, models.ReservationStatusPending, false},
		{models.ReservationStatusCancelled, models.ReservationStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
